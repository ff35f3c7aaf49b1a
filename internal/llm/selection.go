package llm

import (
	"slices"
	"strings"
)

// Selection is the outcome of resolving capabilities against the installed models.
type Selection struct {
	Available []string `json:"available"`
	General   string   `json:"general"`
	Code      string   `json:"code"`
}

// ModelFor returns the model serving the given capability.
func (s Selection) ModelFor(c Capability) string {
	if c == CapabilityCode && s.Code != "" {
		return s.Code
	}
	return s.General
}

// ResolveModels picks the general and code models from the available list.
//
// The general model is the preferred one when installed (an exact name or a family
// such as "llama3" matching "llama3:8b"), otherwise the first available model.
// The code model is the first available model whose family contains one of
// codePreferences, tried in order, and falls back to the general model.
func ResolveModels(available []string, preferred string, codePreferences []string) Selection {
	sel := Selection{Available: slices.Clone(available)}
	if len(available) == 0 {
		return sel
	}

	sel.General = available[0]
	if m, ok := findModel(available, preferred); ok {
		sel.General = m
	}
	sel.Code = resolveCode(available, codePreferences, sel.General)
	return sel
}

func resolveCode(available, codePreferences []string, fallback string) string {
	for _, pref := range codePreferences {
		pref = strings.ToLower(pref)
		if pref == "" {
			continue
		}
		for _, m := range available {
			if strings.Contains(strings.ToLower(family(m)), pref) {
				return m
			}
		}
	}
	return fallback
}

func findModel(available []string, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if slices.Contains(available, name) {
		return name, true
	}
	for _, m := range available {
		if strings.EqualFold(family(m), name) {
			return m, true
		}
	}
	return "", false
}

// family strips the tag from a model name ("codellama:7b" -> "codellama").
func family(model string) string {
	name, _, _ := strings.Cut(model, ":")
	return name
}
