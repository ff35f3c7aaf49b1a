// Package web holds the embedded HTML templates and static assets of the learning UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render
const (
	PageDashboard  = "dashboard"
	PageAnalysis   = "analysis"
	PageCodeReview = "code_review"
	PagePractice   = "practice"
	PageConcepts   = "concepts"
	PageSkills     = "skills"
	PageInterview  = "interview"
)

var pageNames = []string{
	PageDashboard, PageAnalysis, PageCodeReview, PagePractice, PageConcepts, PageSkills, PageInterview,
}

// NavItem is one entry of the sidebar navigation
type NavItem struct {
	Path  string
	Label string
}

// Navigation lists the pages in menu order
var Navigation = []NavItem{
	{Path: "/", Label: "📊 Progress Dashboard"},
	{Path: "/analysis", Label: "🎯 Learning Analysis"},
	{Path: "/code-review", Label: "💻 Code Review"},
	{Path: "/practice", Label: "🛠 Practice Scenarios"},
	{Path: "/concepts", Label: "📚 Concept Explanations"},
	{Path: "/skills", Label: "📈 Skills Assessment"},
	{Path: "/interview", Label: "🎤 Interview Prep"},
}

// Page is the data every page template receives.
//
// Data carries the page specific view.
type Page struct {
	Title  string
	Path   string
	Status models.AssistantStatus
	Stats  models.QuickStats
	Notice string
	Flash  string
	Data   any
}

// Renderer executes page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"nav":   func() []NavItem { return Navigation },
	"hours": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"score": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"width": func(v, limit float64) string {
		if limit <= 0 {
			return "0%"
		}
		pct := v / limit * 100
		if pct > 100 {
			pct = 100
		}
		return fmt.Sprintf("%.0f%%", pct)
	},
	"statusIcon": func(s models.DayStatus) string {
		if s == models.DayStatusComplete {
			return "✅"
		}
		return "⏳"
	},
	"seq": func(from, to int) []int {
		out := make([]int, 0, to-from+1)
		for i := from; i <= to; i++ {
			out = append(out, i)
		}
		return out
	},
	"join":  strings.Join,
	"model": modelHint,
}

// NewRenderer parses the embedded layout together with every page
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s page: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes the named page
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if err := tmpl.ExecuteTemplate(w, "layout.html", page); err != nil {
		return fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return nil
}

// StaticHandler serves the embedded assets. Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func modelHint(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "coder") || strings.Contains(lower, "codellama"):
		return "best for code review"
	case strings.Contains(lower, "llama"):
		return "good for general guidance"
	case strings.Contains(lower, "mistral"):
		return "fast for quick answers"
	}
	return ""
}
