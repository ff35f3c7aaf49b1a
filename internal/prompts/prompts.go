// Package prompts renders the prompts sent to the model for each assistant tool.
package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// System is the role given to the model for every tool.
const System = "You are an experienced senior data engineer and mentor. " +
	"You give practical, production-minded advice with concrete examples, and you are honest about trade-offs."

// AnalysisData fills the analysis prompt.
type AnalysisData struct {
	Week         int
	WeekTitle    string
	DayInWeek    int
	GlobalDay    int
	TotalDays    int
	Topic        string
	Technologies []string
	KeyConcepts  []string
	Question     string
}

// CodeReviewData fills the code review prompt.
type CodeReviewData struct {
	Technology string
	Code       string
	Context    string
}

// PracticeData fills the practice scenario prompt.
type PracticeData struct {
	Week          int
	WeekTitle     string
	Technologies  []string
	KeyConcepts   []string
	SkillLevel    string
	TimeAvailable string
	FocusArea     string
}

// ConceptData fills the concept explanation prompt.
type ConceptData struct {
	Concept       string
	CurrentLevel  string
	LearningStyle string
	Related       []string
}

// SkillsData fills the skills assessment prompt.
type SkillsData struct {
	Week      int
	WeekTitle string
	Scores    []models.SkillScore
	Average   float64
}

// InterviewData fills the interview preparation prompt.
type InterviewData struct {
	CompletedWeeks int
	TargetRole     string
	Focus          string
	Technologies   []string
	KeyConcepts    []string
}

// Composer renders prompt templates. It is safe for concurrent use.
type Composer struct {
	tmpl *template.Template
}

// NewComposer parses the embedded templates.
func NewComposer() (*Composer, error) {
	tmpl, err := template.New("prompts").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}

	for _, tool := range models.AssistantTools {
		if tmpl.Lookup(string(tool)) == nil {
			return nil, fmt.Errorf("missing prompt template for %s", tool)
		}
	}
	return &Composer{tmpl: tmpl}, nil
}

// Compose renders the prompt of tool with data. The output is deterministic for equal input.
func (c *Composer) Compose(tool models.AssistantTool, data any) (string, error) {
	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, string(tool), data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tool, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
