package web

import "github.com/cookiee01/data-engineering-learning-agent/internal/models"

// ToolResult is the outcome area shared by the assistant pages
type ToolResult struct {
	Result *models.AssistantResponse
	Error  string
}

// DashboardView feeds the dashboard page
type DashboardView struct {
	Summary *models.DashboardSummary
	Topics  []string
}

// AnalysisView feeds the learning analysis page
type AnalysisView struct {
	ToolResult
	Weeks []models.CurriculumWeek
	Form  models.AnalysisRequest
}

// CodeReviewView feeds the code review page
type CodeReviewView struct {
	ToolResult
	Technologies []string
	Form         models.CodeReviewRequest
}

// PracticeView feeds the practice scenario page
type PracticeView struct {
	ToolResult
	Weeks       []models.CurriculumWeek
	SkillLevels []string
	TimeBudgets []string
	Form        models.PracticeRequest
}

// ConceptView feeds the concept explanation page
type ConceptView struct {
	ToolResult
	Concepts []string
	Levels   []string
	Styles   []string
	Form     models.ConceptRequest
}

// SkillsView feeds the skills assessment page. Skills are the sliders of the chosen week
type SkillsView struct {
	ToolResult
	Weeks  []models.CurriculumWeek
	Week   models.CurriculumWeek
	Skills []models.SkillScore
}

// InterviewView feeds the interview preparation page
type InterviewView struct {
	ToolResult
	WeekCount  int
	FocusAreas []string
	Form       models.InterviewRequest
}
