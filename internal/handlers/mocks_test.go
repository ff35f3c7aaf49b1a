package handlers

import (
	"context"

	"github.com/cookiee01/data-engineering-learning-agent/internal/curriculum"
	"github.com/cookiee01/data-engineering-learning-agent/internal/llm"
	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// mockProgressService is a mock implementation of ProgressService and DashboardService
type mockProgressService struct {
	records []models.ProgressRecord
	saved   []models.ProgressRecord
	saveErr error
	loadErr error
}

func (m *mockProgressService) Save(ctx context.Context, record models.ProgressRecord) (models.ProgressRecord, error) {
	if m.saveErr != nil {
		return models.ProgressRecord{}, m.saveErr
	}
	if err := record.Validate(); err != nil {
		return models.ProgressRecord{}, err
	}
	record.LastUpdated = "2024-03-01T09:30:00Z"
	m.saved = append(m.saved, record)
	return record, nil
}

func (m *mockProgressService) LoadAll(ctx context.Context) ([]models.ProgressRecord, error) {
	if m.loadErr != nil {
		return []models.ProgressRecord{}, m.loadErr
	}
	return m.records, nil
}

func (m *mockProgressService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{
		Stats: models.QuickStats{TotalHours: 12.5, AverageConfidence: 7.5, HasConfidence: true, CompletedTopics: 3, RecordCount: 4},
		WeeklyCompletion: []models.SeriesPoint{{Week: 1, Value: 75}},
		WeeklyConfidence: []models.SeriesPoint{{Week: 1, Value: 7.5}},
		Weeks: []models.WeekOverview{{
			Number: 1,
			Title:  "Foundation & Modern Lakehouse",
			Days: []models.DayOverview{
				{Number: 1, DayInWeek: 1, Topic: "Environment Setup", Status: models.DayStatusComplete},
				{Number: 2, DayInWeek: 2, Topic: "Advanced Iceberg Features", Status: models.DayStatusPending},
			},
		}},
		Records: m.records,
	}
	if m.loadErr != nil {
		summary.Stats = models.QuickStats{}
		summary.Notice = "Could not load progress: " + m.loadErr.Error()
		return summary, m.loadErr
	}
	return summary, nil
}

// mockAssistantService is a mock implementation of AssistantService
type mockAssistantService struct {
	status    models.AssistantStatus
	response  *models.AssistantResponse
	err       error
	selectErr error
	refreshed int
	selected  string
	lastReq   any
}

func (m *mockAssistantService) answer(tool models.AssistantTool, req any) (*models.AssistantResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &models.AssistantResponse{Tool: tool, Model: "mock", Content: "generated " + string(tool)}, nil
}

func (m *mockAssistantService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AssistantResponse, error) {
	return m.answer(models.ToolAnalysis, req)
}

func (m *mockAssistantService) ReviewCode(ctx context.Context, req models.CodeReviewRequest) (*models.AssistantResponse, error) {
	return m.answer(models.ToolCodeReview, req)
}

func (m *mockAssistantService) GeneratePractice(ctx context.Context, req models.PracticeRequest) (*models.AssistantResponse, error) {
	return m.answer(models.ToolPractice, req)
}

func (m *mockAssistantService) ExplainConcept(ctx context.Context, req models.ConceptRequest) (*models.AssistantResponse, error) {
	return m.answer(models.ToolConcept, req)
}

func (m *mockAssistantService) AssessSkills(ctx context.Context, req models.SkillsRequest) (*models.AssistantResponse, error) {
	return m.answer(models.ToolSkills, req)
}

func (m *mockAssistantService) GenerateInterviewQuestions(ctx context.Context, req models.InterviewRequest) (*models.AssistantResponse, error) {
	return m.answer(models.ToolInterview, req)
}

func (m *mockAssistantService) Status() models.AssistantStatus {
	return m.status
}

func (m *mockAssistantService) Refresh(ctx context.Context) (models.AssistantStatus, error) {
	m.refreshed++
	if m.err != nil {
		return m.status, m.err
	}
	return m.status, nil
}

func (m *mockAssistantService) SelectModel(name string) (models.AssistantStatus, error) {
	if m.selectErr != nil {
		return m.status, m.selectErr
	}
	m.selected = name
	m.status.SelectedModel = name
	return m.status, nil
}

func readyStatus() models.AssistantStatus {
	return models.AssistantStatus{
		Provider:      llm.ProviderOllama,
		Ready:         true,
		Models:        []string{"llama3:8b", "deepseek-coder:6.7b"},
		SelectedModel: "llama3:8b",
		CodeModel:     "deepseek-coder:6.7b",
		Selectable:    true,
	}
}

type registrar interface {
	RegisterRoutes(r chi.Router)
}

func newRouter(handlers ...registrar) chi.Router {
	r := chi.NewRouter()
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return r
}

func testLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func testCatalog() *curriculum.Catalog {
	return curriculum.Default()
}
