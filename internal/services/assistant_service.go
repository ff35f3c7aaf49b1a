package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cookiee01/data-engineering-learning-agent/internal/curriculum"
	"github.com/cookiee01/data-engineering-learning-agent/internal/llm"
	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/cookiee01/data-engineering-learning-agent/internal/prompts"
	"go.uber.org/zap"
)

var (
	// ErrMissingInput is returned when a required form field is empty.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidInput is returned when a field is outside its allowed range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotSelectable is returned when the provider has a fixed model.
	ErrNotSelectable = errors.New("model selection is only available for the local model service")
)

const (
	notInitializedMessage = "AI assistant not initialized. Please add an API key or start Ollama."
	noModelsMessage       = "Ollama is not reachable or has no models installed. Start Ollama, pull a model and check the connection again."
)

var errorLabels = map[models.AssistantTool]string{
	models.ToolAnalysis:   "Error getting analysis",
	models.ToolCodeReview: "Error reviewing code",
	models.ToolPractice:   "Error generating scenario",
	models.ToolConcept:    "Error explaining concept",
	models.ToolSkills:     "Error assessing skills",
	models.ToolInterview:  "Error generating questions",
}

type assistantService struct {
	provider     llm.Provider
	providerName string
	catalog      *curriculum.Catalog
	composer     *prompts.Composer
	tasks        map[string]llm.TaskConfig
	logger       *zap.Logger
}

// NewAssistantService creates a new assistant service.
//
// provider may be nil, in which case every tool answers with a not-initialized diagnostic.
func NewAssistantService(provider llm.Provider, providerName string, catalog *curriculum.Catalog, composer *prompts.Composer, logger *zap.Logger) *assistantService {
	return &assistantService{
		provider:     provider,
		providerName: providerName,
		catalog:      catalog,
		composer:     composer,
		tasks:        llm.DefaultTasks(),
		logger:       logger,
	}
}

// Analyze gives guidance on one study day of the curriculum
func (s *assistantService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AssistantResponse, error) {
	week, err := s.week(req.Week)
	if err != nil {
		return nil, err
	}
	topic, ok := s.catalog.Topic(req.Week, req.Day)
	if !ok {
		return nil, fmt.Errorf("%w: day %d is not part of week %d", ErrInvalidInput, req.Day, req.Week)
	}

	return s.run(ctx, models.ToolAnalysis, prompts.AnalysisData{
		Week:         week.Number,
		WeekTitle:    week.Title,
		DayInWeek:    req.Day,
		GlobalDay:    curriculum.GlobalDay(req.Week, req.Day),
		TotalDays:    s.catalog.WeekCount() * curriculum.DaysPerWeek,
		Topic:        topic,
		Technologies: week.Technologies,
		KeyConcepts:  week.KeyConcepts,
		Question:     strings.TrimSpace(req.Question),
	})
}

// ReviewCode reviews a code snippet. The code capable model serves it when one is available
func (s *assistantService) ReviewCode(ctx context.Context, req models.CodeReviewRequest) (*models.AssistantResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrMissingInput)
	}
	technology := strings.TrimSpace(req.Technology)
	if technology == "" {
		return nil, fmt.Errorf("%w: technology is required", ErrMissingInput)
	}

	return s.run(ctx, models.ToolCodeReview, prompts.CodeReviewData{
		Technology: technology,
		Code:       code,
		Context:    strings.TrimSpace(req.Context),
	})
}

// GeneratePractice creates a hands-on scenario for a curriculum week
func (s *assistantService) GeneratePractice(ctx context.Context, req models.PracticeRequest) (*models.AssistantResponse, error) {
	week, err := s.week(req.Week)
	if err != nil {
		return nil, err
	}

	return s.run(ctx, models.ToolPractice, prompts.PracticeData{
		Week:          week.Number,
		WeekTitle:     week.Title,
		Technologies:  week.Technologies,
		KeyConcepts:   week.KeyConcepts,
		SkillLevel:    orDefault(req.SkillLevel, "Intermediate"),
		TimeAvailable: orDefault(req.TimeAvailable, "1 hour"),
		FocusArea:     strings.TrimSpace(req.FocusArea),
	})
}

// ExplainConcept explains a concept and points at related curriculum concepts
func (s *assistantService) ExplainConcept(ctx context.Context, req models.ConceptRequest) (*models.AssistantResponse, error) {
	concept := strings.TrimSpace(req.Concept)
	if concept == "" {
		return nil, fmt.Errorf("%w: concept is required", ErrMissingInput)
	}

	return s.run(ctx, models.ToolConcept, prompts.ConceptData{
		Concept:       concept,
		CurrentLevel:  orDefault(req.CurrentLevel, "Some familiarity"),
		LearningStyle: orDefault(req.LearningStyle, "Real-world examples"),
		Related:       s.catalog.RelatedConcepts(concept),
	})
}

// AssessSkills turns self-reported scores into a study plan
func (s *assistantService) AssessSkills(ctx context.Context, req models.SkillsRequest) (*models.AssistantResponse, error) {
	week, err := s.week(req.Week)
	if err != nil {
		return nil, err
	}
	if len(req.Scores) == 0 {
		return nil, fmt.Errorf("%w: at least one skill score is required", ErrMissingInput)
	}

	sum := 0
	for _, score := range req.Scores {
		if strings.TrimSpace(score.Skill) == "" {
			return nil, fmt.Errorf("%w: skill name is required", ErrMissingInput)
		}
		if score.Score < 1 || score.Score > 10 {
			return nil, fmt.Errorf("%w: score for %s must be between 1 and 10", ErrInvalidInput, score.Skill)
		}
		sum += score.Score
	}

	return s.run(ctx, models.ToolSkills, prompts.SkillsData{
		Week:      week.Number,
		WeekTitle: week.Title,
		Scores:    req.Scores,
		Average:   float64(sum) / float64(len(req.Scores)),
	})
}

// GenerateInterviewQuestions prepares interview questions over every completed week
func (s *assistantService) GenerateInterviewQuestions(ctx context.Context, req models.InterviewRequest) (*models.AssistantResponse, error) {
	if req.CompletedWeeks < 1 || req.CompletedWeeks > s.catalog.WeekCount() {
		return nil, fmt.Errorf("%w: completed weeks must be between 1 and %d", ErrInvalidInput, s.catalog.WeekCount())
	}

	return s.run(ctx, models.ToolInterview, prompts.InterviewData{
		CompletedWeeks: req.CompletedWeeks,
		TargetRole:     orDefault(req.TargetRole, "Data Engineer"),
		Focus:          orDefault(req.Focus, "Technical Deep Dive"),
		Technologies:   s.catalog.TechnologiesThrough(req.CompletedWeeks),
		KeyConcepts:    s.catalog.ConceptsThrough(req.CompletedWeeks),
	})
}

// Status describes the model collaborator as the sidebar shows it
func (s *assistantService) Status() models.AssistantStatus {
	if s.provider == nil {
		return models.AssistantStatus{Provider: s.providerName, Message: notInitializedMessage}
	}

	cat, ok := llm.CatalogOf(s.provider)
	if !ok {
		return models.AssistantStatus{
			Provider:      s.providerName,
			Ready:         true,
			SelectedModel: s.provider.ModelID(),
		}
	}

	sel := cat.Selection()
	status := models.AssistantStatus{
		Provider:      s.providerName,
		Ready:         sel.General != "",
		Models:        sel.Available,
		SelectedModel: sel.General,
		CodeModel:     sel.Code,
		Selectable:    true,
	}
	if !status.Ready {
		status.Message = noModelsMessage
	}
	return status
}

// Refresh re-lists the local models. Providers without a model list are left untouched
func (s *assistantService) Refresh(ctx context.Context) (models.AssistantStatus, error) {
	if s.provider == nil {
		return s.Status(), nil
	}
	cat, ok := llm.CatalogOf(s.provider)
	if !ok {
		return s.Status(), nil
	}

	if _, err := cat.Refresh(ctx); err != nil {
		s.logger.Warn("model list refresh failed", zap.String("provider", s.providerName), zap.Error(err))
		return s.Status(), err
	}
	return s.Status(), nil
}

// SelectModel makes name the general model of the local model service
func (s *assistantService) SelectModel(name string) (models.AssistantStatus, error) {
	if s.provider == nil {
		return s.Status(), llm.ErrNotConfigured
	}
	cat, ok := llm.CatalogOf(s.provider)
	if !ok {
		return s.Status(), ErrNotSelectable
	}

	if err := cat.Select(strings.TrimSpace(name)); err != nil {
		return s.Status(), err
	}
	s.logger.Info("model selected", zap.String("model", name))
	return s.Status(), nil
}

func (s *assistantService) week(number int) (models.CurriculumWeek, error) {
	week, ok := s.catalog.Week(number)
	if !ok {
		return models.CurriculumWeek{}, fmt.Errorf("%w: week must be between 1 and %d", ErrInvalidInput, s.catalog.WeekCount())
	}
	return week, nil
}

// run composes the tool prompt and calls the provider. Provider failures never escape as errors;
// they are folded into a diagnostic response.
func (s *assistantService) run(ctx context.Context, tool models.AssistantTool, data any) (*models.AssistantResponse, error) {
	prompt, err := s.composer.Compose(tool, data)
	if err != nil {
		return nil, err
	}

	if s.provider == nil {
		return &models.AssistantResponse{Tool: tool, Content: diagnose(tool, llm.ErrNotConfigured), Failed: true}, nil
	}

	task := s.tasks[string(tool)]
	req := llm.UserPrompt(prompts.System, prompt)
	req.MaxTokens = task.MaxTokens
	req.Temperature = task.Temperature
	req.TopP = task.TopP
	req.Capability = task.Capability

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, string(tool)), req)
	if err != nil {
		return &models.AssistantResponse{
			Tool:    tool,
			Model:   s.provider.ModelID(),
			Content: diagnose(tool, err),
			Failed:  true,
		}, nil
	}

	return &models.AssistantResponse{
		Tool:    tool,
		Model:   resp.Model,
		Content: resp.Text,
	}, nil
}

func diagnose(tool models.AssistantTool, err error) string {
	var statusErr *llm.ErrStatus
	var rateErr *llm.ErrRateLimit

	switch {
	case errors.Is(err, llm.ErrNoModel):
		return "❌ No model selected. Please select a model first."
	case errors.Is(err, llm.ErrTimeout):
		return "❌ Request timed out. Try a simpler question or use a faster model."
	case errors.Is(err, llm.ErrNotConfigured):
		return "❌ " + notInitializedMessage
	case errors.As(err, &statusErr):
		return fmt.Sprintf("❌ %s error: %d - %s", statusErr.Provider, statusErr.Code, statusErr.Body)
	case errors.As(err, &rateErr):
		return "❌ Rate limit reached. Please wait a moment and try again."
	}

	label, ok := errorLabels[tool]
	if !ok {
		label = "Error"
	}
	return fmt.Sprintf("❌ %s: %v", label, err)
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
