package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cookiee01/data-engineering-learning-agent/internal/llm"
	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/cookiee01/data-engineering-learning-agent/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AssistantService is the interface that wraps methods for the AI assisted tools.
//
// Every tool method returns an error only for invalid input (services.ErrMissingInput, services.ErrInvalidInput).
// A failing model call still yields a response whose Failed flag is set and whose Content holds the diagnostic.
type AssistantService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AssistantResponse, error)
	ReviewCode(ctx context.Context, req models.CodeReviewRequest) (*models.AssistantResponse, error)
	GeneratePractice(ctx context.Context, req models.PracticeRequest) (*models.AssistantResponse, error)
	ExplainConcept(ctx context.Context, req models.ConceptRequest) (*models.AssistantResponse, error)
	AssessSkills(ctx context.Context, req models.SkillsRequest) (*models.AssistantResponse, error)
	GenerateInterviewQuestions(ctx context.Context, req models.InterviewRequest) (*models.AssistantResponse, error)
	// Method Status describes the configured model collaborator.
	Status() models.AssistantStatus
	// Method Refresh re-lists local models. The status after the refresh is returned even on failure.
	Refresh(ctx context.Context) (models.AssistantStatus, error)
	// Method SelectModel makes the named local model the general model.
	SelectModel(name string) (models.AssistantStatus, error)
}

// SelectModelRequest represents a model selection request
type SelectModelRequest struct {
	Model string `json:"model"`
}

// AssistantHandler handles HTTP requests for the AI assisted tools
type AssistantHandler struct {
	BaseHandler
	service AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(svc AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all assistant handler routes
func (h *AssistantHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/assistant", func(r chi.Router) {
		r.Get("/status", h.GetStatus)
		r.Post("/refresh", h.Refresh)
		r.Put("/model", h.SelectModel)
		r.Post("/{tool}", h.RunTool)
	})
}

// GetStatus handles GET /api/v1/assistant/status
// @Summary Assistant status
// @Description Get the configured provider, whether it is ready and the local models when model selection is available
// @Tags assistant
// @Produce json
// @Success 200 {object} models.AssistantStatus
// @Router /api/v1/assistant/status [get]
func (h *AssistantHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Status())
}

// Refresh handles POST /api/v1/assistant/refresh
// @Summary Check the local model service
// @Description List the models installed in the local model service and resolve the general and code models again
// @Tags assistant
// @Produce json
// @Success 200 {object} models.AssistantStatus
// @Failure 502 {object} map[string]string
// @Router /api/v1/assistant/refresh [post]
func (h *AssistantHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Refresh(r.Context())
	if err != nil {
		h.respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, status)
}

// SelectModel handles PUT /api/v1/assistant/model
// @Summary Select a local model
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body SelectModelRequest true "Model name as listed by the status endpoint"
// @Success 200 {object} models.AssistantStatus
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/assistant/model [put]
func (h *AssistantHandler) SelectModel(w http.ResponseWriter, r *http.Request) {
	var req SelectModelRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Model == "" {
		h.respondError(w, http.StatusBadRequest, "model is required")
		return
	}

	status, err := h.service.SelectModel(req.Model)
	if err != nil {
		h.respondError(w, selectionErrorStatus(err), err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, status)
}

// RunTool handles POST /api/v1/assistant/{tool}
// @Summary Run an assistant tool
// @Description Run one of the tools: analysis, code-review, practice, concept, skills, interview. The body is the matching request type. Model failures are reported in the response content with failed set to true.
// @Tags assistant
// @Accept json
// @Produce json
// @Param tool path string true "Tool name"
// @Success 200 {object} models.AssistantResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/assistant/{tool} [post]
func (h *AssistantHandler) RunTool(w http.ResponseWriter, r *http.Request) {
	tool := models.AssistantTool(chi.URLParam(r, "tool"))
	ctx := r.Context()

	var (
		resp *models.AssistantResponse
		err  error
	)
	switch tool {
	case models.ToolAnalysis:
		var req models.AnalysisRequest
		if err = h.decodeJSON(r, &req); err == nil {
			resp, err = h.service.Analyze(ctx, req)
		}
	case models.ToolCodeReview:
		var req models.CodeReviewRequest
		if err = h.decodeJSON(r, &req); err == nil {
			resp, err = h.service.ReviewCode(ctx, req)
		}
	case models.ToolPractice:
		var req models.PracticeRequest
		if err = h.decodeJSON(r, &req); err == nil {
			resp, err = h.service.GeneratePractice(ctx, req)
		}
	case models.ToolConcept:
		var req models.ConceptRequest
		if err = h.decodeJSON(r, &req); err == nil {
			resp, err = h.service.ExplainConcept(ctx, req)
		}
	case models.ToolSkills:
		var req models.SkillsRequest
		if err = h.decodeJSON(r, &req); err == nil {
			resp, err = h.service.AssessSkills(ctx, req)
		}
	case models.ToolInterview:
		var req models.InterviewRequest
		if err = h.decodeJSON(r, &req); err == nil {
			resp, err = h.service.GenerateInterviewQuestions(ctx, req)
		}
	default:
		h.respondError(w, http.StatusNotFound, "unknown tool")
		return
	}

	if err != nil {
		if errors.Is(err, errInvalidBody) {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if errors.Is(err, services.ErrMissingInput) || errors.Is(err, services.ErrInvalidInput) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("assistant tool failed", zap.String("tool", string(tool)), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to run tool")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func selectionErrorStatus(err error) int {
	switch {
	case errors.Is(err, llm.ErrUnknownModel):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotSelectable):
		return http.StatusConflict
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
