package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for progress tracking business logic.
type ProgressService interface {
	// Method Save validates the record and stores it, replacing a record with the same (topic, week, day).
	//
	// Validation failures wrap models.ErrInvalidProgress. The stored record is returned.
	Save(ctx context.Context, record models.ProgressRecord) (models.ProgressRecord, error)
	// Method LoadAll returns all records in insertion order.
	//
	// The slice is never nil. On failure it is empty and the error describes why.
	LoadAll(ctx context.Context) ([]models.ProgressRecord, error)
}

// DashboardService is the interface that wraps the dashboard aggregation.
type DashboardService interface {
	// Method Summary computes quick stats, weekly series and day statuses.
	//
	// The summary is always usable; when progress could not be loaded its Notice is set and the error is returned too.
	Summary(ctx context.Context) (*models.DashboardSummary, error)
}

// ProgressListResponse mirrors the stored document, plus a notice when the store could not be read
type ProgressListResponse struct {
	Progress []models.ProgressRecord `json:"progress"`
	Notice   string                  `json:"notice,omitempty"`
}

// ProgressHandler handles HTTP requests for progress records
type ProgressHandler struct {
	BaseHandler
	progress  ProgressService
	dashboard DashboardService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress ProgressService, dashboard DashboardService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler: BaseHandler{logger: logger},
		progress:    progress,
		dashboard:   dashboard,
	}
}

// RegisterRoutes registers all progress handler routes
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/progress", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Save)
		r.Get("/summary", h.Summary)
	})
}

// GetAll handles GET /api/v1/progress
// @Summary List progress records
// @Description Get every logged progress record in insertion order. An unreadable store yields an empty list with a notice.
// @Tags progress
// @Produce json
// @Success 200 {object} ProgressListResponse
// @Router /api/v1/progress [get]
func (h *ProgressHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.progress.LoadAll(r.Context())
	resp := ProgressListResponse{Progress: records}
	if err != nil {
		resp.Notice = err.Error()
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Save handles POST /api/v1/progress
// @Summary Log progress
// @Description Save a progress record. A record with the same topic, week and day is replaced in place.
// @Tags progress
// @Accept json
// @Produce json
// @Param record body models.ProgressRecord true "Progress record, day is the day of the week (1-7)"
// @Success 200 {object} models.ProgressRecord
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/progress [post]
func (h *ProgressHandler) Save(w http.ResponseWriter, r *http.Request) {
	var record models.ProgressRecord
	if err := h.decodeJSON(r, &record); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.progress.Save(r.Context(), record)
	if err != nil {
		if errors.Is(err, models.ErrInvalidProgress) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to save progress", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, saved)
}

// Summary handles GET /api/v1/progress/summary
// @Summary Dashboard summary
// @Description Quick stats, weekly completion and confidence series and the curriculum overview with day statuses
// @Tags progress
// @Produce json
// @Success 200 {object} models.DashboardSummary
// @Router /api/v1/progress/summary [get]
func (h *ProgressHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		h.logger.Warn("dashboard computed without progress", zap.Error(err))
	}

	h.respondJSON(w, http.StatusOK, summary)
}
