package handlers

import (
	"net/http"
	"strconv"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CurriculumCatalog is the read-only curriculum lookup
type CurriculumCatalog interface {
	WeekCount() int
	Weeks() []models.CurriculumWeek
	Week(number int) (models.CurriculumWeek, bool)
	ConceptsThrough(week int) []string
}

// CurriculumHandler handles HTTP requests for the curriculum
type CurriculumHandler struct {
	BaseHandler
	catalog CurriculumCatalog
}

// NewCurriculumHandler creates a new curriculum handler
func NewCurriculumHandler(catalog CurriculumCatalog, logger *zap.Logger) *CurriculumHandler {
	return &CurriculumHandler{
		BaseHandler: BaseHandler{logger: logger},
		catalog:     catalog,
	}
}

// RegisterRoutes registers all curriculum handler routes
func (h *CurriculumHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/curriculum", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/weeks/{week}", h.GetWeek)
	})
}

// GetAll handles GET /api/v1/curriculum
// @Summary Get the curriculum
// @Description Get all curriculum weeks with their days, technologies and key concepts
// @Tags curriculum
// @Produce json
// @Success 200 {array} models.CurriculumWeek
// @Router /api/v1/curriculum [get]
func (h *CurriculumHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Weeks())
}

// GetWeek handles GET /api/v1/curriculum/weeks/{week}
// @Summary Get a curriculum week
// @Tags curriculum
// @Produce json
// @Param week path int true "Week number"
// @Success 200 {object} models.CurriculumWeek
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/curriculum/weeks/{week} [get]
func (h *CurriculumHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid week number")
		return
	}

	week, ok := h.catalog.Week(number)
	if !ok {
		h.respondError(w, http.StatusNotFound, "week not found")
		return
	}

	h.respondJSON(w, http.StatusOK, week)
}
