package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/cookiee01/data-engineering-learning-agent/internal/services"
	"github.com/cookiee01/data-engineering-learning-agent/internal/web"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PageRenderer renders a named HTML page
type PageRenderer interface {
	Render(w io.Writer, name string, page web.Page) error
}

// PagesHandler serves the HTML learning UI
type PagesHandler struct {
	BaseHandler
	progress  ProgressService
	dashboard DashboardService
	assistant AssistantService
	catalog   CurriculumCatalog
	renderer  PageRenderer
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(
	progress ProgressService,
	dashboard DashboardService,
	assistant AssistantService,
	catalog CurriculumCatalog,
	renderer PageRenderer,
	logger *zap.Logger,
) *PagesHandler {
	return &PagesHandler{
		BaseHandler: BaseHandler{logger: logger},
		progress:    progress,
		dashboard:   dashboard,
		assistant:   assistant,
		catalog:     catalog,
		renderer:    renderer,
	}
}

// RegisterRoutes registers all page routes
func (h *PagesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Dashboard)
	r.Post("/progress/log", h.LogProgress)

	r.Get("/analysis", h.Analysis)
	r.Post("/analysis", h.Analysis)
	r.Get("/code-review", h.CodeReview)
	r.Post("/code-review", h.CodeReview)
	r.Get("/practice", h.Practice)
	r.Post("/practice", h.Practice)
	r.Get("/concepts", h.Concepts)
	r.Post("/concepts", h.Concepts)
	r.Get("/skills", h.Skills)
	r.Post("/skills", h.Skills)
	r.Get("/interview", h.Interview)
	r.Post("/interview", h.Interview)

	r.Post("/model", h.SelectModel)
	r.Post("/refresh", h.Refresh)
	r.Get("/healthz", h.Health)
}

// Dashboard handles GET /
func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		h.logger.Warn("dashboard rendered without progress", zap.Error(err))
	}

	page := h.page("Progress Dashboard", "/")
	page.Stats = summary.Stats
	page.Notice = summary.Notice
	if msg := r.URL.Query().Get("error"); msg != "" {
		page.Notice = "Progress not saved: " + msg
	}
	if r.URL.Query().Get("saved") != "" {
		page.Flash = "✅ Progress saved!"
	}
	page.Data = web.DashboardView{Summary: summary, Topics: h.topics()}

	h.render(w, http.StatusOK, web.PageDashboard, page)
}

// LogProgress handles POST /progress/log and redirects back to the dashboard
func (h *PagesHandler) LogProgress(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "invalid form")
		return
	}

	record := models.ProgressRecord{
		Topic:                r.PostForm.Get("topic"),
		Week:                 formInt(r, "week", 0),
		Day:                  formInt(r, "day", 0),
		CompletionPercentage: formFloat(r, "completion_percentage", 0),
		TimeSpentHours:       formFloat(r, "time_spent_hours", 0),
		ConfidenceLevel:      formInt(r, "confidence_level", 0),
		Notes:                r.PostForm.Get("notes"),
	}

	if _, err := h.progress.Save(r.Context(), record); err != nil {
		redirectWithError(w, r, err.Error())
		return
	}

	http.Redirect(w, r, "/?saved=1", http.StatusSeeOther)
}

// Analysis handles GET and POST /analysis
func (h *PagesHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	view := web.AnalysisView{
		Weeks: h.catalog.Weeks(),
		Form:  models.AnalysisRequest{Week: 1, Day: 1},
	}
	status := http.StatusOK

	if r.Method == http.MethodPost && h.parseForm(w, r) {
		view.Form = models.AnalysisRequest{
			Week:     formInt(r, "week", 0),
			Day:      formInt(r, "day", 0),
			Question: r.PostForm.Get("question"),
		}
		resp, err := h.assistant.Analyze(r.Context(), view.Form)
		status = setResult(&view.ToolResult, resp, err)
	}

	h.renderTool(w, r, status, web.PageAnalysis, "🎯 Learning Analysis", "/analysis", view)
}

// CodeReview handles GET and POST /code-review
func (h *PagesHandler) CodeReview(w http.ResponseWriter, r *http.Request) {
	view := web.CodeReviewView{
		Technologies: models.CodeTechnologies,
		Form:         models.CodeReviewRequest{Technology: models.CodeTechnologies[0]},
	}
	status := http.StatusOK

	if r.Method == http.MethodPost && h.parseForm(w, r) {
		view.Form = models.CodeReviewRequest{
			Technology: r.PostForm.Get("technology"),
			Code:       r.PostForm.Get("code"),
			Context:    r.PostForm.Get("context"),
		}
		resp, err := h.assistant.ReviewCode(r.Context(), view.Form)
		status = setResult(&view.ToolResult, resp, err)
	}

	h.renderTool(w, r, status, web.PageCodeReview, "💻 Code Review", "/code-review", view)
}

// Practice handles GET and POST /practice
func (h *PagesHandler) Practice(w http.ResponseWriter, r *http.Request) {
	view := web.PracticeView{
		Weeks:       h.catalog.Weeks(),
		SkillLevels: models.SkillLevels,
		TimeBudgets: models.TimeBudgets,
		Form:        models.PracticeRequest{Week: 1, SkillLevel: "Intermediate", TimeAvailable: "1 hour"},
	}
	status := http.StatusOK

	if r.Method == http.MethodPost && h.parseForm(w, r) {
		view.Form = models.PracticeRequest{
			Week:          formInt(r, "week", 0),
			SkillLevel:    r.PostForm.Get("skill_level"),
			TimeAvailable: r.PostForm.Get("time_available"),
			FocusArea:     r.PostForm.Get("focus_area"),
		}
		resp, err := h.assistant.GeneratePractice(r.Context(), view.Form)
		status = setResult(&view.ToolResult, resp, err)
	}

	h.renderTool(w, r, status, web.PagePractice, "🛠 Practice Scenarios", "/practice", view)
}

// Concepts handles GET and POST /concepts
func (h *PagesHandler) Concepts(w http.ResponseWriter, r *http.Request) {
	view := web.ConceptView{
		Concepts: h.catalog.ConceptsThrough(h.catalog.WeekCount()),
		Levels:   models.ConceptLevels,
		Styles:   models.LearningStyles,
		Form:     models.ConceptRequest{CurrentLevel: "Some familiarity", LearningStyle: "Real-world examples"},
	}
	status := http.StatusOK

	if r.Method == http.MethodPost && h.parseForm(w, r) {
		view.Form = models.ConceptRequest{
			Concept:       r.PostForm.Get("concept"),
			CurrentLevel:  r.PostForm.Get("current_level"),
			LearningStyle: r.PostForm.Get("learning_style"),
		}
		resp, err := h.assistant.ExplainConcept(r.Context(), view.Form)
		status = setResult(&view.ToolResult, resp, err)
	}

	h.renderTool(w, r, status, web.PageConcepts, "📚 Concept Explanations", "/concepts", view)
}

// Skills handles GET and POST /skills. GET ?week=N shows the sliders of week N
func (h *PagesHandler) Skills(w http.ResponseWriter, r *http.Request) {
	weekNumber := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("week")); err == nil {
		weekNumber = v
	}
	status := http.StatusOK

	var req models.SkillsRequest
	posted := r.Method == http.MethodPost && h.parseForm(w, r)
	if posted {
		req = skillsFromForm(r)
		weekNumber = req.Week
	}

	week, ok := h.catalog.Week(weekNumber)
	if !ok {
		week, _ = h.catalog.Week(1)
	}
	view := web.SkillsView{
		Weeks:  h.catalog.Weeks(),
		Week:   week,
		Skills: defaultScores(week),
	}

	if posted {
		view.Skills = req.Scores
		resp, err := h.assistant.AssessSkills(r.Context(), req)
		status = setResult(&view.ToolResult, resp, err)
	}

	h.renderTool(w, r, status, web.PageSkills, "📈 Skills Assessment", "/skills", view)
}

// Interview handles GET and POST /interview
func (h *PagesHandler) Interview(w http.ResponseWriter, r *http.Request) {
	view := web.InterviewView{
		WeekCount:  h.catalog.WeekCount(),
		FocusAreas: models.InterviewFocusAreas,
		Form:       models.InterviewRequest{CompletedWeeks: 1, Focus: models.InterviewFocusAreas[0]},
	}
	status := http.StatusOK

	if r.Method == http.MethodPost && h.parseForm(w, r) {
		view.Form = models.InterviewRequest{
			CompletedWeeks: formInt(r, "completed_weeks", 0),
			Focus:          r.PostForm.Get("focus"),
			TargetRole:     r.PostForm.Get("target_role"),
		}
		resp, err := h.assistant.GenerateInterviewQuestions(r.Context(), view.Form)
		status = setResult(&view.ToolResult, resp, err)
	}

	h.renderTool(w, r, status, web.PageInterview, "🎤 Interview Prep", "/interview", view)
}

// SelectModel handles POST /model
func (h *PagesHandler) SelectModel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err == nil {
		if _, err := h.assistant.SelectModel(r.PostForm.Get("model")); err != nil {
			h.logger.Warn("model selection rejected", zap.Error(err))
		}
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// Refresh handles POST /refresh
func (h *PagesHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("invalid refresh form", zap.Error(err))
	}
	// the sidebar shows the outcome through the status message
	if _, err := h.assistant.Refresh(r.Context()); err != nil {
		h.logger.Warn("model service refresh failed", zap.Error(err))
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// Health handles GET /healthz
func (h *PagesHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"assistant": h.assistant.Status().Ready,
	})
}

func (h *PagesHandler) page(title, path string) web.Page {
	return web.Page{
		Title:  title,
		Path:   path,
		Status: h.assistant.Status(),
	}
}

func (h *PagesHandler) renderTool(w http.ResponseWriter, r *http.Request, status int, name, title, path string, view any) {
	page := h.page(title, path)
	if summary, err := h.dashboard.Summary(r.Context()); err == nil {
		page.Stats = summary.Stats
	}
	page.Data = view
	h.render(w, status, name, page)
}

func (h *PagesHandler) render(w http.ResponseWriter, status int, name string, page web.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, page); err != nil {
		h.logger.Error("failed to render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// parseForm reports whether the posted form could be read
func (h *PagesHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("invalid form submission", zap.String("path", r.URL.Path), zap.Error(err))
		return false
	}
	return true
}

func (h *PagesHandler) topics() []string {
	var topics []string
	for _, week := range h.catalog.Weeks() {
		for _, day := range week.Days {
			topics = append(topics, day.Topic)
		}
	}
	return topics
}

func setResult(t *web.ToolResult, resp *models.AssistantResponse, err error) int {
	if err != nil {
		t.Error = err.Error()
		if errors.Is(err, services.ErrMissingInput) || errors.Is(err, services.ErrInvalidInput) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
	t.Result = resp
	return http.StatusOK
}

func skillsFromForm(r *http.Request) models.SkillsRequest {
	req := models.SkillsRequest{Week: formInt(r, "week", 0)}
	names := r.PostForm["skill"]
	scores := r.PostForm["score"]
	for i, name := range names {
		score := 0
		if i < len(scores) {
			score, _ = strconv.Atoi(scores[i])
		}
		req.Scores = append(req.Scores, models.SkillScore{Skill: name, Score: score})
	}
	return req
}

func defaultScores(week models.CurriculumWeek) []models.SkillScore {
	var scores []models.SkillScore
	for _, skill := range append(append([]string{}, week.Technologies...), week.KeyConcepts...) {
		scores = append(scores, models.SkillScore{Skill: skill, Score: 5})
	}
	return scores
}

func formInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.PostForm.Get(name)))
	if err != nil {
		return fallback
	}
	return v
}

func formFloat(r *http.Request, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.PostForm.Get(name)), 64)
	if err != nil {
		return fallback
	}
	return v
}

func redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

// returnPath is the local page to go back to after a sidebar action
func returnPath(r *http.Request) string {
	p := r.PostForm.Get("return")
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "/"
	}
	return p
}
