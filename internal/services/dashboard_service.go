package services

import (
	"context"

	"github.com/cookiee01/data-engineering-learning-agent/internal/curriculum"
	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"go.uber.org/zap"
)

// ProgressLoader is the interface that wraps the bulk progress read used by the dashboard.
type ProgressLoader interface {
	LoadAll(ctx context.Context) ([]models.ProgressRecord, error)
}

type dashboardService struct {
	progress ProgressLoader
	catalog  *curriculum.Catalog
	logger   *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(progress ProgressLoader, catalog *curriculum.Catalog, logger *zap.Logger) *dashboardService {
	return &dashboardService{
		progress: progress,
		catalog:  catalog,
		logger:   logger,
	}
}

// Summary computes the dashboard over all stored progress.
//
// The returned summary is always usable. When progress cannot be loaded it is computed over
// an empty collection, Notice describes the problem and the load error is returned alongside.
func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	records, err := s.progress.LoadAll(ctx)
	summary := s.summarize(records)
	if err != nil {
		summary.Notice = "Could not load progress: " + err.Error()
	}
	return summary, err
}

func (s *dashboardService) summarize(records []models.ProgressRecord) *models.DashboardSummary {
	avg, ok := AverageConfidence(records)

	summary := &models.DashboardSummary{
		Stats: models.QuickStats{
			TotalHours:        TotalHours(records),
			AverageConfidence: avg,
			HasConfidence:     ok,
			CompletedTopics:   CompletedCount(records, DefaultCompletionThreshold),
			RecordCount:       len(records),
		},
		WeeklyCompletion: WeeklyCompletionSeries(records),
		WeeklyConfidence: WeeklyConfidenceSeries(records),
		Records:          records,
	}

	for _, week := range s.catalog.Weeks() {
		overview := models.WeekOverview{
			Number:       week.Number,
			Title:        week.Title,
			Technologies: week.Technologies,
			KeyConcepts:  week.KeyConcepts,
			Days:         make([]models.DayOverview, 0, len(week.Days)),
		}
		for _, day := range week.Days {
			overview.Days = append(overview.Days, models.DayOverview{
				Number:    day.Number,
				DayInWeek: day.DayInWeek,
				Topic:     day.Topic,
				Status:    DayStatus(records, week.Number, day.DayInWeek),
			})
		}
		summary.Weeks = append(summary.Weeks, overview)
	}

	return summary
}
