package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"go.uber.org/zap"
)

// ProgressRepository is the interface that wraps methods for progress record storage.
type ProgressRepository interface {
	// Method Upsert stores the record, replacing an existing record with the same (topic, week, day) in place.
	//
	// Any failure (I/O, malformed existing content) is returned and nothing is written.
	Upsert(ctx context.Context, record models.ProgressRecord) error
	// Method GetAll returns all records in insertion order.
	//
	// A store that does not exist yet yields an empty slice and no error.
	GetAll(ctx context.Context) ([]models.ProgressRecord, error)
}

type progressService struct {
	repo   ProgressRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(repo ProgressRepository, logger *zap.Logger) *progressService {
	return &progressService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Save validates and stores a progress record.
//
// Topic and notes are trimmed. LastUpdated is stamped with the current time when empty.
// The stored record is returned.
func (s *progressService) Save(ctx context.Context, record models.ProgressRecord) (models.ProgressRecord, error) {
	record.Topic = strings.TrimSpace(record.Topic)
	record.Notes = strings.TrimSpace(record.Notes)

	if err := record.Validate(); err != nil {
		return models.ProgressRecord{}, err
	}
	if record.LastUpdated == "" {
		record.LastUpdated = s.now().Format(time.RFC3339)
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		s.logger.Error("progress not saved",
			zap.String("topic", record.Topic),
			zap.Int("week", record.Week),
			zap.Int("day", record.Day),
			zap.Error(err),
		)
		return models.ProgressRecord{}, fmt.Errorf("progress not saved: %w", err)
	}

	return record, nil
}

// LoadAll returns every stored record.
//
// The returned slice is never nil: on failure it is empty and the error describes why.
func (s *progressService) LoadAll(ctx context.Context) ([]models.ProgressRecord, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Warn("progress unavailable, continuing with no records", zap.Error(err))
		return []models.ProgressRecord{}, fmt.Errorf("progress could not be loaded: %w", err)
	}
	if records == nil {
		records = []models.ProgressRecord{}
	}
	return records, nil
}
