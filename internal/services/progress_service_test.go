package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockProgressRepository is a mock implementation of ProgressRepository
type mockProgressRepository struct {
	records []models.ProgressRecord
	upserts []models.ProgressRecord
	err     error
}

func (m *mockProgressRepository) Upsert(ctx context.Context, record models.ProgressRecord) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, record)
	return nil
}

func (m *mockProgressRepository) GetAll(ctx context.Context) ([]models.ProgressRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func validRecord() models.ProgressRecord {
	return models.ProgressRecord{
		Topic:                "Spark Architecture",
		Week:                 1,
		Day:                  3,
		CompletionPercentage: 80,
		TimeSpentHours:       2.5,
		ConfidenceLevel:      7,
	}
}

func TestNewProgressService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := &mockProgressRepository{}

	svc := NewProgressService(repo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, repo, svc.repo)
	assert.Equal(t, logger, svc.logger)
}

func TestProgressService_Save(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		record        func() models.ProgressRecord
		mockRepo      *mockProgressRepository
		expectedError bool
		validate      func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository)
	}{
		{
			name:     "success stamps last updated",
			record:   validRecord,
			mockRepo: &mockProgressRepository{},
			validate: func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository) {
				assert.Equal(t, "2024-03-01T09:30:00Z", saved.LastUpdated)
				require.Len(t, repo.upserts, 1)
				assert.Equal(t, saved, repo.upserts[0])
			},
		},
		{
			name: "keeps provided timestamp and trims text",
			record: func() models.ProgressRecord {
				r := validRecord()
				r.Topic = "  Spark Architecture  "
				r.Notes = " read the docs \n"
				r.LastUpdated = "2024-01-01T00:00:00Z"
				return r
			},
			mockRepo: &mockProgressRepository{},
			validate: func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository) {
				assert.Equal(t, "Spark Architecture", saved.Topic)
				assert.Equal(t, "read the docs", saved.Notes)
				assert.Equal(t, "2024-01-01T00:00:00Z", saved.LastUpdated)
			},
		},
		{
			name: "blank topic is rejected",
			record: func() models.ProgressRecord {
				r := validRecord()
				r.Topic = "   "
				return r
			},
			mockRepo:      &mockProgressRepository{},
			expectedError: true,
			validate: func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository) {
				assert.Empty(t, repo.upserts)
			},
		},
		{
			name: "confidence out of range",
			record: func() models.ProgressRecord {
				r := validRecord()
				r.ConfidenceLevel = 11
				return r
			},
			mockRepo:      &mockProgressRepository{},
			expectedError: true,
		},
		{
			name: "NaN completion is rejected",
			record: func() models.ProgressRecord {
				r := validRecord()
				r.CompletionPercentage = math.NaN()
				return r
			},
			mockRepo:      &mockProgressRepository{},
			expectedError: true,
			validate: func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository) {
				assert.Empty(t, repo.upserts)
			},
		},
		{
			name: "infinite hours are rejected",
			record: func() models.ProgressRecord {
				r := validRecord()
				r.TimeSpentHours = math.Inf(1)
				return r
			},
			mockRepo:      &mockProgressRepository{},
			expectedError: true,
			validate: func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository) {
				assert.Empty(t, repo.upserts)
			},
		},
		{
			name: "topic longer than the limit is rejected",
			record: func() models.ProgressRecord {
				r := validRecord()
				r.Topic = strings.Repeat("x", models.MaxTopicLength+1)
				return r
			},
			mockRepo:      &mockProgressRepository{},
			expectedError: true,
			validate: func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository) {
				assert.Empty(t, repo.upserts)
			},
		},
		{
			name: "topic limit applies after trimming",
			record: func() models.ProgressRecord {
				r := validRecord()
				r.Topic = "  " + strings.Repeat("x", models.MaxTopicLength) + "  "
				return r
			},
			mockRepo: &mockProgressRepository{},
			validate: func(t *testing.T, saved models.ProgressRecord, repo *mockProgressRepository) {
				assert.Len(t, saved.Topic, models.MaxTopicLength)
				require.Len(t, repo.upserts, 1)
			},
		},
		{
			name:          "repository error",
			record:        validRecord,
			mockRepo:      &mockProgressRepository{err: errors.New("disk full")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProgressService(tt.mockRepo, logger)
			svc.now = func() time.Time { return fixed }

			saved, err := svc.Save(context.Background(), tt.record())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, models.ProgressRecord{}, saved)
			} else {
				require.NoError(t, err)
			}
			if tt.validate != nil {
				tt.validate(t, saved, tt.mockRepo)
			}
		})
	}
}

func TestProgressService_Save_ValidationErrorIsTyped(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := NewProgressService(&mockProgressRepository{}, logger)

	tests := []struct {
		name   string
		modify func(*models.ProgressRecord)
	}{
		{name: "week out of range", modify: func(r *models.ProgressRecord) { r.Week = 7 }},
		{name: "NaN completion", modify: func(r *models.ProgressRecord) { r.CompletionPercentage = math.NaN() }},
		{name: "infinite hours", modify: func(r *models.ProgressRecord) { r.TimeSpentHours = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.modify(&r)

			_, err := svc.Save(context.Background(), r)

			assert.ErrorIs(t, err, models.ErrInvalidProgress)
		})
	}
}

func TestProgressService_LoadAll(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		mockRepo      *mockProgressRepository
		expectedLen   int
		expectedError bool
	}{
		{
			name:        "records in insertion order",
			mockRepo:    &mockProgressRepository{records: []models.ProgressRecord{validRecord(), {Topic: "Delta Lake", Week: 2, Day: 1}}},
			expectedLen: 2,
		},
		{
			name:        "nil from repository becomes empty",
			mockRepo:    &mockProgressRepository{},
			expectedLen: 0,
		},
		{
			name:          "repository error degrades to empty",
			mockRepo:      &mockProgressRepository{err: errors.New("malformed")},
			expectedLen:   0,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProgressService(tt.mockRepo, logger)

			records, err := svc.LoadAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NotNil(t, records)
			assert.Len(t, records, tt.expectedLen)
		})
	}
}
