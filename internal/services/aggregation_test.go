package services

import (
	"testing"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/stretchr/testify/assert"
)

func rec(week, day int, completion float64, hours float64, confidence int) models.ProgressRecord {
	return models.ProgressRecord{
		Topic:                "topic",
		Week:                 week,
		Day:                  day,
		CompletionPercentage: completion,
		TimeSpentHours:       hours,
		ConfidenceLevel:      confidence,
	}
}

func TestTotalHours(t *testing.T) {
	assert.Equal(t, 0.0, TotalHours(nil))
	assert.InDelta(t, 6.5, TotalHours([]models.ProgressRecord{rec(1, 1, 0, 2, 5), rec(1, 2, 0, 4.5, 5)}), 1e-9)
}

func TestAverageConfidence(t *testing.T) {
	avg, ok := AverageConfidence(nil)
	assert.False(t, ok)
	assert.Equal(t, 0.0, avg)

	avg, ok = AverageConfidence([]models.ProgressRecord{rec(1, 1, 0, 0, 6), rec(1, 2, 0, 0, 9)})
	assert.True(t, ok)
	assert.Equal(t, 7.5, avg)
}

func TestCompletedCount(t *testing.T) {
	records := []models.ProgressRecord{rec(1, 1, 79, 0, 5), rec(1, 2, 80, 0, 5), rec(1, 3, 95, 0, 5)}

	assert.Equal(t, 2, CompletedCount(records, DefaultCompletionThreshold))
	assert.Equal(t, 1, CompletedCount(records, 90))
	assert.Equal(t, 0, CompletedCount(nil, DefaultCompletionThreshold))
}

func TestWeeklyCompletionSeries(t *testing.T) {
	tests := []struct {
		name     string
		records  []models.ProgressRecord
		expected []models.SeriesPoint
	}{
		{
			name:     "empty",
			records:  nil,
			expected: []models.SeriesPoint{},
		},
		{
			name:     "mean per week",
			records:  []models.ProgressRecord{rec(1, 1, 50, 0, 5), rec(1, 2, 100, 0, 5), rec(2, 1, 80, 0, 5)},
			expected: []models.SeriesPoint{{Week: 1, Value: 75}, {Week: 2, Value: 80}},
		},
		{
			name:     "ascending regardless of insertion order",
			records:  []models.ProgressRecord{rec(4, 1, 10, 0, 5), rec(2, 1, 20, 0, 5), rec(4, 2, 30, 0, 5)},
			expected: []models.SeriesPoint{{Week: 2, Value: 20}, {Week: 4, Value: 20}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeeklyCompletionSeries(tt.records))
		})
	}
}

func TestWeeklyConfidenceSeries(t *testing.T) {
	records := []models.ProgressRecord{rec(3, 1, 0, 0, 4), rec(1, 1, 0, 0, 8), rec(3, 2, 0, 0, 7)}

	assert.Equal(t, []models.SeriesPoint{{Week: 1, Value: 8}, {Week: 3, Value: 5.5}}, WeeklyConfidenceSeries(records))
}

func TestDayStatus(t *testing.T) {
	tests := []struct {
		name     string
		records  []models.ProgressRecord
		expected models.DayStatus
	}{
		{name: "no record", records: nil, expected: models.DayStatusPending},
		{name: "at threshold", records: []models.ProgressRecord{rec(2, 3, 80, 0, 5)}, expected: models.DayStatusComplete},
		{name: "below threshold", records: []models.ProgressRecord{rec(2, 3, 79, 0, 5)}, expected: models.DayStatusPending},
		{name: "other slot only", records: []models.ProgressRecord{rec(2, 4, 100, 0, 5), rec(3, 3, 100, 0, 5)}, expected: models.DayStatusPending},
		{name: "any matching record", records: []models.ProgressRecord{rec(2, 3, 10, 0, 5), rec(2, 3, 90, 0, 5)}, expected: models.DayStatusComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayStatus(tt.records, 2, 3))
		})
	}
}
