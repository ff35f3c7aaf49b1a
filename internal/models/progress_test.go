package models

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecord() ProgressRecord {
	return ProgressRecord{
		Topic:                "Delta Lake Fundamentals",
		Week:                 1,
		Day:                  3,
		CompletionPercentage: 80,
		TimeSpentHours:       2.5,
		ConfidenceLevel:      7,
	}
}

func TestProgressRecord_Validate(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(*ProgressRecord)
		expectedError bool
	}{
		{name: "valid record", modify: func(r *ProgressRecord) {}},
		{name: "empty topic", modify: func(r *ProgressRecord) { r.Topic = "  " }, expectedError: true},
		{name: "week zero", modify: func(r *ProgressRecord) { r.Week = 0 }, expectedError: true},
		{name: "week seven", modify: func(r *ProgressRecord) { r.Week = 7 }, expectedError: true},
		{name: "day zero", modify: func(r *ProgressRecord) { r.Day = 0 }, expectedError: true},
		{name: "global day rejected", modify: func(r *ProgressRecord) { r.Day = 15 }, expectedError: true},
		{name: "completion above 100", modify: func(r *ProgressRecord) { r.CompletionPercentage = 100.5 }, expectedError: true},
		{name: "completion negative", modify: func(r *ProgressRecord) { r.CompletionPercentage = -1 }, expectedError: true},
		{name: "completion bounds", modify: func(r *ProgressRecord) { r.CompletionPercentage = 100 }},
		{name: "negative hours", modify: func(r *ProgressRecord) { r.TimeSpentHours = -0.5 }, expectedError: true},
		{name: "zero hours", modify: func(r *ProgressRecord) { r.TimeSpentHours = 0 }},
		{name: "confidence zero", modify: func(r *ProgressRecord) { r.ConfidenceLevel = 0 }, expectedError: true},
		{name: "confidence eleven", modify: func(r *ProgressRecord) { r.ConfidenceLevel = 11 }, expectedError: true},
		{name: "confidence ten", modify: func(r *ProgressRecord) { r.ConfidenceLevel = 10 }},
		{name: "completion NaN", modify: func(r *ProgressRecord) { r.CompletionPercentage = math.NaN() }, expectedError: true},
		{name: "completion infinite", modify: func(r *ProgressRecord) { r.CompletionPercentage = math.Inf(1) }, expectedError: true},
		{name: "hours NaN", modify: func(r *ProgressRecord) { r.TimeSpentHours = math.NaN() }, expectedError: true},
		{name: "hours infinite", modify: func(r *ProgressRecord) { r.TimeSpentHours = math.Inf(1) }, expectedError: true},
		{name: "topic at length limit", modify: func(r *ProgressRecord) { r.Topic = strings.Repeat("é", MaxTopicLength) }},
		{name: "topic over length limit", modify: func(r *ProgressRecord) { r.Topic = strings.Repeat("a", MaxTopicLength+1) }, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.modify(&record)

			err := record.Validate()

			if tt.expectedError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidProgress)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProgressRecord_Key(t *testing.T) {
	record := validRecord()
	record.Notes = "different notes do not change identity"

	assert.Equal(t, ProgressKey{Topic: "Delta Lake Fundamentals", Week: 1, Day: 3}, record.Key())
	assert.Equal(t, validRecord().Key(), record.Key())
}
