package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrInvalidProgress is returned when a progress record fails validation
var ErrInvalidProgress = errors.New("invalid progress record")

// MaxTopicLength is the longest topic accepted, in characters. It matches the progress_records.topic column.
const MaxTopicLength = 255

// ProgressRecord represents one self-reported study entry
//
// Field names are the persisted JSON keys of the progress document, so they must not change.
// Day is the day within the week (1-7), not the global curriculum day.
type ProgressRecord struct {
	Topic                string  `json:"topic"`
	Week                 int     `json:"week"`
	Day                  int     `json:"day"`
	CompletionPercentage float64 `json:"completion_percentage"` // 0-100
	TimeSpentHours       float64 `json:"time_spent_hours"`
	ConfidenceLevel      int     `json:"confidence_level"` // 1-10
	LastUpdated          string  `json:"last_updated"`     // ISO-8601
	Notes                string  `json:"notes"`
}

// ProgressKey identifies a progress record
type ProgressKey struct {
	Topic string
	Week  int
	Day   int
}

// Key returns the identity triple of the record
func (r ProgressRecord) Key() ProgressKey {
	return ProgressKey{Topic: r.Topic, Week: r.Week, Day: r.Day}
}

// Validate checks the record fields against their allowed ranges
func (r ProgressRecord) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidProgress)
	}
	if n := utf8.RuneCountInString(r.Topic); n > MaxTopicLength {
		return fmt.Errorf("%w: topic must be at most %d characters, got %d", ErrInvalidProgress, MaxTopicLength, n)
	}
	if r.Week < 1 || r.Week > 6 {
		return fmt.Errorf("%w: week must be between 1 and 6, got %d", ErrInvalidProgress, r.Week)
	}
	if r.Day < 1 || r.Day > 7 {
		return fmt.Errorf("%w: day must be between 1 and 7, got %d", ErrInvalidProgress, r.Day)
	}
	if !isFinite(r.CompletionPercentage) || r.CompletionPercentage < 0 || r.CompletionPercentage > 100 {
		return fmt.Errorf("%w: completion percentage must be between 0 and 100", ErrInvalidProgress)
	}
	if !isFinite(r.TimeSpentHours) {
		return fmt.Errorf("%w: time spent must be a finite number", ErrInvalidProgress)
	}
	if r.TimeSpentHours < 0 {
		return fmt.Errorf("%w: time spent cannot be negative", ErrInvalidProgress)
	}
	if r.ConfidenceLevel < 1 || r.ConfidenceLevel > 10 {
		return fmt.Errorf("%w: confidence level must be between 1 and 10, got %d", ErrInvalidProgress, r.ConfidenceLevel)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ProgressDocument is the on-disk shape of the JSON progress store
type ProgressDocument struct {
	Progress []ProgressRecord `json:"progress"`
}
