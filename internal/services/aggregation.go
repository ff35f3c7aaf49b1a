package services

import (
	"slices"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
)

// DefaultCompletionThreshold is the completion percentage at which a topic counts as done
const DefaultCompletionThreshold = 80.0

// TotalHours sums the time spent over all records
func TotalHours(records []models.ProgressRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.TimeSpentHours
	}
	return total
}

// AverageConfidence returns the mean confidence level. ok is false when there are no records.
func AverageConfidence(records []models.ProgressRecord) (avg float64, ok bool) {
	if len(records) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range records {
		sum += r.ConfidenceLevel
	}
	return float64(sum) / float64(len(records)), true
}

// CompletedCount counts records whose completion is at least threshold
func CompletedCount(records []models.ProgressRecord, threshold float64) int {
	count := 0
	for _, r := range records {
		if r.CompletionPercentage >= threshold {
			count++
		}
	}
	return count
}

// WeeklyCompletionSeries averages completion per week, one point per week present, ascending
func WeeklyCompletionSeries(records []models.ProgressRecord) []models.SeriesPoint {
	return weeklyMean(records, func(r models.ProgressRecord) float64 { return r.CompletionPercentage })
}

// WeeklyConfidenceSeries averages confidence per week, one point per week present, ascending
func WeeklyConfidenceSeries(records []models.ProgressRecord) []models.SeriesPoint {
	return weeklyMean(records, func(r models.ProgressRecord) float64 { return float64(r.ConfidenceLevel) })
}

// DayStatus is complete when any record for (week, day) reaches the default threshold
func DayStatus(records []models.ProgressRecord, week, day int) models.DayStatus {
	for _, r := range records {
		if r.Week == week && r.Day == day && r.CompletionPercentage >= DefaultCompletionThreshold {
			return models.DayStatusComplete
		}
	}
	return models.DayStatusPending
}

func weeklyMean(records []models.ProgressRecord, value func(models.ProgressRecord) float64) []models.SeriesPoint {
	type acc struct {
		sum   float64
		count int
	}
	byWeek := map[int]*acc{}
	for _, r := range records {
		a, ok := byWeek[r.Week]
		if !ok {
			a = &acc{}
			byWeek[r.Week] = a
		}
		a.sum += value(r)
		a.count++
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	slices.Sort(weeks)

	series := make([]models.SeriesPoint, 0, len(weeks))
	for _, w := range weeks {
		a := byWeek[w]
		series = append(series, models.SeriesPoint{Week: w, Value: a.sum / float64(a.count)})
	}
	return series
}
