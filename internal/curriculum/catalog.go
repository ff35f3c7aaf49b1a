// Package curriculum holds the immutable study plan the assistant is built around.
package curriculum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
)

// DaysPerWeek is the number of study days in every curriculum week
const DaysPerWeek = 7

// Catalog is a read-only view of the curriculum
//
// A Catalog is built once at start-up and shared; every accessor returns copies.
type Catalog struct {
	weeks []models.CurriculumWeek
}

// New validates the given weeks and builds a Catalog from them.
//
// Weeks must be numbered 1..N in order, each must have exactly DaysPerWeek days,
// and global day numbers must run contiguously from 1 without gaps or overlaps.
func New(weeks []models.CurriculumWeek) (*Catalog, error) {
	if len(weeks) == 0 {
		return nil, fmt.Errorf("curriculum must contain at least one week")
	}

	expectedDay := 1
	for i, week := range weeks {
		if week.Number != i+1 {
			return nil, fmt.Errorf("week %d is out of order: expected number %d", week.Number, i+1)
		}
		if strings.TrimSpace(week.Title) == "" {
			return nil, fmt.Errorf("week %d has no title", week.Number)
		}
		if len(week.Days) != DaysPerWeek {
			return nil, fmt.Errorf("week %d has %d days, expected %d", week.Number, len(week.Days), DaysPerWeek)
		}
		for j, day := range week.Days {
			if day.Number != expectedDay {
				return nil, fmt.Errorf("week %d: day %d breaks numbering, expected day %d", week.Number, day.Number, expectedDay)
			}
			if day.DayInWeek != 0 && day.DayInWeek != j+1 {
				return nil, fmt.Errorf("week %d: day %d has day-in-week %d, expected %d", week.Number, day.Number, day.DayInWeek, j+1)
			}
			if strings.TrimSpace(day.Topic) == "" {
				return nil, fmt.Errorf("week %d: day %d has no topic", week.Number, day.Number)
			}
			expectedDay++
		}
	}

	c := &Catalog{weeks: make([]models.CurriculumWeek, len(weeks))}
	for i, week := range weeks {
		w := copyWeek(week)
		for j := range w.Days {
			w.Days[j].DayInWeek = j + 1
		}
		c.weeks[i] = w
	}
	return c, nil
}

// WeekCount returns the number of weeks in the catalog
func (c *Catalog) WeekCount() int {
	return len(c.weeks)
}

// Weeks returns all weeks in order
func (c *Catalog) Weeks() []models.CurriculumWeek {
	out := make([]models.CurriculumWeek, len(c.weeks))
	for i, w := range c.weeks {
		out[i] = copyWeek(w)
	}
	return out
}

// Week returns the week with the given number
func (c *Catalog) Week(number int) (models.CurriculumWeek, bool) {
	if number < 1 || number > len(c.weeks) {
		return models.CurriculumWeek{}, false
	}
	return copyWeek(c.weeks[number-1]), true
}

// Topic returns the topic of a day addressed by week and day-in-week
func (c *Catalog) Topic(week, dayInWeek int) (string, bool) {
	if week < 1 || week > len(c.weeks) || dayInWeek < 1 || dayInWeek > DaysPerWeek {
		return "", false
	}
	return c.weeks[week-1].Days[dayInWeek-1].Topic, true
}

// TechnologiesThrough returns the technologies of weeks 1..week, de-duplicated, in first-seen order
func (c *Catalog) TechnologiesThrough(week int) []string {
	return c.collectThrough(week, func(w models.CurriculumWeek) []string { return w.Technologies })
}

// ConceptsThrough returns the key concepts of weeks 1..week, de-duplicated, in first-seen order
func (c *Catalog) ConceptsThrough(week int) []string {
	return c.collectThrough(week, func(w models.CurriculumWeek) []string { return w.KeyConcepts })
}

// RelatedConcepts returns the key concepts of every week that mentions the given concept.
//
// Matching is a case-insensitive substring match against each key concept.
// The concept itself is not included in the result.
func (c *Catalog) RelatedConcepts(concept string) []string {
	needle := strings.ToLower(strings.TrimSpace(concept))
	if needle == "" {
		return []string{}
	}

	related := []string{}
	for _, w := range c.weeks {
		matched := slices.ContainsFunc(w.KeyConcepts, func(k string) bool {
			return strings.Contains(strings.ToLower(k), needle)
		})
		if !matched {
			continue
		}
		for _, k := range w.KeyConcepts {
			if strings.EqualFold(k, concept) || slices.Contains(related, k) {
				continue
			}
			related = append(related, k)
		}
	}
	return related
}

// GlobalDay converts a week and day-in-week pair to the global day number
func GlobalDay(week, dayInWeek int) int {
	return (week-1)*DaysPerWeek + dayInWeek
}

// DayInWeek converts a global day number to its week and day-in-week
func DayInWeek(globalDay int) (week, dayInWeek int) {
	if globalDay < 1 {
		return 0, 0
	}
	return (globalDay-1)/DaysPerWeek + 1, (globalDay-1)%DaysPerWeek + 1
}

func (c *Catalog) collectThrough(week int, pick func(models.CurriculumWeek) []string) []string {
	if week > len(c.weeks) {
		week = len(c.weeks)
	}
	out := []string{}
	for i := 0; i < week; i++ {
		for _, item := range pick(c.weeks[i]) {
			if !slices.Contains(out, item) {
				out = append(out, item)
			}
		}
	}
	return out
}

func copyWeek(w models.CurriculumWeek) models.CurriculumWeek {
	w.Days = slices.Clone(w.Days)
	w.Technologies = slices.Clone(w.Technologies)
	w.KeyConcepts = slices.Clone(w.KeyConcepts)
	return w
}
