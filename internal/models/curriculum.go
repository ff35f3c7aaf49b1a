package models

// CurriculumWeek represents one week of the study plan
type CurriculumWeek struct {
	Number       int             `json:"number"`
	Title        string          `json:"title"`
	Days         []CurriculumDay `json:"days"`
	Technologies []string        `json:"technologies"`
	KeyConcepts  []string        `json:"keyConcepts"`
}

// CurriculumDay represents a single study day
//
// Number is the global day of the program (1-42), DayInWeek is 1-7.
type CurriculumDay struct {
	Number    int    `json:"number"`
	DayInWeek int    `json:"dayInWeek"`
	Topic     string `json:"topic"`
}
