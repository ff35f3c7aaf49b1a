package models

// DayStatus is the completion status of a curriculum day
type DayStatus string

const (
	DayStatusComplete DayStatus = "complete"
	DayStatusPending  DayStatus = "pending"
)

// SeriesPoint is one per-week value of a dashboard series
type SeriesPoint struct {
	Week  int     `json:"week"`
	Value float64 `json:"value"`
}

// QuickStats holds the headline numbers of the dashboard
type QuickStats struct {
	TotalHours        float64 `json:"totalHours"`
	AverageConfidence float64 `json:"averageConfidence"`
	HasConfidence     bool    `json:"hasConfidence"`
	CompletedTopics   int     `json:"completedTopics"`
	RecordCount       int     `json:"recordCount"`
}

// DayOverview is a curriculum day annotated with its status
type DayOverview struct {
	Number    int       `json:"number"`
	DayInWeek int       `json:"dayInWeek"`
	Topic     string    `json:"topic"`
	Status    DayStatus `json:"status"`
}

// WeekOverview is a curriculum week annotated with day statuses
type WeekOverview struct {
	Number       int           `json:"number"`
	Title        string        `json:"title"`
	Technologies []string      `json:"technologies"`
	KeyConcepts  []string      `json:"keyConcepts"`
	Days         []DayOverview `json:"days"`
}

// DashboardSummary is everything the dashboard page shows
//
// Notice is set when progress could not be loaded; the rest is then computed over an empty collection.
type DashboardSummary struct {
	Stats            QuickStats       `json:"stats"`
	WeeklyCompletion []SeriesPoint    `json:"weeklyCompletion"`
	WeeklyConfidence []SeriesPoint    `json:"weeklyConfidence"`
	Weeks            []WeekOverview   `json:"weeks"`
	Records          []ProgressRecord `json:"records"`
	Notice           string           `json:"notice,omitempty"`
}
