package models

// AssistantTool identifies one of the AI assisted tools
type AssistantTool string

const (
	ToolAnalysis   AssistantTool = "analysis"
	ToolCodeReview AssistantTool = "code-review"
	ToolPractice   AssistantTool = "practice"
	ToolConcept    AssistantTool = "concept"
	ToolSkills     AssistantTool = "skills"
	ToolInterview  AssistantTool = "interview"
)

// AssistantTools lists every tool in menu order
var AssistantTools = []AssistantTool{
	ToolAnalysis,
	ToolCodeReview,
	ToolPractice,
	ToolConcept,
	ToolSkills,
	ToolInterview,
}

// AnalysisRequest asks for guidance on the current study day
type AnalysisRequest struct {
	Week     int    `json:"week"`
	Day      int    `json:"day"`
	Question string `json:"question"`
}

// CodeReviewRequest asks for a review of a code snippet
type CodeReviewRequest struct {
	Technology string `json:"technology"`
	Code       string `json:"code"`
	Context    string `json:"context"`
}

// PracticeRequest asks for a hands-on practice scenario
type PracticeRequest struct {
	Week          int    `json:"week"`
	SkillLevel    string `json:"skillLevel"`
	TimeAvailable string `json:"timeAvailable"`
	FocusArea     string `json:"focusArea"`
}

// ConceptRequest asks for an explanation of a concept
type ConceptRequest struct {
	Concept       string `json:"concept"`
	CurrentLevel  string `json:"currentLevel"`
	LearningStyle string `json:"learningStyle"`
}

// SkillScore is a self-assessed score (1-10) for one skill
type SkillScore struct {
	Skill string `json:"skill"`
	Score int    `json:"score"`
}

// SkillsRequest asks for an assessment of self-reported skill scores
type SkillsRequest struct {
	Week   int          `json:"week"`
	Scores []SkillScore `json:"scores"`
}

// InterviewRequest asks for interview questions covering completed weeks
type InterviewRequest struct {
	CompletedWeeks int    `json:"completedWeeks"`
	Focus          string `json:"focus"`
	TargetRole     string `json:"targetRole"`
}

// AssistantResponse is the rendered result of a tool call
//
// Failed is true when Content holds a diagnostic instead of model output.
type AssistantResponse struct {
	Tool    AssistantTool `json:"tool"`
	Model   string        `json:"model,omitempty"`
	Content string        `json:"content"`
	Failed  bool          `json:"failed"`
}

// AssistantStatus describes the configured model collaborator
type AssistantStatus struct {
	Provider      string   `json:"provider"`
	Ready         bool     `json:"ready"`
	Message       string   `json:"message,omitempty"`
	Models        []string `json:"models,omitempty"`
	SelectedModel string   `json:"selectedModel,omitempty"`
	CodeModel     string   `json:"codeModel,omitempty"`
	Selectable    bool     `json:"selectable"`
}

// Option lists offered by the tool forms
var (
	CodeTechnologies = []string{
		"PySpark", "SQL", "Python ETL", "Scala Spark", "Airflow DAG", "dbt",
		"Terraform", "Docker", "Delta Lake", "Apache Iceberg", "Kafka", "Flink",
	}
	SkillLevels    = []string{"Beginner", "Intermediate", "Advanced", "Expert"}
	TimeBudgets    = []string{"30 minutes", "1 hour", "2-3 hours", "Half day", "Full day"}
	ConceptLevels  = []string{"Complete beginner", "Some familiarity", "Intermediate", "Advanced"}
	LearningStyles = []string{
		"Visual with diagrams", "Step-by-step logical", "Real-world examples",
		"Hands-on practical", "Theoretical deep-dive",
	}
	InterviewFocusAreas = []string{
		"Technical Deep Dive", "System Design", "Behavioral Questions",
		"Code Review", "Architecture Decisions", "Leadership Scenarios",
	}
)
