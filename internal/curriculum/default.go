package curriculum

import "github.com/cookiee01/data-engineering-learning-agent/internal/models"

// Default returns the six-week data engineering curriculum
func Default() *Catalog {
	c, err := New(defaultWeeks())
	if err != nil {
		panic("curriculum: invalid default data: " + err.Error())
	}
	return c
}

func days(start int, topics ...string) []models.CurriculumDay {
	out := make([]models.CurriculumDay, len(topics))
	for i, t := range topics {
		out[i] = models.CurriculumDay{Number: start + i, DayInWeek: i + 1, Topic: t}
	}
	return out
}

func defaultWeeks() []models.CurriculumWeek {
	return []models.CurriculumWeek{
		{
			Number: 1,
			Title:  "Foundation & Modern Lakehouse",
			Days: days(1,
				"Environment Setup & Apache Iceberg Foundations",
				"Advanced Iceberg Features",
				"Delta Lake Fundamentals",
				"Delta Lake Advanced Features",
				"AWS Glue Deep Dive",
				"Integration Project - Lakehouse Platform",
				"Week 1 Review & Assessment",
			),
			Technologies: []string{"Apache Iceberg", "Delta Lake", "AWS Glue", "Spark"},
			KeyConcepts:  []string{"ACID transactions", "Time travel", "Schema evolution", "Table formats"},
		},
		{
			Number: 2,
			Title:  "Data Processing & Orchestration",
			Days: days(8,
				"Apache Spark Performance Tuning",
				"Spark Structured Streaming",
				"Apache Airflow Advanced Patterns",
				"dbt Analytics Engineering",
				"Kafka & Stream Processing",
				"Integration Project - Real-time Analytics Pipeline",
				"Week 2 Review & System Design Practice",
			),
			Technologies: []string{"Apache Spark", "Apache Airflow", "dbt", "Apache Kafka"},
			KeyConcepts:  []string{"Performance tuning", "Streaming", "Orchestration", "Analytics engineering"},
		},
		{
			Number: 3,
			Title:  "Data Storage & Quality",
			Days: days(15,
				"Database Performance & Optimization",
				"Object Storage & Data Lake Optimization",
				"Data Quality Frameworks",
				"Data Governance & Compliance",
				"Amazon EMR & Advanced Analytics",
				"Amazon Athena Query Optimization",
				"Week 3 Review & Data Architecture Design",
			),
			Technologies: []string{"PostgreSQL", "S3", "Amazon EMR", "Amazon Athena"},
			KeyConcepts:  []string{"Data quality", "Governance", "Query optimization", "Storage optimization"},
		},
		{
			Number: 4,
			Title:  "DevOps & Infrastructure",
			Days: days(22,
				"Infrastructure as Code with Terraform",
				"Docker & Kubernetes for Data Workloads",
				"CI/CD for Data Applications",
				"Monitoring & Observability",
				"Cost Optimization & FinOps",
				"Production Operations & SRE",
				"Week 4 Review & Production Deployment",
			),
			Technologies: []string{"Terraform", "Docker", "Kubernetes", "CI/CD"},
			KeyConcepts:  []string{"Infrastructure as Code", "Containerization", "Monitoring", "Cost optimization"},
		},
		{
			Number: 5,
			Title:  "Leadership & Advanced Topics",
			Days: days(29,
				"Technical Leadership & Mentoring",
				"System Design at Scale",
				"Emerging Technologies Research",
				"Business Impact & Strategy",
				"Open Source Contribution",
				"Industry Networking & Knowledge Sharing",
				"Week 5 Review & Leadership Assessment",
			),
			Technologies: []string{"Leadership Skills", "System Design", "Emerging Tech"},
			KeyConcepts:  []string{"Technical leadership", "Scalability", "Business strategy", "Community contribution"},
		},
		{
			Number: 6,
			Title:  "Interview Preparation & Portfolio",
			Days: days(36,
				"Technical Interview Preparation",
				"System Design Interview Mastery",
				"Behavioral Interview Preparation",
				"Portfolio Development & Documentation",
				"Mock Interviews & Final Preparation",
				"Company Research & Application Strategy",
				"Program Completion & Final Assessment",
			),
			Technologies: []string{"Interview Skills", "Portfolio Development"},
			KeyConcepts:  []string{"Technical interviews", "System design", "Behavioral interviews", "Portfolio"},
		},
	}
}
