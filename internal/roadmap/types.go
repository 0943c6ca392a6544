package roadmap

// GenerateInput carries the user's career goal and time budget.
type GenerateInput struct {
	TargetRole      string
	ExperienceLevel string // "beginner", "intermediate", "advanced"
	TotalTime       string // flexible format: "100 hours", "2 months", "10 weeks"
}

// GenerateOutput is the structured roadmap. The JSON tags double as the wire
// schema the LLM is instructed to produce, so the model output unmarshals
// directly into this type.
type GenerateOutput struct {
	SkillGaps         []string         `json:"skill_gaps"`
	EstimatedDuration string           `json:"estimated_duration"`
	Roadmap           Roadmap          `json:"roadmap"`
	Timeline          Timeline         `json:"timeline"`
	Recommendations   []Recommendation `json:"recommendations"`
}

// Roadmap is the ordered learning plan.
type Roadmap struct {
	LearningPath       []LearningStep     `json:"learning_path"`
	TotalLearningHours int                `json:"total_learning_hours"`
	BufferHours        int                `json:"buffer_hours"`
	MilestoneProjects  []MilestoneProject `json:"milestone_projects"`
}

// LearningStep is one stage of the learning path.
type LearningStep struct {
	Step               int      `json:"step"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	SkillsCovered      []string `json:"skills_covered"`
	EstimatedHours     int      `json:"estimated_hours"`
	Difficulty         string   `json:"difficulty"`
	Prerequisites      []string `json:"prerequisites"`
	KeyProjects        []string `json:"key_projects"`
	CompletionCriteria []string `json:"completion_criteria"`
}

// MilestoneProject is a larger deliverable anchored at a progress point.
type MilestoneProject struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	EstimatedHours int      `json:"estimated_hours"`
	CompletionAt   string   `json:"completion_at"`
}

// Timeline breaks the time budget into pacing options and milestones.
type Timeline struct {
	TotalHours        int                `json:"total_hours"`
	LearningHours     int                `json:"learning_hours"`
	BufferHours       int                `json:"buffer_hours"`
	OriginalInput     string             `json:"original_input"`
	SchedulingOptions []SchedulingOption `json:"scheduling_options"`
	KeyMilestones     []KeyMilestone     `json:"key_milestones"`
}

// SchedulingOption is one pacing choice. Either HoursPerDay or HoursPerWeek
// is set depending on the pace.
type SchedulingOption struct {
	Pace         string `json:"pace"`
	HoursPerDay  int    `json:"hours_per_day,omitempty"`
	HoursPerWeek int    `json:"hours_per_week,omitempty"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
}

// KeyMilestone is a progress checkpoint.
type KeyMilestone struct {
	Milestone    string `json:"milestone"`
	AtHours      int    `json:"at_hours"`
	AtPercentage int    `json:"at_percentage"`
	Deliverable  string `json:"deliverable"`
}

// Recommendation groups suggested resources by category.
type Recommendation struct {
	Category string               `json:"category"`
	Priority string               `json:"priority"`
	Items    []RecommendationItem `json:"items"`
}

// RecommendationItem is the union of the per-category item shapes
// (free_courses, practice_platforms, project_ideas); unused fields stay empty.
type RecommendationItem struct {
	Title           string   `json:"title"`
	Provider        string   `json:"provider,omitempty"`
	Description     string   `json:"description,omitempty"`
	EstimatedHours  int      `json:"estimated_hours,omitempty"`
	Cost            string   `json:"cost,omitempty"`
	URL             string   `json:"url,omitempty"`
	WhyRecommended  string   `json:"why_recommended,omitempty"`
	TimeCommitment  string   `json:"time_commitment,omitempty"`
	SkillFocus      string   `json:"skill_focus,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	SkillsPracticed []string `json:"skills_practiced,omitempty"`
	PortfolioValue  string   `json:"portfolio_value,omitempty"`
}

// ParseTimeInput carries a raw duration string.
type ParseTimeInput struct {
	Time string
}

// ParseTimeOutput is the normalized hour count with pacing equivalents.
type ParseTimeOutput struct {
	OriginalInput       string              `json:"original_input"`
	TotalHours          int                 `json:"total_hours"`
	SchedulingBreakdown SchedulingBreakdown `json:"scheduling_breakdown"`
	Equivalents         Equivalents         `json:"equivalents"`
}

// SchedulingBreakdown describes completion pace at fixed intensities.
type SchedulingBreakdown struct {
	Intensive string `json:"intensive"`
	Moderate  string `json:"moderate"`
	Relaxed   string `json:"relaxed"`
	Casual    string `json:"casual"`
}

// Equivalents restates the hour count in calendar units.
type Equivalents struct {
	DaysAt8h     string `json:"days_at_8h"`
	WeeksAt40h   string `json:"weeks_at_40h"`
	MonthsAt160h string `json:"months_at_160h"`
}

// PingOutput is the result of an LLM connectivity check.
type PingOutput struct {
	Response string
	Provider string
	Model    string
}
