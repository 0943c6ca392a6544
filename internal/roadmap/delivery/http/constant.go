package http

// careerOption describes one supported career path.
type careerOption struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	KeySkills   []string `json:"key_skills"`
}

type careerOptionsResp struct {
	Roles []careerOption `json:"roles"`
}

var careerCatalog = careerOptionsResp{
	Roles: []careerOption{
		{
			Title:       "Frontend Developer",
			Description: "Build user interfaces and web experiences",
			KeySkills:   []string{"HTML", "CSS", "JavaScript", "React", "Vue"},
		},
		{
			Title:       "Backend Developer",
			Description: "Develop server-side logic and APIs",
			KeySkills:   []string{"Python", "Node.js", "Databases", "API Design"},
		},
		{
			Title:       "Full Stack Developer",
			Description: "Work on both frontend and backend",
			KeySkills:   []string{"JavaScript", "Python", "React", "Node.js", "Databases"},
		},
		{
			Title:       "Data Scientist",
			Description: "Analyze data and build predictive models",
			KeySkills:   []string{"Python", "SQL", "Machine Learning", "Statistics"},
		},
		{
			Title:       "Machine Learning Engineer",
			Description: "Deploy and scale ML models in production",
			KeySkills:   []string{"Python", "TensorFlow", "AWS", "Docker", "MLOps"},
		},
		{
			Title:       "DevOps Engineer",
			Description: "Manage infrastructure and deployment pipelines",
			KeySkills:   []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Linux"},
		},
		{
			Title:       "Mobile Developer",
			Description: "Create mobile applications",
			KeySkills:   []string{"React Native", "Swift", "Kotlin", "Flutter"},
		},
		{
			Title:       "UI/UX Designer",
			Description: "Design user experiences and interfaces",
			KeySkills:   []string{"Figma", "User Research", "Prototyping", "Design Systems"},
		},
	},
}

type timeFormatsResp struct {
	SupportedFormats []string          `json:"supported_formats"`
	ConversionRates  map[string]string `json:"conversion_rates"`
	Limits           map[string]string `json:"limits"`
	Examples         map[string]string `json:"examples"`
}

var timeFormatsGuide = timeFormatsResp{
	SupportedFormats: []string{
		"100 hours", "50 hrs", "200h",
		"30 days", "45d",
		"12 weeks", "8w",
		"3 months", "6mo", "2m",
		"1 year", "2y",
	},
	ConversionRates: map[string]string{
		"1 hour":  "1 hour of focused learning",
		"1 day":   "8 hours (full day of studying)",
		"1 week":  "40 hours (5 days × 8 hours)",
		"1 month": "160 hours (4 weeks × 40 hours)",
		"1 year":  "1920 hours (12 months × 160 hours)",
	},
	Limits: map[string]string{
		"minimum": "10 hours",
		"maximum": "2000 hours",
	},
	Examples: map[string]string{
		"quick_skill":       "50 hours - Learn a specific technology",
		"career_change":     "300 hours - Switch to adjacent field",
		"complete_beginner": "500+ hours - Start from scratch",
	},
}
