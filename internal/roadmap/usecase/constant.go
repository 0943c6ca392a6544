package usecase

const (
	// Generation settings tuned for deterministic JSON output.
	roadmapTemperature = 0.1
	roadmapMaxTokens   = 4096

	// emptyObject is what a degraded LLM call collapses to before parsing.
	emptyObject = "{}"

	pingPrompt = "Respond with 'Groq connection successful!' and nothing else."
)

// roadmapPromptTemplate is filled with indexed arguments:
//
//	[1] target role, [2] experience level, [3] original time input,
//	[4] total hours, [5] learning hours, [6] buffer hours,
//	[7] 15% of total, [8] 25% of total,
//	[9] days at 4h/day, [10] days at 2h/day,
//	[11] weeks at 10h/week, [12] weeks at 5h/week,
//	[13] 25% hours, [14] 50% hours, [15] 75% hours,
//	[16] 8% of total, [17] 12% of total.
const roadmapPromptTemplate = `
You are an expert career counselor and tech industry analyst. Generate a comprehensive and realistic career roadmap.

REQUIREMENTS:
- TARGET ROLE: %[1]s
- EXPERIENCE LEVEL: %[2]s
- TOTAL TIME AVAILABLE: %[4]d hours (originally "%[3]s")
- LEARNING TIME: %[5]d hours (with %[6]d hours buffer)

Create a focused roadmap that:
1. Identifies critical skills for %[1]s
2. Fits within %[5]d hours of learning time
3. Is appropriate for %[2]s level
4. Includes hands-on projects and milestones

Return ONLY valid JSON with this structure:

{
  "skill_gaps": [
    "React.js",
    "Node.js",
    "Database Design",
    "API Development"
  ],
  "estimated_duration": "Flexible timeline based on %[4]d total hours",
  "roadmap": {
    "learning_path": [
      {
        "step": 1,
        "title": "JavaScript Fundamentals",
        "description": "Master core JavaScript concepts for web development",
        "skills_covered": ["JavaScript ES6+", "DOM Manipulation", "Async Programming"],
        "estimated_hours": 40,
        "difficulty": "beginner",
        "prerequisites": [],
        "key_projects": [
          "Interactive Calculator",
          "To-Do List with Local Storage",
          "Weather App"
        ],
        "completion_criteria": [
          "Build 3 interactive projects",
          "Understand closures and promises",
          "Complete 20 coding challenges"
        ]
      },
      {
        "step": 2,
        "title": "Frontend Framework",
        "description": "Learn React.js for modern web development",
        "skills_covered": ["React Components", "State Management", "Hooks", "Routing"],
        "estimated_hours": 50,
        "difficulty": "intermediate",
        "prerequisites": ["JavaScript ES6+"],
        "key_projects": [
          "Personal Portfolio",
          "E-commerce Product Catalog",
          "Social Media Dashboard"
        ],
        "completion_criteria": [
          "Build responsive React applications",
          "Implement state management",
          "Handle API integrations"
        ]
      }
    ],
    "total_learning_hours": %[5]d,
    "buffer_hours": %[6]d,
    "milestone_projects": [
      {
        "title": "Portfolio Website",
        "description": "Professional portfolio showcasing your skills",
        "technologies": ["HTML", "CSS", "JavaScript", "React"],
        "estimated_hours": %[7]d,
        "completion_at": "40%% progress"
      },
      {
        "title": "Full-Stack Application",
        "description": "Complete web application with frontend and backend",
        "technologies": ["React", "Node.js", "Database", "API"],
        "estimated_hours": %[8]d,
        "completion_at": "80%% progress"
      }
    ]
  },
  "timeline": {
    "total_hours": %[4]d,
    "learning_hours": %[5]d,
    "buffer_hours": %[6]d,
    "original_input": "%[3]s",
    "scheduling_options": [
      {
        "pace": "Intensive",
        "hours_per_day": 4,
        "duration": "%[9]d days",
        "description": "Full-time intensive learning"
      },
      {
        "pace": "Moderate",
        "hours_per_day": 2,
        "duration": "%[10]d days",
        "description": "Part-time consistent learning"
      },
      {
        "pace": "Relaxed",
        "hours_per_week": 10,
        "duration": "%[11]d weeks",
        "description": "Weekend and evening learning"
      },
      {
        "pace": "Casual",
        "hours_per_week": 5,
        "duration": "%[12]d weeks",
        "description": "Slow and steady approach"
      }
    ],
    "key_milestones": [
      {
        "milestone": "Foundation Complete",
        "at_hours": %[13]d,
        "at_percentage": 25,
        "deliverable": "Basic projects portfolio"
      },
      {
        "milestone": "Intermediate Skills",
        "at_hours": %[14]d,
        "at_percentage": 50,
        "deliverable": "Advanced project completion"
      },
      {
        "milestone": "Job-Ready Skills",
        "at_hours": %[15]d,
        "at_percentage": 75,
        "deliverable": "Professional portfolio"
      },
      {
        "milestone": "Career Ready",
        "at_hours": %[4]d,
        "at_percentage": 100,
        "deliverable": "Full-stack application"
      }
    ]
  },
  "recommendations": [
    {
      "category": "free_courses",
      "priority": "high",
      "items": [
        {
          "title": "JavaScript Fundamentals Course",
          "provider": "freeCodeCamp",
          "estimated_hours": 30,
          "cost": "Free",
          "url": "https://freecodecamp.org",
          "why_recommended": "Perfect for %[2]s level learners"
        },
        {
          "title": "React Tutorial",
          "provider": "React Official Docs",
          "estimated_hours": 20,
          "cost": "Free",
          "url": "https://react.dev",
          "why_recommended": "Official documentation with examples"
        }
      ]
    },
    {
      "category": "practice_platforms",
      "priority": "medium",
      "items": [
        {
          "title": "Codewars",
          "description": "Daily coding challenges for problem-solving",
          "time_commitment": "30 minutes daily",
          "cost": "Free",
          "skill_focus": "Algorithm and logic building"
        },
        {
          "title": "Frontend Mentor",
          "description": "Real-world frontend challenges",
          "time_commitment": "2-4 hours per challenge",
          "cost": "Freemium",
          "skill_focus": "UI/UX implementation"
        }
      ]
    },
    {
      "category": "project_ideas",
      "priority": "high",
      "items": [
        {
          "title": "Personal Blog",
          "difficulty": "%[2]s",
          "estimated_hours": %[16]d,
          "skills_practiced": ["HTML", "CSS", "JavaScript", "Content Management"],
          "portfolio_value": "Shows writing and technical skills"
        },
        {
          "title": "Task Management App",
          "difficulty": "intermediate",
          "estimated_hours": %[17]d,
          "skills_practiced": ["React", "State Management", "Local Storage", "API Integration"],
          "portfolio_value": "Demonstrates full-stack capabilities"
        }
      ]
    }
  ]
}

CRITICAL REQUIREMENTS:
- Total learning hours should sum to approximately %[5]d
- Include %[6]d hours for review and practice
- Skills should be relevant to %[1]s
- Difficulty appropriate for %[2]s
- Include realistic time estimates
- Focus on practical, portfolio-building projects
`
