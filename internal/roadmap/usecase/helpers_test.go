package usecase

import (
	"context"
	"strings"
	"testing"

	"career-roadmap-generator/internal/roadmap"
)

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Clean JSON Untouched",
			input: `{"skill_gaps": ["Go"]}`,
			want:  `{"skill_gaps": ["Go"]}`,
		},
		{
			name:  "JSON Code Fence",
			input: "```json\n{\"skill_gaps\": []}\n```",
			want:  `{"skill_gaps": []}`,
		},
		{
			name:  "Bare Code Fence",
			input: "```\n{\"total_hours\": 100}\n```",
			want:  `{"total_hours": 100}`,
		},
		{
			name:  "Fence With Leading Prose",
			input: "Here is your roadmap:\n```json\n{\"a\": 1}\n```\nGood luck!",
			want:  `{"a": 1}`,
		},
		{
			name:  "Prose Around Bare Object",
			input: "Sure! The plan is {\"a\": 1} as requested.",
			want:  `{"a": 1}`,
		},
		{
			name:  "Missing Closing Fence Falls Through To Brace Scan",
			input: "```json\n{\"a\": 1}",
			want:  `{"a": 1}`,
		},
		{
			name:  "No JSON At All",
			input: "I cannot help with that.",
			want:  "I cannot help with that.",
		},
		{
			name:  "Whitespace Trimmed",
			input: "  \n {\"a\": 1} \n ",
			want:  `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeJSONResponse_Idempotent(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"
	once := sanitizeJSONResponse(input)
	twice := sanitizeJSONResponse(once)
	if once != twice {
		t.Errorf("second pass changed output: %q -> %q", once, twice)
	}
}

func TestParseRoadmapSafely(t *testing.T) {
	uc := newTestUseCase(&stubProvider{})
	fallback := fallbackRoadmap(roadmap.GenerateInput{
		TargetRole:      "Backend Developer",
		ExperienceLevel: "beginner",
		TotalTime:       "100 hours",
	}, 100, 90, 10)

	t.Run("Valid Payload", func(t *testing.T) {
		out := uc.parseRoadmapSafely(context.Background(), `{"skill_gaps": ["SQL"], "estimated_duration": "100 hours"}`, fallback)
		if len(out.SkillGaps) != 1 || out.SkillGaps[0] != "SQL" {
			t.Errorf("expected parsed skill gaps, got %v", out.SkillGaps)
		}
	})

	t.Run("Garbage Returns Fallback", func(t *testing.T) {
		out := uc.parseRoadmapSafely(context.Background(), "I refuse to answer in JSON.", fallback)
		if len(out.Roadmap.LearningPath) != 2 {
			t.Fatalf("expected 2 fallback steps, got %d", len(out.Roadmap.LearningPath))
		}
		if out.Roadmap.LearningPath[0].Title != "Foundation Skills" {
			t.Errorf("unexpected fallback step: %q", out.Roadmap.LearningPath[0].Title)
		}
	})

	t.Run("Empty Object Is Not Fallback", func(t *testing.T) {
		out := uc.parseRoadmapSafely(context.Background(), "{}", fallback)
		if len(out.Roadmap.LearningPath) != 0 {
			t.Errorf("empty object should decode to zero value, got %d steps", len(out.Roadmap.LearningPath))
		}
		if out.EstimatedDuration != "" {
			t.Errorf("empty object should not carry fallback duration, got %q", out.EstimatedDuration)
		}
	})
}

func TestFallbackRoadmap(t *testing.T) {
	in := roadmap.GenerateInput{
		TargetRole:      "Data Scientist",
		ExperienceLevel: "intermediate",
		TotalTime:       "2 months",
	}
	out := fallbackRoadmap(in, 320, 288, 32)

	if out.Roadmap.TotalLearningHours != 288 {
		t.Errorf("TotalLearningHours = %d, want 288", out.Roadmap.TotalLearningHours)
	}
	if out.Roadmap.BufferHours != 32 {
		t.Errorf("BufferHours = %d, want 32", out.Roadmap.BufferHours)
	}
	if got := out.Roadmap.LearningPath[0].EstimatedHours; got != 144 {
		t.Errorf("first step hours = %d, want 144", got)
	}
	if !strings.Contains(out.Roadmap.LearningPath[0].Description, "Data Scientist") {
		t.Errorf("fallback should mention the target role: %q", out.Roadmap.LearningPath[0].Description)
	}
	if out.Timeline.TotalHours != 320 || out.Timeline.OriginalInput != "2 months" {
		t.Errorf("unexpected timeline: %+v", out.Timeline)
	}
	if len(out.Recommendations) != 1 || out.Recommendations[0].Category != "free_courses" {
		t.Errorf("unexpected recommendations: %+v", out.Recommendations)
	}
}

func TestTimeBreakdown(t *testing.T) {
	tl := timeBreakdown("100 hours", 100, 90, 10)

	if len(tl.SchedulingOptions) != 4 {
		t.Fatalf("expected 4 scheduling options, got %d", len(tl.SchedulingOptions))
	}
	if tl.SchedulingOptions[0].Duration != "25 days" {
		t.Errorf("intensive duration = %q, want %q", tl.SchedulingOptions[0].Duration, "25 days")
	}
	if tl.SchedulingOptions[3].Duration != "20 weeks" {
		t.Errorf("casual duration = %q, want %q", tl.SchedulingOptions[3].Duration, "20 weeks")
	}
	if len(tl.KeyMilestones) != 4 {
		t.Fatalf("expected 4 milestones, got %d", len(tl.KeyMilestones))
	}
	if tl.KeyMilestones[2].AtHours != 75 {
		t.Errorf("75%% milestone at %d hours, want 75", tl.KeyMilestones[2].AtHours)
	}
	if tl.KeyMilestones[3].AtHours != 100 || tl.KeyMilestones[3].AtPercentage != 100 {
		t.Errorf("final milestone = %+v", tl.KeyMilestones[3])
	}
}

func TestTimeBreakdown_TinyBudget(t *testing.T) {
	// 10 hours is the floor; per-pace durations must never drop below 1.
	tl := timeBreakdown("10 hours", 10, 9, 1)
	if tl.SchedulingOptions[2].Duration != "1 weeks" {
		t.Errorf("relaxed duration = %q, want %q", tl.SchedulingOptions[2].Duration, "1 weeks")
	}
}

func TestBuildRoadmapPrompt(t *testing.T) {
	in := roadmap.GenerateInput{
		TargetRole:      "DevOps Engineer",
		ExperienceLevel: "advanced",
		TotalTime:       "10 weeks",
	}
	prompt := buildRoadmapPrompt(in, 400, 360, 40)

	for _, want := range []string{
		"TARGET ROLE: DevOps Engineer",
		"EXPERIENCE LEVEL: advanced",
		`originally "10 weeks"`,
		"TOTAL TIME AVAILABLE: 400 hours",
		"LEARNING TIME: 360 hours (with 40 hours buffer)",
		`"total_learning_hours": 360`,
		`"completion_at": "40% progress"`,
		`"completion_at": "80% progress"`,
		`"duration": "100 days"`,
		`"at_hours": 300`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "%!") {
		t.Errorf("prompt has formatting errors: %s", prompt)
	}
}

func TestResolveBudget(t *testing.T) {
	total, learning, buffer := resolveBudget("2 months")
	if total != 320 || buffer != 32 || learning != 288 {
		t.Errorf("resolveBudget(2 months) = (%d, %d, %d), want (320, 288, 32)", total, learning, buffer)
	}

	// Unparseable input falls back to the 100 hour default.
	total, learning, buffer = resolveBudget("whenever")
	if total != 100 || buffer != 10 || learning != 90 {
		t.Errorf("resolveBudget(whenever) = (%d, %d, %d), want (100, 90, 10)", total, learning, buffer)
	}
}
