package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"career-roadmap-generator/internal/roadmap"
	"career-roadmap-generator/pkg/llmprovider"
	"career-roadmap-generator/pkg/timeparse"
)

// safeComplete runs the prompt through the provider chain and degrades any
// failure to an empty JSON object so the caller always has something to parse.
// Context cancellation is not degraded; the caller decides how to surface it.
func (uc *implUseCase) safeComplete(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		Prompt:      prompt,
		Temperature: roadmapTemperature,
		MaxTokens:   roadmapMaxTokens,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		uc.l.Errorf(ctx, "roadmap.usecase.safeComplete: all providers failed: %v", err)
		return emptyObject, nil
	}
	return resp.Text, nil
}

// sanitizeJSONResponse strips markdown code fences and surrounding prose that
// LLMs often wrap around JSON output. It never repairs the JSON itself; a
// payload that is still invalid after stripping fails at unmarshal time.
func sanitizeJSONResponse(text string) string {
	content := strings.TrimSpace(text)

	if idx := strings.Index(content, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(content[start:], "```"); end != -1 {
			content = strings.TrimSpace(content[start : start+end])
		}
	} else if idx := strings.Index(content, "```"); idx != -1 {
		start := idx + len("```")
		if end := strings.Index(content[start:], "```"); end != -1 {
			content = strings.TrimSpace(content[start : start+end])
		}
	}

	if !strings.HasPrefix(content, "{") {
		start := strings.Index(content, "{")
		if start != -1 {
			if end := strings.LastIndex(content, "}"); end != -1 && end > start {
				content = content[start : end+1]
			}
		}
	}

	return content
}

// parseRoadmapSafely unmarshals the sanitized LLM response, returning the
// given fallback in one piece if the payload does not decode.
func (uc *implUseCase) parseRoadmapSafely(ctx context.Context, text string, fallback roadmap.GenerateOutput) roadmap.GenerateOutput {
	content := sanitizeJSONResponse(text)

	var out roadmap.GenerateOutput
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		preview := text
		if len(preview) > 300 {
			preview = preview[:300]
		}
		uc.l.Warnf(ctx, "roadmap.usecase.parseRoadmapSafely: invalid JSON (%v), using fallback. Preview: %q", err, preview)
		return fallback
	}
	return out
}

// fallbackRoadmap is the static plan served when the model returns garbage.
// It keeps the same shape as a real response so clients never special-case it.
func fallbackRoadmap(in roadmap.GenerateInput, totalHours, learningHours, bufferHours int) roadmap.GenerateOutput {
	return roadmap.GenerateOutput{
		SkillGaps:         []string{"Programming fundamentals", "Web development", "Problem solving"},
		EstimatedDuration: fmt.Sprintf("Flexible based on %d total hours", totalHours),
		Roadmap: roadmap.Roadmap{
			LearningPath: []roadmap.LearningStep{
				{
					Step:               1,
					Title:              "Foundation Skills",
					Description:        fmt.Sprintf("Build fundamental skills for %s", in.TargetRole),
					SkillsCovered:      []string{"Basic programming", "Problem solving"},
					EstimatedHours:     learningHours / 2,
					Difficulty:         in.ExperienceLevel,
					Prerequisites:      []string{},
					KeyProjects:        []string{"Basic project"},
					CompletionCriteria: []string{"Complete foundational learning"},
				},
				{
					Step:               2,
					Title:              "Advanced Skills",
					Description:        fmt.Sprintf("Advanced concepts for %s", in.TargetRole),
					SkillsCovered:      []string{"Advanced programming", "Real-world application"},
					EstimatedHours:     learningHours / 2,
					Difficulty:         "intermediate",
					Prerequisites:      []string{"Foundation Skills"},
					KeyProjects:        []string{"Capstone project"},
					CompletionCriteria: []string{"Build portfolio project"},
				},
			},
			TotalLearningHours: learningHours,
			BufferHours:        bufferHours,
			MilestoneProjects: []roadmap.MilestoneProject{
				{
					Title:          "Portfolio Project",
					Description:    "Showcase your skills",
					Technologies:   []string{"Core skills", "New skills"},
					EstimatedHours: int(float64(totalHours) * 0.2),
					CompletionAt:   "80% progress",
				},
			},
		},
		Timeline: timeBreakdown(in.TotalTime, totalHours, learningHours, bufferHours),
		Recommendations: []roadmap.Recommendation{
			{
				Category: "free_courses",
				Priority: "high",
				Items: []roadmap.RecommendationItem{
					{
						Title:          "Getting Started Course",
						Provider:       "freeCodeCamp",
						EstimatedHours: 20,
						Cost:           "Free",
						URL:            "https://freecodecamp.org",
						WhyRecommended: fmt.Sprintf("Great for %s learners", in.ExperienceLevel),
					},
				},
			},
		},
	}
}

// timeBreakdown builds the pacing timeline from a resolved hour count.
func timeBreakdown(originalInput string, totalHours, learningHours, bufferHours int) roadmap.Timeline {
	return roadmap.Timeline{
		TotalHours:    totalHours,
		LearningHours: learningHours,
		BufferHours:   bufferHours,
		OriginalInput: originalInput,
		SchedulingOptions: []roadmap.SchedulingOption{
			{
				Pace:        "Intensive",
				HoursPerDay: 4,
				Duration:    fmt.Sprintf("%d days", max(1, totalHours/4)),
				Description: "Full-time intensive learning",
			},
			{
				Pace:        "Moderate",
				HoursPerDay: 2,
				Duration:    fmt.Sprintf("%d days", max(1, totalHours/2)),
				Description: "Part-time consistent learning",
			},
			{
				Pace:         "Relaxed",
				HoursPerWeek: 10,
				Duration:     fmt.Sprintf("%d weeks", max(1, totalHours/10)),
				Description:  "Weekend and evening learning",
			},
			{
				Pace:         "Casual",
				HoursPerWeek: 5,
				Duration:     fmt.Sprintf("%d weeks", max(1, totalHours/5)),
				Description:  "Slow and steady approach",
			},
		},
		KeyMilestones: []roadmap.KeyMilestone{
			{
				Milestone:    "Foundation Complete",
				AtHours:      totalHours / 4,
				AtPercentage: 25,
				Deliverable:  "Basic projects portfolio",
			},
			{
				Milestone:    "Intermediate Skills",
				AtHours:      totalHours / 2,
				AtPercentage: 50,
				Deliverable:  "Advanced project completion",
			},
			{
				Milestone:    "Job-Ready Skills",
				AtHours:      int(float64(totalHours) * 0.75),
				AtPercentage: 75,
				Deliverable:  "Professional portfolio",
			},
			{
				Milestone:    "Career Ready",
				AtHours:      totalHours,
				AtPercentage: 100,
				Deliverable:  "Full-stack application",
			},
		},
	}
}

// buildRoadmapPrompt renders the generation prompt for a resolved time budget.
func buildRoadmapPrompt(in roadmap.GenerateInput, totalHours, learningHours, bufferHours int) string {
	return fmt.Sprintf(roadmapPromptTemplate,
		in.TargetRole,
		in.ExperienceLevel,
		in.TotalTime,
		totalHours,
		learningHours,
		bufferHours,
		int(float64(totalHours)*0.15),
		int(float64(totalHours)*0.25),
		max(1, totalHours/4),
		max(1, totalHours/2),
		max(1, totalHours/10),
		max(1, totalHours/5),
		totalHours/4,
		totalHours/2,
		int(float64(totalHours)*0.75),
		int(float64(totalHours)*0.08),
		int(float64(totalHours)*0.12),
	)
}

// resolveBudget splits a raw time string into total, learning and buffer hours.
func resolveBudget(raw string) (totalHours, learningHours, bufferHours int) {
	totalHours = timeparse.Hours(raw)
	bufferHours = totalHours / 10
	learningHours = totalHours - bufferHours
	return totalHours, learningHours, bufferHours
}
