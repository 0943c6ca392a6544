package usecase

import (
	"context"

	"career-roadmap-generator/internal/roadmap"
)

// Generate resolves the flexible time budget, asks the LLM for a structured
// roadmap, and falls back to a static plan when the response is unusable.
func (uc *implUseCase) Generate(ctx context.Context, in roadmap.GenerateInput) (roadmap.GenerateOutput, error) {
	totalHours, learningHours, bufferHours := resolveBudget(in.TotalTime)

	uc.l.Infof(ctx, "roadmap.usecase.Generate: role=%q level=%q time=%q resolved=%dh (learning=%dh buffer=%dh)",
		in.TargetRole, in.ExperienceLevel, in.TotalTime, totalHours, learningHours, bufferHours)

	prompt := buildRoadmapPrompt(in, totalHours, learningHours, bufferHours)

	content, err := uc.safeComplete(ctx, prompt)
	if err != nil {
		return roadmap.GenerateOutput{}, err
	}

	fallback := fallbackRoadmap(in, totalHours, learningHours, bufferHours)
	out := uc.parseRoadmapSafely(ctx, content, fallback)

	return out, nil
}
