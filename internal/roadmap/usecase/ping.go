package usecase

import (
	"context"

	"career-roadmap-generator/internal/roadmap"
	"career-roadmap-generator/pkg/llmprovider"
)

// Ping sends a trivial prompt straight through the provider chain so
// operators can verify connectivity. Unlike Generate, failures surface.
func (uc *implUseCase) Ping(ctx context.Context) (roadmap.PingOutput, error) {
	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		Prompt:      pingPrompt,
		Temperature: roadmapTemperature,
		MaxTokens:   64,
	})
	if err != nil {
		uc.l.Errorf(ctx, "roadmap.usecase.Ping: %v", err)
		return roadmap.PingOutput{}, roadmap.ErrLLMUnavailable
	}

	return roadmap.PingOutput{
		Response: resp.Text,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}, nil
}
