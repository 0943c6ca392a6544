package usecase

import (
	"context"

	"career-roadmap-generator/pkg/llmprovider"
)

// stubProvider is a canned LLM provider for tests.
type stubProvider struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (p *stubProvider) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	p.lastPrompt = req.Prompt
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Text:         p.reply,
		ProviderName: p.Name(),
		ModelName:    p.Model(),
	}, nil
}

func (p *stubProvider) Name() string  { return "stub" }
func (p *stubProvider) Model() string { return "stub-model" }

// noopLogger satisfies log.Logger without writing anywhere.
type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any) {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Info(ctx context.Context, arg ...any) {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Warn(ctx context.Context, arg ...any) {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Error(ctx context.Context, arg ...any) {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) DPanic(ctx context.Context, arg ...any) {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any) {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Fatal(ctx context.Context, arg ...any) {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// newTestUseCase wires a usecase to a single stub provider with no retries.
func newTestUseCase(p *stubProvider) *implUseCase {
	mgr := llmprovider.NewManager(
		[]llmprovider.Provider{p},
		&llmprovider.Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
		},
		noopLogger{},
	)
	return New(noopLogger{}, mgr)
}
