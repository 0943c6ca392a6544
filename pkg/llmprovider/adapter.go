package llmprovider

import (
	"context"
	"fmt"

	"career-roadmap-generator/pkg/groq"
)

// GroqAdapter adapts pkg/groq to the llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// Complete implements Provider interface
func (a *GroqAdapter) Complete(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Messages: []groq.Message{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, groqReq)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: "groq",
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}
