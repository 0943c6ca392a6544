package llmprovider

import "context"

// Provider defines the interface for text-completion LLM providers
type Provider interface {
	// Complete sends a prompt and returns the model's text completion
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "groq")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized text-completion request
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized text-completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
