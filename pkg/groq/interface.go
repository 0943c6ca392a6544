package groq

import "context"

// IGroq defines the interface for the Groq LLM client
type IGroq interface {
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
