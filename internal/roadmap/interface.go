package roadmap

import "context"

// UseCase defines the business logic interface for the roadmap domain.
type UseCase interface {
	// Generate builds the roadmap prompt from the user's goal and available
	// time, calls the LLM, and parses the completion into a structured
	// roadmap. LLM and parse failures degrade to built-in content; only
	// context cancellation surfaces as an error.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// ParseTime normalizes a free-form duration string into study hours with
	// scheduling breakdowns. Purely local, no LLM involved.
	ParseTime(ctx context.Context, input ParseTimeInput) (ParseTimeOutput, error)

	// Ping performs one round-trip through the LLM provider chain to verify
	// connectivity.
	Ping(ctx context.Context) (PingOutput, error)
}
