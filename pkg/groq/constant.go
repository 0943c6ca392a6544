package groq

import "time"

const (
	// DefaultBaseURL is the OpenAI-compatible Groq API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultTimeout bounds a single API round-trip
	DefaultTimeout = 60 * time.Second

	// DefaultTemperature keeps generation near-deterministic for JSON output
	DefaultTemperature = 0.1

	// DefaultMaxTokens caps the completion length
	DefaultMaxTokens = 4096
)
