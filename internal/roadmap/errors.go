package roadmap

import "errors"

var (
	// ErrLLMUnavailable indicates the provider chain could not be reached at
	// all. Generate absorbs this into degraded output; Ping surfaces it.
	ErrLLMUnavailable = errors.New("llm provider unavailable")
)
