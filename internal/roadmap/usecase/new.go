package usecase

import (
	"career-roadmap-generator/pkg/llmprovider"
	pkgLog "career-roadmap-generator/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm *llmprovider.Manager
}

// New creates a new roadmap UseCase instance.
func New(l pkgLog.Logger, llm *llmprovider.Manager) *implUseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
	}
}
