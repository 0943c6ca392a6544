package http

import (
	"career-roadmap-generator/internal/roadmap"
	"career-roadmap-generator/pkg/log"
)

// Handler is the public interface for the roadmap HTTP delivery layer.
type Handler interface {
	Generate(c interface{})
	ParseTime(c interface{})
	CareerOptions(c interface{})
	TimeFormats(c interface{})
	TestLLM(c interface{})
}

type handler struct {
	l  log.Logger
	uc roadmap.UseCase
}

// New creates a new HTTP handler for the roadmap domain.
func New(l log.Logger, uc roadmap.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
