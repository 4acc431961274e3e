package http

import (
	"ai-task-manager/internal/ai"
	"ai-task-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the AI assistant domain.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
