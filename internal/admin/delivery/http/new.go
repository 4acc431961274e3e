package http

import (
	"ai-task-manager/internal/admin"
	"ai-task-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc admin.UseCase
}

// New creates a new HTTP handler for the admin domain.
func New(l log.Logger, uc admin.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
