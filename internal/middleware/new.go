package middleware

import (
	"ai-task-manager/config"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     *config.Config
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
	}
}
