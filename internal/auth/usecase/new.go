package usecase

import (
	"ai-task-manager/internal/auth/repository"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/scope"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	jwtManager scope.Manager
}

// New creates the auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, jwtManager scope.Manager) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
	}
}
