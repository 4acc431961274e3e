package usecase

import (
	"time"

	authRepo "ai-task-manager/internal/auth/repository"
	taskRepo "ai-task-manager/internal/task/repository"
	"ai-task-manager/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	userRepo authRepo.Repository
	taskRepo taskRepo.Repository
	now      func() time.Time
}

// New creates the admin UseCase implementation.
func New(l log.Logger, userRepo authRepo.Repository, taskRepo taskRepo.Repository) *implUseCase {
	return &implUseCase{
		l:        l,
		userRepo: userRepo,
		taskRepo: taskRepo,
		now:      time.Now,
	}
}
