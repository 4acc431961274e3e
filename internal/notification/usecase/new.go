package usecase

import (
	"time"

	taskRepo "ai-task-manager/internal/task/repository"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/mailer"
)

type implUseCase struct {
	l      log.Logger
	repo   taskRepo.TaskRepository
	mailer mailer.Mailer // optional, nil when SMTP is not configured
	now    func() time.Time
}

// New creates the notification UseCase implementation.
func New(l log.Logger, repo taskRepo.TaskRepository, m mailer.Mailer) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		mailer: m,
		now:    time.Now,
	}
}
