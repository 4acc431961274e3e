// Package scheduler runs the due-date reminder loop: every interval it
// looks for tasks coming due inside the reminder window and emails their
// owners, marking each task so it is never reminded twice.
package scheduler

import (
	"context"
	"time"

	taskRepo "ai-task-manager/internal/task/repository"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/mailer"
)

type Scheduler struct {
	l        log.Logger
	repo     taskRepo.ReminderRepository
	mailer   mailer.Mailer
	interval time.Duration
	window   time.Duration
	now      func() time.Time
}

// New creates the reminder scheduler. interval defaults to a minute and
// window to an hour when unset.
func New(l log.Logger, repo taskRepo.ReminderRepository, m mailer.Mailer, interval, window time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if window <= 0 {
		window = time.Hour
	}
	return &Scheduler{
		l:        l,
		repo:     repo,
		mailer:   m,
		interval: interval,
		window:   window,
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled, ticking at the configured interval.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.l.Infof(ctx, "scheduler started: interval=%s window=%s", s.interval, s.window)

	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick processes one reminder pass. Failures on individual tasks are
// logged and skipped so one bad address cannot stall the rest.
func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()
	reminders, err := s.repo.ListDueReminders(ctx, taskRepo.ListDueRemindersOptions{
		From: now,
		To:   now.Add(s.window),
	})
	if err != nil {
		s.l.Errorf(ctx, "scheduler.tick ListDueReminders: %v", err)
		return
	}

	for _, reminder := range reminders {
		if err := s.mailer.SendTaskReminder(ctx, reminder.Email, reminder.Task); err != nil {
			s.l.Errorf(ctx, "scheduler.tick send task=%s: %v", reminder.Task.ID, err)
			continue
		}
		if err := s.repo.MarkReminderSent(ctx, reminder.Task.ID); err != nil {
			s.l.Errorf(ctx, "scheduler.tick mark task=%s: %v", reminder.Task.ID, err)
		}
	}

	if len(reminders) > 0 {
		s.l.Infof(ctx, "scheduler.tick processed %d reminders", len(reminders))
	}
}
