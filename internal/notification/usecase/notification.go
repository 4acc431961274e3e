package usecase

import (
	"context"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/notification"
	taskRepo "ai-task-manager/internal/task/repository"
)

// SendReminder mails the caller a reminder for one of their tasks.
func (uc *implUseCase) SendReminder(ctx context.Context, sc model.Scope, input notification.SendReminderInput) (notification.SendReminderOutput, error) {
	if uc.mailer == nil {
		return notification.SendReminderOutput{}, notification.ErrMailerUnavailable
	}

	t, err := uc.repo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: input.TaskID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendReminder GetOneTask: %v", err)
		return notification.SendReminderOutput{}, err
	}
	if t.ID == "" {
		return notification.SendReminderOutput{}, notification.ErrTaskNotFound
	}

	if err := uc.mailer.SendTaskReminder(ctx, sc.Email, t); err != nil {
		uc.l.Errorf(ctx, "uc.SendReminder SendTaskReminder: %v", err)
		return notification.SendReminderOutput{}, err
	}

	return notification.SendReminderOutput{Task: t, To: sc.Email}, nil
}

// TestEmail sends a throwaway reminder to verify mail settings.
func (uc *implUseCase) TestEmail(ctx context.Context, sc model.Scope) error {
	if uc.mailer == nil {
		return notification.ErrMailerUnavailable
	}

	due := uc.now()
	sample := model.Task{
		Title:       "Test reminder",
		Description: "If you can read this, email notifications are working.",
		Status:      model.StatusTodo,
		Priority:    model.PriorityLow,
		DueDate:     &due,
	}

	if err := uc.mailer.SendTaskReminder(ctx, sc.Email, sample); err != nil {
		uc.l.Errorf(ctx, "uc.TestEmail SendTaskReminder: %v", err)
		return err
	}
	return nil
}
