package notification

import (
	"context"

	"ai-task-manager/internal/model"
)

// UseCase sends task emails on demand. The scheduler handles the
// automatic ones; these are the user-triggered paths.
type UseCase interface {
	// SendReminder mails the caller a reminder for one of their tasks.
	SendReminder(ctx context.Context, sc model.Scope, input SendReminderInput) (SendReminderOutput, error)
	// TestEmail sends a throwaway reminder so the user can verify their
	// mail settings.
	TestEmail(ctx context.Context, sc model.Scope) error
}
