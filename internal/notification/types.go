package notification

import "ai-task-manager/internal/model"

// SendReminderInput names the task to remind about.
type SendReminderInput struct {
	TaskID string
}

type SendReminderOutput struct {
	Task model.Task
	To   string
}
