package repository

import (
	"context"

	"ai-task-manager/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
	ReminderRepository
}

// TaskRepository defines data access for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// ListAllTasks returns every task matching the filter without pagination.
	// Used by the stats derivation and the admin dashboard.
	ListAllTasks(ctx context.Context, opt ListAllTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id, userID string) error
	DeleteTasksByUser(ctx context.Context, userID string) error
	CountTasksByUser(ctx context.Context) (map[string]int, error)
}

// ReminderRepository defines data access for the due-date reminder loop.
type ReminderRepository interface {
	// ListDueReminders returns non-completed, not-yet-reminded tasks whose due
	// date falls within [from, to), joined with the owner's email address.
	ListDueReminders(ctx context.Context, opt ListDueRemindersOptions) ([]DueReminder, error)
	MarkReminderSent(ctx context.Context, taskID string) error
}
