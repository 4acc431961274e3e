package repository

import (
	"time"

	"ai-task-manager/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	Category    string
	Tags        []string
	DueDate     *time.Time
	AIGenerated bool
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
type ListTasksOptions struct {
	UserID   string
	Status   string
	Priority string
	Category string
	Limit    int
	Offset   int
}

// ListAllTasksOptions holds filters for an unpaginated listing.
// An empty UserID means all users (admin surface only).
type ListAllTasksOptions struct {
	UserID string
}

// UpdateTaskOptions holds parameters for a partial update; nil fields are
// not touched.
type UpdateTaskOptions struct {
	ID              string
	UserID          string
	Title           *string
	Description     *string
	Status          *model.TaskStatus
	Priority        *model.TaskPriority
	Category        *string
	Tags            []string
	DueDate         *time.Time
	CompletedAt     *time.Time
	CalendarEventID *string
}

// ListDueRemindersOptions bounds the reminder window.
type ListDueRemindersOptions struct {
	From time.Time
	To   time.Time
}

// DueReminder pairs a due task with its owner's email address.
type DueReminder struct {
	Task  model.Task
	Email string
}
