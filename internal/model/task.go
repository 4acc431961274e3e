package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusArchived   TaskStatus = "archived"
)

// Valid reports whether s is one of the accepted statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// TaskPriority is the urgency bucket of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Valid reports whether p is one of the accepted priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a unit of work owned by a user.
type Task struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	Status       TaskStatus
	Priority     TaskPriority
	Category     string
	Tags         []string
	DueDate      *time.Time
	CompletedAt  *time.Time
	AIGenerated  bool
	// CalendarEventID ties the task to its mirrored calendar event, empty
	// when the due date was never synced.
	CalendarEventID string
	ReminderSent    bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
