package model

import "time"

// TaskAction describes what happened to a task.
type TaskAction string

const (
	TaskCreated TaskAction = "created"
	TaskUpdated TaskAction = "updated"
	TaskDeleted TaskAction = "deleted"
)

// TaskEvent is published whenever a task changes, so connected clients
// can refresh without polling.
type TaskEvent struct {
	UserID     string     `json:"user_id"`
	Action     TaskAction `json:"action"`
	TaskID     string     `json:"task_id"`
	Title      string     `json:"title,omitempty"`
	Status     TaskStatus `json:"status,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
