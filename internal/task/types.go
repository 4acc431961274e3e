package task

import (
	"time"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	Category    string
	Tags        []string
	DueDate     *time.Time
	AIGenerated bool
}

type ListInput struct {
	Status   string
	Priority string
	Category string
	Page     int
	PageSize int
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Status      *model.TaskStatus
	Priority    *model.TaskPriority
	Category    *string
	Tags        []string
	DueDate     *time.Time
}

// StatsInput controls the dashboard derivation. Now and Seed are optional;
// zero values mean "current time" and the default display seed.
type StatsInput struct {
	Now  time.Time
	Seed int64
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks    []model.Task
	Total    int
	Page     int
	PageSize int
	HasMore  bool
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

// StatsOutput bundles everything the analytics page renders.
type StatsOutput struct {
	Summary        stats.Summary
	ByStatus       []stats.CategoryDatum
	ByPriority     []stats.CategoryDatum
	WeeklyActivity []stats.WeeklyDatum
}
