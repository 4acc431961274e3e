package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
	repo "ai-task-manager/internal/task/repository"
)

// Create validates and persists a new task, then notifies listeners.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	if input.Status == "" {
		input.Status = model.StatusTodo
	}
	if !input.Status.Valid() {
		return task.CreateOutput{}, task.ErrInvalidStatus
	}

	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !input.Priority.Valid() {
		return task.CreateOutput{}, task.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Category:    input.Category,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
		AIGenerated: input.AIGenerated,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	uc.notify(ctx, model.TaskCreated, created)
	uc.syncCalendar(ctx, created)
	uc.syncIndex(ctx, created)

	return task.CreateOutput{Task: created}, nil
}

// syncCalendar mirrors the due date into the external calendar, best effort.
// The event ID is stored on the task so later edits rewrite the same event.
func (uc *implUseCase) syncCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	if t.CalendarEventID != "" {
		if err := uc.calendar.UpdateDueEvent(ctx, t.CalendarEventID, t); err != nil {
			uc.l.Warnf(ctx, "uc.syncCalendar update task=%s: %v", t.ID, err)
		}
		return
	}

	eventID, err := uc.calendar.CreateDueEvent(ctx, t)
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar create task=%s: %v", t.ID, err)
		return
	}
	if _, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              t.ID,
		UserID:          t.UserID,
		CalendarEventID: &eventID,
	}); err != nil {
		uc.l.Warnf(ctx, "uc.syncCalendar store event task=%s: %v", t.ID, err)
	}
}

// syncIndex keeps the semantic search index current, best effort.
func (uc *implUseCase) syncIndex(ctx context.Context, t model.Task) {
	if uc.indexer == nil {
		return
	}
	if err := uc.indexer.IndexTask(ctx, t); err != nil {
		uc.l.Warnf(ctx, "uc.syncIndex task=%s: %v", t.ID, err)
	}
}
