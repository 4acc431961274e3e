package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
	repo "ai-task-manager/internal/task/repository"
)

// Detail fetches one of the caller's tasks by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}

	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update to one of the caller's tasks.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return task.UpdateOutput{}, task.ErrEmptyTitle
	}
	if input.Status != nil && !input.Status.Valid() {
		return task.UpdateOutput{}, task.ErrInvalidStatus
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return task.UpdateOutput{}, task.ErrInvalidPriority
	}

	opt := repo.UpdateTaskOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Category:    input.Category,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
	}

	// Moving into completed stamps the completion time once.
	if input.Status != nil && *input.Status == model.StatusCompleted && existing.CompletedAt == nil {
		completedAt := uc.now()
		opt.CompletedAt = &completedAt
	}

	if opt.Title == nil && opt.Description == nil && opt.Status == nil &&
		opt.Priority == nil && opt.Category == nil && opt.Tags == nil &&
		opt.DueDate == nil && opt.CompletedAt == nil {
		return task.UpdateOutput{}, task.ErrNoFieldsToUpdate
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}

	uc.notify(ctx, model.TaskUpdated, updated)
	uc.syncCalendar(ctx, updated)
	uc.syncIndex(ctx, updated)

	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes one of the caller's tasks.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	uc.notify(ctx, model.TaskDeleted, existing)
	if uc.calendar != nil && existing.CalendarEventID != "" {
		if err := uc.calendar.DeleteDueEvent(ctx, existing.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete DeleteDueEvent: %v", err)
		}
	}
	if uc.indexer != nil {
		if err := uc.indexer.RemoveTask(ctx, id); err != nil {
			uc.l.Warnf(ctx, "uc.Delete RemoveTask: %v", err)
		}
	}

	return nil
}
