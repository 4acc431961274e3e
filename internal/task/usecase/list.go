package usecase

import (
	"context"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
	repo "ai-task-manager/internal/task/repository"
)

// List returns one page of the caller's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Status:   input.Status,
		Priority: input.Priority,
		Category: input.Category,
		Limit:    pageSize,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:    tasks,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  offset+len(tasks) < total,
	}, nil
}
