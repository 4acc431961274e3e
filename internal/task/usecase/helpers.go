package usecase

import (
	"context"

	"ai-task-manager/internal/model"
)

// notify publishes a task event, logging instead of failing the operation
// when the broker is unavailable.
func (uc *implUseCase) notify(ctx context.Context, action model.TaskAction, t model.Task) {
	event := model.TaskEvent{
		UserID:     t.UserID,
		Action:     action,
		TaskID:     t.ID,
		Title:      t.Title,
		Status:     t.Status,
		OccurredAt: uc.now(),
	}
	if err := uc.publisher.PublishTaskEvent(ctx, event); err != nil {
		uc.l.Warnf(ctx, "uc.notify action=%s task=%s: %v", action, t.ID, err)
	}
}
