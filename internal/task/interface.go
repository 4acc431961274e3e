package task

import (
	"context"

	"ai-task-manager/internal/model"
)

// UseCase is the task domain API. Every operation is scoped to the
// authenticated caller; a user can never see or touch another user's tasks.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Stats(ctx context.Context, sc model.Scope, input StatsInput) (StatsOutput, error)
}
