package admin

import (
	"context"

	"ai-task-manager/internal/model"
)

// UseCase is the admin surface. Every operation requires an admin scope;
// the middleware enforces it, the use case re-checks.
type UseCase interface {
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	ListUsers(ctx context.Context, sc model.Scope, input ListUsersInput) (ListUsersOutput, error)
	UserDetail(ctx context.Context, sc model.Scope, id string) (UserDetailOutput, error)
	UpdateUser(ctx context.Context, sc model.Scope, input UpdateUserInput) (UpdateUserOutput, error)
	DeleteUser(ctx context.Context, sc model.Scope, id string) error
}
