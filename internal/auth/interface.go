package auth

import (
	"context"

	"ai-task-manager/internal/model"
)

// UseCase is the account and session API.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (TokenOutput, error)
	Login(ctx context.Context, input LoginInput) (TokenOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (TokenOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
