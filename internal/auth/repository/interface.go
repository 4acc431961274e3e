package repository

import (
	"context"

	"ai-task-manager/internal/model"
)

// Repository defines data access for the User entity. The admin surface
// shares it for account management.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]model.User, int, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	DeleteUser(ctx context.Context, id string) error
}
