package repository

import "ai-task-manager/internal/model"

// CreateUserOptions holds parameters for inserting a new account.
type CreateUserOptions struct {
	Email        string
	PasswordHash string
	FullName     string
	Role         model.Role
}

// GetOneUserOptions holds filter parameters for fetching a single user.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// ListUsersOptions holds pagination parameters for the admin user list.
type ListUsersOptions struct {
	Limit  int
	Offset int
}

// UpdateUserOptions holds parameters for a partial account update; nil
// fields are not touched.
type UpdateUserOptions struct {
	ID        string
	FullName  *string
	Role      *model.Role
	AvatarURL *string
}
