package admin

import (
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
)

// --- UseCase Inputs ---

type ListUsersInput struct {
	Page     int
	PageSize int
}

// UpdateUserInput carries a partial account update; nil fields are untouched.
type UpdateUserInput struct {
	ID        string
	FullName  *string
	Role      *model.Role
	AvatarURL *string
}

// --- UseCase Outputs ---

// UserRow is an account plus its task count, as shown in the admin table.
type UserRow struct {
	User      model.User
	TaskCount int
}

type ListUsersOutput struct {
	Users    []UserRow
	Total    int
	Page     int
	PageSize int
	HasMore  bool
}

type UserDetailOutput struct {
	User      model.User
	TaskCount int
}

type UpdateUserOutput struct {
	User model.User
}

// StatsOutput is the admin dashboard: user counts plus task aggregates
// across every account.
type StatsOutput struct {
	TotalUsers int
	TotalTasks int
	Summary    stats.Summary
	ByStatus   []stats.CategoryDatum
	ByPriority []stats.CategoryDatum
}
