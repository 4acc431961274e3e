package usecase

import (
	"context"

	"ai-task-manager/internal/admin"
	authRepo "ai-task-manager/internal/auth/repository"
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
	taskRepo "ai-task-manager/internal/task/repository"
)

// Stats derives the admin dashboard aggregates across all accounts.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (admin.StatsOutput, error) {
	if !sc.IsAdmin() {
		return admin.StatsOutput{}, admin.ErrForbidden
	}

	_, totalUsers, err := uc.userRepo.ListUsers(ctx, authRepo.ListUsersOptions{Limit: 1})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListUsers: %v", err)
		return admin.StatsOutput{}, err
	}

	tasks, err := uc.taskRepo.ListAllTasks(ctx, taskRepo.ListAllTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListAllTasks: %v", err)
		return admin.StatsOutput{}, err
	}

	summary := stats.ComputeSummary(tasks, uc.now())

	return admin.StatsOutput{
		TotalUsers: totalUsers,
		TotalTasks: summary.Total,
		Summary:    summary,
		ByStatus:   stats.StatusDistribution(summary),
		ByPriority: stats.PriorityDistribution(tasks),
	}, nil
}

// ListUsers returns one page of accounts with their task counts.
func (uc *implUseCase) ListUsers(ctx context.Context, sc model.Scope, input admin.ListUsersInput) (admin.ListUsersOutput, error) {
	if !sc.IsAdmin() {
		return admin.ListUsersOutput{}, admin.ErrForbidden
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	users, total, err := uc.userRepo.ListUsers(ctx, authRepo.ListUsersOptions{Limit: pageSize, Offset: offset})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListUsers ListUsers: %v", err)
		return admin.ListUsersOutput{}, err
	}

	counts, err := uc.taskRepo.CountTasksByUser(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListUsers CountTasksByUser: %v", err)
		return admin.ListUsersOutput{}, err
	}

	rows := make([]admin.UserRow, len(users))
	for i, u := range users {
		rows[i] = admin.UserRow{User: u, TaskCount: counts[u.ID]}
	}

	return admin.ListUsersOutput{
		Users:    rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  offset+len(users) < total,
	}, nil
}

// UserDetail returns one account with its task count.
func (uc *implUseCase) UserDetail(ctx context.Context, sc model.Scope, id string) (admin.UserDetailOutput, error) {
	if !sc.IsAdmin() {
		return admin.UserDetailOutput{}, admin.ErrForbidden
	}

	user, err := uc.userRepo.GetOneUser(ctx, authRepo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UserDetail GetOneUser: %v", err)
		return admin.UserDetailOutput{}, err
	}
	if user.ID == "" {
		return admin.UserDetailOutput{}, admin.ErrUserNotFound
	}

	counts, err := uc.taskRepo.CountTasksByUser(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UserDetail CountTasksByUser: %v", err)
		return admin.UserDetailOutput{}, err
	}

	return admin.UserDetailOutput{User: user, TaskCount: counts[user.ID]}, nil
}

// UpdateUser applies a partial update to an account.
func (uc *implUseCase) UpdateUser(ctx context.Context, sc model.Scope, input admin.UpdateUserInput) (admin.UpdateUserOutput, error) {
	if !sc.IsAdmin() {
		return admin.UpdateUserOutput{}, admin.ErrForbidden
	}
	if input.FullName == nil && input.Role == nil && input.AvatarURL == nil {
		return admin.UpdateUserOutput{}, admin.ErrNoFieldsToUpdate
	}
	if input.Role != nil && *input.Role != model.RoleUser && *input.Role != model.RoleAdmin {
		return admin.UpdateUserOutput{}, admin.ErrInvalidRole
	}

	user, err := uc.userRepo.UpdateUser(ctx, authRepo.UpdateUserOptions{
		ID:        input.ID,
		FullName:  input.FullName,
		Role:      input.Role,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateUser UpdateUser: %v", err)
		return admin.UpdateUserOutput{}, err
	}
	if user.ID == "" {
		return admin.UpdateUserOutput{}, admin.ErrUserNotFound
	}

	return admin.UpdateUserOutput{User: user}, nil
}

// DeleteUser removes an account and every task it owns.
func (uc *implUseCase) DeleteUser(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return admin.ErrForbidden
	}
	if id == sc.UserID {
		return admin.ErrCannotDeleteSelf
	}

	user, err := uc.userRepo.GetOneUser(ctx, authRepo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteUser GetOneUser: %v", err)
		return err
	}
	if user.ID == "" {
		return admin.ErrUserNotFound
	}

	if err := uc.taskRepo.DeleteTasksByUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteUser DeleteTasksByUser: %v", err)
		return err
	}
	if err := uc.userRepo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteUser DeleteUser: %v", err)
		return err
	}
	return nil
}
