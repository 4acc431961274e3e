package http

import (
	"time"

	"ai-task-manager/internal/admin"
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
)

// --- Request DTOs ---

type listUsersReq struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (r listUsersReq) toInput() admin.ListUsersInput {
	return admin.ListUsersInput{Page: r.Page, PageSize: r.PageSize}
}

type updateUserReq struct {
	ID        string  `json:"-"` // populated from URI param
	FullName  *string `json:"full_name"  binding:"omitempty,max=255"`
	Role      *string `json:"role"       binding:"omitempty,oneof=user admin"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=512"`
}

func (r updateUserReq) toInput() admin.UpdateUserInput {
	input := admin.UpdateUserInput{ID: r.ID, FullName: r.FullName, AvatarURL: r.AvatarURL}
	if r.Role != nil {
		role := model.Role(*r.Role)
		input.Role = &role
	}
	return input
}

// --- Response DTOs ---

type userRowResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	TaskCount int       `json:"task_count"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserRowResp(u model.User, taskCount int) userRowResp {
	return userRowResp{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		TaskCount: taskCount,
		CreatedAt: u.CreatedAt,
	}
}

type listUsersResp struct {
	Users    []userRowResp `json:"users"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	HasMore  bool          `json:"has_more"`
}

func (h *handler) newListUsersResp(out admin.ListUsersOutput) listUsersResp {
	users := make([]userRowResp, len(out.Users))
	for i, row := range out.Users {
		users[i] = newUserRowResp(row.User, row.TaskCount)
	}
	return listUsersResp{
		Users:    users,
		Total:    out.Total,
		Page:     out.Page,
		PageSize: out.PageSize,
		HasMore:  out.HasMore,
	}
}

type userDetailResp struct {
	User userRowResp `json:"user"`
}

func (h *handler) newUserDetailResp(out admin.UserDetailOutput) userDetailResp {
	return userDetailResp{User: newUserRowResp(out.User, out.TaskCount)}
}

type updateUserResp struct {
	User userRowResp `json:"user"`
}

func (h *handler) newUpdateUserResp(out admin.UpdateUserOutput) updateUserResp {
	return updateUserResp{User: newUserRowResp(out.User, 0)}
}

type statsResp struct {
	TotalUsers int                   `json:"total_users"`
	TotalTasks int                   `json:"total_tasks"`
	Summary    stats.Summary         `json:"summary"`
	ByStatus   []stats.CategoryDatum `json:"by_status"`
	ByPriority []stats.CategoryDatum `json:"by_priority"`
}

func (h *handler) newStatsResp(out admin.StatsOutput) statsResp {
	return statsResp{
		TotalUsers: out.TotalUsers,
		TotalTasks: out.TotalTasks,
		Summary:    out.Summary,
		ByStatus:   out.ByStatus,
		ByPriority: out.ByPriority,
	}
}
