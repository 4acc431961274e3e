package http

import (
	"time"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
	"ai-task-manager/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Status      string     `json:"status"      binding:"omitempty,oneof=todo in_progress completed archived"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Category    string     `json:"category"    binding:"max=100"`
	Tags        []string   `json:"tags"`
	DueDate     *time.Time `json:"due_date"`
	AIGenerated bool       `json:"ai_generated"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(r.Status),
		Priority:    model.TaskPriority(r.Priority),
		Category:    r.Category,
		Tags:        r.Tags,
		DueDate:     r.DueDate,
		AIGenerated: r.AIGenerated,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   r.Status,
		Priority: r.Priority,
		Category: r.Category,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *string    `json:"status"      binding:"omitempty,oneof=todo in_progress completed archived"`
	Priority    *string    `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Category    *string    `json:"category"    binding:"omitempty,max=100"`
	Tags        []string   `json:"tags"`
	DueDate     *time.Time `json:"due_date"`
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Tags:        r.Tags,
		DueDate:     r.DueDate,
	}
	if r.Status != nil {
		s := model.TaskStatus(*r.Status)
		input.Status = &s
	}
	if r.Priority != nil {
		p := model.TaskPriority(*r.Priority)
		input.Priority = &p
	}
	return input
}

// ---

type statsReq struct {
	Seed int64 `form:"seed"`
}

func (r statsReq) toInput() task.StatsInput {
	return task.StatsInput{Seed: r.Seed}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	AIGenerated bool       `json:"ai_generated"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Category:    t.Category,
		Tags:        t.Tags,
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		AIGenerated: t.AIGenerated,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks    []taskResp `json:"tasks"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	HasMore  bool       `json:"has_more"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:    tasks,
		Total:    out.Total,
		Page:     out.Page,
		PageSize: out.PageSize,
		HasMore:  out.HasMore,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type statsResp struct {
	Summary        stats.Summary         `json:"summary"`
	ByStatus       []stats.CategoryDatum `json:"by_status"`
	ByPriority     []stats.CategoryDatum `json:"by_priority"`
	WeeklyActivity []stats.WeeklyDatum   `json:"weekly_activity"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Summary:        out.Summary,
		ByStatus:       out.ByStatus,
		ByPriority:     out.ByPriority,
		WeeklyActivity: out.WeeklyActivity,
	}
}
