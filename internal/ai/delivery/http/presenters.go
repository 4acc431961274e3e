package http

import (
	"time"

	"ai-task-manager/internal/ai"
	"ai-task-manager/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

func (r parseReq) toInput() ai.ParseInput {
	return ai.ParseInput{Text: r.Text}
}

type suggestReq struct {
	Count int `json:"count" binding:"omitempty,min=1,max=10"`
}

func (r suggestReq) toInput() ai.SuggestInput {
	return ai.SuggestInput{Count: r.Count}
}

type enhanceReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

func (r enhanceReq) toInput() ai.EnhanceInput {
	return ai.EnhanceInput{Title: r.Title, Description: r.Description}
}

type searchReq struct {
	Query string `json:"query" binding:"required,min=1,max=500"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=50"`
}

func (r searchReq) toInput() ai.SearchInput {
	return ai.SearchInput{Query: r.Query, Limit: r.Limit}
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
	AIGenerated bool       `json:"ai_generated"`
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
		AIGenerated: t.AIGenerated,
	}
}

type parseResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newParseResp(out ai.ParseOutput) parseResp {
	return parseResp{Task: newTaskResp(out.Task)}
}

type suggestResp struct {
	Suggestions []ai.Suggestion `json:"suggestions"`
	Provider    string          `json:"provider"`
	Model       string          `json:"model"`
}

func (h *handler) newSuggestResp(out ai.SuggestOutput) suggestResp {
	return suggestResp{
		Suggestions: out.Suggestions,
		Provider:    out.Provider,
		Model:       out.Model,
	}
}

type enhanceResp struct {
	Description string `json:"description"`
	Provider    string `json:"provider"`
	Model       string `json:"model"`
}

func (h *handler) newEnhanceResp(out ai.EnhanceOutput) enhanceResp {
	return enhanceResp{
		Description: out.Description,
		Provider:    out.Provider,
		Model:       out.Model,
	}
}

type searchHitResp struct {
	Task  taskResp `json:"task"`
	Score float32  `json:"score"`
}

type searchResp struct {
	Results []searchHitResp `json:"results"`
}

func (h *handler) newSearchResp(out ai.SearchOutput) searchResp {
	results := make([]searchHitResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = searchHitResp{Task: newTaskResp(r.Task), Score: r.Score}
	}
	return searchResp{Results: results}
}
