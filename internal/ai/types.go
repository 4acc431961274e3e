package ai

import (
	"ai-task-manager/internal/model"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
}

type SuggestInput struct {
	Count int
}

type EnhanceInput struct {
	Title       string
	Description string
}

type SearchInput struct {
	Query string
	Limit int
}

// --- UseCase Outputs ---

// ParseOutput is the task created from a natural-language description.
type ParseOutput struct {
	Task model.Task
}

// Suggestion is one proposed task. Nothing is persisted until the user
// accepts it through the normal create flow.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

type SuggestOutput struct {
	Suggestions []Suggestion
	Provider    string
	Model       string
}

type EnhanceOutput struct {
	Description string
	Provider    string
	Model       string
}

// SearchResult is one semantic search hit.
type SearchResult struct {
	Task  model.Task
	Score float32
}

type SearchOutput struct {
	Results []SearchResult
}
