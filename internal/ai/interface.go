package ai

import (
	"context"

	"ai-task-manager/internal/model"
)

// UseCase is the AI assistant API: natural-language task capture,
// suggestions, description enhancement, and semantic search.
type UseCase interface {
	ParseTask(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
	SuggestTasks(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)
	EnhanceDescription(ctx context.Context, sc model.Scope, input EnhanceInput) (EnhanceOutput, error)
	SemanticSearch(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)

	// IndexTask and RemoveTask keep the vector index in sync with task
	// writes. The task use case calls them through its Indexer hook.
	IndexTask(ctx context.Context, t model.Task) error
	RemoveTask(ctx context.Context, taskID string) error
}
