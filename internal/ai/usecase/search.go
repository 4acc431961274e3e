package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/ai"
	"ai-task-manager/internal/model"
	"ai-task-manager/pkg/qdrant"
)

// SemanticSearch finds the caller's tasks nearest to the query by meaning.
func (uc *implUseCase) SemanticSearch(ctx context.Context, sc model.Scope, input ai.SearchInput) (ai.SearchOutput, error) {
	if uc.embedder == nil || uc.vectors == nil {
		return ai.SearchOutput{}, ai.ErrSearchUnavailable
	}
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return ai.SearchOutput{}, ai.ErrEmptyQuery
	}
	limit := input.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	vectors, err := uc.embedder.Embed(ctx, []string{query})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SemanticSearch Embed: %v", err)
		return ai.SearchOutput{}, err
	}

	hits, err := uc.vectors.Search(ctx, uc.collection, qdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
		Filter: &qdrant.Filter{
			Must: []qdrant.FieldMatch{
				{Key: "user_id", Match: qdrant.MatchValue{Value: sc.UserID}},
			},
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SemanticSearch Search: %v", err)
		return ai.SearchOutput{}, err
	}

	results := make([]ai.SearchResult, 0, len(hits))
	for _, hit := range hits {
		// The index can lag behind deletes; skip anything the task store
		// no longer has.
		detail, err := uc.taskUC.Detail(ctx, sc, hit.ID)
		if err != nil {
			continue
		}
		results = append(results, ai.SearchResult{Task: detail.Task, Score: hit.Score})
	}

	return ai.SearchOutput{Results: results}, nil
}
