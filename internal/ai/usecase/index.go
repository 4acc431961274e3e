package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/model"
	"ai-task-manager/pkg/qdrant"
)

// IndexTask embeds a task and upserts it into the vector index.
// A no-op when semantic search is not configured.
func (uc *implUseCase) IndexTask(ctx context.Context, t model.Task) error {
	if uc.embedder == nil || uc.vectors == nil {
		return nil
	}

	text := t.Title
	if strings.TrimSpace(t.Description) != "" {
		text += "\n" + t.Description
	}

	vectors, err := uc.embedder.Embed(ctx, []string{text})
	if err != nil {
		uc.l.Errorf(ctx, "uc.IndexTask Embed: %v", err)
		return err
	}

	return uc.vectors.UpsertPoints(ctx, uc.collection, qdrant.UpsertPointsRequest{
		Points: []qdrant.Point{{
			ID:     t.ID,
			Vector: vectors[0],
			Payload: map[string]interface{}{
				"user_id": t.UserID,
				"title":   t.Title,
			},
		}},
	})
}

// RemoveTask drops a task from the vector index.
func (uc *implUseCase) RemoveTask(ctx context.Context, taskID string) error {
	if uc.vectors == nil {
		return nil
	}
	return uc.vectors.DeletePoints(ctx, uc.collection, qdrant.DeletePointsRequest{
		Points: []string{taskID},
	})
}
