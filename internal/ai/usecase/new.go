package usecase

import (
	"context"
	"time"

	"ai-task-manager/internal/task"
	"ai-task-manager/pkg/datemath"
	"ai-task-manager/pkg/llmprovider"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/qdrant"
	"ai-task-manager/pkg/voyage"
)

const defaultCollection = "tasks"

// Generator produces text completions. *llmprovider.Manager satisfies this.
type Generator interface {
	Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// VectorStore holds the task embedding index. *qdrant.Client satisfies this.
type VectorStore interface {
	UpsertPoints(ctx context.Context, collection string, req qdrant.UpsertPointsRequest) error
	Search(ctx context.Context, collection string, req qdrant.SearchRequest) ([]qdrant.ScoredPoint, error)
	DeletePoints(ctx context.Context, collection string, req qdrant.DeletePointsRequest) error
}

type implUseCase struct {
	l          log.Logger
	llm        Generator
	embedder   voyage.Embedder // optional, nil disables semantic search
	vectors    VectorStore     // optional, nil disables semantic search
	collection string
	taskUC     task.UseCase
	dates      *datemath.Parser
	now        func() time.Time
}

// New creates the AI UseCase implementation. embedder and vectors may be
// nil; semantic search then reports itself unavailable. An empty collection
// selects the default index name.
func New(l log.Logger, llm Generator, embedder voyage.Embedder, vectors VectorStore, taskUC task.UseCase, dates *datemath.Parser, collection string) *implUseCase {
	if collection == "" {
		collection = defaultCollection
	}
	return &implUseCase{
		l:          l,
		llm:        llm,
		embedder:   embedder,
		vectors:    vectors,
		collection: collection,
		taskUC:     taskUC,
		dates:      dates,
		now:        time.Now,
	}
}
