package usecase

import (
	"context"
	"time"

	"ai-task-manager/internal/events"
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
	"ai-task-manager/internal/task/repository"
	"ai-task-manager/pkg/log"
)

// Calendar mirrors task due dates into an external calendar.
// *gcalendar.Client satisfies this; tests use a stub.
type Calendar interface {
	CreateDueEvent(ctx context.Context, task model.Task) (string, error)
	UpdateDueEvent(ctx context.Context, eventID string, task model.Task) error
	DeleteDueEvent(ctx context.Context, eventID string) error
}

// Indexer keeps the semantic search index in sync with task writes.
type Indexer interface {
	IndexTask(ctx context.Context, t model.Task) error
	RemoveTask(ctx context.Context, taskID string) error
}

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	publisher  events.Publisher
	calendar   Calendar // optional, nil when not configured
	indexer    Indexer  // optional, nil when not configured
	statsCache *stats.Cache
	now        func() time.Time
}

// New creates the task UseCase implementation.
func New(l log.Logger, repo repository.Repository, publisher events.Publisher, calendar Calendar, statsCache *stats.Cache) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		publisher:  publisher,
		calendar:   calendar,
		statsCache: statsCache,
		now:        time.Now,
	}
}

// SetIndexer attaches the semantic search indexer. Set after construction
// because the AI use case is built on top of this one.
func (uc *implUseCase) SetIndexer(indexer Indexer) {
	uc.indexer = indexer
}
