package usecase

import (
	"context"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
	"ai-task-manager/internal/task"
	repo "ai-task-manager/internal/task/repository"
)

// Stats derives the dashboard aggregates from the caller's full task list.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope, input task.StatsInput) (task.StatsOutput, error) {
	tasks, err := uc.repo.ListAllTasks(ctx, repo.ListAllTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListAllTasks: %v", err)
		return task.StatsOutput{}, err
	}

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}
	seed := input.Seed
	if seed == 0 {
		seed = stats.DefaultWeeklySeed
	}

	key := stats.Fingerprint(sc.UserID, tasks)
	summary := uc.statsCache.Summarize(key, tasks, now)

	return task.StatsOutput{
		Summary:        summary,
		ByStatus:       stats.StatusDistribution(summary),
		ByPriority:     stats.PriorityDistribution(tasks),
		WeeklyActivity: stats.WeeklySeries(seed),
	}, nil
}
