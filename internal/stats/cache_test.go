package stats_test

import (
	"testing"
	"time"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
)

func TestCacheSummarize(t *testing.T) {
	cache, err := stats.NewCache(8)
	if err != nil {
		t.Fatalf("unexpected error creating cache: %v", err)
	}

	tasks := []model.Task{
		{Status: model.StatusCompleted, UpdatedAt: now},
		{Status: model.StatusTodo, UpdatedAt: now.Add(-time.Hour)},
	}
	key := stats.Fingerprint("user-1", tasks)

	first := cache.Summarize(key, tasks, now)
	if first.Total != 2 || first.Completed != 1 {
		t.Fatalf("unexpected summary: %+v", first)
	}

	// Second call hits the cache: even with different input, the same key
	// returns the memoized summary.
	second := cache.Summarize(key, nil, now)
	if second != first {
		t.Errorf("cache miss for identical key: %+v vs %+v", second, first)
	}

	cache.Invalidate(key)
	third := cache.Summarize(key, nil, now)
	if third.Total != 0 {
		t.Errorf("expected recomputed summary after invalidation, got %+v", third)
	}
}

func TestFingerprintChangesWithSnapshot(t *testing.T) {
	base := []model.Task{{ID: "a", UpdatedAt: now}}

	grown := append([]model.Task{}, base...)
	grown = append(grown, model.Task{ID: "b", UpdatedAt: now})

	touched := []model.Task{{ID: "a", UpdatedAt: now.Add(time.Minute)}}

	k1 := stats.Fingerprint("u", base)
	if k2 := stats.Fingerprint("u", grown); k2 == k1 {
		t.Errorf("fingerprint did not change when a task was added")
	}
	if k3 := stats.Fingerprint("u", touched); k3 == k1 {
		t.Errorf("fingerprint did not change when a task was updated")
	}
	if k4 := stats.Fingerprint("other", base); k4 == k1 {
		t.Errorf("fingerprint collides across users")
	}
}
