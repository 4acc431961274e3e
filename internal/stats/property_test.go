package stats_test

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
)

func genTask(t *rapid.T) model.Task {
	statuses := []model.TaskStatus{
		model.StatusTodo, model.StatusInProgress, model.StatusCompleted,
		model.StatusArchived, model.TaskStatus("bogus"),
	}
	priorities := []model.TaskPriority{
		model.PriorityLow, model.PriorityMedium, model.PriorityHigh,
		model.PriorityUrgent, model.TaskPriority("unknown"),
	}

	task := model.Task{
		Status:   rapid.SampledFrom(statuses).Draw(t, "status"),
		Priority: rapid.SampledFrom(priorities).Draw(t, "priority"),
	}

	if rapid.Bool().Draw(t, "hasDue") {
		offset := rapid.Int64Range(-720, 720).Draw(t, "dueOffsetHours")
		due := now.Add(time.Duration(offset) * time.Hour)
		task.DueDate = &due
	}

	return task
}

func TestSummaryInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 50).Draw(rt, "n")
		tasks := make([]model.Task, n)
		for i := range tasks {
			tasks[i] = genTask(rt)
		}

		s := stats.ComputeSummary(tasks, now)

		if s.Total != len(tasks) {
			rt.Fatalf("Total = %d, want %d", s.Total, len(tasks))
		}
		if s.Completed+s.InProgress+s.Todo > s.Total {
			rt.Fatalf("bucket sum %d exceeds total %d",
				s.Completed+s.InProgress+s.Todo, s.Total)
		}
		if s.CompletionRate < 0 || s.CompletionRate > 100 {
			rt.Fatalf("CompletionRate %v outside [0,100]", s.CompletionRate)
		}
		if len(tasks) == 0 && s.CompletionRate != 0 {
			rt.Fatalf("CompletionRate %v for empty input, want 0", s.CompletionRate)
		}
		if s.Overdue > s.Total-s.Completed {
			rt.Fatalf("Overdue %d exceeds non-completed count %d",
				s.Overdue, s.Total-s.Completed)
		}
	})
}

func TestPriorityDistributionInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 50).Draw(rt, "n")
		tasks := make([]model.Task, n)
		for i := range tasks {
			tasks[i] = genTask(rt)
		}

		dist := stats.PriorityDistribution(tasks)

		sum := 0
		for _, d := range dist {
			if d.Value < 0 {
				rt.Fatalf("%s has negative count %d", d.Name, d.Value)
			}
			sum += d.Value
		}
		// Unknown priorities are dropped, so bucket sum never exceeds input size.
		if sum > len(tasks) {
			rt.Fatalf("bucket sum %d exceeds input size %d", sum, len(tasks))
		}
	})
}
