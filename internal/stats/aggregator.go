// Package stats derives dashboard figures from an in-memory task snapshot.
// Every function here is pure: no I/O, no mutation of the input, and the
// evaluation time is injected so results are reproducible in tests.
package stats

import (
	"time"

	"ai-task-manager/internal/model"
)

// ComputeSummary counts tasks per status bucket in a single pass.
//
// A task with a status outside the modeled enum (e.g. archived) is counted in
// Total but in none of the three buckets, so Completed+InProgress+Todo <= Total.
// Overdue is an overlay, not a fourth bucket: any non-completed task whose due
// date is strictly before now counts, regardless of its status bucket.
func ComputeSummary(tasks []model.Task, now time.Time) Summary {
	s := Summary{Total: len(tasks)}

	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusTodo:
			s.Todo++
		}

		if t.DueDate != nil && t.Status != model.StatusCompleted && t.DueDate.Before(now) {
			s.Overdue++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}

	return s
}

// StatusDistribution shapes a summary into the fixed-order series the donut
// chart expects: Completed, In Progress, To Do, Overdue.
func StatusDistribution(s Summary) []CategoryDatum {
	return []CategoryDatum{
		{Name: "Completed", Value: s.Completed, Color: ColorCompleted},
		{Name: "In Progress", Value: s.InProgress, Color: ColorInProgress},
		{Name: "To Do", Value: s.Todo, Color: ColorTodo},
		{Name: "Overdue", Value: s.Overdue, Color: ColorOverdue},
	}
}

// PriorityDistribution counts tasks per priority in the fixed order
// Urgent, High, Medium, Low. A task counts toward at most one bucket;
// unrecognized priorities are silently excluded.
func PriorityDistribution(tasks []model.Task) []CategoryDatum {
	var urgent, high, medium, low int
	for _, t := range tasks {
		switch t.Priority {
		case model.PriorityUrgent:
			urgent++
		case model.PriorityHigh:
			high++
		case model.PriorityMedium:
			medium++
		case model.PriorityLow:
			low++
		}
	}

	return []CategoryDatum{
		{Name: "Urgent", Value: urgent, Color: ColorUrgent},
		{Name: "High", Value: high, Color: ColorHigh},
		{Name: "Medium", Value: medium, Color: ColorMedium},
		{Name: "Low", Value: low, Color: ColorLow},
	}
}
