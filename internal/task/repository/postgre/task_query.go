package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	repo "ai-task-manager/internal/task/repository"
)

// prefixedTaskColumns renders the task column list with a table alias,
// for queries that join other tables.
func prefixedTaskColumns(alias string) string {
	cols := strings.Split(taskColumns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}

// buildGetOneQuery renders the WHERE clause for GetOneTask.
func buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conds []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		conds = append(conds, "TRUE")
	}

	return strings.Join(conds, " AND "), args
}

// buildListFilter renders the WHERE clause shared by the count and page
// queries of ListTasks.
func buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	conds := []string{}
	var args []any

	args = append(args, opt.UserID)
	conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))

	if opt.Status != "" {
		args = append(args, opt.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if opt.Priority != "" {
		args = append(args, opt.Priority)
		conds = append(conds, fmt.Sprintf("priority = $%d", len(args)))
	}
	if opt.Category != "" {
		args = append(args, opt.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// buildUpdateQuery renders the SET clause for a partial update.
// updated_at is always touched.
func buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if opt.Title != nil {
		add("title", *opt.Title)
	}
	if opt.Description != nil {
		add("description", nullStr(*opt.Description))
	}
	if opt.Status != nil {
		add("status", *opt.Status)
	}
	if opt.Priority != nil {
		add("priority", *opt.Priority)
	}
	if opt.Category != nil {
		add("category", nullStr(*opt.Category))
	}
	if opt.Tags != nil {
		add("tags", pq.Array(opt.Tags))
	}
	if opt.DueDate != nil {
		add("due_date", *opt.DueDate)
	}
	if opt.CompletedAt != nil {
		add("completed_at", *opt.CompletedAt)
	}
	if opt.CalendarEventID != nil {
		add("calendar_event_id", nullStr(*opt.CalendarEventID))
	}

	if len(sets) == 0 {
		return "", nil
	}

	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", "), args
}
