package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ai-task-manager/internal/model"
	repo "ai-task-manager/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, status, priority, category, tags,
	due_date, completed_at, ai_generated, calendar_event_id, reminder_sent, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var description, category, calendarEventID sql.NullString
	var dueDate, completedAt sql.NullTime

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &description, &t.Status, &t.Priority,
		&category, pq.Array(&t.Tags), &dueDate, &completedAt,
		&t.AIGenerated, &calendarEventID, &t.ReminderSent, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Description = description.String
	t.Category = category.String
	t.CalendarEventID = calendarEventID.String
	if dueDate.Valid {
		t.DueDate = &dueDate.Time
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}
	return t, nil
}

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, title, description, status, priority, category, tags,
			due_date, ai_generated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s`, taskColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, nullStr(opt.Description),
		opt.Status, opt.Priority, nullStr(opt.Category), pq.Array(opt.Tags),
		nullTime(opt.DueDate), opt.AIGenerated,
	)

	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns a zero-value Task (ID == "") when not found — not-found is not an error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns one page of tasks plus the unpaginated total.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := buildListFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		taskColumns, where, len(args)+1, len(args)+2)
	args = append(args, opt.Limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, total, nil
}

// ListAllTasks returns every task matching the filter, newest first.
func (r *implRepository) ListAllTasks(ctx context.Context, opt repo.ListAllTasksOptions) ([]model.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks", taskColumns)
	var args []any
	if opt.UserID != "" {
		query += " WHERE user_id = $1"
		args = append(args, opt.UserID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAllTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// UpdateTask applies a partial update and returns the updated entity.
// Returns a zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	sets, args := buildUpdateQuery(opt)
	if len(sets) == 0 {
		return model.Task{}, repo.ErrFailedToUpdate
	}

	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		sets, len(args)+1, len(args)+2, taskColumns)
	args = append(args, opt.ID, opt.UserID)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task owned by userID.
func (r *implRepository) DeleteTask(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteTasksByUser removes every task owned by userID (admin cascade).
func (r *implRepository) DeleteTasksByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM tasks WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTasksByUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountTasksByUser returns a user_id -> task count map across all users.
func (r *implRepository) CountTasksByUser(ctx context.Context) (map[string]int, error) {
	const query = `SELECT user_id, COUNT(*) FROM tasks GROUP BY user_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasksByUser"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var userID string
		var n int
		if err := rows.Scan(&userID, &n); err != nil {
			return nil, repo.ErrFailedToList
		}
		counts[userID] = n
	}
	return counts, nil
}

// ListDueReminders returns tasks due within [from, to) that still need a reminder.
func (r *implRepository) ListDueReminders(ctx context.Context, opt repo.ListDueRemindersOptions) ([]repo.DueReminder, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.email
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		WHERE t.due_date >= $1 AND t.due_date < $2
		  AND t.status != 'completed'
		  AND t.reminder_sent = FALSE`, prefixedTaskColumns("t"))

	rows, err := r.db.QueryContext(ctx, query, opt.From, opt.To)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDueReminders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var reminders []repo.DueReminder
	for rows.Next() {
		var t model.Task
		var description, category, calendarEventID sql.NullString
		var dueDate, completedAt sql.NullTime
		var email string

		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &description, &t.Status, &t.Priority,
			&category, pq.Array(&t.Tags), &dueDate, &completedAt,
			&t.AIGenerated, &calendarEventID, &t.ReminderSent, &t.CreatedAt, &t.UpdatedAt,
			&email,
		)
		if err != nil {
			return nil, repo.ErrFailedToList
		}

		t.Description = description.String
		t.Category = category.String
		t.CalendarEventID = calendarEventID.String
		if dueDate.Valid {
			t.DueDate = &dueDate.Time
		}
		if completedAt.Valid {
			t.CompletedAt = &completedAt.Time
		}
		reminders = append(reminders, repo.DueReminder{Task: t, Email: email})
	}
	return reminders, nil
}

// MarkReminderSent flags a task so the scheduler does not remind twice.
func (r *implRepository) MarkReminderSent(ctx context.Context, taskID string) error {
	const query = `UPDATE tasks SET reminder_sent = TRUE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, taskID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkReminderSent"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
