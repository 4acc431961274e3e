package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ai-task-manager/internal/model"
	repo "ai-task-manager/internal/auth/repository"
)

const userColumns = `id, email, password_hash, full_name, role, avatar_url, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	var fullName, avatarURL sql.NullString

	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &fullName, &u.Role,
		&avatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}

	u.FullName = fullName.String
	u.AvatarURL = avatarURL.String
	return u, nil
}

// CreateUser inserts a new account row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, password_hash, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, userColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), strings.ToLower(opt.Email), opt.PasswordHash,
		nullStr(opt.FullName), opt.Role,
	)

	u, err := scanUser(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single user by the provided filters (AND condition).
// Returns a zero-value User (ID == "") when not found — not-found is not an error.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conds []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, strings.ToLower(opt.Email))
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conds) == 0 {
		conds = append(conds, "TRUE")
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1",
		userColumns, strings.Join(conds, " AND "))

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns one page of accounts plus the unpaginated total.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2", userColumns)

	rows, err := r.db.QueryContext(ctx, query, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		users = append(users, u)
	}
	return users, total, nil
}

// UpdateUser applies a partial update and returns the updated entity.
// Returns a zero-value User when the row does not exist.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if opt.FullName != nil {
		add("full_name", nullStr(*opt.FullName))
	}
	if opt.Role != nil {
		add("role", *opt.Role)
	}
	if opt.AvatarURL != nil {
		add("avatar_url", nullStr(*opt.AvatarURL))
	}
	if len(sets) == 0 {
		return model.User{}, repo.ErrFailedToUpdate
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args)+1, userColumns)
	args = append(args, opt.ID)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

// DeleteUser removes an account row.
func (r *implRepository) DeleteUser(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
