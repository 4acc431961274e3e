package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ai-task-manager/internal/admin"
	authRepo "ai-task-manager/internal/auth/repository"
	"ai-task-manager/internal/model"
	taskRepo "ai-task-manager/internal/task/repository"
	"ai-task-manager/pkg/log"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

var (
	scAdmin = model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
	scPlain = model.Scope{UserID: "user-1", Role: model.RoleUser}
)

type fakeUserRepo struct {
	users   []model.User
	deleted []string
}

func (f *fakeUserRepo) CreateUser(_ context.Context, opt authRepo.CreateUserOptions) (model.User, error) {
	u := model.User{ID: fmt.Sprintf("user-%d", len(f.users)+1), Email: opt.Email, Role: opt.Role}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetOneUser(_ context.Context, opt authRepo.GetOneUserOptions) (model.User, error) {
	for _, u := range f.users {
		if u.ID == opt.ID || (opt.Email != "" && u.Email == opt.Email) {
			return u, nil
		}
	}
	return model.User{}, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context, opt authRepo.ListUsersOptions) ([]model.User, int, error) {
	total := len(f.users)
	if opt.Offset >= total {
		return nil, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > total {
		end = total
	}
	return f.users[opt.Offset:end], total, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, opt authRepo.UpdateUserOptions) (model.User, error) {
	for i, u := range f.users {
		if u.ID == opt.ID {
			if opt.FullName != nil {
				u.FullName = *opt.FullName
			}
			if opt.Role != nil {
				u.Role = *opt.Role
			}
			if opt.AvatarURL != nil {
				u.AvatarURL = *opt.AvatarURL
			}
			f.users[i] = u
			return u, nil
		}
	}
	return model.User{}, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			break
		}
	}
	return nil
}

type fakeTaskRepo struct {
	tasks        []model.Task
	deletedUsers []string
}

func (f *fakeTaskRepo) CreateTask(context.Context, taskRepo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}
func (f *fakeTaskRepo) GetOneTask(context.Context, taskRepo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}
func (f *fakeTaskRepo) ListTasks(context.Context, taskRepo.ListTasksOptions) ([]model.Task, int, error) {
	return nil, 0, nil
}
func (f *fakeTaskRepo) ListAllTasks(_ context.Context, opt taskRepo.ListAllTasksOptions) ([]model.Task, error) {
	if opt.UserID == "" {
		return f.tasks, nil
	}
	var out []model.Task
	for _, t := range f.tasks {
		if t.UserID == opt.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (f *fakeTaskRepo) UpdateTask(context.Context, taskRepo.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}
func (f *fakeTaskRepo) DeleteTask(context.Context, string, string) error { return nil }
func (f *fakeTaskRepo) DeleteTasksByUser(_ context.Context, userID string) error {
	f.deletedUsers = append(f.deletedUsers, userID)
	return nil
}
func (f *fakeTaskRepo) CountTasksByUser(context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, t := range f.tasks {
		counts[t.UserID]++
	}
	return counts, nil
}
func (f *fakeTaskRepo) ListDueReminders(context.Context, taskRepo.ListDueRemindersOptions) ([]taskRepo.DueReminder, error) {
	return nil, nil
}
func (f *fakeTaskRepo) MarkReminderSent(context.Context, string) error { return nil }

func newTestUseCase(ur *fakeUserRepo, tr *fakeTaskRepo) *implUseCase {
	uc := New(log.NewNop(), ur, tr)
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestStats(t *testing.T) {
	ur := &fakeUserRepo{users: []model.User{
		{ID: "user-1", Role: model.RoleUser},
		{ID: "user-2", Role: model.RoleUser},
	}}
	tr := &fakeTaskRepo{tasks: []model.Task{
		{ID: "t1", UserID: "user-1", Status: model.StatusCompleted, Priority: model.PriorityHigh},
		{ID: "t2", UserID: "user-2", Status: model.StatusTodo, Priority: model.PriorityLow},
	}}
	uc := newTestUseCase(ur, tr)

	out, err := uc.Stats(context.Background(), scAdmin)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if out.TotalUsers != 2 || out.TotalTasks != 2 {
		t.Errorf("totals = %d users / %d tasks, want 2/2", out.TotalUsers, out.TotalTasks)
	}
	if out.Summary.Completed != 1 || out.Summary.Todo != 1 {
		t.Errorf("summary = %+v", out.Summary)
	}

	if _, err := uc.Stats(context.Background(), scPlain); err != admin.ErrForbidden {
		t.Errorf("non-admin: err = %v, want ErrForbidden", err)
	}
}

func TestListUsers_TaskCounts(t *testing.T) {
	ur := &fakeUserRepo{users: []model.User{
		{ID: "user-1"}, {ID: "user-2"}, {ID: "user-3"},
	}}
	tr := &fakeTaskRepo{tasks: []model.Task{
		{ID: "t1", UserID: "user-1"},
		{ID: "t2", UserID: "user-1"},
		{ID: "t3", UserID: "user-3"},
	}}
	uc := newTestUseCase(ur, tr)

	out, err := uc.ListUsers(context.Background(), scAdmin, admin.ListUsersInput{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if out.Total != 3 || len(out.Users) != 2 || !out.HasMore {
		t.Errorf("total=%d len=%d hasMore=%v, want 3/2/true", out.Total, len(out.Users), out.HasMore)
	}
	if out.Users[0].TaskCount != 2 || out.Users[1].TaskCount != 0 {
		t.Errorf("task counts = %d, %d, want 2, 0", out.Users[0].TaskCount, out.Users[1].TaskCount)
	}
}

func TestUpdateUser(t *testing.T) {
	ur := &fakeUserRepo{users: []model.User{{ID: "user-1", Role: model.RoleUser}}}
	uc := newTestUseCase(ur, &fakeTaskRepo{})
	ctx := context.Background()

	adminRole := model.RoleAdmin
	out, err := uc.UpdateUser(ctx, scAdmin, admin.UpdateUserInput{ID: "user-1", Role: &adminRole})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if out.User.Role != model.RoleAdmin {
		t.Errorf("role = %q, want admin", out.User.Role)
	}

	avatar := "https://cdn.example.com/u1.png"
	out, err = uc.UpdateUser(ctx, scAdmin, admin.UpdateUserInput{ID: "user-1", AvatarURL: &avatar})
	if err != nil {
		t.Fatalf("UpdateUser avatar: %v", err)
	}
	if out.User.AvatarURL != avatar {
		t.Errorf("avatar = %q, want %q", out.User.AvatarURL, avatar)
	}

	if _, err := uc.UpdateUser(ctx, scAdmin, admin.UpdateUserInput{ID: "user-1"}); err != admin.ErrNoFieldsToUpdate {
		t.Errorf("empty update: err = %v", err)
	}

	bogus := model.Role("owner")
	if _, err := uc.UpdateUser(ctx, scAdmin, admin.UpdateUserInput{ID: "user-1", Role: &bogus}); err != admin.ErrInvalidRole {
		t.Errorf("bad role: err = %v", err)
	}

	name := "X"
	if _, err := uc.UpdateUser(ctx, scAdmin, admin.UpdateUserInput{ID: "ghost", FullName: &name}); err != admin.ErrUserNotFound {
		t.Errorf("missing user: err = %v", err)
	}
}

func TestDeleteUser_Cascade(t *testing.T) {
	ur := &fakeUserRepo{users: []model.User{
		{ID: "admin-1", Role: model.RoleAdmin},
		{ID: "user-1", Role: model.RoleUser},
	}}
	tr := &fakeTaskRepo{tasks: []model.Task{{ID: "t1", UserID: "user-1"}}}
	uc := newTestUseCase(ur, tr)
	ctx := context.Background()

	if err := uc.DeleteUser(ctx, scAdmin, "admin-1"); err != admin.ErrCannotDeleteSelf {
		t.Errorf("self delete: err = %v, want ErrCannotDeleteSelf", err)
	}
	if err := uc.DeleteUser(ctx, scAdmin, "ghost"); err != admin.ErrUserNotFound {
		t.Errorf("missing user: err = %v", err)
	}

	if err := uc.DeleteUser(ctx, scAdmin, "user-1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(tr.deletedUsers) != 1 || tr.deletedUsers[0] != "user-1" {
		t.Errorf("task cascade = %v, want [user-1]", tr.deletedUsers)
	}
	if len(ur.deleted) != 1 || ur.deleted[0] != "user-1" {
		t.Errorf("user delete = %v, want [user-1]", ur.deleted)
	}
}
