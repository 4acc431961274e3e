package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ai-task-manager/internal/model"
	"ai-task-manager/internal/stats"
	"ai-task-manager/internal/task"
	repo "ai-task-manager/internal/task/repository"
	"ai-task-manager/pkg/log"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// mockRepository is an in-memory task store for unit tests.
type mockRepository struct {
	tasks  map[string]model.Task
	nextID int

	createErr error
	listErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{tasks: map[string]model.Task{}}
}

func (m *mockRepository) CreateTask(_ context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.nextID++
	t := model.Task{
		ID:          fmt.Sprintf("task-%d", m.nextID),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		Category:    opt.Category,
		Tags:        opt.Tags,
		DueDate:     opt.DueDate,
		AIGenerated: opt.AIGenerated,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepository) GetOneTask(_ context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepository) ListTasks(_ context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	all := m.filter(opt.UserID)
	total := len(all)
	if opt.Offset >= total {
		return nil, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > total {
		end = total
	}
	return all[opt.Offset:end], total, nil
}

func (m *mockRepository) ListAllTasks(_ context.Context, opt repo.ListAllTasksOptions) ([]model.Task, error) {
	return m.filter(opt.UserID), nil
}

func (m *mockRepository) UpdateTask(_ context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t := m.tasks[opt.ID]
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.Status != nil {
		t.Status = *opt.Status
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.Tags != nil {
		t.Tags = opt.Tags
	}
	if opt.DueDate != nil {
		t.DueDate = opt.DueDate
	}
	if opt.CompletedAt != nil {
		t.CompletedAt = opt.CompletedAt
	}
	if opt.CalendarEventID != nil {
		t.CalendarEventID = *opt.CalendarEventID
	}
	t.UpdatedAt = testNow.Add(time.Minute)
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepository) DeleteTask(_ context.Context, id, userID string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockRepository) DeleteTasksByUser(_ context.Context, userID string) error {
	for id, t := range m.tasks {
		if t.UserID == userID {
			delete(m.tasks, id)
		}
	}
	return nil
}

func (m *mockRepository) CountTasksByUser(_ context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, t := range m.tasks {
		counts[t.UserID]++
	}
	return counts, nil
}

func (m *mockRepository) ListDueReminders(_ context.Context, _ repo.ListDueRemindersOptions) ([]repo.DueReminder, error) {
	return nil, nil
}

func (m *mockRepository) MarkReminderSent(_ context.Context, _ string) error {
	return nil
}

func (m *mockRepository) filter(userID string) []model.Task {
	var out []model.Task
	for i := 1; i <= m.nextID; i++ {
		t, ok := m.tasks[fmt.Sprintf("task-%d", i)]
		if !ok {
			continue
		}
		if userID == "" || t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

// mockPublisher records every published event.
type mockPublisher struct {
	events []model.TaskEvent
	err    error
}

func (m *mockPublisher) PublishTaskEvent(_ context.Context, event model.TaskEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

// mockCalendar records due-date sync attempts.
type mockCalendar struct {
	created []string
	updated []string
	deleted []string
	err     error
}

func (m *mockCalendar) CreateDueEvent(_ context.Context, t model.Task) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.created = append(m.created, t.ID)
	return "event-" + t.ID, nil
}

func (m *mockCalendar) UpdateDueEvent(_ context.Context, eventID string, _ model.Task) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, eventID)
	return nil
}

func (m *mockCalendar) DeleteDueEvent(_ context.Context, eventID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

func newTestUseCase(t *testing.T, mr *mockRepository, pub *mockPublisher, cal Calendar) *implUseCase {
	t.Helper()
	cache, err := stats.NewCache(16)
	if err != nil {
		t.Fatalf("stats.NewCache: %v", err)
	}
	uc := New(log.NewNop(), mr, pub, cal, cache)
	uc.now = func() time.Time { return testNow }
	return uc
}

var scUser = model.Scope{UserID: "user-1", Email: "user@example.com", Role: model.RoleUser}

func TestCreate_Defaults(t *testing.T) {
	mr := newMockRepository()
	pub := &mockPublisher{}
	uc := newTestUseCase(t, mr, pub, nil)

	out, err := uc.Create(context.Background(), scUser, task.CreateInput{Title: "  Write report  "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Task.Title != "Write report" {
		t.Errorf("Title = %q, want trimmed", out.Task.Title)
	}
	if out.Task.Status != model.StatusTodo {
		t.Errorf("Status = %q, want %q", out.Task.Status, model.StatusTodo)
	}
	if out.Task.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want %q", out.Task.Priority, model.PriorityMedium)
	}
	if len(pub.events) != 1 || pub.events[0].Action != model.TaskCreated {
		t.Errorf("events = %+v, want one created event", pub.events)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestUseCase(t, newMockRepository(), &mockPublisher{}, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "   "}); err != task.ErrEmptyTitle {
		t.Errorf("blank title: err = %v, want ErrEmptyTitle", err)
	}
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "x", Status: "bogus"}); err != task.ErrInvalidStatus {
		t.Errorf("bad status: err = %v, want ErrInvalidStatus", err)
	}
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "x", Priority: "bogus"}); err != task.ErrInvalidPriority {
		t.Errorf("bad priority: err = %v, want ErrInvalidPriority", err)
	}
}

func TestCreate_PublisherFailureDoesNotFailCreate(t *testing.T) {
	mr := newMockRepository()
	pub := &mockPublisher{err: fmt.Errorf("broker down")}
	uc := newTestUseCase(t, mr, pub, nil)

	if _, err := uc.Create(context.Background(), scUser, task.CreateInput{Title: "x"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestCreate_CalendarSync(t *testing.T) {
	mr := newMockRepository()
	cal := &mockCalendar{}
	uc := newTestUseCase(t, mr, &mockPublisher{}, cal)
	ctx := context.Background()

	due := testNow.Add(24 * time.Hour)
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "with due", DueDate: &due}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "no due"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(cal.created) != 1 {
		t.Errorf("calendar events = %v, want exactly one (due-dated task only)", cal.created)
	}

	// Calendar failure must not fail the create either.
	cal.err = fmt.Errorf("api quota")
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "y", DueDate: &due}); err != nil {
		t.Fatalf("Create with failing calendar: %v", err)
	}
}

func TestCalendarSync_FollowsTaskLifecycle(t *testing.T) {
	mr := newMockRepository()
	cal := &mockCalendar{}
	uc := newTestUseCase(t, mr, &mockPublisher{}, cal)
	ctx := context.Background()

	due := testNow.Add(24 * time.Hour)
	created, err := uc.Create(ctx, scUser, task.CreateInput{Title: "with due", DueDate: &due})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The event ID returned by the calendar must be persisted on the task.
	stored := mr.tasks[created.Task.ID]
	if stored.CalendarEventID != "event-"+created.Task.ID {
		t.Fatalf("CalendarEventID = %q, want %q", stored.CalendarEventID, "event-"+created.Task.ID)
	}

	// Moving the due date rewrites the existing event instead of creating
	// another one.
	later := due.Add(time.Hour)
	if _, err := uc.Update(ctx, scUser, task.UpdateInput{ID: created.Task.ID, DueDate: &later}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(cal.created) != 1 {
		t.Errorf("created events = %v, want exactly one", cal.created)
	}
	if len(cal.updated) != 1 || cal.updated[0] != stored.CalendarEventID {
		t.Errorf("updated events = %v, want [%s]", cal.updated, stored.CalendarEventID)
	}

	if err := uc.Delete(ctx, scUser, created.Task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != stored.CalendarEventID {
		t.Errorf("deleted events = %v, want [%s]", cal.deleted, stored.CalendarEventID)
	}
}

func TestList_Pagination(t *testing.T) {
	mr := newMockRepository()
	uc := newTestUseCase(t, mr, &mockPublisher{}, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: fmt.Sprintf("t%d", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	out, err := uc.List(ctx, scUser, task.ListInput{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Total != 5 || len(out.Tasks) != 2 || !out.HasMore {
		t.Errorf("page 1: total=%d len=%d hasMore=%v, want 5/2/true", out.Total, len(out.Tasks), out.HasMore)
	}

	out, err = uc.List(ctx, scUser, task.ListInput{Page: 3, PageSize: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 1 || out.HasMore {
		t.Errorf("page 3: len=%d hasMore=%v, want 1/false", len(out.Tasks), out.HasMore)
	}

	// Out-of-range values fall back to defaults.
	out, err = uc.List(ctx, scUser, task.ListInput{Page: -1, PageSize: 0})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Page != 1 || out.PageSize != 20 {
		t.Errorf("defaults: page=%d pageSize=%d, want 1/20", out.Page, out.PageSize)
	}
}

func TestDetail_Isolation(t *testing.T) {
	mr := newMockRepository()
	uc := newTestUseCase(t, mr, &mockPublisher{}, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, scUser, task.CreateInput{Title: "mine"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := model.Scope{UserID: "user-2", Role: model.RoleUser}
	if _, err := uc.Detail(ctx, other, created.Task.ID); err != task.ErrTaskNotFound {
		t.Errorf("cross-user detail: err = %v, want ErrTaskNotFound", err)
	}

	out, err := uc.Detail(ctx, scUser, created.Task.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Task.ID != created.Task.ID {
		t.Errorf("Detail returned %q, want %q", out.Task.ID, created.Task.ID)
	}
}

func TestUpdate_CompletionStampsTime(t *testing.T) {
	mr := newMockRepository()
	pub := &mockPublisher{}
	uc := newTestUseCase(t, mr, pub, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, scUser, task.CreateInput{Title: "finishable"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	completed := model.StatusCompleted
	out, err := uc.Update(ctx, scUser, task.UpdateInput{ID: created.Task.ID, Status: &completed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(testNow) {
		t.Errorf("CompletedAt = %v, want %v", out.Task.CompletedAt, testNow)
	}

	// Completing an already-completed task keeps the original stamp.
	out2, err := uc.Update(ctx, scUser, task.UpdateInput{ID: created.Task.ID, Status: &completed})
	if err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if !out2.Task.CompletedAt.Equal(testNow) {
		t.Errorf("second completion moved CompletedAt to %v", out2.Task.CompletedAt)
	}

	if len(pub.events) != 3 {
		t.Errorf("events = %d, want 3 (create + two updates)", len(pub.events))
	}
}

func TestUpdate_Errors(t *testing.T) {
	mr := newMockRepository()
	uc := newTestUseCase(t, mr, &mockPublisher{}, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, scUser, task.CreateInput{Title: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := uc.Update(ctx, scUser, task.UpdateInput{ID: "missing"}); err != task.ErrTaskNotFound {
		t.Errorf("missing task: err = %v, want ErrTaskNotFound", err)
	}
	if _, err := uc.Update(ctx, scUser, task.UpdateInput{ID: created.Task.ID}); err != task.ErrNoFieldsToUpdate {
		t.Errorf("empty update: err = %v, want ErrNoFieldsToUpdate", err)
	}

	blank := "  "
	if _, err := uc.Update(ctx, scUser, task.UpdateInput{ID: created.Task.ID, Title: &blank}); err != task.ErrEmptyTitle {
		t.Errorf("blank title: err = %v, want ErrEmptyTitle", err)
	}

	bad := model.TaskStatus("bogus")
	if _, err := uc.Update(ctx, scUser, task.UpdateInput{ID: created.Task.ID, Status: &bad}); err != task.ErrInvalidStatus {
		t.Errorf("bad status: err = %v, want ErrInvalidStatus", err)
	}
}

func TestDelete(t *testing.T) {
	mr := newMockRepository()
	pub := &mockPublisher{}
	uc := newTestUseCase(t, mr, pub, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, scUser, task.CreateInput{Title: "x"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := uc.Delete(ctx, scUser, created.Task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, scUser, created.Task.ID); err != task.ErrTaskNotFound {
		t.Errorf("second delete: err = %v, want ErrTaskNotFound", err)
	}

	last := pub.events[len(pub.events)-1]
	if last.Action != model.TaskDeleted || last.TaskID != created.Task.ID {
		t.Errorf("last event = %+v, want deleted event for %s", last, created.Task.ID)
	}
}

func TestStats_EndToEnd(t *testing.T) {
	mr := newMockRepository()
	uc := newTestUseCase(t, mr, &mockPublisher{}, nil)
	ctx := context.Background()

	overdue := testNow.Add(-48 * time.Hour)
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "done", Status: model.StatusCompleted, Priority: model.PriorityHigh}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "doing", Status: model.StatusInProgress, Priority: model.PriorityUrgent}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "late", Status: model.StatusTodo, Priority: model.PriorityLow, DueDate: &overdue}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	out, err := uc.Stats(ctx, scUser, task.StatsInput{Now: testNow})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	s := out.Summary
	if s.Total != 3 || s.Completed != 1 || s.InProgress != 1 || s.Todo != 1 || s.Overdue != 1 {
		t.Errorf("summary = %+v", s)
	}
	if want := float64(1) / float64(3) * 100; s.CompletionRate != want {
		t.Errorf("CompletionRate = %v, want %v", s.CompletionRate, want)
	}

	if len(out.ByStatus) != 4 || out.ByStatus[0].Name != "Completed" {
		t.Errorf("ByStatus = %+v", out.ByStatus)
	}
	if len(out.ByPriority) != 4 || out.ByPriority[0].Name != "Urgent" {
		t.Errorf("ByPriority = %+v", out.ByPriority)
	}

	// Zero seed selects the default display series.
	want := stats.WeeklySeries(stats.DefaultWeeklySeed)
	for i, d := range out.WeeklyActivity {
		if d != want[i] {
			t.Errorf("WeeklyActivity[%d] = %+v, want %+v", i, d, want[i])
		}
	}
}

func TestStats_OtherUserInvisible(t *testing.T) {
	mr := newMockRepository()
	uc := newTestUseCase(t, mr, &mockPublisher{}, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, scUser, task.CreateInput{Title: "mine"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := model.Scope{UserID: "user-2", Role: model.RoleUser}
	out, err := uc.Stats(ctx, other, task.StatsInput{Now: testNow})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if out.Summary.Total != 0 {
		t.Errorf("Total = %d, want 0 for a user with no tasks", out.Summary.Total)
	}
}
