package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-task-manager/internal/model"
	taskRepo "ai-task-manager/internal/task/repository"
	"ai-task-manager/pkg/log"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type fakeReminderRepo struct {
	reminders []taskRepo.DueReminder
	marked    []string
	lastOpt   taskRepo.ListDueRemindersOptions
}

func (f *fakeReminderRepo) ListDueReminders(_ context.Context, opt taskRepo.ListDueRemindersOptions) ([]taskRepo.DueReminder, error) {
	f.lastOpt = opt
	return f.reminders, nil
}

func (f *fakeReminderRepo) MarkReminderSent(_ context.Context, taskID string) error {
	f.marked = append(f.marked, taskID)
	return nil
}

type fakeMailer struct {
	sent    []string
	failFor string
}

func (f *fakeMailer) SendTaskReminder(_ context.Context, to string, t model.Task) error {
	if t.ID == f.failFor {
		return errors.New("smtp refused")
	}
	f.sent = append(f.sent, to)
	return nil
}

func newTestScheduler(repo *fakeReminderRepo, m *fakeMailer) *Scheduler {
	s := New(log.NewNop(), repo, m, time.Minute, time.Hour)
	s.now = func() time.Time { return testNow }
	return s
}

func TestTick_SendsAndMarks(t *testing.T) {
	repo := &fakeReminderRepo{reminders: []taskRepo.DueReminder{
		{Task: model.Task{ID: "t1", Title: "A"}, Email: "a@example.com"},
		{Task: model.Task{ID: "t2", Title: "B"}, Email: "b@example.com"},
	}}
	m := &fakeMailer{}
	s := newTestScheduler(repo, m)

	s.tick(context.Background())

	if len(m.sent) != 2 {
		t.Errorf("sent = %v, want 2 emails", m.sent)
	}
	if len(repo.marked) != 2 || repo.marked[0] != "t1" || repo.marked[1] != "t2" {
		t.Errorf("marked = %v, want [t1 t2]", repo.marked)
	}

	if !repo.lastOpt.From.Equal(testNow) || !repo.lastOpt.To.Equal(testNow.Add(time.Hour)) {
		t.Errorf("window = [%v, %v), want [now, now+1h)", repo.lastOpt.From, repo.lastOpt.To)
	}
}

func TestTick_SendFailureSkipsMark(t *testing.T) {
	repo := &fakeReminderRepo{reminders: []taskRepo.DueReminder{
		{Task: model.Task{ID: "t1"}, Email: "a@example.com"},
		{Task: model.Task{ID: "t2"}, Email: "b@example.com"},
	}}
	m := &fakeMailer{failFor: "t1"}
	s := newTestScheduler(repo, m)

	s.tick(context.Background())

	// The failed task stays unmarked so the next tick retries it.
	if len(repo.marked) != 1 || repo.marked[0] != "t2" {
		t.Errorf("marked = %v, want [t2]", repo.marked)
	}
	if len(m.sent) != 1 {
		t.Errorf("sent = %v, want 1 email", m.sent)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	repo := &fakeReminderRepo{}
	s := New(log.NewNop(), repo, &fakeMailer{}, 5*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
}
