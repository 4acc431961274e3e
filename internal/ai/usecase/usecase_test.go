package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"ai-task-manager/internal/ai"
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
	"ai-task-manager/pkg/datemath"
	"ai-task-manager/pkg/llmprovider"
	"ai-task-manager/pkg/log"
	"ai-task-manager/pkg/qdrant"
)

var (
	testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	scUser  = model.Scope{UserID: "user-1", Role: model.RoleUser}
)

// fakeGenerator replays canned completions.
type fakeGenerator struct {
	reply string
	err   error
	last  *llmprovider.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.reply, ProviderName: "fake", ModelName: "fake-1"}, nil
}

// fakeTaskUC records creates and serves a fixed task list.
type fakeTaskUC struct {
	tasks   []model.Task
	created []task.CreateInput
}

func (f *fakeTaskUC) Create(_ context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	f.created = append(f.created, input)
	t := model.Task{
		ID:          fmt.Sprintf("task-%d", len(f.created)),
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      model.StatusTodo,
		Priority:    input.Priority,
		Category:    input.Category,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
		AIGenerated: input.AIGenerated,
	}
	f.tasks = append(f.tasks, t)
	return task.CreateOutput{Task: t}, nil
}

func (f *fakeTaskUC) List(_ context.Context, _ model.Scope, _ task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{Tasks: f.tasks, Total: len(f.tasks)}, nil
}

func (f *fakeTaskUC) Detail(_ context.Context, _ model.Scope, id string) (task.DetailOutput, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return task.DetailOutput{Task: t}, nil
		}
	}
	return task.DetailOutput{}, task.ErrTaskNotFound
}

func (f *fakeTaskUC) Update(_ context.Context, _ model.Scope, _ task.UpdateInput) (task.UpdateOutput, error) {
	return task.UpdateOutput{}, nil
}

func (f *fakeTaskUC) Delete(_ context.Context, _ model.Scope, _ string) error { return nil }

func (f *fakeTaskUC) Stats(_ context.Context, _ model.Scope, _ task.StatsInput) (task.StatsOutput, error) {
	return task.StatsOutput{}, nil
}

// fakeEmbedder returns a unit vector per text.
type fakeEmbedder struct{ calls [][]string }

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

// fakeVectorStore records index writes and replays canned hits.
type fakeVectorStore struct {
	upserts        []qdrant.UpsertPointsRequest
	deletes        []qdrant.DeletePointsRequest
	hits           []qdrant.ScoredPoint
	lastReq        qdrant.SearchRequest
	lastCollection string
}

func (f *fakeVectorStore) UpsertPoints(_ context.Context, collection string, req qdrant.UpsertPointsRequest) error {
	f.lastCollection = collection
	f.upserts = append(f.upserts, req)
	return nil
}

func (f *fakeVectorStore) Search(_ context.Context, collection string, req qdrant.SearchRequest) ([]qdrant.ScoredPoint, error) {
	f.lastCollection = collection
	f.lastReq = req
	return f.hits, nil
}

func (f *fakeVectorStore) DeletePoints(_ context.Context, collection string, req qdrant.DeletePointsRequest) error {
	f.lastCollection = collection
	f.deletes = append(f.deletes, req)
	return nil
}

func newTestUseCase(t *testing.T, gen Generator, emb *fakeEmbedder, vs *fakeVectorStore, tuc task.UseCase) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	uc := New(log.NewNop(), gen, nil, nil, tuc, dates, "")
	if emb != nil {
		uc.embedder = emb
	}
	if vs != nil {
		uc.vectors = vs
	}
	uc.now = func() time.Time { return testNow }
	return uc
}

func TestParseTask(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n" + `{
		"title": "Buy groceries",
		"description": "Milk and eggs",
		"priority": "high",
		"category": "errands",
		"tags": ["shopping"],
		"due_phrase": "tomorrow"
	}` + "\n```"}
	tuc := &fakeTaskUC{}
	uc := newTestUseCase(t, gen, nil, nil, tuc)

	out, err := uc.ParseTask(context.Background(), scUser, ai.ParseInput{Text: "buy milk and eggs tomorrow"})
	if err != nil {
		t.Fatalf("ParseTask: %v", err)
	}
	if out.Task.Title != "Buy groceries" || out.Task.Priority != model.PriorityHigh {
		t.Errorf("task = %+v", out.Task)
	}
	if !out.Task.AIGenerated {
		t.Error("expected AIGenerated to be set")
	}

	wantDue := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if out.Task.DueDate == nil || !out.Task.DueDate.Equal(wantDue) {
		t.Errorf("DueDate = %v, want %v", out.Task.DueDate, wantDue)
	}
}

func TestParseTask_Errors(t *testing.T) {
	uc := newTestUseCase(t, &fakeGenerator{reply: "not json at all"}, nil, nil, &fakeTaskUC{})
	ctx := context.Background()

	if _, err := uc.ParseTask(ctx, scUser, ai.ParseInput{Text: "  "}); err != ai.ErrEmptyText {
		t.Errorf("empty text: err = %v", err)
	}
	if _, err := uc.ParseTask(ctx, scUser, ai.ParseInput{Text: "do stuff"}); err != ai.ErrBadModelOutput {
		t.Errorf("bad output: err = %v", err)
	}

	// An unknown priority falls back to medium instead of failing.
	uc2 := newTestUseCase(t, &fakeGenerator{reply: `{"title":"X","priority":"critical"}`}, nil, nil, &fakeTaskUC{})
	out, err := uc2.ParseTask(ctx, scUser, ai.ParseInput{Text: "x"})
	if err != nil {
		t.Fatalf("ParseTask: %v", err)
	}
	if out.Task.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium", out.Task.Priority)
	}
}

func TestSuggestTasks(t *testing.T) {
	gen := &fakeGenerator{reply: `[
		{"title": "Plan sprint", "description": "", "priority": "high", "category": "work"},
		{"title": "", "priority": "low"},
		{"title": "Review PRs", "priority": "bogus", "category": "work"}
	]`}
	tuc := &fakeTaskUC{tasks: []model.Task{{ID: "task-1", Title: "Ship release"}}}
	uc := newTestUseCase(t, gen, nil, nil, tuc)

	out, err := uc.SuggestTasks(context.Background(), scUser, ai.SuggestInput{Count: 3})
	if err != nil {
		t.Fatalf("SuggestTasks: %v", err)
	}
	if len(out.Suggestions) != 2 {
		t.Fatalf("suggestions = %+v, want blank entry dropped", out.Suggestions)
	}
	if out.Suggestions[1].Priority != string(model.PriorityMedium) {
		t.Errorf("invalid priority should fall back to medium, got %q", out.Suggestions[1].Priority)
	}
	if gen.last == nil || !strings.Contains(gen.last.Prompt, "Ship release") {
		t.Error("prompt should mention the user's recent tasks")
	}
}

func TestEnhanceDescription(t *testing.T) {
	gen := &fakeGenerator{reply: "  Do the thing, step by step.  "}
	uc := newTestUseCase(t, gen, nil, nil, &fakeTaskUC{})

	out, err := uc.EnhanceDescription(context.Background(), scUser, ai.EnhanceInput{Title: "Do thing", Description: "do it"})
	if err != nil {
		t.Fatalf("EnhanceDescription: %v", err)
	}
	if out.Description != "Do the thing, step by step." {
		t.Errorf("Description = %q", out.Description)
	}

	if _, err := uc.EnhanceDescription(context.Background(), scUser, ai.EnhanceInput{}); err != ai.ErrEmptyText {
		t.Errorf("empty title: err = %v", err)
	}
}

func TestSemanticSearch(t *testing.T) {
	emb := &fakeEmbedder{}
	vs := &fakeVectorStore{hits: []qdrant.ScoredPoint{
		{ID: "task-1", Score: 0.92},
		{ID: "ghost", Score: 0.80},
	}}
	tuc := &fakeTaskUC{tasks: []model.Task{{ID: "task-1", UserID: "user-1", Title: "Ship release"}}}
	uc := newTestUseCase(t, &fakeGenerator{}, emb, vs, tuc)

	out, err := uc.SemanticSearch(context.Background(), scUser, ai.SearchInput{Query: "release work"})
	if err != nil {
		t.Fatalf("SemanticSearch: %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].Task.ID != "task-1" {
		t.Errorf("results = %+v, want stale hit dropped", out.Results)
	}
	if out.Results[0].Score != 0.92 {
		t.Errorf("score = %v", out.Results[0].Score)
	}

	// The search must be fenced to the caller's tasks.
	if vs.lastReq.Filter == nil || len(vs.lastReq.Filter.Must) != 1 || vs.lastReq.Filter.Must[0].Match.Value != "user-1" {
		t.Errorf("filter = %+v, want user_id match", vs.lastReq.Filter)
	}
}

func TestSemanticSearch_Unconfigured(t *testing.T) {
	uc := newTestUseCase(t, &fakeGenerator{}, nil, nil, &fakeTaskUC{})
	if _, err := uc.SemanticSearch(context.Background(), scUser, ai.SearchInput{Query: "x"}); err != ai.ErrSearchUnavailable {
		t.Errorf("err = %v, want ErrSearchUnavailable", err)
	}
}

func TestIndexAndRemove(t *testing.T) {
	emb := &fakeEmbedder{}
	vs := &fakeVectorStore{}
	uc := newTestUseCase(t, &fakeGenerator{}, emb, vs, &fakeTaskUC{})
	ctx := context.Background()

	err := uc.IndexTask(ctx, model.Task{ID: "task-1", UserID: "user-1", Title: "T", Description: "D"})
	if err != nil {
		t.Fatalf("IndexTask: %v", err)
	}
	if len(vs.upserts) != 1 || vs.upserts[0].Points[0].ID != "task-1" {
		t.Errorf("upserts = %+v", vs.upserts)
	}
	if vs.lastCollection != "tasks" {
		t.Errorf("collection = %q, want default", vs.lastCollection)
	}
	if vs.upserts[0].Points[0].Payload["user_id"] != "user-1" {
		t.Errorf("payload = %+v, want user_id", vs.upserts[0].Points[0].Payload)
	}

	if err := uc.RemoveTask(ctx, "task-1"); err != nil {
		t.Fatalf("RemoveTask: %v", err)
	}
	if len(vs.deletes) != 1 || vs.deletes[0].Points[0] != "task-1" {
		t.Errorf("deletes = %+v", vs.deletes)
	}

	// Unconfigured index is a silent no-op.
	bare := newTestUseCase(t, &fakeGenerator{}, nil, nil, &fakeTaskUC{})
	if err := bare.IndexTask(ctx, model.Task{ID: "x"}); err != nil {
		t.Errorf("IndexTask without store: %v", err)
	}
}

func TestIndex_ConfiguredCollection(t *testing.T) {
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	emb := &fakeEmbedder{}
	vs := &fakeVectorStore{}
	uc := New(log.NewNop(), &fakeGenerator{}, emb, vs, &fakeTaskUC{}, dates, "team_tasks")

	if err := uc.IndexTask(context.Background(), model.Task{ID: "task-1", Title: "T"}); err != nil {
		t.Fatalf("IndexTask: %v", err)
	}
	if vs.lastCollection != "team_tasks" {
		t.Errorf("collection = %q, want team_tasks", vs.lastCollection)
	}
}
