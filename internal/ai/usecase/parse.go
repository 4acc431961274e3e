package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"ai-task-manager/internal/ai"
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
)

type parsedTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	DuePhrase   string   `json:"due_phrase"`
}

// ParseTask turns a natural-language description into a persisted task.
func (uc *implUseCase) ParseTask(ctx context.Context, sc model.Scope, input ai.ParseInput) (ai.ParseOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return ai.ParseOutput{}, ai.ErrEmptyText
	}

	resp, err := uc.llm.Generate(ctx, newParseRequest(text))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ParseTask Generate: %v", err)
		return ai.ParseOutput{}, err
	}

	var parsed parsedTask
	if err := json.Unmarshal([]byte(extractJSON(resp.Text)), &parsed); err != nil {
		uc.l.Warnf(ctx, "uc.ParseTask bad model output: %v", err)
		return ai.ParseOutput{}, ai.ErrBadModelOutput
	}
	if strings.TrimSpace(parsed.Title) == "" {
		return ai.ParseOutput{}, ai.ErrBadModelOutput
	}

	createInput := task.CreateInput{
		Title:       parsed.Title,
		Description: parsed.Description,
		Priority:    normalizePriority(parsed.Priority),
		Category:    parsed.Category,
		Tags:        parsed.Tags,
		AIGenerated: true,
	}

	if parsed.DuePhrase != "" {
		due, err := uc.dates.Parse(parsed.DuePhrase, uc.now())
		if err == nil {
			createInput.DueDate = &due
		}
	}

	created, err := uc.taskUC.Create(ctx, sc, createInput)
	if err != nil {
		return ai.ParseOutput{}, err
	}

	return ai.ParseOutput{Task: created.Task}, nil
}

func normalizePriority(s string) model.TaskPriority {
	p := model.TaskPriority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return model.PriorityMedium
	}
	return p
}

// extractJSON strips markdown code fences and surrounding chatter, keeping
// the outermost JSON value. Models wrap JSON in fences often enough that
// this is the common path, not the fallback.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	var end int
	if s[start] == '{' {
		end = strings.LastIndex(s, "}")
	} else {
		end = strings.LastIndex(s, "]")
	}
	if end <= start {
		return s
	}
	return s[start : end+1]
}
