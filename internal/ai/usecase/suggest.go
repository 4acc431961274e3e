package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"ai-task-manager/internal/ai"
	"ai-task-manager/internal/model"
	"ai-task-manager/internal/task"
)

const (
	maxRecentTitles    = 20
	maxSuggestions     = 5
	defaultSuggestions = 3
)

// SuggestTasks proposes new tasks based on the user's recent ones.
func (uc *implUseCase) SuggestTasks(ctx context.Context, sc model.Scope, input ai.SuggestInput) (ai.SuggestOutput, error) {
	count := input.Count
	if count <= 0 || count > maxSuggestions {
		count = defaultSuggestions
	}

	recent, err := uc.taskUC.List(ctx, sc, task.ListInput{Page: 1, PageSize: maxRecentTitles})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SuggestTasks List: %v", err)
		return ai.SuggestOutput{}, err
	}
	titles := make([]string, 0, len(recent.Tasks))
	for _, t := range recent.Tasks {
		titles = append(titles, t.Title)
	}

	resp, err := uc.llm.Generate(ctx, newSuggestRequest(titles, count))
	if err != nil {
		uc.l.Errorf(ctx, "uc.SuggestTasks Generate: %v", err)
		return ai.SuggestOutput{}, err
	}

	var suggestions []ai.Suggestion
	if err := json.Unmarshal([]byte(extractJSON(resp.Text)), &suggestions); err != nil {
		uc.l.Warnf(ctx, "uc.SuggestTasks bad model output: %v", err)
		return ai.SuggestOutput{}, ai.ErrBadModelOutput
	}

	// Drop blank and over-count entries rather than failing the call.
	kept := suggestions[:0]
	for _, s := range suggestions {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		if !model.TaskPriority(s.Priority).Valid() {
			s.Priority = string(model.PriorityMedium)
		}
		kept = append(kept, s)
		if len(kept) == count {
			break
		}
	}
	if len(kept) == 0 {
		return ai.SuggestOutput{}, ai.ErrBadModelOutput
	}

	return ai.SuggestOutput{
		Suggestions: kept,
		Provider:    resp.ProviderName,
		Model:       resp.ModelName,
	}, nil
}
