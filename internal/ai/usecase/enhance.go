package usecase

import (
	"context"
	"strings"

	"ai-task-manager/internal/ai"
	"ai-task-manager/internal/model"
)

// EnhanceDescription rewrites a task description to be clear and actionable.
func (uc *implUseCase) EnhanceDescription(ctx context.Context, sc model.Scope, input ai.EnhanceInput) (ai.EnhanceOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return ai.EnhanceOutput{}, ai.ErrEmptyText
	}

	resp, err := uc.llm.Generate(ctx, newEnhanceRequest(input.Title, input.Description))
	if err != nil {
		uc.l.Errorf(ctx, "uc.EnhanceDescription Generate: %v", err)
		return ai.EnhanceOutput{}, err
	}

	description := strings.TrimSpace(resp.Text)
	if description == "" {
		return ai.EnhanceOutput{}, ai.ErrBadModelOutput
	}

	return ai.EnhanceOutput{
		Description: description,
		Provider:    resp.ProviderName,
		Model:       resp.ModelName,
	}, nil
}
