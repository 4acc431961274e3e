package llmprovider

import (
	"context"
	"fmt"

	"ai-task-manager/pkg/deepseek"
)

// deepseekAdapter bridges the DeepSeek client to the Provider interface.
type deepseekAdapter struct {
	client *deepseek.Client
}

// NewDeepSeekAdapter wraps a DeepSeek client as a Provider.
func NewDeepSeekAdapter(client *deepseek.Client) Provider {
	return &deepseekAdapter{client: client}
}

func (a *deepseekAdapter) Name() string  { return "deepseek" }
func (a *deepseekAdapter) Model() string { return a.client.ModelName() }

func (a *deepseekAdapter) Generate(ctx context.Context, req *Request) (*Response, error) {
	var messages []deepseek.Message
	if req.System != "" {
		messages = append(messages, deepseek.Message{Role: "system", Content: req.System})
	}
	messages = append(messages, deepseek.Message{Role: "user", Content: req.Prompt})

	resp, err := a.client.Chat(ctx, &deepseek.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("deepseek: empty choices in response")
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
