package usecase

import (
	"fmt"
	"strings"

	"ai-task-manager/pkg/llmprovider"
)

func newParseRequest(text string) *llmprovider.Request {
	return &llmprovider.Request{
		System:      parseSystemPrompt,
		Prompt:      text,
		Temperature: 0.2,
		MaxTokens:   500,
	}
}

func newSuggestRequest(recentTitles []string, count int) *llmprovider.Request {
	var b strings.Builder
	fmt.Fprintf(&b, "Propose %d new tasks.\n", count)
	if len(recentTitles) > 0 {
		b.WriteString("Recent tasks:\n")
		for _, title := range recentTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	} else {
		b.WriteString("The user has no tasks yet; suggest sensible starting points.\n")
	}
	return &llmprovider.Request{
		System:      suggestSystemPrompt,
		Prompt:      b.String(),
		Temperature: 0.7,
		MaxTokens:   800,
	}
}

func newEnhanceRequest(title, description string) *llmprovider.Request {
	return &llmprovider.Request{
		System:      enhanceSystemPrompt,
		Prompt:      fmt.Sprintf("Task: %s\n\nCurrent description:\n%s", title, description),
		Temperature: 0.5,
		MaxTokens:   600,
	}
}

const parseSystemPrompt = `You are a task extraction assistant. The user describes something
they need to do in plain language. Respond with a single JSON object and
nothing else, using exactly these keys:
{
  "title": "short imperative title",
  "description": "one or two sentences of detail, may be empty",
  "priority": "low|medium|high|urgent",
  "category": "one-word category, may be empty",
  "tags": ["up to three short tags"],
  "due_phrase": "relative due date like 'tomorrow' or 'next friday', or empty"
}`

const suggestSystemPrompt = `You are a productivity assistant. Given a user's recent tasks,
propose new tasks that would plausibly come next. Respond with a JSON
array and nothing else; each element has exactly these keys:
{"title": "...", "description": "...", "priority": "low|medium|high|urgent", "category": "..."}`

const enhanceSystemPrompt = `You are a writing assistant. Rewrite the given task description so
it is clear and actionable: concrete steps, acceptance criteria when they
are implied, no filler. Respond with the improved description text only,
no preamble and no markdown fences.`
