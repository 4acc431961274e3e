package llmprovider

import "context"

// Provider is a single LLM backend capable of text generation.
type Provider interface {
	// Generate sends a completion request and returns the model's reply.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "deepseek").
	Name() string

	// Model returns the model identifier in use.
	Model() string
}

// Request is a normalized generation request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response is a normalized generation response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
