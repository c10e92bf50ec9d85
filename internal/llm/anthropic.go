package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// AnthropicProvider generates stories via the Anthropic Messages API.
// Credentials come from the caller's configuration layer; the provider
// never reads environment state itself.
type AnthropicProvider struct {
	client    anthropic.Client
	apiKey    string
	model     string
	maxTokens int
}

// AnthropicOptions configures the Anthropic provider.
type AnthropicOptions struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// NewAnthropicProvider creates an Anthropic provider. An empty API key
// yields a provider that reports itself unavailable.
func NewAnthropicProvider(opts AnthropicOptions) *AnthropicProvider {
	model := opts.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	return &AnthropicProvider{
		client:    anthropic.NewClient(option.WithAPIKey(opts.APIKey)),
		apiKey:    opts.APIKey,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

func (p *AnthropicProvider) Available() bool {
	return p.apiKey != ""
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt Prompt) (*StoryPayload, error) {
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(p.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: prompt.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
		},
	})
	if err != nil {
		return nil, p.classify(err)
	}

	// Extract text from response
	var output string
	for _, block := range resp.Content {
		if block.Type == "text" {
			output += block.Text
		}
	}

	payload, err := ParseStoryJSON(output)
	if err != nil {
		return nil, &ResponseError{Provider: p.Name(), Reason: "unparseable story", Err: err}
	}
	return payload, nil
}

// classify sorts an API error into the retryable or fall-through bucket.
func (p *AnthropicProvider) classify(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode >= http.StatusInternalServerError {
			return &TransientError{Provider: p.Name(), Err: err}
		}
		return &ResponseError{Provider: p.Name(), Reason: "api error", Err: err}
	}
	// Connection-level failures without an API status are transient.
	return &TransientError{Provider: p.Name(), Err: err}
}
