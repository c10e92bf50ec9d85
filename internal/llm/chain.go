package llm

import (
	"context"
	"time"

	"github.com/autodevhub/storygen/internal/core"
)

// Chain tries each provider in order until one returns a usable story,
// falling back to the deterministic draft when every attempt fails.
// Callers never observe a provider error: the chain's only failure mode
// is caller-initiated cancellation.
type Chain struct {
	providers []Provider
	config    Config
}

// NewChain creates a fallback chain over the given providers in
// priority order.
func NewChain(config Config, providers ...Provider) *Chain {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultConfig().RetryDelay
	}
	return &Chain{providers: providers, config: config}
}

// Providers returns the configured providers in chain order.
func (c *Chain) Providers() []Provider {
	return c.providers
}

// Enhance attempts AI generation for the description. On success the
// returned story carries the "ai" source flag; on any failure the
// template draft is returned unchanged. Each provider attempt is
// bounded by the configured timeout; transient failures are retried
// with doubling backoff, response failures move straight to the next
// provider.
func (c *Chain) Enhance(ctx context.Context, desc core.FeatureDescription, draft *core.ComposedStory) (*core.ComposedStory, error) {
	prompt := Prompt{System: SystemPrompt, User: BuildUserPrompt(desc)}

	for _, provider := range c.providers {
		if !provider.Available() {
			continue
		}

		payload, err := c.attempt(ctx, provider, prompt)
		if err == nil {
			story := payload.ToStory(draft)
			if story.Validate() == nil {
				return story, nil
			}
			// Structurally invalid after conversion: treat like any
			// other bad response and keep going.
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return draft, nil
}

// attempt runs one provider with retries. Only transient failures are
// retried; a response failure aborts immediately.
func (c *Chain) attempt(ctx context.Context, provider Provider, prompt Prompt) (*StoryPayload, error) {
	var lastErr error
	delay := c.config.RetryDelay

	for try := 0; try <= c.config.Retries; try++ {
		if try > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
		payload, err := provider.Generate(attemptCtx, prompt)
		cancel()

		if err == nil {
			return payload, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !isTransient(err) {
			break
		}
	}
	return nil, lastErr
}
