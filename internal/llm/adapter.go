// Package llm implements the AI enhancement path: an ordered chain of
// language-model providers with timeout, retry, and template fallback.
package llm

import (
	"context"
	"time"
)

// Provider is the interface all LLM providers must implement.
type Provider interface {
	// Name returns the provider identifier for logging and status output.
	Name() string

	// Available reports whether this provider is configured for use.
	Available() bool

	// Generate sends the feature description to the provider and returns
	// the parsed story payload. Errors are classified as *TransientError
	// (retryable) or *ResponseError (immediate fallback).
	Generate(ctx context.Context, prompt Prompt) (*StoryPayload, error)
}

// Config holds the chain-level settings supplied by the caller's
// configuration layer. The chain never reads environment state itself.
type Config struct {
	// Timeout bounds each individual provider attempt.
	Timeout time.Duration

	// Retries is the number of additional attempts after the first,
	// applied only to transient failures.
	Retries int

	// RetryDelay is the base backoff between retry attempts; it doubles
	// per attempt.
	RetryDelay time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:    30 * time.Second,
		Retries:    2,
		RetryDelay: time.Second,
	}
}
