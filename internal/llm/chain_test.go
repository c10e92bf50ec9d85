package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodevhub/storygen/internal/core"
)

// fakeProvider scripts Generate outcomes for chain tests.
type fakeProvider struct {
	name      string
	available bool
	payload   *StoryPayload
	err       error
	calls     int
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Generate(ctx context.Context, prompt Prompt) (*StoryPayload, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func testDraft() *core.ComposedStory {
	return &core.ComposedStory{
		ID:      core.NewStoryID(),
		Title:   "Draft Story",
		Role:    "user",
		Action:  "search the catalog",
		Benefit: "find products",
		Scenarios: []core.Scenario{
			{
				Name:  "Basic",
				Given: []string{"a precondition"},
				When:  []string{"an action"},
				Then:  []string{"an outcome"},
			},
		},
		AcceptanceCriteria: []string{"works"},
		Tag:                core.TagSearch,
		StoryType:          core.StoryTypeStory,
		Priority:           core.PriorityMedium,
		Source:             core.SourceTemplate,
	}
}

func testPayload() *StoryPayload {
	return &StoryPayload{
		Title: "Enhanced Story",
		Role:  "shopper",
		Scenarios: []core.Scenario{
			{
				Name:  "Enhanced",
				Given: []string{"indexed data exists"},
				When:  []string{"I search"},
				Then:  []string{"results appear"},
			},
		},
		AcceptanceCriteria: []string{"results are relevant"},
	}
}

func fastConfig() Config {
	return Config{
		Timeout:    time.Second,
		Retries:    1,
		RetryDelay: time.Millisecond,
	}
}

func TestChainEnhanceSuccess(t *testing.T) {
	provider := &fakeProvider{name: "fake", available: true, payload: testPayload()}
	chain := NewChain(fastConfig(), provider)

	draft := testDraft()
	story, err := chain.Enhance(context.Background(), core.FeatureDescription{Text: "search"}, draft)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "Enhanced Story", story.Title)
	assert.Equal(t, core.SourceAI, story.Source)
	assert.Equal(t, core.TagSearch, story.Tag)
	assert.NotEqual(t, draft.ID, story.ID)
}

func TestChainFallsBackToDraftWhenAllFail(t *testing.T) {
	first := &fakeProvider{name: "first", available: true, err: &ResponseError{Provider: "first", Reason: "garbage"}}
	second := &fakeProvider{name: "second", available: true, err: &ResponseError{Provider: "second", Reason: "garbage"}}
	chain := NewChain(fastConfig(), first, second)

	draft := testDraft()
	story, err := chain.Enhance(context.Background(), core.FeatureDescription{Text: "search"}, draft)
	require.NoError(t, err)

	assert.Same(t, draft, story)
	assert.Equal(t, core.SourceTemplate, story.Source)
}

func TestChainDoesNotRetryResponseErrors(t *testing.T) {
	provider := &fakeProvider{name: "fake", available: true, err: &ResponseError{Provider: "fake", Reason: "garbage"}}
	chain := NewChain(fastConfig(), provider)

	_, err := chain.Enhance(context.Background(), core.FeatureDescription{Text: "search"}, testDraft())
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
}

func TestChainRetriesTransientErrors(t *testing.T) {
	provider := &fakeProvider{name: "fake", available: true, err: &TransientError{Provider: "fake"}}
	chain := NewChain(fastConfig(), provider)

	_, err := chain.Enhance(context.Background(), core.FeatureDescription{Text: "search"}, testDraft())
	require.NoError(t, err)

	// Initial attempt plus one retry.
	assert.Equal(t, 2, provider.calls)
}

func TestChainSkipsUnavailableProviders(t *testing.T) {
	skipped := &fakeProvider{name: "skipped", available: false, payload: testPayload()}
	used := &fakeProvider{name: "used", available: true, payload: testPayload()}
	chain := NewChain(fastConfig(), skipped, used)

	story, err := chain.Enhance(context.Background(), core.FeatureDescription{Text: "search"}, testDraft())
	require.NoError(t, err)

	assert.Equal(t, 0, skipped.calls)
	assert.Equal(t, 1, used.calls)
	assert.Equal(t, core.SourceAI, story.Source)
}

func TestChainFallsThroughOnInvalidPayload(t *testing.T) {
	// A payload that parses but converts into a structurally invalid
	// story is treated like any other bad response.
	bad := &fakeProvider{name: "bad", available: true, payload: &StoryPayload{Title: "No Scenarios"}}
	good := &fakeProvider{name: "good", available: true, payload: testPayload()}
	chain := NewChain(fastConfig(), bad, good)

	story, err := chain.Enhance(context.Background(), core.FeatureDescription{Text: "search"}, testDraft())
	require.NoError(t, err)

	assert.Equal(t, "Enhanced Story", story.Title)
}

// stalledProvider blocks until the per-attempt timeout fires.
type stalledProvider struct {
	calls int
}

func (s *stalledProvider) Name() string    { return "stalled" }
func (s *stalledProvider) Available() bool { return true }

func (s *stalledProvider) Generate(ctx context.Context, prompt Prompt) (*StoryPayload, error) {
	s.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestChainTimeoutIsBounded(t *testing.T) {
	provider := &stalledProvider{}
	chain := NewChain(Config{
		Timeout:    10 * time.Millisecond,
		Retries:    1,
		RetryDelay: time.Millisecond,
	}, provider)

	draft := testDraft()
	start := time.Now()
	story, err := chain.Enhance(context.Background(), core.FeatureDescription{Text: "search"}, draft)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Same(t, draft, story)
	// Timeouts are transient, so the provider gets the retry budget and
	// nothing more.
	assert.Equal(t, 2, provider.calls)
	assert.Less(t, elapsed, time.Second)
}

func TestChainHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &fakeProvider{name: "fake", available: true, err: &TransientError{Provider: "fake"}}
	chain := NewChain(fastConfig(), provider)

	_, err := chain.Enhance(ctx, core.FeatureDescription{Text: "search"}, testDraft())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChainProvidersOrder(t *testing.T) {
	first := &fakeProvider{name: "first"}
	second := &fakeProvider{name: "second"}
	chain := NewChain(fastConfig(), first, second)

	providers := chain.Providers()
	require.Len(t, providers, 2)
	assert.Equal(t, "first", providers[0].Name())
	assert.Equal(t, "second", providers[1].Name())
}

func TestProviderNames(t *testing.T) {
	anthropic := NewAnthropicProvider(AnthropicOptions{})
	assert.Equal(t, "anthropic", anthropic.Name())
	assert.False(t, anthropic.Available())

	openai := NewOpenAIProvider(OpenAIOptions{})
	assert.Equal(t, "openai", openai.Name())
	assert.False(t, openai.Available())

	withKeys := NewOpenAIProvider(OpenAIOptions{APIKey: "sk-test"})
	assert.True(t, withKeys.Available())
}
