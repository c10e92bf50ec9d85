package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autodevhub/storygen/internal/core"
)

func sampleResult() *core.StoryResult {
	return &core.StoryResult{
		StoryID:            core.NewStoryID(),
		Title:              "User Authentication",
		FeatureDescription: "User authentication with social login",
		GherkinContent:     "Feature: User Authentication",
		Role:               "user",
		Action:             "login",
		Benefit:            "securely access my account",
		AcceptanceCriteria: []string{"valid credentials log the user in"},
		EstimatedEffort:    5,
		QualityScore:       1.0,
		IsValidGherkin:     true,
		Source:             core.SourceTemplate,
		FeatureTag:         core.TagAuthentication,
		StoryType:          core.StoryTypeStory,
		Priority:           core.PriorityMedium,
		CreatedAt:          time.Now().UTC().Truncate(time.Second),
	}
}

func TestJSONWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.json")
	want := sampleResult()

	require.NoError(t, NewJSONWriter(path).Write(want))

	got, err := ReadStory(path)
	require.NoError(t, err)

	assert.Equal(t, want.StoryID, got.StoryID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.AcceptanceCriteria, got.AcceptanceCriteria)
	assert.Equal(t, want.EstimatedEffort, got.EstimatedEffort)
	assert.Equal(t, want.Source, got.Source)
	assert.Equal(t, want.FeatureTag, got.FeatureTag)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestJSONWriterOutputIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.json")
	require.NoError(t, NewJSONWriter(path).Write(sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"story_id\"")
}

func TestReadStoryErrors(t *testing.T) {
	_, err := ReadStory(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err = ReadStory(path)
	assert.Error(t, err)
}
