package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storygen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, []string{"anthropic", "openai"}, cfg.AI.Providers)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Equal(t, 2, cfg.AI.RetryCount)
	assert.Equal(t, 1, cfg.AI.RetryDelaySeconds)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
ai:
  enabled: true
  providers:
    - openai
  timeout_seconds: 10
  anthropic:
    api_key: test-key
    model: custom-model
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"openai"}, cfg.AI.Providers)
	assert.Equal(t, 10, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "test-key", cfg.AI.Anthropic.APIKey)
	assert.Equal(t, "custom-model", cfg.AI.Anthropic.Model)
	// Unset values fall back to defaults.
	assert.Equal(t, 1, cfg.AI.RetryDelaySeconds)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "ai:\n  enabled: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, []string{"anthropic", "openai"}, cfg.AI.Providers)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown provider",
			content: "ai:\n  providers:\n    - mistral\n",
		},
		{
			name:    "negative timeout",
			content: "ai:\n  timeout_seconds: -5\n",
		},
		{
			name:    "negative retries",
			content: "ai:\n  retry_count: -1\n",
		},
		{
			name:    "malformed yaml",
			content: "ai: [unclosed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
