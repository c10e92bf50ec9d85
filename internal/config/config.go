// Package config loads the caller-side configuration consumed by the
// generation pipeline. The core packages never read files or
// environment state; everything here is injected into them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	AI AIConfig `yaml:"ai"`
}

// AIConfig controls the AI enhancement path.
type AIConfig struct {
	// Enabled toggles the AI path. When false every story comes from
	// the template composer.
	Enabled bool `yaml:"enabled"`

	// Providers is the fallback order. Known names: anthropic, openai.
	Providers []string `yaml:"providers"`

	TimeoutSeconds    int `yaml:"timeout_seconds"`
	RetryCount        int `yaml:"retry_count"`
	RetryDelaySeconds int `yaml:"retry_delay_seconds"`

	Anthropic AnthropicConfig `yaml:"anthropic"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// OpenAIConfig holds OpenAI API settings.
type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Enabled:           true,
			Providers:         []string{"anthropic", "openai"},
			TimeoutSeconds:    30,
			RetryCount:        2,
			RetryDelaySeconds: 1,
		},
	}
}

// Load reads configuration from a YAML file, filling unset values with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if len(c.AI.Providers) == 0 {
		c.AI.Providers = d.AI.Providers
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = d.AI.TimeoutSeconds
	}
	if c.AI.RetryDelaySeconds == 0 {
		c.AI.RetryDelaySeconds = d.AI.RetryDelaySeconds
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai.timeout_seconds must be positive")
	}
	if c.AI.RetryCount < 0 {
		return fmt.Errorf("ai.retry_count cannot be negative")
	}
	for _, p := range c.AI.Providers {
		switch p {
		case "anthropic", "openai":
		default:
			return fmt.Errorf("unknown provider: %q", p)
		}
	}
	return nil
}
