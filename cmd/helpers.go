package cmd

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/autodevhub/storygen/internal/config"
	"github.com/autodevhub/storygen/internal/core"
	"github.com/autodevhub/storygen/internal/llm"
	"github.com/autodevhub/storygen/internal/tui"
)

const configFileName = ".storygen.yaml"

// loadConfiguration loads the config file (explicit path, working
// directory, then home directory) and fills provider credentials from
// the environment when the file leaves them blank. This is the caller's
// configuration layer; the core only sees injected values.
func loadConfiguration(path string) (*config.Config, error) {
	cfg := config.Default()

	if path == "" {
		if _, err := os.Stat(configFileName); err == nil {
			path = configFileName
		} else if home, err := os.UserHomeDir(); err == nil {
			homePath := filepath.Join(home, configFileName)
			if _, err := os.Stat(homePath); err == nil {
				path = homePath
			}
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cfg.AI.Anthropic.APIKey == "" {
		cfg.AI.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.AI.OpenAI.APIKey == "" {
		cfg.AI.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg, nil
}

// buildChain assembles the provider fallback chain in configured order.
func buildChain(cfg *config.Config) *llm.Chain {
	var providers []llm.Provider
	for _, name := range cfg.AI.Providers {
		switch name {
		case "anthropic":
			providers = append(providers, llm.NewAnthropicProvider(llm.AnthropicOptions{
				APIKey:    cfg.AI.Anthropic.APIKey,
				Model:     cfg.AI.Anthropic.Model,
				MaxTokens: cfg.AI.Anthropic.MaxTokens,
			}))
		case "openai":
			providers = append(providers, llm.NewOpenAIProvider(llm.OpenAIOptions{
				APIKey:   cfg.AI.OpenAI.APIKey,
				Model:    cfg.AI.OpenAI.Model,
				Endpoint: cfg.AI.OpenAI.Endpoint,
			}))
		}
	}

	return llm.NewChain(llm.Config{
		Timeout:    time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		Retries:    cfg.AI.RetryCount,
		RetryDelay: time.Duration(cfg.AI.RetryDelaySeconds) * time.Second,
	}, providers...)
}

// buildGenerator wires the pipeline from configuration.
func buildGenerator(cfg *config.Config) *core.Generator {
	lib := core.DefaultTemplateLibrary()
	var enhancer core.Enhancer
	if cfg.AI.Enabled {
		enhancer = buildChain(cfg)
	}
	return core.NewGenerator(lib, enhancer)
}

// storyOutcome carries a generation result across the spinner goroutine.
type storyOutcome struct {
	result *core.StoryResult
	err    error
}

// runWithSpinner runs fn while showing a progress spinner. The spinner
// is cosmetic: generation continues even if the terminal cannot render
// it.
func runWithSpinner(message string, fn func() (*core.StoryResult, error)) (*core.StoryResult, error) {
	ch := make(chan storyOutcome, 1)
	program := tea.NewProgram(tui.NewSpinner(message))

	go func() {
		result, err := fn()
		ch <- storyOutcome{result: result, err: err}
		program.Send(tui.DoneMsg{})
	}()

	// A render failure (non-interactive terminal) does not stop the
	// generation goroutine.
	_, _ = program.Run()

	outcome := <-ch
	return outcome.result, outcome.err
}

func markFlagRequired(cmd *cobra.Command, name string) {
	_ = cmd.MarkFlagRequired(name)
}
