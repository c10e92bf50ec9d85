package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autodevhub/storygen/internal/core"
	"github.com/autodevhub/storygen/internal/output"
	"github.com/autodevhub/storygen/internal/tui"
)

var (
	storyType      string
	storyPriority  string
	projectContext string
	noAI           bool
	jsonOutput     bool
	outputPath     string
	configFile     string
	showHints      bool
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate <feature description>",
	Short: "Generate a Gherkin user story from a feature description",
	Long: `Generate a Gherkin-formatted user story from a plain-language
feature description.

The generator classifies the feature, composes a story from the matching
template, and (when AI is enabled and a provider is reachable) enhances
the draft with an AI provider. If every provider fails, the template
draft is returned unchanged, so generation always produces a story.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&storyType, "type", "t", "story", "Story type (story/epic/task)")
	GenerateCmd.Flags().StringVarP(&storyPriority, "priority", "p", "medium", "Priority (critical/high/medium/low)")
	GenerateCmd.Flags().StringVar(&projectContext, "context", "", "Additional project context passed to AI providers")
	GenerateCmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip AI enhancement and use templates only")
	GenerateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON instead of formatted output")
	GenerateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result JSON to a file")
	GenerateCmd.Flags().StringVar(&configFile, "config", "", "Config file (default: .storygen.yaml)")
	GenerateCmd.Flags().BoolVar(&showHints, "hints", true, "Show description improvement hints")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	cfg, err := loadConfiguration(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if noAI {
		cfg.AI.Enabled = false
	}

	parsedType, err := core.ParseStoryType(storyType)
	if err != nil {
		return err
	}
	parsedPriority, err := core.ParsePriority(storyPriority)
	if err != nil {
		return err
	}

	generator := buildGenerator(cfg)
	request := core.GenerateRequest{
		Description:    description,
		StoryType:      parsedType,
		Priority:       parsedPriority,
		ProjectContext: projectContext,
		UseAI:          cfg.AI.Enabled,
	}

	generate := func() (*core.StoryResult, error) {
		return generator.Generate(context.Background(), request)
	}

	var result *core.StoryResult
	if cfg.AI.Enabled && !jsonOutput {
		result, err = runWithSpinner("Generating story...", generate)
	} else {
		result, err = generate()
	}
	if err != nil {
		return fmt.Errorf("failed to generate story: %w", err)
	}

	if jsonOutput {
		return output.NewJSONWriter("").Write(result)
	}

	fmt.Println(tui.TitleStyle.Render("Generated Story: " + result.Title))
	fmt.Println()
	fmt.Println(tui.RenderStory(result))

	if showHints {
		if hints := core.AnalyzeDescription(description); len(hints) > 0 {
			fmt.Println(tui.SubtitleStyle.Render("Description hints"))
			for _, h := range hints {
				fmt.Printf("  %s %s\n", tui.HelpStyle.Render("→"), h)
			}
			fmt.Println()
		}
	}

	if outputPath != "" {
		if err := output.NewJSONWriter(outputPath).Write(result); err != nil {
			return err
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Saved to " + outputPath))
	}
	return nil
}
