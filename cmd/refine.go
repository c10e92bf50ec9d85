package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autodevhub/storygen/internal/core"
	"github.com/autodevhub/storygen/internal/output"
	"github.com/autodevhub/storygen/internal/tui"
)

var (
	refineFeedback   string
	refineNoAI       bool
	refineJSONOutput bool
	refineOutputPath string
	refineConfigFile string
)

// RefineCmd represents the refine command
var RefineCmd = &cobra.Command{
	Use:   "refine <story-file>",
	Short: "Refine a generated story with feedback",
	Long: `Refine a previously generated story by folding feedback into its
description and re-running the full pipeline.

The input file is a story JSON produced by generate --output. The
refined story gets a fresh ID; the original file is left untouched
unless you write over it with --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefine,
}

func init() {
	RefineCmd.Flags().StringVarP(&refineFeedback, "feedback", "f", "", "Feedback to fold into the story (required)")
	RefineCmd.Flags().BoolVar(&refineNoAI, "no-ai", false, "Skip AI enhancement and use templates only")
	RefineCmd.Flags().BoolVar(&refineJSONOutput, "json", false, "Print the result as JSON instead of formatted output")
	RefineCmd.Flags().StringVarP(&refineOutputPath, "output", "o", "", "Write the refined story JSON to a file")
	RefineCmd.Flags().StringVar(&refineConfigFile, "config", "", "Config file (default: .storygen.yaml)")
	markFlagRequired(RefineCmd, "feedback")
}

func runRefine(cmd *cobra.Command, args []string) error {
	original, err := output.ReadStory(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfiguration(refineConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if refineNoAI {
		cfg.AI.Enabled = false
	}

	generator := buildGenerator(cfg)
	refine := func() (*core.StoryResult, error) {
		return generator.Refine(context.Background(), original, refineFeedback)
	}

	var result *core.StoryResult
	if cfg.AI.Enabled && !refineJSONOutput {
		result, err = runWithSpinner("Refining story...", refine)
	} else {
		result, err = refine()
	}
	if err != nil {
		return fmt.Errorf("failed to refine story: %w", err)
	}

	if refineJSONOutput {
		return output.NewJSONWriter("").Write(result)
	}

	fmt.Println(tui.TitleStyle.Render("Refined Story: " + result.Title))
	fmt.Printf("  %s %s → %s\n\n", tui.HelpStyle.Render("id:"), original.StoryID, result.StoryID)
	fmt.Println(tui.RenderStory(result))

	if refineOutputPath != "" {
		if err := output.NewJSONWriter(refineOutputPath).Write(result); err != nil {
			return err
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Saved to " + refineOutputPath))
	}
	return nil
}
