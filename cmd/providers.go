package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autodevhub/storygen/internal/tui"
)

var providersConfigFile string

// ProvidersCmd represents the providers command
var ProvidersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Show AI provider availability",
	Long: `Show the configured AI providers in fallback order and whether each
one has credentials. A provider without credentials is skipped at
generation time; when none are available, stories come from templates.`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

func init() {
	ProvidersCmd.Flags().StringVar(&providersConfigFile, "config", "", "Config file (default: .storygen.yaml)")
}

func runProviders(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration(providersConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println(tui.TitleStyle.Render("AI Providers"))
	if !cfg.AI.Enabled {
		fmt.Println(tui.WarningStyle.Render("  AI enhancement is disabled; stories come from templates."))
	}

	chain := buildChain(cfg)
	for i, p := range chain.Providers() {
		status := tui.ErrorStyle.Render("✗ no credentials")
		if p.Available() {
			status = tui.SuccessStyle.Render("✓ available")
		}
		fmt.Printf("  %d. %-12s %s\n", i+1, p.Name(), status)
	}
	return nil
}
