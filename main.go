package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/autodevhub/storygen/cmd"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "storygen",
		Short:   "Generate Gherkin user stories from feature descriptions",
		Version: version,
	}

	rootCmd.AddCommand(cmd.GenerateCmd)
	rootCmd.AddCommand(cmd.RefineCmd)
	rootCmd.AddCommand(cmd.ProvidersCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
