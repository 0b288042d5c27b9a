// Command stagehand is the project tool for cue sheets: it validates and
// inspects the YAML files applications feed to conduct.Conductor.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stagehand",
		Short: "Cue sheet tools for stagehand projects",
		Long: `Stagehand distributes named style bundles through widget trees.

This tool works with the YAML cue sheets those bundles are loaded from:

  stagehand vet     validate cue sheets
  stagehand keys    list the animation-keys a sheet defines`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		vetCmd(),
		keysCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
