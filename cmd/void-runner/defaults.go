package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in runner config",
	Long: `Print the runner config that ships with the binary as YAML.

Save it, edit the values and pass the file to --config. Runs played on a
config file are recorded with difficulty "custom".

Examples:
  void-runner defaults > my-runner.yaml
  void-runner play --config my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runDefaults,
}

func runDefaults(cmd *cobra.Command, _ []string) {
	if _, err := cmd.OutOrStdout().Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
