package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default arena configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.arcade/configs/arena.yaml or ./configs/arena.yaml and edit it,
or pass a copy with --config.

Examples:
  arena config > ~/.arcade/configs/arena.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML(arena.GameID))
		return err
	},
}
