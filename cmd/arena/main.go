// arena is a terminal arena game: steer a square around a walled box and
// touch the enemies that keep appearing to score points.
//
// Usage:
//
//	arena play             - Play in this terminal
//	arena serve            - Start SSH server (and optional HTTP leaderboard)
//	arena scores           - Show high scores
//	arena config           - Print the default configuration
//	arena list             - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set render frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/arena.db, env ARENA_DB)
//	--config <path>       - Custom arena config YAML (env ARENA_CONFIG)
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/config"
)

const (
	envDBPath = "ARENA_DB"
	envConfig = "ARENA_CONFIG"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Arena - catch enemies inside a walled box in your terminal",
	Long: `Arena is a terminal game. You steer a square inside a walled arena;
a new enemy appears every second and touching one scores a point.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration
  list     - Show registered games

Examples:
  arena play
  arena play --difficulty hard --sound bell
  arena serve --ssh :2222 --http :8080
  arena scores --tui`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/arena.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// applyGlobalFlags fills unset flags from the environment and hands the
// game settings to the arena package before any game is created.
func applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if v := os.Getenv(envDBPath); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envConfig); v != "" && !flags.Changed("config") {
		flagConfig = v
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	arena.SetConfigPath(flagConfig)
	arena.SetDifficultyPreset(preset)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}
