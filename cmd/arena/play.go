package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arena/internal/arena"
	"github.com/vovakirdan/tui-arena/internal/audio"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/platform/tui"
	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

var (
	flagSound  string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the arena",
	Long: `Start playing in this terminal.

Controls:
  Arrows/WASD/HJKL - Move
  P                - Pause
  Ctrl+S           - Screenshot (text + PNG in ~/.arcade/screenshots)
  Esc/Q/Ctrl+C     - Quit (the score is saved)

Sound backends:
  speaker - Play the collision clip on the audio device (falls back to bell)
  bell    - Ring the terminal bell
  off     - Silence

Examples:
  arena play
  arena play --difficulty easy
  arena play --sound off --player ann
  arena play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSound, "sound", audio.BackendSpeaker, "Sound backend: speaker, bell, off")
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name saved with the score")
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := registry.Create(arena.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	ag := game.(*arena.Game)

	logger, closeLog := openPlayLog()
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sound, err := audio.Open(flagSound, ag.Config().Sound, os.Stdout, logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ag.SetSound(sound)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	logger.Info("starting game", "player", flagPlayer, "sound", flagSound, "difficulty", flagDifficulty)
	runErr := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Player:     flagPlayer,
		HoldWindow: ag.Config().Input.HoldDuration(),
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if score := ag.State().Score; score > 0 {
		fmt.Printf("Final score: %d\n", score)
	}
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
