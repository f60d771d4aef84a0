package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/metrics"
	"github.com/vovakirdan/tui-arena/internal/registry"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// DefaultHoldWindow is used when Options.HoldWindow is zero.
const DefaultHoldWindow = 600 * time.Millisecond

// statusDuration is how long a status line (e.g. a saved screenshot path) stays visible.
const statusDuration = 3 * time.Second

// pngSaver is implemented by games that can export a raster snapshot.
type pngSaver interface {
	SavePNG(path string) error
}

// textSnapshotter is implemented by games with their own text dump.
type textSnapshotter interface {
	Snapshot(w, h int) string
}

// Options configures a Model beyond the runtime config.
type Options struct {
	Store         *storage.Store // Nil disables score saving
	Player        string         // Name saved with the score
	HoldWindow    time.Duration  // Key hold latch window
	ScreenshotDir string         // Defaults to ~/.arcade/screenshots
	NoScreenshots bool           // Ignore the screenshot key
	Logger        *log.Logger    // Defaults to log.Default()

	// Renderer styles the output. SSH sessions pass their own so colors
	// match the client's terminal. Defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	player    string
	keys      KeyMap
	help      help.Model
	render    *screenRenderer
	held      *HeldKeys
	triggers  core.InputFrame // One-shot actions for the next frame
	lastFrame time.Time
	gameState core.GameState
	logger    *log.Logger

	screenshotDir string
	noScreenshots bool
	status        string
	statusUntil   time.Time

	quitting   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir()
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:         opts.Store,
		config:        cfg,
		player:        opts.Player,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		render:        newScreenRenderer(opts.Renderer, game),
		held:          NewHeldKeys(opts.HoldWindow),
		triggers:      core.NewInputFrame(),
		logger:        opts.Logger,
		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.NoScreenshots,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// lastFrame stays zero until the first frame (value receiver),
	// so the first update simulates no time.
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionScreenshot && !m.noScreenshots:
		m.saveScreenshot(now)
	case action == core.ActionPause:
		m.triggers.Set(core.ActionPause)
		m.held.ReleaseAll()
	case isDirection(action):
		m.held.Press(action, now)
	}
	return m, nil
}

// handleResize processes window resize events.
// World coordinates are independent of the terminal, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame advances the simulation by the wall-clock time since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	in := m.triggers.Clone()
	m.held.Apply(&in, now)

	start := time.Now()
	result := m.game.Update(elapsed, in)
	metrics.RecordFrame(result, time.Since(start))
	m.gameState = result.State

	m.triggers.Clear()
	return m, frameCmd(m.config.FrameRate)
}

// saveScore stores the final score once. Zero scores are not recorded.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	score := m.game.State().Score
	if score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		m.logger.Error("cannot save score", "game", m.game.ID(), "error", err)
		return
	}
	m.scoreSaved = true
	m.logger.Info("score saved", "game", m.game.ID(), "player", m.player, "score", score)
}

// saveScreenshot writes the current screen as text, plus a PNG when the game supports it.
func (m *Model) saveScreenshot(now time.Time) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.setStatus(now, "screenshot failed: "+err.Error())
		return
	}

	base := filepath.Join(m.screenshotDir,
		fmt.Sprintf("%s_%s", m.game.ID(), now.Format("20060102_150405")))

	text := m.screen.String()
	if ts, ok := m.game.(textSnapshotter); ok {
		text = ts.Snapshot(m.screen.Width(), m.screen.Height())
	}
	if err := os.WriteFile(base+".txt", []byte(text), 0o600); err != nil {
		m.logger.Error("cannot save screenshot", "path", base+".txt", "error", err)
		m.setStatus(now, "screenshot failed")
		return
	}

	saved := base + ".txt"
	if ps, ok := m.game.(pngSaver); ok {
		if err := ps.SavePNG(base + ".png"); err != nil {
			m.logger.Warn("cannot save PNG snapshot", "path", base+".png", "error", err)
		} else {
			saved = base + ".png"
		}
	}
	m.logger.Info("screenshot saved", "path", saved)
	m.setStatus(now, "saved "+saved)
}

func (m *Model) setStatus(now time.Time, s string) {
	m.status = s
	m.statusUntil = now.Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := m.render.help.Render(m.help.View(m.keys))
	if m.status != "" && time.Now().Before(m.statusUntil) {
		bar = m.render.status.Render(m.status)
	}
	return m.render.Render(m.screen) + "\n" + bar
}

// State returns the game state as of the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".arcade", "screenshots")
}
