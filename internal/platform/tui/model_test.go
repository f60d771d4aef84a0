package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// fakeGame records what the model hands it.
type fakeGame struct {
	resets  int
	elapsed []time.Duration
	inputs  []core.InputFrame
	score   int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Update(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.elapsed = append(g.elapsed, elapsed)
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score}
}

func newTestModel(t *testing.T, g *fakeGame, opts Options) Model {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, FrameRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func step(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelElapsedTime(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	t0 := time.Unix(1000, 0)

	m, cmd := step(m, FrameMsg(t0))
	if cmd == nil {
		t.Error("frame did not schedule the next frame")
	}
	m, _ = step(m, FrameMsg(t0.Add(16*time.Millisecond)))
	_, _ = step(m, FrameMsg(t0.Add(50*time.Millisecond)))

	want := []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond}
	if len(g.elapsed) != len(want) {
		t.Fatalf("updates = %v, expected %v", g.elapsed, want)
	}
	for i := range want {
		if g.elapsed[i] != want[i] {
			t.Errorf("update %d elapsed = %v, expected %v", i, g.elapsed[i], want[i])
		}
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelHeldDirection(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{HoldWindow: 500 * time.Millisecond})
	t0 := time.Unix(1000, 0)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, t0)
	m = next.(Model)

	m, _ = step(m, FrameMsg(t0.Add(100*time.Millisecond)))
	m, _ = step(m, FrameMsg(t0.Add(400*time.Millisecond)))
	_, _ = step(m, FrameMsg(t0.Add(700*time.Millisecond)))

	if !g.inputs[0].Has(core.ActionRight) || !g.inputs[1].Has(core.ActionRight) {
		t.Error("right not held within the hold window")
	}
	if g.inputs[2].Has(core.ActionRight) {
		t.Error("right still held after the hold window")
	}
}

func TestModelPauseIsOneShot(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	t0 := time.Unix(1000, 0)

	m, _ = step(m, runeKey("p"))
	m, _ = step(m, FrameMsg(t0))
	_, _ = step(m, FrameMsg(t0.Add(time.Millisecond)))

	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("pause missing from the frame after the key")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("pause repeated on the following frame")
	}
}

func TestModelQuitSavesScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	tests := []struct {
		name   string
		score  int
		player string
		saved  bool
	}{
		{"positive score", 7, "ann", true},
		{"zero score", 0, "bob", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := store.ClearScores("fake"); err != nil {
				t.Fatalf("ClearScores() failed: %v", err)
			}
			g := &fakeGame{score: tc.score}
			m := newTestModel(t, g, Options{Store: store, Player: tc.player})

			m, cmd := step(m, tea.KeyMsg{Type: tea.KeyCtrlC})
			if cmd == nil {
				t.Error("quit returned no command")
			}
			if m.View() != "" {
				t.Error("view not empty after quit")
			}

			scores, err := store.TopScores("fake", 10)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if !tc.saved {
				if len(scores) != 0 {
					t.Errorf("scores = %v, expected none", scores)
				}
				return
			}
			if len(scores) != 1 || scores[0].Score != tc.score || scores[0].Player != tc.player {
				t.Errorf("scores = %+v, expected one %s/%d entry", scores, tc.player, tc.score)
			}
		})
	}
}

func TestModelQuitWithoutStore(t *testing.T) {
	m := newTestModel(t, &fakeGame{score: 3}, Options{})
	if _, cmd := step(m, runeKey("q")); cmd == nil {
		t.Error("quit returned no command")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, &fakeGame{}, Options{ScreenshotDir: dir})

	m, _ = step(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("screenshot files = %v, expected one", files)
	}
	if m.status == "" {
		t.Error("no status message after screenshot")
	}
}

func TestModelNoScreenshots(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, &fakeGame{}, Options{ScreenshotDir: dir, NoScreenshots: true})

	_, _ = step(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, _ := filepath.Glob(filepath.Join(dir, "*"))
	if len(files) != 0 {
		t.Errorf("screenshot files = %v, expected none", files)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = step(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resets after resize = %d, expected 1", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
