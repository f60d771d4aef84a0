package arena

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

const frame = 250 * time.Millisecond

func defaultGeometry() config.ArenaGeometry {
	return config.DefaultArenaConfig().Arena
}

func newTestGame(seed int64) *Game {
	g := New(config.DefaultArenaConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: seed})
	return g
}

// Any configuration Validate accepts must build and run a game.
func TestNewAcceptsValidatedExtremes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.ArenaConfig)
	}{
		{"fastest tick", func(c *config.ArenaConfig) {
			c.Timing.TickRate = config.MaxTickRate
			c.Timing.SpawnInterval = 1.0 / config.MaxTickRate
			c.Timing.MaxFrameTime = 1.0 / config.MaxTickRate
		}},
		{"start on the bottom bound", func(c *config.ArenaConfig) { c.Player.FloorGap = 45 }},
		{"player fills the width", func(c *config.ArenaConfig) { c.Player.Width = 870 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultArenaConfig()
			tc.mutate(&cfg)
			if err := config.Validate(cfg); err != nil {
				t.Fatalf("Validate() = %v", err)
			}

			g := New(cfg)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: 1})
			p := g.World().Player().Pos
			if g.Bounds().Clamp(p) != p {
				t.Errorf("player starts at %+v outside %+v", p, g.Bounds())
			}
			g.Update(frame, inputOf(core.ActionDown))
			if p := g.World().Player().Pos; g.Bounds().Clamp(p) != p {
				t.Errorf("player moved to %+v outside %+v", p, g.Bounds())
			}
		})
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(1)
	w := g.World()

	if n := w.Count(KindWall); n != 4 {
		t.Errorf("walls = %d, expected 4", n)
	}
	if n := w.Count(KindEnemy); n != 0 {
		t.Errorf("enemies = %d, expected 0", n)
	}
	if p := w.Player().Pos; p != core.V2(0, -240) {
		t.Errorf("player start = %+v, expected (0, -240)", p)
	}
	if st := g.State(); st.Score != 0 || st.Ticks != 0 || st.Paused {
		t.Errorf("State() = %+v after Reset", st)
	}

	// Play, then reset again
	in := inputOf(core.ActionRight)
	for i := 0; i < 8; i++ {
		g.Update(frame, in)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})
	if p := w.Player().Pos; p != core.V2(0, -240) {
		t.Errorf("player after second Reset = %+v", p)
	}
	if n := w.Count(KindEnemy); n != 0 {
		t.Errorf("enemies after second Reset = %d", n)
	}
}

func TestGameUpdateClocks(t *testing.T) {
	g := newTestGame(1)
	in := core.NewInputFrame()

	var ticks, spawned int
	for i := 0; i < 4; i++ {
		res := g.Update(frame, in)
		ticks += res.Ticks
		spawned += res.Spawned
	}

	if ticks != 60 {
		t.Errorf("ticks over 1s = %d, expected 60", ticks)
	}
	if spawned != 1 {
		t.Errorf("spawned over 1s = %d, expected 1", spawned)
	}
	if st := g.State(); st.Ticks != 60 || st.Enemies != 1 {
		t.Errorf("State() = %+v, expected 60 ticks and 1 enemy", st)
	}
}

func TestGameUpdateFrameCap(t *testing.T) {
	g := newTestGame(1)

	res := g.Update(10*time.Second, core.NewInputFrame())
	if res.Ticks != 15 {
		t.Errorf("ticks for a 10s stall = %d, expected 15", res.Ticks)
	}
	if res.Spawned != 0 {
		t.Errorf("spawned for a 10s stall = %d, expected 0", res.Spawned)
	}
}

func TestGameMovesPlayer(t *testing.T) {
	g := newTestGame(1)

	// One physics tick
	g.Update(g.Config().Timing.TickDuration(), inputOf(core.ActionRight))

	if p := g.World().Player().Pos; !approx(p.X, 500.0/60.0) {
		t.Errorf("player x = %v, expected 8.333...", p.X)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)

	res := g.Update(frame, inputOf(core.ActionPause, core.ActionRight))
	if !res.State.Paused || res.Ticks != 0 {
		t.Fatalf("pause frame: %+v", res)
	}

	for i := 0; i < 8; i++ {
		g.Update(frame, inputOf(core.ActionRight))
	}
	if st := g.State(); st.Ticks != 0 || st.Enemies != 0 {
		t.Errorf("simulation advanced while paused: %+v", st)
	}
	if p := g.World().Player().Pos; p.X != 0 {
		t.Errorf("player moved while paused: %+v", p)
	}

	res = g.Update(frame, inputOf(core.ActionPause))
	if res.State.Paused || res.Ticks != 15 {
		t.Errorf("resume frame: %+v", res)
	}
}

func TestGameCollisionScoresAndSounds(t *testing.T) {
	g := newTestGame(1)
	sound := &countingSound{}
	g.SetSound(sound)

	player := g.World().Player().Pos
	for i := 0; i < 2; i++ {
		g.World().Spawn(Entity{Kind: KindEnemy, Pos: player, Size: core.V2(30, 30), Collider: true})
	}

	res := g.Update(g.Config().Timing.TickDuration(), core.NewInputFrame())
	if res.Collisions != 2 || res.Sounds != 1 {
		t.Errorf("result = %+v, expected 2 collisions and 1 sound", res)
	}
	if sound.plays != 1 {
		t.Errorf("sound played %d times, expected 1", sound.plays)
	}
	if res.State.Score != 2 || res.State.Enemies != 0 {
		t.Errorf("state = %+v, expected score 2 and no enemies", res.State)
	}
}

func TestGameScoreMonotonic(t *testing.T) {
	g := newTestGame(99)
	dirs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

	last := 0
	for i := 0; i < 240; i++ {
		res := g.Update(frame, inputOf(dirs[(i/6)%len(dirs)]))
		if res.State.Score < last {
			t.Fatalf("frame %d: score went from %d to %d", i, last, res.State.Score)
		}
		if p := g.World().Player().Pos; g.Bounds().Clamp(p) != p {
			t.Fatalf("frame %d: player at %+v escaped bounds", i, g.World().Player().Pos)
		}
		last = res.State.Score
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, []core.Vec2) {
		g := newTestGame(12345)
		dirs := []core.Action{core.ActionRight, core.ActionUp, core.ActionLeft, core.ActionDown}
		for i := 0; i < 200; i++ {
			g.Update(40*time.Millisecond, inputOf(dirs[(i/25)%len(dirs)]))
		}
		var positions []core.Vec2
		for _, e := range g.World().Entities() {
			positions = append(positions, e.Pos)
		}
		return g.State(), positions
	}

	s1, p1 := run()
	s2, p2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if len(p1) != len(p2) {
		t.Fatalf("Determinism failed: entity counts differ. Run1=%d, Run2=%d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("Determinism failed: entity %d at %+v vs %+v", i, p1[i], p2[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	g.World().Scoreboard.Score = 7
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	if row := scr.Row(0); !strings.HasPrefix(row, " Score: 7") {
		t.Errorf("HUD row = %q, expected to start with \" Score: 7\"", row)
	}
	if c := scr.GetCell(40, 20); c.Rune != PlayerChar || c.Color != core.ColorSlateBlue {
		t.Errorf("player cell = %+v, expected slate blue %q", c, PlayerChar)
	}
	for _, pt := range [][2]int{{0, 1}, {79, 1}, {0, 23}, {79, 23}} {
		if c := scr.GetCell(pt[0], pt[1]); c.Rune != WallChar || c.Color != core.ColorGray {
			t.Errorf("corner %v = %+v, expected wall", pt, c)
		}
	}
	if c := scr.GetCell(40, 10); c.Rune != ' ' {
		t.Errorf("arena interior cell = %+v, expected empty", c)
	}

	// Scoreboard reflects the latest score on every render
	g.World().Scoreboard.Score = 8
	g.Render(scr)
	if row := scr.Row(0); !strings.HasPrefix(row, " Score: 8") {
		t.Errorf("HUD row = %q after score change", row)
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(1)
	g.Update(0, inputOf(core.ActionPause))
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("paused frame has no PAUSED message")
	}
}

func TestGameEncodePNG(t *testing.T) {
	g := newTestGame(1)

	var buf bytes.Buffer
	if err := g.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 910 || b.Dy() != 610 {
		t.Errorf("image size = %dx%d, expected 910x610", b.Dx(), b.Dy())
	}

	// Player center (0, -240) lands at pixel (455, 545)
	got := color.RGBAModel.Convert(img.At(455, 545)).(color.RGBA)
	r, gr, b := core.ColorSlateBlue.RGB()
	if got.R != r || got.G != gr || got.B != b {
		t.Errorf("player pixel = %v, expected %d,%d,%d", got, r, gr, b)
	}
}
