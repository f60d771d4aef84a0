// Package arena implements the arena game: a player square moves inside a
// walled box, enemies appear at random every spawn interval, and touching
// one scores a point. Any collision plays a sound.
//
// The simulation runs on two fixed clocks fed by wall-clock frame time:
// physics (movement, collisions, sound) and the enemy spawner.
package arena

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/registry"
)

// GameID is the identifier used for the CLI and score storage.
const GameID = "arena"

// Package-level settings, applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets the custom config file used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied to new games.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

func init() {
	registry.Register(GameID, "Arena", func() (registry.Game, error) {
		return NewFromSettings()
	})
}

// NewFromSettings loads the configuration the CLI selected and creates a game.
func NewFromSettings() (*Game, error) {
	cfg, err := config.LoadArena(configPath)
	if err != nil {
		return nil, err
	}
	config.ApplyArenaPreset(&cfg, difficultyPreset)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return New(cfg), nil
}

// Game implements the arena game logic.
type Game struct {
	cfg     config.ArenaConfig
	world   *World
	label   *Label
	camera  Camera
	bounds  Bounds
	physics *FixedTimestep
	spawner *FixedTimestep
	rng     *rand.Rand
	sound   core.Sound
	paused  bool
	ticks   uint64
}

// New creates a game from a validated configuration.
// Call Reset before the first Update.
func New(cfg config.ArenaConfig) *Game {
	return &Game{
		cfg:     cfg,
		world:   NewWorld(),
		camera:  NewCamera(cfg.Arena),
		bounds:  PlayerBounds(cfg),
		physics: NewFixedTimestep(cfg.Timing.TickDuration()),
		spawner: NewFixedTimestep(cfg.Timing.SpawnDuration()),
		label:   NewScoreLabel(cfg.Colors.Text, cfg.Colors.Score),
		sound:   core.SilentSound{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arena"
}

// SetSound selects the collision sound backend.
func (g *Game) SetSound(s core.Sound) {
	if s == nil {
		s = core.SilentSound{}
	}
	g.sound = s
}

// Theme returns the configured backdrop: the window background, the text
// color and the score color for status messages.
func (g *Game) Theme() core.Theme {
	c := g.cfg.Colors
	return core.Theme{Background: c.Background, Text: c.Text, Accent: c.Score}
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.ArenaConfig {
	return g.cfg
}

// World exposes the entity store.
func (g *Game) World() *World {
	return g.world
}

// Bounds returns the player bounds.
func (g *Game) Bounds() Bounds {
	return g.bounds
}

// Reset builds a fresh arena: camera, player, walls and scoreboard.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.paused = false
	g.ticks = 0
	g.physics.Reset()
	g.spawner.Reset()

	g.world.Clear()
	g.setup()
}

// setup spawns the initial entities.
func (g *Game) setup() {
	c := g.cfg

	g.world.Spawn(Entity{
		Kind:     KindPlayer,
		Pos:      c.PlayerStart(),
		Size:     core.V2(c.Player.Width, c.Player.Height),
		Color:    c.Colors.Player,
		Collider: true,
	})

	for _, loc := range Walls {
		g.world.Spawn(Entity{
			Kind:     KindWall,
			Pos:      loc.Position(c.Arena),
			Size:     loc.Size(c.Arena),
			Color:    c.Colors.Wall,
			Collider: true,
			Wall:     loc,
		})
	}

	g.label = NewScoreLabel(c.Colors.Text, c.Colors.Score)
}

// Update advances both clocks by the elapsed frame time and runs every
// due physics tick followed by every due spawn.
func (g *Game) Update(elapsed time.Duration, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if limit := g.cfg.Timing.FrameCap(); elapsed > limit {
		elapsed = limit
	}
	g.physics.Accumulate(elapsed)
	g.spawner.Accumulate(elapsed)

	var res core.StepResult
	for g.physics.Expend() {
		events, played := g.tick(in)
		res.Ticks++
		res.Collisions += events
		if played {
			res.Sounds++
		}
	}
	for g.spawner.Expend() {
		SpawnEnemy(g.world, g.rng, g.cfg.Arena, g.cfg.Enemy, g.cfg.Colors.Enemy)
		res.Spawned++
	}

	res.State = g.State()
	return res
}

// tick runs one physics step.
func (g *Game) tick(in core.InputFrame) (events int, played bool) {
	dt := g.cfg.Timing.TimeStep()
	g.ticks++

	MovePlayer(g.world, in, g.cfg.Player.Speed, g.bounds, dt)
	ApplyVelocity(g.world, dt)
	events = CheckCollisions(g.world)
	played = PlayCollisionSound(g.world, g.sound)
	return events, played
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.world.Scoreboard.Score,
		Enemies: g.world.Count(KindEnemy),
		Ticks:   g.ticks,
		Paused:  g.paused,
	}
}
