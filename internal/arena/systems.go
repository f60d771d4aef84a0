package arena

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
)

// MovePlayer moves the player by input for one tick of dt seconds and
// clamps it to bounds. Left wins over right and down wins over up when
// both are held on the same axis.
func MovePlayer(w *World, in core.InputFrame, speed float64, bounds Bounds, dt float64) {
	player := w.Player()

	var dir core.Vec2
	switch {
	case in.Has(core.ActionLeft):
		dir.X = -1
	case in.Has(core.ActionRight):
		dir.X = 1
	}
	switch {
	case in.Has(core.ActionDown):
		dir.Y = -1
	case in.Has(core.ActionUp):
		dir.Y = 1
	}

	next := player.Pos.Add(dir.Scale(speed * dt))
	player.Pos = bounds.Clamp(next)
}

// ApplyVelocity advances every entity that has a velocity by dt seconds.
func ApplyVelocity(w *World, dt float64) {
	for _, e := range w.entities {
		if e.Velocity == nil {
			continue
		}
		e.Pos = e.Pos.Add(e.Velocity.Scale(dt))
	}
}

// CheckCollisions tests the player against every other collider.
// Each overlap sends one event; enemies also score and are removed.
// Returns the number of events sent.
func CheckCollisions(w *World) int {
	playerBox := w.Player().Box()

	sent := 0
	for _, c := range w.Colliders() {
		if !playerBox.Overlaps(c.Box()) {
			continue
		}
		w.Events.Send(CollisionEvent{})
		sent++

		if c.IsEnemy() {
			w.Scoreboard.Score++
			w.Despawn(c.ID)
		}
	}
	return sent
}

// PlayCollisionSound plays the collision sound once if any event is
// pending, then clears the queue. Returns whether the sound was played.
func PlayCollisionSound(w *World, sound core.Sound) bool {
	if w.Events.Empty() {
		return false
	}
	w.Events.Clear()
	if sound != nil {
		sound.Play()
	}
	return true
}

// SpawnEnemy places a new enemy at a uniformly random point inside the
// arena edges.
func SpawnEnemy(w *World, rng *rand.Rand, g config.ArenaGeometry, enemy config.ArenaEnemy, color core.Color) EntityID {
	pos := core.V2(
		randRange(rng, g.LeftWall, g.RightWall),
		randRange(rng, g.BottomWall, g.TopWall),
	)
	return w.Spawn(Entity{
		Kind:     KindEnemy,
		Pos:      pos,
		Size:     core.V2(enemy.Width, enemy.Height),
		Color:    color,
		Collider: true,
	})
}

// randRange returns a value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	v := lo + rng.Float64()*(hi-lo)
	if v >= hi {
		// Rounding can land exactly on hi for wide ranges
		v = math.Nextafter(hi, lo)
	}
	return v
}
