package arena

import "fmt"

// Scoreboard counts enemies the player has collided with.
type Scoreboard struct {
	Score int
}

// World owns every entity in the arena together with the per-run
// scoreboard and the collision event queue.
type World struct {
	entities   []*Entity
	nextID     EntityID
	Scoreboard Scoreboard
	Events     EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{nextID: 1}
}

// Spawn adds e to the world and returns its assigned ID.
func (w *World) Spawn(e Entity) EntityID {
	e.ID = w.nextID
	w.nextID++
	w.entities = append(w.entities, &e)
	return e.ID
}

// Despawn removes the entity with the given ID.
// Returns false if it was already gone.
func (w *World) Despawn(id EntityID) bool {
	for i, e := range w.entities {
		if e.ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the entity with the given ID, or nil.
func (w *World) Get(id EntityID) *Entity {
	for _, e := range w.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Entities returns the live entities in spawn order.
// The slice is owned by the world and must not be modified.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Player returns the single player entity.
// Panics if the world does not hold exactly one player.
func (w *World) Player() *Entity {
	var player *Entity
	for _, e := range w.entities {
		if e.Kind != KindPlayer {
			continue
		}
		if player != nil {
			panic("arena: more than one player in world")
		}
		player = e
	}
	if player == nil {
		panic("arena: no player in world")
	}
	return player
}

// Colliders returns a snapshot of every collider other than the player.
// Despawning during iteration over the snapshot is safe.
func (w *World) Colliders() []*Entity {
	out := make([]*Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if e.Collider && e.Kind != KindPlayer {
			out = append(out, e)
		}
	}
	return out
}

// Clear removes all entities and resets score and events.
func (w *World) Clear() {
	w.entities = nil
	w.Scoreboard = Scoreboard{}
	w.Events.Clear()
}

// String summarizes the world for logs and debugging.
func (w *World) String() string {
	return fmt.Sprintf("world{entities=%d enemies=%d score=%d events=%d}",
		len(w.entities), w.Count(KindEnemy), w.Scoreboard.Score, w.Events.Len())
}
