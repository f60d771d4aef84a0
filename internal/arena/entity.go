package arena

import "github.com/vovakirdan/tui-arena/internal/core"

// Kind tags what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindWall
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindWall:
		return "wall"
	default:
		return "unknown"
	}
}

// EntityID identifies an entity for its whole lifetime. IDs are never reused.
type EntityID uint64

// Entity is a square in the arena. Kind selects which of the optional
// fields are meaningful: Wall is only set for walls.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      core.Vec2 // Center, world units
	Size     core.Vec2 // Full extents
	Color    core.Color
	Collider bool       // Participates in overlap testing
	Velocity *core.Vec2 // Units per second; nil for static entities
	Wall     WallLocation
}

// Box returns the entity's bounding box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.Pos, e.Size)
}

// IsEnemy reports whether the entity scores when touched.
func (e *Entity) IsEnemy() bool {
	return e.Kind == KindEnemy
}
