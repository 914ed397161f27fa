package sim

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// EntityView is one drawable entity: position, collision circle, and the
// sprite key the frontend may substitute for the debug shape.
type EntityView struct {
	Entity ecs.Entity
	X, Y   float64
	Radius float64
	Layer  component.Layer
	Sprite string
}

// Snapshot is the read-only render boundary: every collidable entity plus
// the HUD aggregation, captured in one pass so the frontend never walks the
// world itself.
type Snapshot struct {
	Tick     uint64
	Entities []EntityView
	HUD      HUD
}

// Snapshot captures the current frame's drawable state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{Tick: s.world.Tick()}

	ecs.ForEach2(s.world, component.ColliderKind, component.TransformKind,
		func(e ecs.Entity, col *component.Collider, tr *component.Transform) {
			view := EntityView{
				Entity: e,
				X:      tr.X,
				Y:      tr.Y,
				Radius: col.Radius,
				Layer:  col.Layer,
			}
			if b, ok := ecs.Get(s.world, e, component.BulletKind); ok {
				view.Sprite = b.Sprite
			} else if tag, ok := ecs.Get(s.world, e, component.EnemyTagKind); ok {
				view.Sprite = tag.Sprite
			}
			snap.Entities = append(snap.Entities, view)
		})

	snap.HUD = s.HUD()
	return snap
}
