package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// LifetimeSystem expires timed entities and sweeps strays that left the
// playfield margin. The player and bosses are exempt from the boundary
// sweep; bosses fly in from off-screen.
type LifetimeSystem struct {
	bounds Bounds
}

func NewLifetimeSystem(bounds Bounds) *LifetimeSystem {
	return &LifetimeSystem{bounds: bounds}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	var doomed []ecs.Entity

	ecs.ForEach(w, component.LifetimeKind, func(e ecs.Entity, lt *component.Lifetime) {
		lt.Frames--
		if lt.Frames <= 0 {
			doomed = append(doomed, e)
		}
	})

	ecs.ForEach2(w, component.TransformKind, component.VelocityKind,
		func(e ecs.Entity, tr *component.Transform, vel *component.Velocity) {
			if s.bounds.contains(tr.X, tr.Y, s.bounds.Margin) {
				return
			}
			if ecs.Has(w, e, component.PlayerTagKind) || ecs.Has(w, e, component.BossStateKind) {
				return
			}
			doomed = append(doomed, e)
		})

	for _, e := range doomed {
		if w.IsAlive(e) {
			w.DestroyEntity(e)
		}
	}
}
