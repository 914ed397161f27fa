package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// MovementSystem integrates velocity into position at the fixed tick rate.
// Velocities are px/s everywhere; only this system divides by the tick
// rate. The player is clamped inside the playfield.
type MovementSystem struct {
	bounds Bounds
}

func NewMovementSystem(bounds Bounds) *MovementSystem {
	return &MovementSystem{bounds: bounds}
}

func (s *MovementSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.TransformKind, component.VelocityKind,
		func(e ecs.Entity, tr *component.Transform, vel *component.Velocity) {
			tr.X += vel.VX / ecs.TicksPerSecond
			tr.Y += vel.VY / ecs.TicksPerSecond
		})

	if player, ok := ecs.First(w, component.PlayerTagKind); ok {
		if tr, ok := ecs.Get(w, player, component.TransformKind); ok {
			tr.X = clamp(tr.X, 0, s.bounds.Width)
			tr.Y = clamp(tr.Y, 0, s.bounds.Height)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
