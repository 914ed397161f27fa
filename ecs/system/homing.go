package system

import (
	"math"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
)

// HomingSystem turns homing bullets toward their quarry, clamped to the
// bullet's per-tick turn rate. It runs after motion programs and before
// movement integration, so a homing bullet's velocity is final for the
// tick when it is integrated.
type HomingSystem struct{}

func NewHomingSystem() *HomingSystem {
	return &HomingSystem{}
}

func (s *HomingSystem) Update(w *ecs.World) {
	var playerX, playerY float64
	playerFound := false
	if player, _, ok := playerEntity(w); ok {
		if tr, ok := ecs.Get(w, player, component.TransformKind); ok {
			playerX, playerY = tr.X, tr.Y
			playerFound = true
		}
	}

	ecs.ForEach3(w, component.HomingKind, component.TransformKind, component.VelocityKind,
		func(e ecs.Entity, h *component.Homing, tr *component.Transform, vel *component.Velocity) {
			side := component.SidePlayer
			if b, ok := ecs.Get(w, e, component.BulletKind); ok {
				side = b.Side
			}

			var tx, ty float64
			found := false
			if side == component.SideEnemy {
				tx, ty, found = playerX, playerY, playerFound
			} else {
				tx, ty, found = nearestEnemy(w, tr.X, tr.Y)
			}
			if !found {
				return
			}

			current := pattern.Angle(pattern.Vec{X: vel.VX, Y: vel.VY})
			delta := pattern.ShortestArc(current, pattern.AngleTo(tr.X, tr.Y, tx, ty))
			if delta > h.TurnRate {
				delta = h.TurnRate
			} else if delta < -h.TurnRate {
				delta = -h.TurnRate
			}
			v := pattern.FromAngle(current+delta, h.Speed)
			vel.VX, vel.VY = v.X, v.Y
		})
}

func nearestEnemy(w *ecs.World, x, y float64) (float64, float64, bool) {
	var tx, ty float64
	best := math.MaxFloat64
	found := false
	ecs.ForEach2(w, component.EnemyTagKind, component.TransformKind,
		func(e ecs.Entity, tag *component.EnemyTag, tr *component.Transform) {
			if ecs.Has(w, e, component.DyingKind) {
				return
			}
			dx, dy := tr.X-x, tr.Y-y
			d := dx*dx + dy*dy
			if d < best {
				best = d
				tx, ty = tr.X, tr.Y
				found = true
			}
		})
	return tx, ty, found
}
