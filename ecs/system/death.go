package system

import (
	"math/rand"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
)

const itemScatterSpeed = 80.0

// DeathSystem resolves dying entities. Drops and the kill score land
// exactly once, on the first tick of the dying state; the entity lingers
// for its remaining frames and is then removed. Deaths not caused by the
// player, boundary cleanup mostly, pay and drop nothing.
type DeathSystem struct {
	rng *rand.Rand
}

func NewDeathSystem(seed int64) *DeathSystem {
	return &DeathSystem{rng: rand.New(rand.NewSource(seed))}
}

func (s *DeathSystem) Update(w *ecs.World) {
	var doomed []ecs.Entity
	ecs.ForEach(w, component.DyingKind, func(e ecs.Entity, dying *component.Dying) {
		if !dying.DropsResolved {
			dying.DropsResolved = true
			if dying.ByPlayer {
				s.resolveKill(w, e)
			}
		}
		dying.FramesLeft--
		if dying.FramesLeft <= 0 {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		w.DestroyEntity(e)
	}
}

func (s *DeathSystem) resolveKill(w *ecs.World, e ecs.Entity) {
	if tag, ok := ecs.Get(w, e, component.EnemyTagKind); ok {
		if _, stats, ok := playerEntity(w); ok {
			stats.Score += tag.Score
		}
	}

	drops, ok := ecs.Get(w, e, component.DropConfigKind)
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, e, component.TransformKind)
	if !ok {
		return
	}
	for i := 0; i < drops.Power; i++ {
		s.spawnItem(w, tr.X, tr.Y, component.ItemPower, drops.Scatter)
	}
	for i := 0; i < drops.Point; i++ {
		s.spawnItem(w, tr.X, tr.Y, component.ItemPoint, drops.Scatter)
	}
}

func (s *DeathSystem) spawnItem(w *ecs.World, x, y float64, typ component.ItemType, scatter float64) {
	dx := (s.rng.Float64()*2 - 1) * scatter
	dy := (s.rng.Float64()*2 - 1) * scatter
	v := pattern.FromAngle(-90+(s.rng.Float64()*2-1)*30, itemScatterSpeed)

	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformKind, &component.Transform{X: x + dx, Y: y + dy})
	ecs.Add(w, e, component.VelocityKind, &component.Velocity{VX: v.X, VY: v.Y})
	ecs.Add(w, e, component.ItemKind, &component.Item{Type: typ, Magnitude: 1})
	ecs.Add(w, e, component.ColliderKind, &component.Collider{
		Radius: 12,
		Layer:  component.LayerItem,
	})
}
