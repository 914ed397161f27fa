package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// CollisionSystem rebuilds the frame-scoped event log. Layers are bucketed
// in component insertion order and tested through a fixed pair table, so
// the log's event order is deterministic for a given world history.
//
// Graze detection rides the enemy-bullet/player test: a bullet inside the
// player's graze annulus but outside the hit circle emits a graze event
// once, ever, guarded by the bullet's Grazed flag set here.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

type collidable struct {
	entity ecs.Entity
	x, y   float64
	col    *component.Collider
}

var pairTable = []struct {
	source component.Layer
	target component.Layer
	kind   ecs.EventKind
}{
	{component.LayerPlayerBullet, component.LayerEnemy, ecs.EventPlayerBulletHitEnemy},
	{component.LayerBombField, component.LayerEnemy, ecs.EventBombHitEnemy},
	{component.LayerBombField, component.LayerEnemyBullet, ecs.EventBombClearedEnemyBullet},
	{component.LayerEnemyBullet, component.LayerPlayer, ecs.EventEnemyBulletHitPlayer},
	{component.LayerPlayer, component.LayerItem, ecs.EventPlayerPickupItem},
}

func (s *CollisionSystem) Update(w *ecs.World) {
	log := w.Events()
	log.Reset()

	buckets := map[component.Layer][]collidable{}
	ecs.ForEach2(w, component.ColliderKind, component.TransformKind,
		func(e ecs.Entity, col *component.Collider, tr *component.Transform) {
			buckets[col.Layer] = append(buckets[col.Layer], collidable{
				entity: e,
				x:      tr.X,
				y:      tr.Y,
				col:    col,
			})
		})

	for _, pair := range pairTable {
		sources := buckets[pair.source]
		targets := buckets[pair.target]
		for _, src := range sources {
			if !src.col.Mask.Has(pair.target) {
				continue
			}
			for _, tgt := range targets {
				dx := tgt.x - src.x
				dy := tgt.y - src.y
				distSq := dx*dx + dy*dy

				hit := src.col.Radius + tgt.col.Radius
				if distSq <= hit*hit {
					log.Push(ecs.Event{Kind: pair.kind, Source: src.entity, Target: tgt.entity})
					continue
				}

				if pair.kind != ecs.EventEnemyBulletHitPlayer || tgt.col.GrazeRadius <= 0 {
					continue
				}
				bullet, ok := ecs.Get(w, src.entity, component.BulletKind)
				if !ok || bullet.Grazed {
					continue
				}
				graze := src.col.Radius + tgt.col.GrazeRadius
				if distSq <= graze*graze {
					bullet.Grazed = true
					log.Push(ecs.Event{Kind: ecs.EventPlayerGrazeEnemyBullet, Source: src.entity, Target: tgt.entity})
				}
			}
		}
	}
}
