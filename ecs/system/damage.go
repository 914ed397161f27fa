package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

const dyingFrames = 12

// DamageSystem resolves this tick's offensive events: player bullets and
// bomb fields against enemies, and bomb fields sweeping enemy bullets. A
// boss only takes damage while its phase is active and non-survival, and
// bomb damage against it is filtered through the phase's bomb policy, with
// the capped policy accumulated across all bomb overlaps in the tick.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World) {
	bombDealt := map[ecs.Entity]int{}

	events := w.Events().Drain(
		ecs.EventPlayerBulletHitEnemy,
		ecs.EventBombHitEnemy,
		ecs.EventBombClearedEnemyBullet,
	)
	for _, evt := range events {
		switch evt.Kind {
		case ecs.EventPlayerBulletHitEnemy:
			s.bulletHit(w, evt)
		case ecs.EventBombHitEnemy:
			s.bombHit(w, evt, bombDealt)
		case ecs.EventBombClearedEnemyBullet:
			w.DestroyEntity(evt.Target)
		}
	}
}

func (s *DamageSystem) bulletHit(w *ecs.World, evt ecs.Event) {
	bullet, ok := ecs.Get(w, evt.Source, component.BulletKind)
	if !ok {
		return
	}
	damage := bullet.Damage
	w.DestroyEntity(evt.Source)
	s.damageEnemy(w, evt.Target, damage)
}

func (s *DamageSystem) bombHit(w *ecs.World, evt ecs.Event, dealt map[ecs.Entity]int) {
	field, ok := ecs.Get(w, evt.Source, component.BombFieldKind)
	if !ok {
		return
	}
	damage := field.Damage

	if bs, ok := ecs.Get(w, evt.Target, component.BossStateKind); ok {
		policy := bs.Current().Policy
		switch policy.Kind {
		case component.BombImmune:
			return
		case component.BombCapped:
			room := policy.CapPerFrame - dealt[evt.Target]
			if room <= 0 {
				return
			}
			if damage > room {
				damage = room
			}
			dealt[evt.Target] += damage
		}
	}

	s.damageEnemy(w, evt.Target, damage)
}

func (s *DamageSystem) damageEnemy(w *ecs.World, enemy ecs.Entity, damage int) {
	if !w.IsAlive(enemy) || ecs.Has(w, enemy, component.DyingKind) {
		return
	}
	if bs, ok := ecs.Get(w, enemy, component.BossStateKind); ok {
		if bs.State != component.BossActive || bs.Current().Type == component.PhaseSurvival {
			return
		}
	}
	hp, ok := ecs.Get(w, enemy, component.HealthKind)
	if !ok {
		return
	}
	if hp.Damage(damage) && !ecs.Has(w, enemy, component.BossStateKind) {
		ecs.Add(w, enemy, component.DyingKind, &component.Dying{
			FramesLeft: dyingFrames,
			ByPlayer:   true,
		})
	}
}
