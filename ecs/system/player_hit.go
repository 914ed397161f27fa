package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

const (
	deathBombWindow     = 8
	respawnInvulnFrames = 120
)

// PlayerHitSystem resolves hits on the player and owns the bomb. A lethal
// hit does not kill immediately: it opens a short grace window, and a bomb
// pressed inside the window cancels the death. Bomb presses are handled
// after hit events on purpose so a press on the very tick of the hit still
// death-bombs. Both a registered hit and a bomb use spoil every boss's
// spell bonus eligibility for the current phase.
type PlayerHitSystem struct {
	regs   *script.Registries
	bounds Bounds
	log    logrus.FieldLogger
}

func NewPlayerHitSystem(regs *script.Registries, bounds Bounds, log logrus.FieldLogger) *PlayerHitSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PlayerHitSystem{regs: regs, bounds: bounds, log: log}
}

func (s *PlayerHitSystem) Update(w *ecs.World) {
	player, stats, ok := playerEntity(w)
	if !ok {
		w.Events().Drain(ecs.EventEnemyBulletHitPlayer)
		return
	}

	for _, evt := range w.Events().Drain(ecs.EventEnemyBulletHitPlayer) {
		w.DestroyEntity(evt.Source)
		if stats.GameOver || stats.InvulnFrames > 0 || stats.BombFrames > 0 || stats.GraceFrames > 0 {
			continue
		}
		stats.GraceFrames = deathBombWindow
		spoilEligibility(w)
	}

	input, _ := ecs.Get(w, player, component.InputStateKind)
	if input != nil && input.BombPressed && !stats.GameOver && stats.Bombs > 0 && stats.BombFrames == 0 {
		s.activateBomb(w, player, stats)
	}

	if stats.InvulnFrames > 0 {
		stats.InvulnFrames--
	}
	if stats.BombFrames > 0 {
		stats.BombFrames--
	}
	s.tickBombFields(w, player)

	if stats.GraceFrames > 0 {
		stats.GraceFrames--
		if stats.GraceFrames == 0 {
			s.killPlayer(w, player, stats)
		}
	}
}

func (s *PlayerHitSystem) activateBomb(w *ecs.World, player ecs.Entity, stats *component.PlayerStats) {
	char, err := s.regs.Characters.Resolve(stats.Character)
	if err != nil {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformKind)
	if !ok {
		return
	}

	stats.Bombs--
	stats.BombFrames = char.BombFrames
	stats.InvulnFrames = char.BombFrames + deathBombWindow
	stats.GraceFrames = 0
	spoilEligibility(w)

	field := w.CreateEntity()
	ecs.Add(w, field, component.TransformKind, &component.Transform{X: tr.X, Y: tr.Y})
	ecs.Add(w, field, component.BombFieldKind, &component.BombField{
		Damage:     char.BombDamage,
		FramesLeft: char.BombFrames,
	})
	ecs.Add(w, field, component.ColliderKind, &component.Collider{
		Radius: char.BombRadius,
		Layer:  component.LayerBombField,
		Mask:   component.LayerEnemy | component.LayerEnemyBullet,
	})

	s.log.WithField("bombs_left", stats.Bombs).Info("bomb")
}

// tickBombFields keeps active bomb fields centered on the player and
// expires them.
func (s *PlayerHitSystem) tickBombFields(w *ecs.World, player ecs.Entity) {
	playerTr, ok := ecs.Get(w, player, component.TransformKind)
	var doomed []ecs.Entity
	ecs.ForEach2(w, component.BombFieldKind, component.TransformKind,
		func(e ecs.Entity, field *component.BombField, tr *component.Transform) {
			if ok {
				tr.X, tr.Y = playerTr.X, playerTr.Y
			}
			field.FramesLeft--
			if field.FramesLeft <= 0 {
				doomed = append(doomed, e)
			}
		})
	for _, e := range doomed {
		w.DestroyEntity(e)
	}
}

func (s *PlayerHitSystem) killPlayer(w *ecs.World, player ecs.Entity, stats *component.PlayerStats) {
	clearEnemyBullets(w)

	stats.Lives--
	if stats.Lives < 0 {
		stats.GameOver = true
		s.log.Info("game over")
		return
	}

	char, err := s.regs.Characters.Resolve(stats.Character)
	if err == nil {
		stats.Bombs = char.Bombs
	}
	if stats.Power > 0 {
		stats.Power--
	}
	stats.Energy = 0
	stats.Enhanced = false
	stats.InvulnFrames = respawnInvulnFrames

	if tr, ok := ecs.Get(w, player, component.TransformKind); ok {
		tr.X = s.bounds.Width / 2
		tr.Y = s.bounds.Height - 64
	}

	s.log.WithField("lives_left", stats.Lives).Info("player down")
}

func spoilEligibility(w *ecs.World) {
	ecs.ForEach(w, component.BossStateKind, func(e ecs.Entity, bs *component.BossState) {
		bs.Eligible = false
	})
}
