package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

const bossTransitionFrames = 60

// BossPhaseSystem sequences boss phase lists. A phase ends when its HP pool
// empties or its timer expires, whichever comes first; survival phases end
// on the timer alone. Every transition clears the enemy bullets on the
// field. A spell card's bonus pays out only when the phase was cleared by
// depleting its HP and the player neither got hit nor bombed during it.
type BossPhaseSystem struct {
	runner *script.Runner
	log    logrus.FieldLogger
	tasks  map[ecs.Entity]*script.Task
}

func NewBossPhaseSystem(runner *script.Runner, log logrus.FieldLogger) *BossPhaseSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &BossPhaseSystem{
		runner: runner,
		log:    log,
		tasks:  map[ecs.Entity]*script.Task{},
	}
}

func (s *BossPhaseSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.BossStateKind, func(boss ecs.Entity, bs *component.BossState) {
		if len(bs.Phases) == 0 || bs.State == component.BossDefeated {
			return
		}
		if !bs.Initialized {
			bs.Initialized = true
			s.enterPhase(w, boss, bs)
			return
		}

		switch bs.State {
		case component.BossActive:
			s.updateActive(w, boss, bs)
		case component.BossTransitioning:
			bs.TransitionLeft--
			if bs.TransitionLeft <= 0 {
				bs.Index++
				s.enterPhase(w, boss, bs)
			}
		}
	})
}

func (s *BossPhaseSystem) updateActive(w *ecs.World, boss ecs.Entity, bs *component.BossState) {
	phase := bs.Current()
	bs.ElapsedFrames++

	hpCleared := false
	if phase.Type != component.PhaseSurvival && phase.HP > 0 {
		if hp, ok := ecs.Get(w, boss, component.HealthKind); ok && hp.Current <= 0 {
			hpCleared = true
		}
	}
	timedOut := phase.DurationFrames > 0 && bs.ElapsedFrames >= phase.DurationFrames
	if !hpCleared && !timedOut {
		return
	}

	s.stopTask(boss)
	clearEnemyBullets(w)

	if phase.Type == component.PhaseSpellCard && hpCleared && bs.Eligible {
		if _, stats, ok := playerEntity(w); ok {
			stats.Score += phase.Reward
		}
		s.log.WithFields(logrus.Fields{
			"boss":  boss.String(),
			"phase": phase.Name,
			"bonus": phase.Reward,
		}).Info("spell card captured")
	}

	if bs.Index == len(bs.Phases)-1 {
		bs.State = component.BossDefeated
		if !ecs.Has(w, boss, component.DyingKind) {
			ecs.Add(w, boss, component.DyingKind, &component.Dying{
				FramesLeft: bossTransitionFrames,
				ByPlayer:   true,
			})
		}
		s.log.WithField("boss", boss.String()).Info("boss defeated")
		return
	}

	bs.State = component.BossTransitioning
	bs.TransitionLeft = bossTransitionFrames
}

func (s *BossPhaseSystem) enterPhase(w *ecs.World, boss ecs.Entity, bs *component.BossState) {
	phase := bs.Current()
	bs.State = component.BossActive
	bs.ElapsedFrames = 0
	bs.Eligible = true

	if hp, ok := ecs.Get(w, boss, component.HealthKind); ok {
		hp.Current = phase.HP
		hp.Max = phase.HP
	}

	if phase.Behavior != "" {
		factory, err := s.runner.Registries().Behaviors.Resolve(phase.Behavior)
		if err != nil {
			s.log.WithError(err).WithField("phase", phase.Name).Error("unknown phase behavior")
		} else {
			s.tasks[boss] = s.runner.Start(w, boss, phase.Behavior, factory())
		}
	}

	s.log.WithFields(logrus.Fields{
		"boss":  boss.String(),
		"phase": phase.Name,
	}).Info("boss phase start")
}

func (s *BossPhaseSystem) stopTask(boss ecs.Entity) {
	if t, ok := s.tasks[boss]; ok {
		s.runner.Stop(t)
		delete(s.tasks, boss)
	}
}

func clearEnemyBullets(w *ecs.World) {
	var doomed []ecs.Entity
	ecs.ForEach2(w, component.BulletKind, component.ColliderKind,
		func(e ecs.Entity, b *component.Bullet, col *component.Collider) {
			if col.Layer == component.LayerEnemyBullet {
				doomed = append(doomed, e)
			}
		})
	for _, e := range doomed {
		w.DestroyEntity(e)
	}
}
