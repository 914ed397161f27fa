package sim

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// HUD is the per-tick aggregation the frontend renders: player resources,
// score counters, the graze meter, and the boss bar when a boss is up.
type HUD struct {
	Lives     int
	Bombs     int
	Power     int
	Score     int64
	Graze     int
	Energy    float64
	MaxEnergy float64
	Enhanced  bool
	GameOver  bool

	Boss *BossHUD
}

// BossHUD describes the active boss for the health bar and spell name.
type BossHUD struct {
	Name          string
	PhaseName     string
	PhaseIndex    int
	PhaseCount    int
	HPFraction    float64
	TimeLeft      int
	Survival      bool
	Transitioning bool
}

// HUD aggregates the current frame's display state.
func (s *Sim) HUD() HUD {
	var hud HUD
	if stats, ok := ecs.Get(s.world, s.player, component.PlayerStatsKind); ok {
		hud.Lives = stats.Lives
		hud.Bombs = stats.Bombs
		hud.Power = stats.Power
		hud.Score = stats.Score
		hud.Graze = stats.Graze
		hud.Energy = stats.Energy
		hud.MaxEnergy = stats.MaxEnergy
		hud.Enhanced = stats.Enhanced
		hud.GameOver = stats.GameOver
	}

	ecs.ForEach(s.world, component.BossStateKind, func(boss ecs.Entity, bs *component.BossState) {
		if hud.Boss != nil || bs.State == component.BossDefeated || len(bs.Phases) == 0 {
			return
		}
		phase := bs.Current()
		b := &BossHUD{
			PhaseName:     phase.Name,
			PhaseIndex:    bs.Index,
			PhaseCount:    len(bs.Phases),
			Survival:      phase.Type == component.PhaseSurvival,
			Transitioning: bs.State == component.BossTransitioning,
		}
		if tag, ok := ecs.Get(s.world, boss, component.EnemyTagKind); ok {
			b.Name = tag.Kind
		}
		if hp, ok := ecs.Get(s.world, boss, component.HealthKind); ok && hp.Max > 0 {
			b.HPFraction = float64(hp.Current) / float64(hp.Max)
		}
		if phase.DurationFrames > 0 {
			b.TimeLeft = phase.DurationFrames - bs.ElapsedFrames
			if b.TimeLeft < 0 {
				b.TimeLeft = 0
			}
		}
		hud.Boss = b
	})

	return hud
}
