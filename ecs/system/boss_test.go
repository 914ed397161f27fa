package system

import (
	"testing"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

func newBossWorld(t *testing.T, phases []component.Phase) (*ecs.World, *BossPhaseSystem, ecs.Entity, *component.PlayerStats) {
	t.Helper()
	w := ecs.NewWorld()

	player := w.CreateEntity()
	ecs.Add(w, player, component.PlayerTagKind, &component.PlayerTag{})
	ecs.Add(w, player, component.TransformKind, &component.Transform{X: 192, Y: 400})
	stats := &component.PlayerStats{Lives: 2}
	ecs.Add(w, player, component.PlayerStatsKind, stats)

	boss := w.CreateEntity()
	ecs.Add(w, boss, component.TransformKind, &component.Transform{X: 192, Y: 96})
	ecs.Add(w, boss, component.HealthKind, &component.Health{})
	ecs.Add(w, boss, component.BossStateKind, &component.BossState{Phases: phases})

	runner := script.NewRunner(script.NewRegistries(), nil)
	return w, NewBossPhaseSystem(runner, nil), boss, stats
}

func drainTransition(s *BossPhaseSystem, w *ecs.World, bs *component.BossState) {
	for i := 0; i < bossTransitionFrames+1 && bs.State == component.BossTransitioning; i++ {
		s.Update(w)
	}
}

func TestBossSpellBonusPaidOnlyForCleanHPClear(t *testing.T) {
	cases := []struct {
		name       string
		timeout    bool
		spoil      bool
		wantReward bool
	}{
		{"clean_hp_clear", false, false, true},
		{"timed_out", true, false, false},
		{"hit_during_phase", false, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phases := []component.Phase{
				{Type: component.PhaseSpellCard, Name: "spell", HP: 100, DurationFrames: 50, Reward: 7000},
				{Type: component.PhaseNonSpell, Name: "tail", HP: 100},
			}
			w, s, boss, stats := newBossWorld(t, phases)

			s.Update(w)
			bs := ecs.MustGet(w, boss, component.BossStateKind)
			if bs.State != component.BossActive || bs.Index != 0 {
				t.Fatalf("phase not entered: %+v", bs)
			}
			hp := ecs.MustGet(w, boss, component.HealthKind)
			if hp.Current != 100 || hp.Max != 100 {
				t.Fatalf("phase HP not installed: %+v", hp)
			}

			if c.spoil {
				bs.Eligible = false
			}
			if c.timeout {
				for bs.State == component.BossActive {
					s.Update(w)
				}
			} else {
				hp.Current = 0
				s.Update(w)
			}

			if bs.State != component.BossTransitioning {
				t.Fatalf("phase should be transitioning, state=%v", bs.State)
			}
			gotReward := stats.Score == 7000
			if gotReward != c.wantReward {
				t.Fatalf("score = %d, wantReward=%v", stats.Score, c.wantReward)
			}
		})
	}
}

func TestBossTransitionClearsEnemyBulletsAndEntersNextPhase(t *testing.T) {
	phases := []component.Phase{
		{Type: component.PhaseNonSpell, Name: "one", HP: 10},
		{Type: component.PhaseSpellCard, Name: "two", HP: 60, Reward: 100},
	}
	w, s, boss, _ := newBossWorld(t, phases)
	s.Update(w)

	bullet := spawnCircle(w, 50, 50, 4, component.LayerEnemyBullet, component.LayerPlayer)
	ecs.Add(w, bullet, component.BulletKind, &component.Bullet{Side: component.SideEnemy})
	playerBullet := spawnCircle(w, 10, 10, 4, component.LayerPlayerBullet, component.LayerEnemy)
	ecs.Add(w, playerBullet, component.BulletKind, &component.Bullet{Side: component.SidePlayer})

	hp := ecs.MustGet(w, boss, component.HealthKind)
	hp.Current = 0
	s.Update(w)

	if w.IsAlive(bullet) {
		t.Fatalf("enemy bullet survived the phase transition")
	}
	if !w.IsAlive(playerBullet) {
		t.Fatalf("player bullet should survive the transition")
	}

	bs := ecs.MustGet(w, boss, component.BossStateKind)
	if bs.TransitionLeft != bossTransitionFrames {
		t.Fatalf("transition frames = %d", bs.TransitionLeft)
	}
	drainTransition(s, w, bs)
	if bs.State != component.BossActive || bs.Index != 1 {
		t.Fatalf("next phase not entered: %+v", bs)
	}
	if hp.Current != 60 || !bs.Eligible {
		t.Fatalf("phase reset wrong: hp=%d eligible=%v", hp.Current, bs.Eligible)
	}
}

func TestBossSurvivalPhaseEndsOnTimerAndIgnoresDamage(t *testing.T) {
	phases := []component.Phase{
		{Type: component.PhaseSurvival, Name: "last", DurationFrames: 5, Policy: component.BombPolicy{Kind: component.BombImmune}},
	}
	w, s, boss, _ := newBossWorld(t, phases)
	s.Update(w)

	// Survival damage is discarded by the damage system.
	bullet := w.CreateEntity()
	ecs.Add(w, bullet, component.BulletKind, &component.Bullet{Damage: 50, Side: component.SidePlayer})
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerBulletHitEnemy, Source: bullet, Target: boss})
	NewDamageSystem().Update(w)
	if ecs.Has(w, boss, component.DyingKind) {
		t.Fatalf("survival boss took lethal damage")
	}

	bs := ecs.MustGet(w, boss, component.BossStateKind)
	for i := 0; i < 5; i++ {
		s.Update(w)
	}
	if bs.State != component.BossDefeated {
		t.Fatalf("survival phase did not end on the timer: %+v", bs)
	}
	if !ecs.Has(w, boss, component.DyingKind) {
		t.Fatalf("defeated boss should be dying")
	}
}

func TestBossBombPolicyCapAccumulatesPerTick(t *testing.T) {
	phases := []component.Phase{
		{
			Type:           component.PhaseSpellCard,
			Name:           "capped",
			HP:             100,
			Policy:         component.BombPolicy{Kind: component.BombCapped, CapPerFrame: 3},
			DurationFrames: 600,
		},
	}
	w, s, boss, _ := newBossWorld(t, phases)
	s.Update(w)

	bomb := w.CreateEntity()
	ecs.Add(w, bomb, component.BombFieldKind, &component.BombField{Damage: 2, FramesLeft: 10})

	// Two overlaps in one tick: 2 + 2 clamps to the 3/frame cap.
	w.Events().Push(ecs.Event{Kind: ecs.EventBombHitEnemy, Source: bomb, Target: boss})
	w.Events().Push(ecs.Event{Kind: ecs.EventBombHitEnemy, Source: bomb, Target: boss})
	NewDamageSystem().Update(w)

	hp := ecs.MustGet(w, boss, component.HealthKind)
	if hp.Current != 97 {
		t.Fatalf("hp = %d, want 97 (cap 3)", hp.Current)
	}

	// The cap does not carry over: next tick deals up to 3 again.
	w.Events().Push(ecs.Event{Kind: ecs.EventBombHitEnemy, Source: bomb, Target: boss})
	NewDamageSystem().Update(w)
	if hp.Current != 95 {
		t.Fatalf("hp = %d, want 95", hp.Current)
	}
}
