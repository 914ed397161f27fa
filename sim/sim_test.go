package sim_test

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/danmaku/content"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/sim"
)

func newSim(t *testing.T, stage string) *sim.Sim {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	regs, err := content.Load(log)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	s, err := sim.New(regs, sim.Config{
		Character: "mari",
		Stage:     stage,
		Seed:      1,
		Log:       log,
	})
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	return s
}

func TestNewSpawnsPlayerAtStart(t *testing.T) {
	s := newSim(t, "")

	w := s.World()
	player := s.Player()
	if !w.IsAlive(player) {
		t.Fatalf("no player entity")
	}
	tr := ecs.MustGet(w, player, component.TransformKind)
	if tr.X != 192 || tr.Y != 384 {
		t.Fatalf("player start at (%v, %v)", tr.X, tr.Y)
	}
	stats := ecs.MustGet(w, player, component.PlayerStatsKind)
	if stats.Lives <= 0 || stats.Bombs <= 0 {
		t.Fatalf("player stats = %+v", stats)
	}
}

func TestNewRejectsUnknownCharacter(t *testing.T) {
	regs, err := content.Load(nil)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if _, err := sim.New(regs, sim.Config{Character: "nobody"}); err == nil {
		t.Fatalf("unknown character accepted")
	}
}

func TestStageRunsAndSpawnsEnemies(t *testing.T) {
	s := newSim(t, "stage1")
	if s.Tasks() == 0 {
		t.Fatalf("stage task not started")
	}

	input := component.InputState{Shoot: true}
	sawEnemy := false
	for tick := 0; tick < 600; tick++ {
		s.Advance(input)
		if !sawEnemy && ecs.Count(s.World(), component.EnemyTagKind) > 0 {
			sawEnemy = true
		}
	}
	if !sawEnemy {
		t.Fatalf("stage never spawned an enemy")
	}
	if !s.World().IsAlive(s.Player()) {
		t.Fatalf("player entity vanished")
	}
}

func TestShootingScoresKills(t *testing.T) {
	s := newSim(t, "stage1")
	stats := ecs.MustGet(s.World(), s.Player(), component.PlayerStatsKind)

	input := component.InputState{Shoot: true}
	for tick := 0; tick < 1200 && stats.Score == 0; tick++ {
		s.Advance(input)
	}
	if stats.Score == 0 {
		t.Fatalf("no score after shooting through the opening waves")
	}
}

func TestHUDSnapshot(t *testing.T) {
	s := newSim(t, "stage1")

	for tick := 0; tick < 120; tick++ {
		s.Advance(component.InputState{})
	}
	snap := s.Snapshot()
	if snap.Tick != 120 {
		t.Fatalf("snapshot tick = %d", snap.Tick)
	}
	if snap.HUD.Lives <= 0 || snap.HUD.Bombs <= 0 {
		t.Fatalf("hud = %+v", snap.HUD)
	}
	if snap.HUD.Boss != nil {
		t.Fatalf("boss hud present before the boss: %+v", snap.HUD.Boss)
	}

	foundPlayer := false
	for _, view := range snap.Entities {
		if view.Entity == s.Player() {
			foundPlayer = true
			if view.Layer != component.LayerPlayer {
				t.Fatalf("player view layer = %v", view.Layer)
			}
		}
	}
	if !foundPlayer {
		t.Fatalf("player missing from snapshot")
	}
}

func TestIndependentSimsShareNoState(t *testing.T) {
	a := newSim(t, "stage1")
	b := newSim(t, "stage1")

	for tick := 0; tick < 300; tick++ {
		a.Advance(component.InputState{Shoot: true})
	}
	if got := ecs.Count(b.World(), component.BulletKind); got != 0 {
		t.Fatalf("idle sim has %d bullets", got)
	}
	if b.World().Tick() != 0 {
		t.Fatalf("idle sim advanced to tick %d", b.World().Tick())
	}
}
