package system

import (
	"testing"

	"github.com/milk9111/danmaku/defs"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

func TestGrazeChargesMeterAndScores(t *testing.T) {
	w, _, player, stats := newPlayerWorld(t)
	s := NewGrazeSystem()

	for i := 0; i < 3; i++ {
		w.Events().Push(ecs.Event{Kind: ecs.EventPlayerGrazeEnemyBullet, Source: ecs.Entity(1), Target: player})
	}
	s.Update(w)

	if stats.Graze != 3 {
		t.Fatalf("graze count = %d", stats.Graze)
	}
	if stats.Score != 3*grazeScore {
		t.Fatalf("graze score = %d", stats.Score)
	}
	if stats.Energy != 3*grazeEnergyGain {
		t.Fatalf("energy = %v", stats.Energy)
	}
}

func TestFullMeterEntersEnhancedAndDrains(t *testing.T) {
	w, _, player, stats := newPlayerWorld(t)
	s := NewGrazeSystem()
	stats.MaxEnergy = 100
	stats.Energy = 99

	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerGrazeEnemyBullet, Source: ecs.Entity(1), Target: player})
	s.Update(w)
	if !stats.Enhanced {
		t.Fatalf("full meter did not enter enhanced state")
	}

	ticks := 0
	for stats.Enhanced && ticks < 100000 {
		s.Update(w)
		ticks++
	}
	if stats.Enhanced {
		t.Fatalf("enhanced state never drained out")
	}
	if stats.Energy != 0 {
		t.Fatalf("meter should be empty, got %v", stats.Energy)
	}
}

func TestPickupAppliesItems(t *testing.T) {
	cases := []struct {
		name  string
		typ   component.ItemType
		check func(t *testing.T, stats *component.PlayerStats)
	}{
		{"power", component.ItemPower, func(t *testing.T, st *component.PlayerStats) {
			if st.Power != 1 {
				t.Fatalf("power = %d", st.Power)
			}
		}},
		{"point", component.ItemPoint, func(t *testing.T, st *component.PlayerStats) {
			if st.Score != pointItemValue/2 {
				t.Fatalf("score = %d, want half value for a manual collect", st.Score)
			}
		}},
		{"life", component.ItemLife, func(t *testing.T, st *component.PlayerStats) {
			if st.Lives != 3 {
				t.Fatalf("lives = %d", st.Lives)
			}
		}},
		{"bomb", component.ItemBomb, func(t *testing.T, st *component.PlayerStats) {
			if st.Bombs != 4 {
				t.Fatalf("bombs = %d", st.Bombs)
			}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _, player, stats := newPlayerWorld(t)
			s := NewPickupSystem(Bounds{Width: 384, Height: 448, CollectLineY: 112})

			item := w.CreateEntity()
			ecs.Add(w, item, component.TransformKind, &component.Transform{})
			ecs.Add(w, item, component.VelocityKind, &component.Velocity{})
			ecs.Add(w, item, component.ItemKind, &component.Item{Type: c.typ, Magnitude: 1})

			w.Events().Push(ecs.Event{Kind: ecs.EventPlayerPickupItem, Source: player, Target: item})
			s.Update(w)

			if w.IsAlive(item) {
				t.Fatalf("collected item not removed")
			}
			c.check(t, stats)
		})
	}
}

func TestAutoCollectAboveLineHomesAndPaysFull(t *testing.T) {
	w, _, player, stats := newPlayerWorld(t)
	s := NewPickupSystem(Bounds{Width: 384, Height: 448, CollectLineY: 112})

	tr := ecs.MustGet(w, player, component.TransformKind)
	tr.Y = 100 // above the collection line

	item := w.CreateEntity()
	ecs.Add(w, item, component.TransformKind, &component.Transform{X: 300, Y: 300})
	ecs.Add(w, item, component.VelocityKind, &component.Velocity{})
	ecs.Add(w, item, component.ItemKind, &component.Item{Type: component.ItemPoint, Magnitude: 1})

	s.Update(w)
	it := ecs.MustGet(w, item, component.ItemKind)
	if !it.AutoCollect {
		t.Fatalf("item not flagged for auto collection")
	}
	vel := ecs.MustGet(w, item, component.VelocityKind)
	if vel.VY >= 0 {
		t.Fatalf("auto-collected item should home upward toward the player, got %+v", vel)
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerPickupItem, Source: player, Target: item})
	s.Update(w)
	if stats.Score != pointItemValue {
		t.Fatalf("auto-collected point paid %d, want full %d", stats.Score, pointItemValue)
	}
}

func TestDeathResolvesDropsAndScoreOnce(t *testing.T) {
	w, _, _, stats := newPlayerWorld(t)
	s := NewDeathSystem(1)

	enemy := w.CreateEntity()
	ecs.Add(w, enemy, component.TransformKind, &component.Transform{X: 100, Y: 100})
	ecs.Add(w, enemy, component.EnemyTagKind, &component.EnemyTag{Kind: "fairy", Score: 300})
	ecs.Add(w, enemy, component.DropConfigKind, &component.DropConfig{Power: 1, Point: 2, Scatter: 10})
	ecs.Add(w, enemy, component.DyingKind, &component.Dying{FramesLeft: 3, ByPlayer: true})

	s.Update(w)
	if stats.Score != 300 {
		t.Fatalf("kill score = %d", stats.Score)
	}
	if n := ecs.Count(w, component.ItemKind); n != 3 {
		t.Fatalf("drops = %d, want 3", n)
	}

	// Lingers, drops only once, then is removed.
	s.Update(w)
	if stats.Score != 300 || ecs.Count(w, component.ItemKind) != 3 {
		t.Fatalf("drops resolved twice")
	}
	if !w.IsAlive(enemy) {
		t.Fatalf("dying entity removed early")
	}
	s.Update(w)
	if w.IsAlive(enemy) {
		t.Fatalf("dying entity not removed after its frames")
	}
}

func TestDeathWithoutPlayerCreditDropsNothing(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDeathSystem(1)

	enemy := w.CreateEntity()
	ecs.Add(w, enemy, component.TransformKind, &component.Transform{})
	ecs.Add(w, enemy, component.DropConfigKind, &component.DropConfig{Power: 5, Point: 5})
	ecs.Add(w, enemy, component.DyingKind, &component.Dying{FramesLeft: 1, ByPlayer: false})

	s.Update(w)
	if n := ecs.Count(w, component.ItemKind); n != 0 {
		t.Fatalf("boundary death dropped items: %d", n)
	}
}

func TestLifetimeAndBoundarySweep(t *testing.T) {
	w := ecs.NewWorld()
	bounds := Bounds{Width: 384, Height: 448, Margin: 96}
	s := NewLifetimeSystem(bounds)

	timed := w.CreateEntity()
	ecs.Add(w, timed, component.LifetimeKind, &component.Lifetime{Frames: 2})

	stray := w.CreateEntity()
	ecs.Add(w, stray, component.TransformKind, &component.Transform{X: 0, Y: 600})
	ecs.Add(w, stray, component.VelocityKind, &component.Velocity{})

	inMargin := w.CreateEntity()
	ecs.Add(w, inMargin, component.TransformKind, &component.Transform{X: 192, Y: -50})
	ecs.Add(w, inMargin, component.VelocityKind, &component.Velocity{})

	player := w.CreateEntity()
	ecs.Add(w, player, component.PlayerTagKind, &component.PlayerTag{})
	ecs.Add(w, player, component.TransformKind, &component.Transform{X: -500, Y: 0})
	ecs.Add(w, player, component.VelocityKind, &component.Velocity{})

	s.Update(w)
	if !w.IsAlive(timed) {
		t.Fatalf("timed entity expired early")
	}
	if w.IsAlive(stray) {
		t.Fatalf("out-of-bounds stray survived")
	}
	if !w.IsAlive(inMargin) {
		t.Fatalf("entity inside the margin was swept")
	}
	if !w.IsAlive(player) {
		t.Fatalf("player must never be swept")
	}

	s.Update(w)
	if w.IsAlive(timed) {
		t.Fatalf("timed entity outlived its frames")
	}
}

func TestPathFollowerArrivesOnSchedule(t *testing.T) {
	regs := script.NewRegistries()
	regs.Paths.Replace("line", defs.PathDef{Points: []defs.PathPoint{
		{X: 0, Y: 0, Frames: 0},
		{X: 100, Y: 200, Frames: 60},
	}})

	w := ecs.NewWorld()
	path := NewPathSystem(regs)
	move := NewMovementSystem(Bounds{Width: 384, Height: 448})

	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformKind, &component.Transform{})
	ecs.Add(w, e, component.VelocityKind, &component.Velocity{})
	ecs.Add(w, e, component.PathFollowerKind, &component.PathFollower{Path: "line"})

	for i := 0; i < 62; i++ {
		path.Update(w)
		move.Update(w)
	}

	tr := ecs.MustGet(w, e, component.TransformKind)
	pf := ecs.MustGet(w, e, component.PathFollowerKind)
	if !pf.Done {
		t.Fatalf("follower not done: %+v", pf)
	}
	if tr.X != 100 || tr.Y != 200 {
		t.Fatalf("follower ended at (%v, %v), want (100, 200)", tr.X, tr.Y)
	}
	vel := ecs.MustGet(w, e, component.VelocityKind)
	if vel.VX != 0 || vel.VY != 0 {
		t.Fatalf("finished follower still moving: %+v", vel)
	}
}
