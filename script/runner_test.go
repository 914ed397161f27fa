package script

import (
	"testing"

	"github.com/milk9111/danmaku/defs"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

func testRegistries() *Registries {
	regs := NewRegistries()
	regs.Archetypes.Replace("pellet", defs.BulletArchetype{
		Damage: 1, Radius: 4, LifetimeFrames: 60,
	})
	return regs
}

func TestWaitSkipsExactFrameCount(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	var resumedAt []uint64
	r.Start(w, 0, "waiter", RoutineFunc(func(ctx *Context) Status {
		resumedAt = append(resumedAt, ctx.Elapsed())
		if len(resumedAt) == 3 {
			return Done()
		}
		return Wait(2)
	}))

	for i := 0; i < 10; i++ {
		w.AdvanceTick()
		r.Update(w)
	}

	// Wait(2) skips two ticks: resumptions land three ticks apart.
	want := []uint64{1, 4, 7}
	if len(resumedAt) != len(want) {
		t.Fatalf("resumptions = %v", resumedAt)
	}
	for i := range want {
		if resumedAt[i] != want[i] {
			t.Fatalf("resumptions = %v, want %v", resumedAt, want)
		}
	}
	if r.Active() != 0 {
		t.Fatalf("finished task still active")
	}
}

func TestWaitZeroResumesNextTick(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	resumes := 0
	r.Start(w, 0, "spinner", RoutineFunc(func(ctx *Context) Status {
		resumes++
		return Wait(0)
	}))

	for i := 0; i < 5; i++ {
		w.AdvanceTick()
		r.Update(w)
	}
	if resumes != 5 {
		t.Fatalf("Wait(0) resumed %d times over 5 ticks, want 5", resumes)
	}
}

func TestEffectsApplyAfterAllResumptions(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	// Task A fires during its resumption; task B, resumed later the same
	// tick, must not see the bullet yet.
	var seenDuring, seenAfter int
	r.Start(w, 0, "a", RoutineFunc(func(ctx *Context) Status {
		ctx.Fire(0, 0, 100, 90, "pellet", nil)
		return Done()
	}))
	r.Start(w, 0, "b", RoutineFunc(func(ctx *Context) Status {
		seenDuring = ecs.Count(ctx.World, component.BulletKind)
		return Done()
	}))

	w.AdvanceTick()
	r.Update(w)
	seenAfter = ecs.Count(w, component.BulletKind)

	if seenDuring != 0 {
		t.Fatalf("queued spawn visible during the same tick's resumptions")
	}
	if seenAfter != 1 {
		t.Fatalf("bullet count after update = %d, want 1", seenAfter)
	}
}

func TestFiredBulletComponents(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	motion := component.NewMotion(0, 0).Wait(10).AimPlayer().Build()
	r.Start(w, 0, "volley", RoutineFunc(func(ctx *Context) Status {
		ctx.Fire(10, 20, 100, 90, "pellet", motion)
		ctx.Fire(10, 20, 100, 90, "pellet", motion)
		return Done()
	}))
	w.AdvanceTick()
	r.Update(w)

	var programs []*component.MotionProgram
	ecs.ForEach(w, component.BulletKind, func(e ecs.Entity, b *component.Bullet) {
		if b.Side != component.SideEnemy || b.Damage != 1 {
			t.Fatalf("bullet wrong: %+v", b)
		}
		col := ecs.MustGet(w, e, component.ColliderKind)
		if col.Layer != component.LayerEnemyBullet || !col.Mask.Has(component.LayerPlayer) {
			t.Fatalf("collider wrong: %+v", col)
		}
		if lt := ecs.MustGet(w, e, component.LifetimeKind); lt.Frames != 60 {
			t.Fatalf("lifetime wrong: %+v", lt)
		}
		programs = append(programs, ecs.MustGet(w, e, component.MotionProgramKind))
	})
	if len(programs) != 2 {
		t.Fatalf("bullets = %d", len(programs))
	}
	if programs[0] == programs[1] {
		t.Fatalf("bullets share one motion program instance")
	}
	// A zero-motion template inherits each bullet's spawn polar velocity.
	if programs[0].Speed != 100 || programs[0].Angle != 90 {
		t.Fatalf("template polar not inherited: %+v", programs[0])
	}
	// The template itself is untouched.
	if motion.Speed != 0 {
		t.Fatalf("shared template mutated: %+v", motion)
	}
}

func TestWaitUntilPolledAtResumePoint(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	gateOpen := false
	resumed := false
	r.Start(w, 0, "gate", RoutineFunc(func(ctx *Context) Status {
		if !resumed {
			resumed = true
			return WaitUntil(func(*Context) bool { return gateOpen })
		}
		return Done()
	}))

	for i := 0; i < 3; i++ {
		w.AdvanceTick()
		r.Update(w)
	}
	if r.Active() != 1 {
		t.Fatalf("gated task finished early")
	}

	gateOpen = true
	w.AdvanceTick()
	r.Update(w)
	if r.Active() != 0 {
		t.Fatalf("task did not resume after predicate turned true")
	}
}

func TestTaskStartedMidTickResumesNextTick(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	var childTick uint64
	r.Start(w, 0, "parent", RoutineFunc(func(ctx *Context) Status {
		r.Start(ctx.World, 0, "child", RoutineFunc(func(c *Context) Status {
			childTick = c.Elapsed()
			return Done()
		}))
		return Done()
	}))

	w.AdvanceTick()
	r.Update(w)
	if childTick != 0 {
		t.Fatalf("child resumed on its start tick")
	}
	w.AdvanceTick()
	r.Update(w)
	if childTick != 2 {
		t.Fatalf("child resumed at tick %d, want 2", childTick)
	}
}

func TestPanickingRoutineIsIsolated(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	r.Start(w, 0, "fault", RoutineFunc(func(ctx *Context) Status {
		panic("boom")
	}))
	healthy := 0
	r.Start(w, 0, "healthy", RoutineFunc(func(ctx *Context) Status {
		healthy++
		return Wait(0)
	}))

	for i := 0; i < 3; i++ {
		w.AdvanceTick()
		r.Update(w)
	}
	if healthy != 3 {
		t.Fatalf("sibling task disturbed by fault: %d resumptions", healthy)
	}
	if r.Active() != 1 {
		t.Fatalf("faulted task still active")
	}
}

func TestTaskTerminatesWithDeadOwner(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	owner := w.CreateEntity()
	resumes := 0
	r.Start(w, owner, "orphan", RoutineFunc(func(ctx *Context) Status {
		resumes++
		return Wait(0)
	}))

	w.AdvanceTick()
	r.Update(w)
	w.DestroyEntity(owner)
	w.AdvanceTick()
	r.Update(w)

	if resumes != 1 {
		t.Fatalf("task resumed %d times, want 1", resumes)
	}
	if r.Active() != 0 {
		t.Fatalf("orphaned task still active")
	}
}

func TestStopCancelsTask(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRunner(testRegistries(), nil)

	task := r.Start(w, 0, "stoppable", RoutineFunc(func(ctx *Context) Status {
		return Wait(0)
	}))
	w.AdvanceTick()
	r.Update(w)
	r.Stop(task)
	w.AdvanceTick()
	r.Update(w)

	if !task.Done() || r.Active() != 0 {
		t.Fatalf("stopped task still running")
	}
}
