package script

import (
	"math/rand"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
)

// Context is the primitive surface a routine scripts against. Queries read
// live world state at the moment of the call; every side-effecting call is
// queued on the runner and applied after all of this tick's resumptions, in
// call order.
type Context struct {
	World *ecs.World
	Owner ecs.Entity
	Rand  *rand.Rand

	runner *Runner
}

// OwnerPos returns the owning entity's position. ok is false for
// stage-level tasks and for owners that have been removed.
func (c *Context) OwnerPos() (x, y float64, ok bool) {
	if !c.Owner.Valid() || !c.World.IsAlive(c.Owner) {
		return 0, 0, false
	}
	tr, ok := ecs.Get(c.World, c.Owner, component.TransformKind)
	if !ok {
		return 0, 0, false
	}
	return tr.X, tr.Y, true
}

// PlayerPos returns the player's current position, or the origin if no
// player exists.
func (c *Context) PlayerPos() (x, y float64) {
	player, ok := ecs.First(c.World, component.PlayerTagKind)
	if !ok {
		return 0, 0
	}
	tr, ok := ecs.Get(c.World, player, component.TransformKind)
	if !ok {
		return 0, 0
	}
	return tr.X, tr.Y
}

// Elapsed returns the current simulation tick.
func (c *Context) Elapsed() uint64 {
	return c.World.Tick()
}

// EnemiesAlive counts live enemies, excluding ones already marked dying.
// Spawns queued earlier in this same tick are not yet visible.
func (c *Context) EnemiesAlive() int {
	n := 0
	ecs.ForEach(c.World, component.EnemyTagKind, func(e ecs.Entity, _ *component.EnemyTag) {
		if !ecs.Has(c.World, e, component.DyingKind) {
			n++
		}
	})
	return n
}

// BossAlive reports whether an undefeated boss is on the field.
func (c *Context) BossAlive() bool {
	alive := false
	ecs.ForEach(c.World, component.BossStateKind, func(e ecs.Entity, bs *component.BossState) {
		if bs.State != component.BossDefeated {
			alive = true
		}
	})
	return alive
}

// RandRange returns a deterministic uniform value in [a, b).
func (c *Context) RandRange(a, b float64) float64 {
	return a + c.Rand.Float64()*(b-a)
}

// Fire queues an enemy bullet at (x, y) with the given polar velocity. The
// archetype key resolves through the registry for damage, radius, sprite,
// and lifetime. motion may be nil for a constant-velocity bullet.
func (c *Context) Fire(x, y, speed, angle float64, archetype string, motion *component.MotionProgram) {
	c.FireVec(x, y, pattern.FromAngle(angle, speed), archetype, motion)
}

// FireAimed fires toward the player's position at call time. The aim is
// locked now; it is not re-aimed at spawn application.
func (c *Context) FireAimed(x, y, speed float64, archetype string, motion *component.MotionProgram) {
	px, py := c.PlayerPos()
	angle := pattern.AngleTo(x, y, px, py)
	c.Fire(x, y, speed, angle, archetype, motion)
}

// FireVec queues an enemy bullet with an explicit velocity vector. The
// motion program, if any, is copied per bullet so volleys sharing a
// template never share interpreter state; a template with zero initial
// motion inherits the spawn velocity's polar form.
func (c *Context) FireVec(x, y float64, v pattern.Vec, archetype string, motion *component.MotionProgram) {
	arch := c.runner.regs.Archetypes.MustResolve(archetype)
	var mp *component.MotionProgram
	if motion != nil {
		mp = cloneMotion(motion)
		if mp.Speed == 0 && mp.Angle == 0 {
			mp.Speed = pattern.Speed(v)
			mp.Angle = pattern.Angle(v)
		}
	}
	c.runner.queue(func(w *ecs.World) {
		e := w.CreateEntity()
		ecs.Add(w, e, component.TransformKind, &component.Transform{X: x, Y: y})
		ecs.Add(w, e, component.VelocityKind, &component.Velocity{VX: v.X, VY: v.Y})
		ecs.Add(w, e, component.BulletKind, &component.Bullet{
			Damage: arch.Damage,
			Side:   component.SideEnemy,
			Sprite: arch.Sprite,
		})
		ecs.Add(w, e, component.ColliderKind, &component.Collider{
			Radius: arch.Radius,
			Layer:  component.LayerEnemyBullet,
			Mask:   component.LayerPlayer,
		})
		if arch.LifetimeFrames > 0 {
			ecs.Add(w, e, component.LifetimeKind, &component.Lifetime{Frames: arch.LifetimeFrames})
		}
		if mp != nil {
			ecs.Add(w, e, component.MotionProgramKind, mp)
		}
	})
}

func cloneMotion(src *component.MotionProgram) *component.MotionProgram {
	instrs := make([]component.MotionInstr, len(src.Instrs))
	copy(instrs, src.Instrs)
	cp := *src
	cp.Instrs = instrs
	return &cp
}

// SpawnEnemy queues an enemy spawn through the factory registry and, if
// behavior is non-empty, starts its behavior task. The new task becomes
// eligible for resumption next tick.
func (c *Context) SpawnEnemy(kind string, x, y float64, behavior string) {
	factory := c.runner.regs.Enemies.MustResolve(kind)
	var bf BehaviorFactory
	if behavior != "" {
		bf = c.runner.regs.Behaviors.MustResolve(behavior)
	}
	c.runner.queue(func(w *ecs.World) {
		e := factory(w, x, y)
		if bf != nil {
			c.runner.Start(w, e, behavior, bf())
		}
	})
}

// SpawnEnemyOnPath is SpawnEnemy plus a path follower attached at spawn.
func (c *Context) SpawnEnemyOnPath(kind string, x, y float64, behavior, path string) {
	factory := c.runner.regs.Enemies.MustResolve(kind)
	var bf BehaviorFactory
	if behavior != "" {
		bf = c.runner.regs.Behaviors.MustResolve(behavior)
	}
	c.runner.queue(func(w *ecs.World) {
		e := factory(w, x, y)
		ecs.Add(w, e, component.PathFollowerKind, &component.PathFollower{Path: path})
		if bf != nil {
			c.runner.Start(w, e, behavior, bf())
		}
	})
}

// SpawnBoss queues a boss spawn through the boss registry. Phase behavior
// tasks are started by the boss phase system as phases begin.
func (c *Context) SpawnBoss(key string, x, y float64) {
	factory := c.runner.regs.Bosses.MustResolve(key)
	c.runner.queue(func(w *ecs.World) {
		factory(w, x, y)
	})
}

// SetOwnerVelocity queues a velocity write on the owning entity.
func (c *Context) SetOwnerVelocity(vx, vy float64) {
	owner := c.Owner
	c.runner.queue(func(w *ecs.World) {
		if !w.IsAlive(owner) {
			return
		}
		if vel, ok := ecs.Get(w, owner, component.VelocityKind); ok {
			vel.VX = vx
			vel.VY = vy
		}
	})
}

// SetOwnerPosition queues a position write on the owning entity.
func (c *Context) SetOwnerPosition(x, y float64) {
	owner := c.Owner
	c.runner.queue(func(w *ecs.World) {
		if !w.IsAlive(owner) {
			return
		}
		if tr, ok := ecs.Get(w, owner, component.TransformKind); ok {
			tr.X = x
			tr.Y = y
		}
	})
}
