package script

import (
	"github.com/milk9111/danmaku/defs"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/registry"
)

// EnemyFactory spawns an enemy entity at a position and returns it.
type EnemyFactory func(w *ecs.World, x, y float64) ecs.Entity

// BossFactory spawns a boss entity (with its BossState) at a position.
type BossFactory func(w *ecs.World, x, y float64) ecs.Entity

// BehaviorFactory builds a fresh routine instance for one task.
type BehaviorFactory func() Routine

// Registries are the content lookup tables, constructed once at startup and
// passed explicitly into the systems that need them; there is no package
// global registry state, so independent simulations can coexist.
type Registries struct {
	Enemies    *registry.Registry[string, EnemyFactory]
	Bosses     *registry.Registry[string, BossFactory]
	Behaviors  *registry.Registry[string, BehaviorFactory]
	Archetypes *registry.Registry[string, defs.BulletArchetype]
	Paths      *registry.Registry[string, defs.PathDef]
	Characters *registry.Registry[string, defs.CharacterDef]
}

func NewRegistries() *Registries {
	return &Registries{
		Enemies:    registry.New[string, EnemyFactory]("enemy"),
		Bosses:     registry.New[string, BossFactory]("boss"),
		Behaviors:  registry.New[string, BehaviorFactory]("behavior"),
		Archetypes: registry.New[string, defs.BulletArchetype]("archetype"),
		Paths:      registry.New[string, defs.PathDef]("path"),
		Characters: registry.New[string, defs.CharacterDef]("character"),
	}
}
