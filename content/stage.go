package content

import (
	"github.com/milk9111/danmaku/defs"
	"github.com/milk9111/danmaku/script"
)

// registerStages binds the stage scripts. A stage is just a behavior with
// no owner: waves of spawns, a gate until the field clears, the boss, and a
// gate until the boss falls.
func registerStages(regs *script.Registries, enemies map[string]defs.EnemyDef) {
	spawn := func(kind string, x, y float64) script.Step {
		behavior := enemies[kind].Behavior
		return script.Do(func(ctx *script.Context) {
			ctx.SpawnEnemy(kind, x, y, behavior)
		})
	}
	spawnOnPath := func(kind string, x, y float64, path string) script.Step {
		behavior := enemies[kind].Behavior
		return script.Do(func(ctx *script.Context) {
			ctx.SpawnEnemyOnPath(kind, x, y, behavior, path)
		})
	}
	fieldClear := script.Until(func(ctx *script.Context) bool {
		return ctx.EnemiesAlive() == 0
	})

	regs.Behaviors.Replace("stage1", func() script.Routine {
		return script.NewSeq(
			script.Sleep(90),

			// Opening fairy rain, alternating sides.
			script.Repeat(4,
				spawn("fairy", 72, -24),
				script.Sleep(24),
				spawn("fairy", 312, -24),
				script.Sleep(24),
			),
			script.Sleep(120),

			// Crossing swoops under a homing turret.
			spawnOnPath("winged", 48, -24, "swoop_right"),
			spawnOnPath("winged", 336, -24, "swoop_left"),
			script.Sleep(60),
			spawn("turret", 192, -24),
			fieldClear,
			script.Sleep(120),

			// Midboss wave: path fairies in threes.
			script.Repeat(3,
				spawnOnPath("fairy", 24, -24, "swoop_right"),
				spawnOnPath("fairy", 360, -24, "swoop_left"),
				spawnOnPath("fairy", 192, -24, "dive_center"),
				script.Sleep(90),
			),
			fieldClear,
			script.Sleep(180),

			script.Do(func(ctx *script.Context) {
				ctx.SpawnBoss("seraph", 192, -48)
			}),
			// Spawns queue until the end of the tick; give the boss a frame
			// to exist before gating on it.
			script.Sleep(1),
			script.Until(func(ctx *script.Context) bool {
				return !ctx.BossAlive()
			}),
		)
	})
}
