package content

import (
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
	"github.com/milk9111/danmaku/script"
)

// registerBehaviors binds the behaviors built in Go. Simple repeating
// patterns live in tengo scripts; these are the ones that lean on motion
// programs or emitter state.
func registerBehaviors(regs *script.Registries) {
	regs.Behaviors.Replace("winged_fan", func() script.Routine {
		return script.NewSeq(
			script.Sleep(45),
			script.Repeat(6,
				script.Do(func(ctx *script.Context) {
					x, y, ok := ctx.OwnerPos()
					if !ok {
						return
					}
					script.FireFan(ctx, x, y, 5, 50, 180, "shard", nil)
				}),
				script.Sleep(40),
			),
		)
	})

	// Slow orbs that drift, then snap toward wherever the player is and
	// accelerate.
	regs.Behaviors.Replace("turret_homing", func() script.Routine {
		motion := component.NewMotion(0, 0).
			Wait(40).
			AimPlayer().
			AccelerateTo(320, 30).
			ClampSpeed(320).
			Build()
		return script.NewSeq(
			script.Sleep(30),
			script.Forever(
				script.Do(func(ctx *script.Context) {
					x, y, ok := ctx.OwnerPos()
					if !ok {
						return
					}
					script.FireRing(ctx, x, y, 8, 90, ctx.RandRange(0, 45), "orb", motion)
				}),
				script.Sleep(75),
			),
		)
	})

	regs.Behaviors.Replace("seraph_opening", func() script.Routine {
		return script.NewSeq(
			script.MoveTo(192, 96, 90),
			script.Forever(
				script.Repeat(3,
					script.Do(func(ctx *script.Context) {
						x, y, ok := ctx.OwnerPos()
						if !ok {
							return
						}
						script.FireFan(ctx, x, y, 7, 60, 200, "shard", nil)
					}),
					script.Sleep(20),
				),
				script.Sleep(60),
				script.Do(func(ctx *script.Context) {
					x, y, ok := ctx.OwnerPos()
					if !ok {
						return
					}
					ctx.FireAimed(x, y, 280, "knife", nil)
				}),
				script.Sleep(45),
			),
		)
	})

	regs.Behaviors.Replace("unbroken_sky", func() script.Routine {
		em := &pattern.SpiralEmitter{Step: 9}
		counter := &pattern.SpiralEmitter{Angle: 180, Step: -7}
		return script.NewSeq(
			script.Sleep(60),
			script.Forever(
				script.Do(func(ctx *script.Context) {
					x, y, ok := ctx.OwnerPos()
					if !ok {
						return
					}
					script.FireSpiral(ctx, em, x, y, 6, 130, "orb", nil)
					script.FireSpiral(ctx, counter, x, y, 6, 110, "shard", nil)
				}),
				script.Sleep(8),
			),
		)
	})
}
