package script

import (
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
)

// High-level volley helpers over Context.Fire, mirroring the spawn
// geometries of the pattern package. motion may be nil; it is used as a
// per-bullet template.

// FireRing fires count bullets evenly around the full circle from (x, y).
func FireRing(ctx *Context, x, y float64, count int, speed, startAngle float64, archetype string, motion *component.MotionProgram) {
	for _, v := range pattern.Ring(count, startAngle, speed) {
		ctx.FireVec(x, y, v, archetype, motion)
	}
}

// FireFan fires an n-way spread centered on the direction of the player at
// call time.
func FireFan(ctx *Context, x, y float64, count int, spread, speed float64, archetype string, motion *component.MotionProgram) {
	px, py := ctx.PlayerPos()
	center := pattern.AngleTo(x, y, px, py)
	FireFanAt(ctx, x, y, count, spread, center, speed, archetype, motion)
}

// FireFanAt fires an n-way spread centered on an explicit angle.
func FireFanAt(ctx *Context, x, y float64, count int, spread, center, speed float64, archetype string, motion *component.MotionProgram) {
	for _, v := range pattern.NWay(count, spread, center, speed) {
		ctx.FireVec(x, y, v, archetype, motion)
	}
}

// FireSpiral emits one ring of the spiral and advances the emitter. The
// emitter state belongs to the calling routine, so concurrent spirals do
// not interfere.
func FireSpiral(ctx *Context, em *pattern.SpiralEmitter, x, y float64, count int, speed float64, archetype string, motion *component.MotionProgram) {
	for _, v := range em.Next(count, speed) {
		ctx.FireVec(x, y, v, archetype, motion)
	}
}
