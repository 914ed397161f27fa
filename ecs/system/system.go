// Package system holds the fixed-order simulation systems. Each system is a
// pure frame step over the world; the scheduler runs them in a deterministic
// order so identical inputs replay identically.
package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
)

// Bounds is the playfield rectangle in pixels. CollectLineY is the
// point-of-collection line: the player moving above it auto-collects every
// item on the field.
type Bounds struct {
	Width        float64
	Height       float64
	Margin       float64
	CollectLineY float64
}

func (b Bounds) contains(x, y, margin float64) bool {
	return x >= -margin && x <= b.Width+margin && y >= -margin && y <= b.Height+margin
}

func playerEntity(w *ecs.World) (ecs.Entity, *component.PlayerStats, bool) {
	e, ok := ecs.First(w, component.PlayerTagKind)
	if !ok {
		return 0, nil, false
	}
	stats, ok := ecs.Get(w, e, component.PlayerStatsKind)
	if !ok {
		return 0, nil, false
	}
	return e, stats, true
}
