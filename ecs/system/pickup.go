package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
)

const (
	maxPower          = 128
	pointItemValue    = 1000
	powerItemOverflow = 100
	itemGravity       = 6.0
	itemFallSpeed     = 140.0
	itemHomingSpeed   = 420.0
)

// PickupSystem applies collected items and moves loose ones. Items scatter
// upward on drop and fall under gravity; crossing the collection line pulls
// every item on the field to the player, and point items collected that way
// score at full value.
type PickupSystem struct {
	bounds Bounds
}

func NewPickupSystem(bounds Bounds) *PickupSystem {
	return &PickupSystem{bounds: bounds}
}

func (s *PickupSystem) Update(w *ecs.World) {
	player, stats, ok := playerEntity(w)
	if !ok {
		w.Events().Drain(ecs.EventPlayerPickupItem)
		return
	}

	for _, evt := range w.Events().Drain(ecs.EventPlayerPickupItem) {
		item, ok := ecs.Get(w, evt.Target, component.ItemKind)
		if !ok {
			continue
		}
		s.collect(stats, item)
		w.DestroyEntity(evt.Target)
	}

	playerTr, ok := ecs.Get(w, player, component.TransformKind)
	if !ok {
		return
	}
	aboveLine := playerTr.Y <= s.bounds.CollectLineY && !stats.GameOver

	ecs.ForEach3(w, component.ItemKind, component.TransformKind, component.VelocityKind,
		func(e ecs.Entity, item *component.Item, tr *component.Transform, vel *component.Velocity) {
			if aboveLine {
				item.AutoCollect = true
			}
			if item.AutoCollect {
				v := pattern.Aimed(tr.X, tr.Y, playerTr.X, playerTr.Y, itemHomingSpeed)
				vel.VX, vel.VY = v.X, v.Y
				return
			}
			vel.VY += itemGravity
			if vel.VY > itemFallSpeed {
				vel.VY = itemFallSpeed
			}
		})
}

func (s *PickupSystem) collect(stats *component.PlayerStats, item *component.Item) {
	switch item.Type {
	case component.ItemPower:
		if stats.Power >= maxPower {
			stats.Score += powerItemOverflow * int64(item.Magnitude)
			return
		}
		stats.Power += item.Magnitude
		if stats.Power > maxPower {
			stats.Power = maxPower
		}
	case component.ItemPoint:
		value := int64(pointItemValue) * int64(item.Magnitude)
		if !item.AutoCollect {
			value /= 2
		}
		stats.Score += value
	case component.ItemLife:
		stats.Lives += item.Magnitude
	case component.ItemBomb:
		stats.Bombs += item.Magnitude
	}
}
