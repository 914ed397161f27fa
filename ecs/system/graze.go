package system

import (
	"github.com/milk9111/danmaku/ecs"
)

const (
	grazeScore      = 10
	grazeEnergyGain = 4.0
	energyDrainRate = 0.5
	energyDecayWait = 90
)

// GrazeSystem scores grazes and runs the energy meter. Each graze bumps
// the counter, pays a small score, and charges the meter; a full meter
// flips the shot to its enhanced form, which burns the meter back down.
// An idle, non-full meter decays after a short delay.
type GrazeSystem struct{}

func NewGrazeSystem() *GrazeSystem {
	return &GrazeSystem{}
}

func (s *GrazeSystem) Update(w *ecs.World) {
	grazes := w.Events().Drain(ecs.EventPlayerGrazeEnemyBullet)
	_, stats, ok := playerEntity(w)
	if !ok {
		return
	}
	if stats.MaxEnergy <= 0 {
		stats.MaxEnergy = 100
	}

	for range grazes {
		stats.Graze++
		stats.Score += grazeScore
		if !stats.Enhanced {
			stats.Energy += grazeEnergyGain
			stats.DecayDelay = energyDecayWait
			if stats.Energy >= stats.MaxEnergy {
				stats.Energy = stats.MaxEnergy
				stats.Enhanced = true
			}
		}
	}

	if stats.Enhanced {
		stats.Energy -= energyDrainRate
		if stats.Energy <= 0 {
			stats.Energy = 0
			stats.Enhanced = false
		}
		return
	}

	if stats.Energy > 0 {
		if stats.DecayDelay > 0 {
			stats.DecayDelay--
		} else {
			stats.Energy -= energyDrainRate / 4
			if stats.Energy < 0 {
				stats.Energy = 0
			}
		}
	}
}
