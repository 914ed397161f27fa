package system

import (
	"github.com/milk9111/danmaku/defs"
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
	"github.com/milk9111/danmaku/script"
)

const (
	playerBulletRadius = 4.0
	missileTurnRate    = 4.0
	optionTurnRate     = 6.0
)

// PlayerShootSystem fires the character's shot while the shoot input is
// held. The angle set switches with focus state, and the enhanced form
// (earned by a full graze meter) substitutes its own angles and multipliers
// while the meter burns. Satellite options fire alongside on the same
// cooldown; a "missile" type shot launches homing bullets.
type PlayerShootSystem struct {
	regs *script.Registries
}

func NewPlayerShootSystem(regs *script.Registries) *PlayerShootSystem {
	return &PlayerShootSystem{regs: regs}
}

func (s *PlayerShootSystem) Update(w *ecs.World) {
	player, stats, ok := playerEntity(w)
	if !ok || stats.GameOver {
		return
	}
	if stats.ShotCooldown > 0 {
		stats.ShotCooldown--
	}

	input, ok := ecs.Get(w, player, component.InputStateKind)
	if !ok || !input.Shoot || stats.ShotCooldown > 0 {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformKind)
	if !ok {
		return
	}
	char, err := s.regs.Characters.Resolve(stats.Character)
	if err != nil {
		return
	}

	shot := char.Shot
	angles := shot.SpreadAngles
	if input.Focus {
		angles = shot.FocusAngles
	}
	damage := shot.Damage
	speed := shot.BulletSpeed

	if stats.Enhanced {
		enh := char.Enhanced
		if enh.DamageMult > 0 {
			damage = int(float64(damage) * enh.DamageMult)
		}
		if enh.SpeedMult > 0 {
			speed *= enh.SpeedMult
		}
		if input.Focus && len(enh.FocusAngles) > 0 {
			angles = enh.FocusAngles
		} else if !input.Focus && len(enh.SpreadAngles) > 0 {
			angles = enh.SpreadAngles
		}
	}

	sprite := shot.Type
	if sprite == "" {
		sprite = "shot"
	}
	for _, angle := range angles {
		v := pattern.FromAngle(angle, speed)
		e := spawnPlayerBullet(w, tr.X, tr.Y, v, damage, sprite)
		if shot.Type == "missile" {
			ecs.Add(w, e, component.HomingKind, &component.Homing{
				TurnRate: missileTurnRate,
				Speed:    speed,
			})
		}
	}

	s.fireOptions(w, char.Options, tr.X, tr.Y, shot, damage)

	stats.ShotCooldown = shot.CooldownFrames
}

// fireOptions fires the character's satellite options alongside the main
// shot. An explicit option damage wins over the (possibly enhanced) main
// shot damage.
func (s *PlayerShootSystem) fireOptions(w *ecs.World, opts defs.OptionDef, x, y float64, shot defs.ShotDef, damage int) {
	if len(opts.Offsets) == 0 {
		return
	}
	if opts.Damage > 0 {
		damage = opts.Damage
	}
	speed := opts.BulletSpeed
	if speed <= 0 {
		speed = shot.BulletSpeed
	}
	turnRate := opts.TurnRate
	if turnRate <= 0 {
		turnRate = optionTurnRate
	}

	for _, off := range opts.Offsets {
		v := pattern.FromAngle(-90, speed)
		e := spawnPlayerBullet(w, x+off.X, y+off.Y, v, damage, "option_shot")
		if opts.Mode == "homing" {
			ecs.Add(w, e, component.HomingKind, &component.Homing{
				TurnRate: turnRate,
				Speed:    speed,
			})
		}
	}
}

func spawnPlayerBullet(w *ecs.World, x, y float64, v pattern.Vec, damage int, sprite string) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformKind, &component.Transform{X: x, Y: y})
	ecs.Add(w, e, component.VelocityKind, &component.Velocity{VX: v.X, VY: v.Y})
	ecs.Add(w, e, component.BulletKind, &component.Bullet{
		Damage: damage,
		Side:   component.SidePlayer,
		Sprite: sprite,
	})
	ecs.Add(w, e, component.ColliderKind, &component.Collider{
		Radius: playerBulletRadius,
		Layer:  component.LayerPlayerBullet,
		Mask:   component.LayerEnemy,
	})
	return e
}
