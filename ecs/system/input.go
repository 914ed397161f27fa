package system

import (
	"math"

	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

// InputSystem turns the decoded InputState into player velocity. Focus
// halves to the character's focus speed; diagonals are normalized so focus
// dodging is isotropic.
type InputSystem struct {
	regs *script.Registries
}

func NewInputSystem(regs *script.Registries) *InputSystem {
	return &InputSystem{regs: regs}
}

func (s *InputSystem) Update(w *ecs.World) {
	player, stats, ok := playerEntity(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputStateKind)
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, player, component.VelocityKind)
	if !ok {
		return
	}

	char, err := s.regs.Characters.Resolve(stats.Character)
	if err != nil {
		return
	}

	speed := char.Speed
	if input.Focus {
		speed = char.FocusSpeed
	}

	dx, dy := input.MoveX, input.MoveY
	if mag := math.Hypot(dx, dy); mag > 1 {
		dx /= mag
		dy /= mag
	}
	vel.VX = dx * speed
	vel.VY = dy * speed
}
