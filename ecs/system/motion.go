package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/pattern"
)

// MotionSystem interprets per-bullet motion programs. Immediate ops run
// back to back within a tick; a timed op consumes exactly one frame per
// tick. A finished program keeps the bullet at its final polar velocity.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World) {
	px, py := 0.0, 0.0
	if player, ok := ecs.First(w, component.PlayerTagKind); ok {
		if tr, ok := ecs.Get(w, player, component.TransformKind); ok {
			px, py = tr.X, tr.Y
		}
	}

	ecs.ForEach3(w, component.MotionProgramKind, component.TransformKind, component.VelocityKind,
		func(e ecs.Entity, mp *component.MotionProgram, tr *component.Transform, vel *component.Velocity) {
			if !mp.Finished {
				stepProgram(mp, tr.X, tr.Y, px, py)
			}
			if mp.SpeedCap > 0 && mp.Speed > mp.SpeedCap {
				mp.Speed = mp.SpeedCap
			}
			v := pattern.FromAngle(mp.Angle, mp.Speed)
			vel.VX, vel.VY = v.X, v.Y
		})
}

// stepProgram advances the program by one frame. Immediate instructions
// never consume the frame; the loop stops after the first timed instruction
// takes it, or when the program runs out.
func stepProgram(mp *component.MotionProgram, x, y, px, py float64) {
	for {
		if mp.PC >= len(mp.Instrs) {
			mp.Finished = true
			return
		}
		instr := &mp.Instrs[mp.PC]

		switch instr.Op {
		case component.MotionSetSpeed:
			mp.Speed = instr.Speed
			mp.PC++
			continue
		case component.MotionSetAngle:
			mp.Angle = pattern.Normalize(instr.Angle)
			mp.PC++
			continue
		case component.MotionAimPlayer:
			mp.Angle = pattern.AngleTo(x, y, px, py)
			mp.PC++
			continue
		case component.MotionClampSpeed:
			mp.SpeedCap = instr.Speed
			mp.PC++
			continue
		}

		// Timed instruction. Degenerate frame counts apply instantly.
		if instr.Frames <= 0 {
			switch instr.Op {
			case component.MotionAccelerateTo:
				mp.Speed = instr.Speed
			case component.MotionTurnTo:
				mp.Angle = pattern.Normalize(instr.Angle)
			}
			mp.PC++
			continue
		}

		if mp.FrameCounter == 0 {
			switch instr.Op {
			case component.MotionAccelerateTo:
				instr.DeltaSpeed = (instr.Speed - mp.Speed) / float64(instr.Frames)
			case component.MotionTurnTo:
				instr.DeltaAngle = pattern.ShortestArc(mp.Angle, instr.Angle) / float64(instr.Frames)
			}
		}

		switch instr.Op {
		case component.MotionAccelerateTo:
			mp.Speed += instr.DeltaSpeed
		case component.MotionTurnTo:
			mp.Angle = pattern.Normalize(mp.Angle + instr.DeltaAngle)
		}
		mp.FrameCounter++

		if mp.FrameCounter >= instr.Frames {
			switch instr.Op {
			case component.MotionAccelerateTo:
				mp.Speed = instr.Speed
			case component.MotionTurnTo:
				mp.Angle = pattern.Normalize(instr.Angle)
			}
			mp.PC++
			mp.FrameCounter = 0
		}
		return
	}
}
