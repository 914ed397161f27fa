package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/ecs/component"
	"github.com/milk9111/danmaku/script"
)

// PathSystem steers path followers along their named polyline. The velocity
// toward the current waypoint is recomputed every tick from the remaining
// frames, so a follower nudged off course still arrives on time. The path
// key is re-resolved each tick; an unknown key finishes the follower.
type PathSystem struct {
	regs *script.Registries
}

func NewPathSystem(regs *script.Registries) *PathSystem {
	return &PathSystem{regs: regs}
}

func (s *PathSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.PathFollowerKind, component.TransformKind, component.VelocityKind,
		func(e ecs.Entity, pf *component.PathFollower, tr *component.Transform, vel *component.Velocity) {
			if pf.Done {
				return
			}
			path, err := s.regs.Paths.Resolve(pf.Path)
			if err != nil || pf.Segment >= len(path.Points) {
				pf.Done = true
				vel.VX, vel.VY = 0, 0
				return
			}

			pt := path.Points[pf.Segment]
			remaining := pt.Frames - pf.Frame
			if remaining <= 0 {
				tr.X, tr.Y = pt.X, pt.Y
				vel.VX, vel.VY = 0, 0
				pf.Segment++
				pf.Frame = 0
				if pf.Segment >= len(path.Points) {
					pf.Done = true
				}
				return
			}

			vel.VX = (pt.X - tr.X) / float64(remaining) * ecs.TicksPerSecond
			vel.VY = (pt.Y - tr.Y) / float64(remaining) * ecs.TicksPerSecond
			pf.Frame++
		})
}
