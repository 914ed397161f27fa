package system

import (
	"github.com/milk9111/danmaku/ecs"
	"github.com/milk9111/danmaku/script"
)

// TaskSystem drives the script runner: one resumption pass plus effect
// application per tick.
type TaskSystem struct {
	runner *script.Runner
}

func NewTaskSystem(runner *script.Runner) *TaskSystem {
	return &TaskSystem{runner: runner}
}

func (s *TaskSystem) Update(w *ecs.World) {
	s.runner.Update(w)
}
