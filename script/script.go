// Package script is the cooperative task engine driving level timelines and
// per-enemy behavior. A task is an explicit resumable state object resumed
// once per tick; it suspends by returning a frame count to sleep or a
// predicate to re-poll. Side-effecting context calls are queued and applied
// at a fixed point after all resumptions, so tasks never race each other's
// reads within a tick.
package script

// Routine is a frame-resumable behavior. Tick is called once per resumption
// and returns how the task suspends next. All state must live on the
// routine value, never in call-stack locals.
type Routine interface {
	Tick(ctx *Context) Status
}

// RoutineFunc adapts a function to Routine.
type RoutineFunc func(ctx *Context) Status

func (f RoutineFunc) Tick(ctx *Context) Status {
	return f(ctx)
}

type statusKind uint8

const (
	statusDone statusKind = iota
	statusSleep
	statusUntil
)

// Status is what a routine's resumption yields: finished, sleep N frames,
// or block on a predicate.
type Status struct {
	kind   statusKind
	frames int
	pred   func(*Context) bool
}

// Done finishes the task.
func Done() Status {
	return Status{kind: statusDone}
}

// Wait suspends the task for frames ticks; the routine resumes on the tick
// after the countdown reaches zero. Wait(0) resumes next tick.
func Wait(frames int) Status {
	if frames < 0 {
		frames = 0
	}
	return Status{kind: statusSleep, frames: frames}
}

// WaitUntil suspends until pred is true. The predicate is re-polled once
// per tick at the task's resume point, before that tick's queued spawns
// apply.
func WaitUntil(pred func(*Context) bool) Status {
	return Status{kind: statusUntil, pred: pred}
}
