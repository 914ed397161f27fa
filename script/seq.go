package script

import "github.com/milk9111/danmaku/ecs"

// Seq interprets a step list with an explicit program counter, advancing
// through consecutive immediate steps within one resumption and suspending
// at Sleep/Until steps. Steps reset themselves on completion so Repeat and
// Forever can re-run them.
type Seq struct {
	steps []Step
	pc    int
}

// NewSeq builds a sequence routine from steps.
func NewSeq(steps ...Step) *Seq {
	return &Seq{steps: steps}
}

func (s *Seq) Tick(ctx *Context) Status {
	for {
		if s.pc >= len(s.steps) {
			return Done()
		}
		advance, st := s.steps[s.pc].tick(ctx)
		if advance {
			s.pc++
			continue
		}
		return st
	}
}

func (s *Seq) reset() {
	s.pc = 0
}

// Step is one instruction in a Seq.
type Step interface {
	tick(ctx *Context) (advance bool, st Status)
}

type doStep struct {
	fn func(*Context)
}

// Do runs fn and continues to the next step within the same resumption.
func Do(fn func(*Context)) Step {
	return &doStep{fn: fn}
}

func (s *doStep) tick(ctx *Context) (bool, Status) {
	s.fn(ctx)
	return true, Status{}
}

type sleepStep struct {
	frames  int
	waiting bool
}

// Sleep suspends the sequence for frames ticks.
func Sleep(frames int) Step {
	return &sleepStep{frames: frames}
}

func (s *sleepStep) tick(ctx *Context) (bool, Status) {
	if !s.waiting {
		s.waiting = true
		return false, Wait(s.frames)
	}
	s.waiting = false
	return true, Status{}
}

type untilStep struct {
	pred    func(*Context) bool
	waiting bool
}

// Until suspends the sequence until pred holds.
func Until(pred func(*Context) bool) Step {
	return &untilStep{pred: pred}
}

func (s *untilStep) tick(ctx *Context) (bool, Status) {
	if !s.waiting {
		s.waiting = true
		return false, WaitUntil(s.pred)
	}
	s.waiting = false
	return true, Status{}
}

type repeatStep struct {
	count int
	inner *Seq
	i     int
}

// Repeat runs the inner steps count times.
func Repeat(count int, steps ...Step) Step {
	return &repeatStep{count: count, inner: NewSeq(steps...)}
}

func (s *repeatStep) tick(ctx *Context) (bool, Status) {
	for s.i < s.count {
		st := s.inner.Tick(ctx)
		if st.kind != statusDone {
			return false, st
		}
		s.inner.reset()
		s.i++
	}
	s.i = 0
	return true, Status{}
}

type foreverStep struct {
	inner *Seq
}

// Forever loops the inner steps until the task is stopped externally.
func Forever(steps ...Step) Step {
	return &foreverStep{inner: NewSeq(steps...)}
}

func (s *foreverStep) tick(ctx *Context) (bool, Status) {
	st := s.inner.Tick(ctx)
	if st.kind == statusDone {
		s.inner.reset()
		return false, Wait(0)
	}
	return false, st
}

type moveToStep struct {
	x, y    float64
	frames  int
	waiting bool
}

// MoveTo glides the owner to (x, y) over frames ticks by setting its
// velocity, then stops it.
func MoveTo(x, y float64, frames int) Step {
	return &moveToStep{x: x, y: y, frames: frames}
}

func (s *moveToStep) tick(ctx *Context) (bool, Status) {
	if !s.waiting {
		ox, oy, ok := ctx.OwnerPos()
		if !ok {
			return true, Status{}
		}
		frames := s.frames
		if frames < 1 {
			frames = 1
		}
		f := float64(frames)
		ctx.SetOwnerVelocity(
			(s.x-ox)/f*ecs.TicksPerSecond,
			(s.y-oy)/f*ecs.TicksPerSecond,
		)
		s.waiting = true
		return false, Wait(s.frames)
	}
	s.waiting = false
	ctx.SetOwnerVelocity(0, 0)
	return true, Status{}
}
