package script

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/danmaku/ecs"
)

// Task is one scheduled routine: its suspended continuation plus the wait
// condition blocking it. Tasks referencing a removed owner self-terminate
// silently.
type Task struct {
	Name  string
	Owner ecs.Entity

	routine Routine
	ctx     *Context
	sleep   int
	pred    func(*Context) bool
	done    bool
}

// Done reports whether the task has finished or been stopped.
func (t *Task) Done() bool {
	return t.done
}

// Runner owns every live task. Tasks resume once per tick in registration
// order; tasks registered during a tick become eligible the next tick. A
// routine that panics is removed and logged as a task fault without
// disturbing its siblings.
type Runner struct {
	regs    *Registries
	log     logrus.FieldLogger
	tasks   []*Task
	effects []func(*ecs.World)
}

func NewRunner(regs *Registries, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{regs: regs, log: log}
}

// Registries returns the content registries tasks script against.
func (r *Runner) Registries() *Registries {
	return r.regs
}

// Start registers a routine. Owner may be zero for stage-level scripts. The
// task's RNG is seeded from the current tick so replays are deterministic.
func (r *Runner) Start(w *ecs.World, owner ecs.Entity, name string, routine Routine) *Task {
	t := &Task{
		Name:    name,
		Owner:   owner,
		routine: routine,
	}
	t.ctx = &Context{
		World:  w,
		Owner:  owner,
		Rand:   rand.New(rand.NewSource(int64(w.Tick()) + int64(len(r.tasks)))),
		runner: r,
	}
	r.tasks = append(r.tasks, t)
	return t
}

// Stop cancels a task. Entities it spawned persist independently.
func (r *Runner) Stop(t *Task) {
	if t != nil {
		t.done = true
	}
}

// Active returns the number of unfinished tasks.
func (r *Runner) Active() int {
	n := 0
	for _, t := range r.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// Update resumes this tick's tasks and then applies all queued side effects
// in call order. The snapshot taken up front keeps "this tick's tasks"
// well-defined while tasks spawn tasks.
func (r *Runner) Update(w *ecs.World) {
	current := r.tasks[:len(r.tasks):len(r.tasks)]
	for _, t := range current {
		if t.done {
			continue
		}
		if t.Owner.Valid() && !w.IsAlive(t.Owner) {
			t.done = true
			continue
		}
		if t.sleep > 0 {
			t.sleep--
			continue
		}
		if t.pred != nil {
			if !t.pred(t.ctx) {
				continue
			}
			t.pred = nil
		}
		r.resume(t)
	}

	effects := r.effects
	r.effects = nil
	for _, fn := range effects {
		fn(w)
	}

	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if !t.done {
			kept = append(kept, t)
		}
	}
	r.tasks = kept
}

func (r *Runner) resume(t *Task) {
	defer func() {
		if rec := recover(); rec != nil {
			t.done = true
			r.log.WithFields(logrus.Fields{
				"task":  t.Name,
				"owner": t.Owner.String(),
			}).Errorf("task fault: %v", rec)
		}
	}()

	st := t.routine.Tick(t.ctx)
	switch st.kind {
	case statusDone:
		t.done = true
	case statusSleep:
		t.sleep = st.frames
	case statusUntil:
		t.pred = st.pred
	}
}

func (r *Runner) queue(fn func(*ecs.World)) {
	r.effects = append(r.effects, fn)
}
