package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/danmaku/pattern"
)

// Tengo-scripted behaviors. A behavior script defines
//
//	update := func(e, state) { ... }
//
// which is invoked once per resumption with an engine module `e` and a
// persistent `state` map, and returns the number of frames to wait before
// the next resumption. Returning anything that is not an int finishes the
// task. The dispatch preamble below is appended at compile time so the
// compiled program leaves __wait/__done behind for the harness to read.
const tengoDispatch = `
__out := update(__engine, __state)
__wait := 0
__done := false
if is_int(__out) {
    __wait = __out
} else {
    __done = true
}
`

// TengoBehavior is a compiled behavior script prototype. Each task gets its
// own clone of the compiled program and its own state map.
type TengoBehavior struct {
	name     string
	compiled *tengo.Compiled
}

// CompileTengo compiles behavior source. Compile errors are content bugs
// and surface at load time.
func CompileTengo(name string, src []byte) (*TengoBehavior, error) {
	full := make([]byte, 0, len(src)+len(tengoDispatch)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, []byte(tengoDispatch)...)

	s := tengo.NewScript(full)
	s.SetImports(stdlib.GetModuleMap("math", "rand", "fmt"))
	if err := s.Add("__engine", map[string]interface{}{}); err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	if err := s.Add("__state", map[string]interface{}{}); err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &TengoBehavior{name: name, compiled: compiled}, nil
}

// Factory returns a BehaviorFactory for registry binding.
func (b *TengoBehavior) Factory() BehaviorFactory {
	return func() Routine {
		return &tengoRoutine{
			name:     b.name,
			compiled: b.compiled.Clone(),
			state:    &tengo.Map{Value: map[string]tengo.Object{}},
		}
	}
}

type tengoRoutine struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	engine   *tengo.Map
}

func (t *tengoRoutine) Tick(ctx *Context) Status {
	if t.engine == nil {
		t.engine = &tengo.Map{Value: engineModule(ctx)}
	}
	if err := t.compiled.Set("__engine", t.engine); err != nil {
		panic(fmt.Errorf("tengo %s: %w", t.name, err))
	}
	if err := t.compiled.Set("__state", t.state); err != nil {
		panic(fmt.Errorf("tengo %s: %w", t.name, err))
	}
	if err := t.compiled.Run(); err != nil {
		panic(fmt.Errorf("tengo %s: %w", t.name, err))
	}
	if v := t.compiled.Get("__done"); v != nil && v.Bool() {
		return Done()
	}
	wait := 0
	if v := t.compiled.Get("__wait"); v != nil {
		wait = v.Int()
	}
	return Wait(wait)
}

// engineModule exposes the Context primitives to scripts.
func engineModule(ctx *Context) map[string]tengo.Object {
	return map[string]tengo.Object{
		"fire": userFunc("fire", func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := argXY(args, 0)
			if err != nil {
				return nil, err
			}
			speed, err := argFloat(args, 2)
			if err != nil {
				return nil, err
			}
			angle, err := argFloat(args, 3)
			if err != nil {
				return nil, err
			}
			arch, err := argString(args, 4)
			if err != nil {
				return nil, err
			}
			ctx.Fire(x, y, speed, angle, arch, nil)
			return tengo.UndefinedValue, nil
		}),
		"fire_aimed": userFunc("fire_aimed", func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := argXY(args, 0)
			if err != nil {
				return nil, err
			}
			speed, err := argFloat(args, 2)
			if err != nil {
				return nil, err
			}
			arch, err := argString(args, 3)
			if err != nil {
				return nil, err
			}
			ctx.FireAimed(x, y, speed, arch, nil)
			return tengo.UndefinedValue, nil
		}),
		"fire_ring": userFunc("fire_ring", func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := argXY(args, 0)
			if err != nil {
				return nil, err
			}
			count, err := argInt(args, 2)
			if err != nil {
				return nil, err
			}
			speed, err := argFloat(args, 3)
			if err != nil {
				return nil, err
			}
			start, err := argFloat(args, 4)
			if err != nil {
				return nil, err
			}
			arch, err := argString(args, 5)
			if err != nil {
				return nil, err
			}
			FireRing(ctx, x, y, count, speed, start, arch, nil)
			return tengo.UndefinedValue, nil
		}),
		"fire_fan": userFunc("fire_fan", func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := argXY(args, 0)
			if err != nil {
				return nil, err
			}
			count, err := argInt(args, 2)
			if err != nil {
				return nil, err
			}
			spread, err := argFloat(args, 3)
			if err != nil {
				return nil, err
			}
			speed, err := argFloat(args, 4)
			if err != nil {
				return nil, err
			}
			arch, err := argString(args, 5)
			if err != nil {
				return nil, err
			}
			FireFan(ctx, x, y, count, spread, speed, arch, nil)
			return tengo.UndefinedValue, nil
		}),
		"owner_pos": userFunc("owner_pos", func(args ...tengo.Object) (tengo.Object, error) {
			x, y, _ := ctx.OwnerPos()
			return floatPair(x, y), nil
		}),
		"player_pos": userFunc("player_pos", func(args ...tengo.Object) (tengo.Object, error) {
			x, y := ctx.PlayerPos()
			return floatPair(x, y), nil
		}),
		"angle_to_player": userFunc("angle_to_player", func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := argXY(args, 0)
			if err != nil {
				return nil, err
			}
			px, py := ctx.PlayerPos()
			return &tengo.Float{Value: pattern.AngleTo(x, y, px, py)}, nil
		}),
		"set_velocity": userFunc("set_velocity", func(args ...tengo.Object) (tengo.Object, error) {
			vx, vy, err := argXY(args, 0)
			if err != nil {
				return nil, err
			}
			ctx.SetOwnerVelocity(vx, vy)
			return tengo.UndefinedValue, nil
		}),
		"set_position": userFunc("set_position", func(args ...tengo.Object) (tengo.Object, error) {
			x, y, err := argXY(args, 0)
			if err != nil {
				return nil, err
			}
			ctx.SetOwnerPosition(x, y)
			return tengo.UndefinedValue, nil
		}),
		"enemies_alive": userFunc("enemies_alive", func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Int{Value: int64(ctx.EnemiesAlive())}, nil
		}),
		"elapsed": userFunc("elapsed", func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Int{Value: int64(ctx.Elapsed())}, nil
		}),
		"rand": userFunc("rand", func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: ctx.Rand.Float64()}, nil
		}),
	}
}

func userFunc(name string, fn tengo.CallableFunc) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: fn}
}

func floatPair(x, y float64) tengo.Object {
	return &tengo.ImmutableArray{Value: []tengo.Object{
		&tengo.Float{Value: x},
		&tengo.Float{Value: y},
	}}
}

func argFloat(args []tengo.Object, i int) (float64, error) {
	if i >= len(args) {
		return 0, tengo.ErrWrongNumArguments
	}
	f, ok := tengo.ToFloat64(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: fmt.Sprintf("arg%d", i), Expected: "float"}
	}
	return f, nil
}

func argInt(args []tengo.Object, i int) (int, error) {
	if i >= len(args) {
		return 0, tengo.ErrWrongNumArguments
	}
	n, ok := tengo.ToInt(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: fmt.Sprintf("arg%d", i), Expected: "int"}
	}
	return n, nil
}

func argString(args []tengo.Object, i int) (string, error) {
	if i >= len(args) {
		return "", tengo.ErrWrongNumArguments
	}
	s, ok := tengo.ToString(args[i])
	if !ok {
		return "", tengo.ErrInvalidArgumentType{Name: fmt.Sprintf("arg%d", i), Expected: "string"}
	}
	return s, nil
}

func argXY(args []tengo.Object, i int) (float64, float64, error) {
	x, err := argFloat(args, i)
	if err != nil {
		return 0, 0, err
	}
	y, err := argFloat(args, i+1)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
