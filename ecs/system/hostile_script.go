package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/prefabs"
)

// Scripts define `update := func(engine, state) {...}`; the dispatch line is
// appended before compiling.
const hostileScriptDispatch = `
update(__engine, __state)
`

type hostileScript struct {
	compiled *tengo.Compiled
	state    *tengo.Map
}

type scriptCache struct {
	compiled map[string]*tengo.Compiled
	entities map[ecs.Entity]*hostileScript
}

func newScriptCache() *scriptCache {
	return &scriptCache{
		compiled: map[string]*tengo.Compiled{},
		entities: map[ecs.Entity]*hostileScript{},
	}
}

func (c *scriptCache) get(e ecs.Entity, path string) (*hostileScript, error) {
	if rt, ok := c.entities[e]; ok {
		return rt, nil
	}

	base, ok := c.compiled[path]
	if !ok {
		src, err := prefabs.LoadScript(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		script := tengo.NewScript(append(src, []byte(hostileScriptDispatch)...))
		script.SetImports(stdlib.GetModuleMap("math"))
		_ = script.Add("__engine", map[string]any{})
		_ = script.Add("__state", map[string]any{})
		base, err = script.Compile()
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", path, err)
		}
		c.compiled[path] = base
	}

	rt := &hostileScript{
		compiled: base.Clone(),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	c.entities[e] = rt
	return rt, nil
}

// run executes one tick of h's script. Dead entities' runtimes are pruned
// lazily.
func (c *scriptCache) run(w *ecs.World, e ecs.Entity, h *component.Hostile, t *component.Transform, player cp.Vector) error {
	for ent := range c.entities {
		if !ecs.IsAlive(w, ent) {
			delete(c.entities, ent)
		}
	}

	rt, err := c.get(e, h.Script)
	if err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", buildHostileEngine(w, h, t, player)); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildHostileEngine(w *ecs.World, h *component.Hostile, t *component.Transform, player cp.Vector) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vectorObject(t.Pos), nil
	}}

	values["player_position"] = &tengo.UserFunction{Name: "player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vectorObject(player), nil
	}}

	values["distance_to_player"] = &tengo.UserFunction{Name: "distance_to_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: t.Pos.Distance(player)}, nil
	}}

	values["range"] = &tengo.UserFunction{Name: "range", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: h.Attack.Range}, nil
	}}

	values["cooldown"] = &tengo.UserFunction{Name: "cooldown", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(h.Attack.Remaining)}, nil
	}}

	values["reset_cooldown"] = &tengo.UserFunction{Name: "reset_cooldown", Value: func(args ...tengo.Object) (tengo.Object, error) {
		h.Attack.Remaining = h.Attack.CooldownFrames
		return tengo.UndefinedValue, nil
	}}

	values["shoot"] = &tengo.UserFunction{Name: "shoot", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		if hostileShoot(w, h, t, cp.Vector{X: x, Y: y}) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vectorObject(v cp.Vector) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: v.X}, &tengo.Float{Value: v.Y}}}
}
