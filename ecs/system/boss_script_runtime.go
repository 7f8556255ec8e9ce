package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/prefabs"
)

// bossScriptRuntime runs a tengo ambient script. The script defines
// `ambient := func(engine) {...}` and is called once per ambient tick.
type bossScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	failed     bool

	// set for the duration of one call
	ambient *boss.Ambient
}

const bossAmbientDispatchScript = `
if is_callable(ambient) {
	ambient(__engine)
}
`

func newBossScriptRuntime(path string) (*bossScriptRuntime, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + bossAmbientDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &bossScriptRuntime{scriptPath: path, compiled: compiled}, nil
}

// Ambient implements boss.AmbientHook. A script that errors is logged once
// and disabled.
func (rt *bossScriptRuntime) Ambient(a *boss.Ambient) {
	if rt == nil || rt.compiled == nil || rt.failed || a == nil {
		return
	}
	rt.ambient = a
	defer func() { rt.ambient = nil }()

	if err := rt.run(buildBossScriptEngine(rt)); err != nil {
		rt.failed = true
		log.Printf("BossScript: %s: %v", rt.scriptPath, err)
	}
}

func (rt *bossScriptRuntime) run(engine *tengo.ImmutableMap) error {
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildBossScriptEngine(rt *bossScriptRuntime) *tengo.ImmutableMap {
	enc := rt.ambient.Encounter
	values := map[string]tengo.Object{
		"tier":      &tengo.Int{Value: int64(enc.Tier)},
		"elapsed":   &tengo.Int{Value: int64(enc.Elapsed)},
		"phase":     &tengo.Int{Value: int64(enc.Phase)},
		"frame":     &tengo.Int{Value: int64(enc.FrameTimer)},
		"state":     &tengo.String{Value: enc.State.String()},
		"health":    &tengo.Float{Value: enc.HealthFraction()},
		"enraged":   boolObject(enc.Enraged),
		"authority": boolObject(rt.ambient.Host.IsAuthority()),
		"x":         &tengo.Float{Value: rt.ambient.Position.X},
		"y":         &tengo.Float{Value: rt.ambient.Position.Y},
	}

	values["effect"] = &tengo.UserFunction{Name: "effect", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if rt.ambient == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		kind, ok := boss.ParseEffectKind(objectAsString(args[0]))
		if !ok {
			return tengo.FalseValue, nil
		}
		intensity := 1.0
		if len(args) > 1 {
			intensity = objectAsFloat(args[1], intensity)
		}
		rt.ambient.Host.PlayEffect(kind, rt.ambient.Position, intensity)
		return tengo.TrueValue, nil
	}}

	values["sound"] = &tengo.UserFunction{Name: "sound", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if rt.ambient == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		kind, ok := boss.ParseSoundKind(objectAsString(args[0]))
		if !ok {
			return tengo.FalseValue, nil
		}
		pitch := 0.0
		if len(args) > 1 {
			pitch = objectAsFloat(args[1], pitch)
		}
		rt.ambient.Host.PlaySound(kind, rt.ambient.Position, pitch)
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		log.Printf("BossScript: %s: %s", rt.scriptPath, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(o tengo.Object) string {
	if s, ok := tengo.ToString(o); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func objectAsFloat(o tengo.Object, fallback float64) float64 {
	if f, ok := tengo.ToFloat64(o); ok {
		return f
	}
	return fallback
}
