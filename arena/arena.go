// Package arena assembles a headless boss fight: an ECS world with physics,
// the boss, challenger targets and a camera, stepped at a fixed tick.
package arena

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
	"github.com/milk9111/maestro/ecs/system"
	"github.com/milk9111/maestro/prefabs"
)

// DefaultSpec is the arena prefab used when Options.Spec is empty.
const DefaultSpec = "arena.yaml"

const bossRadius = 48.0

var ErrInvalidArena = errors.New("arena: invalid spec")

type Options struct {
	Boss      boss.Kind
	Seed      int64
	Authority bool
	Spec      string
	Verbose   bool
}

// OutcomeTimeout is reported when the boss is still present after Run.
const OutcomeTimeout = "timeout"

// Summary is the result of a fight.
type Summary struct {
	Boss        string         `json:"boss"`
	Outcome     string         `json:"outcome"`
	Ticks       int            `json:"ticks"`
	Attacks     map[string]int `json:"attacks"`
	States      map[string]int `json:"state_ticks"`
	Transitions int            `json:"state_changes"`
	PeakTier    int            `json:"peak_tier"`
	Effects     int            `json:"effects"`
	Sounds      int            `json:"sounds"`
	TargetsDown []string       `json:"targets_down,omitempty"`
	Final       boss.Snapshot  `json:"final"`
}

type Arena struct {
	opts      Options
	spec      prefabs.ArenaSpec
	world     *ecs.World
	scheduler *ecs.Scheduler
	bosses    *system.BossSystem

	bossEntity ecs.Entity
	camera     ecs.Entity
	controller *boss.Controller

	tick    int
	summary Summary
}

// New builds a fight for opts.Boss from the arena prefab.
func New(catalog *boss.Catalog, opts Options) (*Arena, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidArena)
	}
	if _, err := catalog.Profile(opts.Boss); err != nil {
		return nil, err
	}
	name := opts.Spec
	if name == "" {
		name = DefaultSpec
	}
	spec, err := prefabs.LoadArenaSpec(name)
	if err != nil {
		return nil, err
	}
	if err := validate(spec); err != nil {
		return nil, err
	}

	a := &Arena{
		opts:  opts,
		spec:  spec,
		world: ecs.NewWorld(),
		summary: Summary{
			Boss:    opts.Boss.String(),
			Attacks: map[string]int{},
			States:  map[string]int{},
		},
	}
	a.world.SetPhysicsWorld(ecs.NewPhysicsWorld(1 - spec.Damping))

	a.bosses = system.NewBossSystem(catalog, rand.New(rand.NewSource(opts.Seed)), opts.Authority)
	a.bosses.SetVerbose(opts.Verbose)
	a.scheduler = ecs.NewScheduler(
		system.NewTargetMotionSystem(spec.Width, spec.Height),
		system.NewChallengerSystem(),
		a.bosses,
		system.NewProjectileSystem(spec.Width, spec.Height),
		system.NewDamageSystem(),
		system.NewDamageKnockbackSystem(),
		system.NewPhysicsSystem(),
		system.NewInvulnerableSystem(),
		system.NewCooldownSystem(),
		system.NewTTLSystem(),
		system.NewCameraSystem(rand.New(rand.NewSource(opts.Seed+1))),
	)

	if err := a.populate(); err != nil {
		return nil, err
	}
	return a, nil
}

func validate(spec prefabs.ArenaSpec) error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("%w: %s: size %vx%v", ErrInvalidArena, spec.Name, spec.Width, spec.Height)
	}
	if spec.Damping < 0 || spec.Damping >= 1 {
		return fmt.Errorf("%w: %s: damping %v", ErrInvalidArena, spec.Name, spec.Damping)
	}
	for _, t := range spec.Targets {
		if t.Health <= 0 {
			return fmt.Errorf("%w: %s: target %q health %v", ErrInvalidArena, spec.Name, t.Name, t.Health)
		}
		if _, err := parseMotion(t.Motion); err != nil {
			return fmt.Errorf("%w: %s: target %q: %v", ErrInvalidArena, spec.Name, t.Name, err)
		}
	}
	return nil
}

func parseMotion(s string) (component.MotionMode, error) {
	switch s {
	case "", "hold":
		return component.MotionHold, nil
	case "orbit":
		return component.MotionOrbit, nil
	case "flee":
		return component.MotionFlee, nil
	}
	return 0, fmt.Errorf("unknown motion %q", s)
}

func (a *Arena) populate() error {
	w := a.world
	pw := w.PhysicsWorld()
	bossPos := cp.Vector{X: a.spec.Boss.X, Y: a.spec.Boss.Y}

	a.camera = ecs.CreateEntity(w)
	if err := ecs.Add(w, a.camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, a.camera, component.CameraComponent.Kind(), &component.Camera{}); err != nil {
		return err
	}

	a.bossEntity = ecs.CreateEntity(w)
	body := pw.AddBody(a.bossEntity, bossPos, bossRadius, ecs.BodyKinematic)
	if err := errors.Join(
		ecs.Add(w, a.bossEntity, component.TransformComponent.Kind(), &component.Transform{X: bossPos.X, Y: bossPos.Y}),
		ecs.Add(w, a.bossEntity, component.BossComponent.Kind(), &component.Boss{Kind: a.opts.Boss, Radius: bossRadius}),
		ecs.Add(w, a.bossEntity, component.HealthComponent.Kind(), component.NewHealth(1)),
		ecs.Add(w, a.bossEntity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Radius: bossRadius}),
	); err != nil {
		return err
	}

	for _, ts := range a.spec.Targets {
		mode, _ := parseMotion(ts.Motion)
		pos := cp.Vector{X: ts.Position.X, Y: ts.Position.Y}
		motion := &component.TargetMotion{Mode: mode, Speed: ts.Speed, Orbit: ts.Orbit, Center: pos}
		if mode == component.MotionOrbit {
			motion.Center = bossPos
			offset := pos.Sub(bossPos)
			motion.Angle = math.Atan2(offset.Y, offset.X)
			if motion.Orbit <= 0 {
				motion.Orbit = offset.Length()
			}
		}

		e := ecs.CreateEntity(w)
		radius := ts.Radius
		if radius <= 0 {
			radius = 12
		}
		tb := pw.AddBody(e, pos, radius, ecs.BodyDynamic)
		hp := component.NewHealth(ts.Health)
		if err := errors.Join(
			ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}),
			ecs.Add(w, e, component.TargetComponent.Kind(), &component.Target{Name: ts.Name, Radius: radius, IFrames: ts.IFrames}),
			ecs.Add(w, e, component.HealthComponent.Kind(), hp),
			ecs.Add(w, e, component.TargetMotionComponent.Kind(), motion),
			ecs.Add(w, e, component.ChallengerComponent.Kind(), &component.Challenger{Damage: ts.Damage, Interval: ts.Interval, Range: ts.Range}),
			ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: tb, Radius: radius, Dynamic: true}),
		); err != nil {
			return err
		}
	}
	log.Printf("arena: %s: %s with %d targets", a.spec.Name, a.opts.Boss, len(a.spec.Targets))
	return nil
}

// Step advances the fight by one tick and returns the events it produced.
func (a *Arena) Step() []ecs.Event {
	if a.Done() {
		return nil
	}
	a.scheduler.Update(a.world)
	a.tick++

	if a.controller == nil {
		if b, ok := ecs.Get(a.world, a.bossEntity, component.BossComponent.Kind()); ok {
			a.controller = b.Controller
		}
	}
	events := a.world.Events().Drain()
	a.record(events)
	return events
}

func (a *Arena) record(events []ecs.Event) {
	s := &a.summary
	s.Ticks = a.tick
	for _, evt := range events {
		switch data := evt.Data.(type) {
		case component.AttackRecord:
			s.Attacks[data.ID.String()]++
		case component.StateRecord:
			s.Transitions++
		case component.EffectRecord:
			s.Effects++
		case component.SoundRecord:
			s.Sounds++
		case component.TargetDownRecord:
			s.TargetsDown = append(s.TargetsDown, data.Name)
		}
	}
	if a.controller == nil {
		return
	}
	enc := a.controller.Encounter()
	s.States[enc.State.String()]++
	s.PeakTier = max(s.PeakTier, enc.Tier)
	s.Final = enc.Snapshot()
}

// Run steps until the boss is removed or maxTicks more ticks have passed.
func (a *Arena) Run(maxTicks int) Summary {
	for i := 0; i < maxTicks && !a.Done(); i++ {
		a.Step()
	}
	return a.Summary()
}

func (a *Arena) Summary() Summary {
	s := a.summary
	s.Outcome = OutcomeTimeout
	if a.Done() {
		s.Outcome = a.controller.Encounter().Reason.String()
	}
	return s
}

// Done reports whether the boss has been removed.
func (a *Arena) Done() bool {
	return a.controller != nil && a.controller.IsDead()
}

// Controller returns the boss controller, nil before the first tick.
func (a *Arena) Controller() *boss.Controller { return a.controller }

func (a *Arena) World() *ecs.World { return a.world }

func (a *Arena) Spec() prefabs.ArenaSpec { return a.spec }

func (a *Arena) Camera() ecs.Entity { return a.camera }

func (a *Arena) Tick() int { return a.tick }
