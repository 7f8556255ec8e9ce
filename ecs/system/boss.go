package system

import (
	"log"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

// areaKnockback is the knockback strength of boss area damage.
const areaKnockback = 1.5

// BossSystem drives every boss entity's encounter controller. Controllers are
// created from the catalog the first time an entity is seen.
type BossSystem struct {
	catalog   *boss.Catalog
	rng       *rand.Rand
	authority bool
	verbose   bool

	runtimes map[ecs.Entity]*bossRuntime
}

type bossRuntime struct {
	host   *worldHost
	body   *bossBody
	script *bossScriptRuntime
}

func NewBossSystem(catalog *boss.Catalog, rng *rand.Rand, authority bool) *BossSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &BossSystem{
		catalog:   catalog,
		rng:       rng,
		authority: authority,
		runtimes:  map[ecs.Entity]*bossRuntime{},
	}
}

// SetCatalog swaps the catalog used for bosses spawned from now on.
func (s *BossSystem) SetCatalog(c *boss.Catalog) {
	if c != nil {
		s.catalog = c
	}
}

func (s *BossSystem) SetVerbose(v bool) { s.verbose = v }

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil || s.catalog == nil {
		return
	}

	ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, b *component.Boss) {
		if b.Controller == nil {
			ctl, err := s.catalog.NewController(b.Kind, s.rng)
			if err != nil {
				log.Printf("BossSystem: entity=%s: %v", e, err)
				ecs.DestroyEntity(w, e)
				return
			}
			b.Controller = ctl
		}

		rt := s.runtime(w, e, b)
		b.Controller.Tick(rt.host, rt.body)
		if b.Controller.IsDead() {
			delete(s.runtimes, e)
			return
		}
		rt.body.integrate()

		if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			enc := b.Controller.Encounter()
			hp.Max = enc.HealthMax
			hp.SetCurrentHP(enc.Health)
		}
	})

	for e := range s.runtimes {
		if !ecs.IsAlive(w, e) {
			delete(s.runtimes, e)
		}
	}
}

func (s *BossSystem) runtime(w *ecs.World, e ecs.Entity, b *component.Boss) *bossRuntime {
	if rt, ok := s.runtimes[e]; ok {
		return rt
	}

	rt := &bossRuntime{
		host: &worldHost{w: w, e: e, authority: s.authority, radius: b.Radius},
		body: &bossBody{w: w, e: e},
	}

	script := b.Script
	if script == "" {
		script = b.Controller.Profile().AmbientScript
	}
	if script != "" {
		sr, err := newBossScriptRuntime(script)
		if err != nil {
			log.Printf("BossSystem: entity=%s ambient script %q: %v", e, script, err)
		} else {
			rt.script = sr
			b.Controller.SetAmbient(sr)
		}
	}

	kind := b.Kind
	events := w.Events()
	source := uint64(e)
	b.Controller.SetObserver(boss.Observer{
		OnStateChange: func(from, to boss.State) {
			events.Push(ecs.Event{Type: ecs.EventBossState, Data: component.StateRecord{From: from, To: to, Source: source}})
			if s.verbose {
				log.Printf("BossSystem: %s %s -> %s", kind, from, to)
			}
		},
		OnTierChange: func(from, to int) {
			events.Push(ecs.Event{Type: ecs.EventBossTier, Data: component.TierRecord{From: from, To: to, Source: source}})
			if s.verbose {
				log.Printf("BossSystem: %s tier %d -> %d", kind, from, to)
			}
		},
		OnAttack: func(id boss.AttackID) {
			events.Push(ecs.Event{Type: ecs.EventBossAttack, Data: component.AttackRecord{ID: id, Source: source}})
			if s.verbose {
				log.Printf("BossSystem: %s attack %s", kind, id)
			}
		},
		OnRemoved: func(reason boss.RemovalReason) {
			events.Push(ecs.Event{Type: ecs.EventBossRemoved, Data: component.RemovalRecord{Kind: kind, Reason: reason, Source: source}})
			log.Printf("BossSystem: %s removed (%s)", kind, reason)
		},
	})

	s.runtimes[e] = rt
	return rt
}

// worldHost implements boss.Host on top of the ECS world for one boss.
type worldHost struct {
	w         *ecs.World
	e         ecs.Entity
	authority bool
	radius    float64
}

func (h *worldHost) IsAuthority() bool { return h.authority }

func (h *worldHost) SpawnProjectile(p boss.Projectile) boss.ProjectileHandle {
	if !h.authority {
		return 0
	}
	w := h.w
	e := ecs.CreateEntity(w)
	zone := p.Velocity.X == 0 && p.Velocity.Y == 0
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        p.Origin.X,
		Y:        p.Origin.Y,
		Rotation: math.Atan2(p.Velocity.Y, p.Velocity.X),
	})
	_ = ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Kind:      p.Kind,
		Damage:    p.Damage,
		Knockback: p.Knockback,
		Radius:    p.Radius,
		Owner:     uint64(h.e),
		Zone:      zone,
		Velocity:  p.Velocity,
	})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: max(1, p.Lifetime)})

	if pw := w.PhysicsWorld(); pw != nil {
		if body := pw.AddBody(e, p.Origin, p.Radius, ecs.BodyKinematic); body != nil {
			pw.SetVelocityPerTick(e, p.Velocity)
			_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Radius: p.Radius})
		}
	}
	return boss.ProjectileHandle(e)
}

func (h *worldHost) PlayEffect(kind boss.EffectKind, pos cp.Vector, intensity float64) {
	h.w.Events().Push(ecs.Event{Type: ecs.EventEffect, Data: component.EffectRecord{
		Kind:      kind,
		X:         pos.X,
		Y:         pos.Y,
		Intensity: intensity,
		Source:    uint64(h.e),
	}})
}

func (h *worldHost) PlaySound(kind boss.SoundKind, pos cp.Vector, pitchOffset float64) {
	h.w.Events().Push(ecs.Event{Type: ecs.EventSound, Data: component.SoundRecord{
		Kind:   kind,
		X:      pos.X,
		Y:      pos.Y,
		Pitch:  pitchOffset,
		Source: uint64(h.e),
	}})
}

func (h *worldHost) ShakeScreen(intensity float64, frames int) {
	cam, ok := ecs.First(h.w, component.CameraTagComponent.Kind())
	if !ok || frames <= 0 {
		return
	}
	req, ok := ecs.Get(h.w, cam, component.CameraShakeRequestComponent.Kind())
	if !ok {
		_ = ecs.Add(h.w, cam, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Frames: frames, Intensity: intensity})
		return
	}
	req.Frames = max(req.Frames, frames)
	req.Intensity = max(req.Intensity, intensity)
}

// FindNearestValidTarget returns the closest living target within maxRange.
// A non-positive maxRange means unlimited.
func (h *worldHost) FindNearestValidTarget(origin cp.Vector, maxRange float64) (boss.TargetRef, bool) {
	var (
		best     boss.TargetRef
		bestDist = math.Inf(1)
		found    bool
	)
	pw := h.w.PhysicsWorld()
	ecs.ForEach2(h.w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Target, t *component.Transform) {
		if hp, ok := ecs.Get(h.w, e, component.HealthComponent.Kind()); ok && !hp.IsAlive() {
			return
		}
		d := origin.Distance(t.Vec())
		if maxRange > 0 && d > maxRange {
			return
		}
		if d >= bestDist {
			return
		}
		bestDist = d
		found = true
		best = boss.TargetRef{ID: uint64(e), Position: t.Vec(), Velocity: pw.VelocityPerTick(e)}
	})
	return best, found
}

// ApplyAreaDamage queues damage on every target inside radius. falloff in
// [0,1] scales damage down linearly toward the edge.
func (h *worldHost) ApplyAreaDamage(origin cp.Vector, radius, damage, falloff float64) {
	if !h.authority || radius <= 0 || damage <= 0 {
		return
	}
	falloff = math.Max(0, math.Min(1, falloff))
	ecs.ForEach2(h.w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tg *component.Target, t *component.Transform) {
		d := origin.Distance(t.Vec())
		if d > radius+tg.Radius {
			return
		}
		scale := 1 - falloff*math.Min(1, d/radius)
		QueueDamage(h.w, e, component.DamageEvent{
			Amount:    damage * scale,
			SourceX:   origin.X,
			SourceY:   origin.Y,
			Knockback: areaKnockback,
			Source:    uint64(h.e),
		})
	})
}

func (h *worldHost) Despawn() {
	ecs.DestroyEntity(h.w, h.e)
}

// bossBody implements boss.Body. Without a physics body it integrates its
// own velocity after each tick.
type bossBody struct {
	w   *ecs.World
	e   ecs.Entity
	pos cp.Vector
	vel cp.Vector
}

func (b *bossBody) Position() cp.Vector {
	if t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind()); ok {
		b.pos = t.Vec()
	}
	return b.pos
}

func (b *bossBody) SetPosition(p cp.Vector) {
	b.pos = p
	if t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind()); ok {
		t.Set(p)
	}
	if body, ok := b.w.PhysicsWorld().Body(b.e); ok {
		body.SetPosition(p)
	}
}

func (b *bossBody) Velocity() cp.Vector {
	if _, ok := b.w.PhysicsWorld().Body(b.e); ok {
		return b.w.PhysicsWorld().VelocityPerTick(b.e)
	}
	return b.vel
}

func (b *bossBody) SetVelocity(v cp.Vector) {
	b.vel = v
	b.w.PhysicsWorld().SetVelocityPerTick(b.e, v)
}

func (b *bossBody) integrate() {
	if _, ok := b.w.PhysicsWorld().Body(b.e); ok {
		return
	}
	if t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind()); ok {
		t.X += b.vel.X
		t.Y += b.vel.Y
		b.pos = t.Vec()
	}
}
