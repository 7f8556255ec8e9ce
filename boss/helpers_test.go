package boss

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

type fakeHost struct {
	authority bool
	target    *TargetRef

	spawns   []Projectile
	effects  map[EffectKind]int
	sounds   map[SoundKind]int
	shakes   int
	areas    int
	despawns int
}

func newFakeHost(target *cp.Vector) *fakeHost {
	h := &fakeHost{
		authority: true,
		effects:   make(map[EffectKind]int),
		sounds:    make(map[SoundKind]int),
	}
	if target != nil {
		h.setTarget(*target)
	}
	return h
}

func (h *fakeHost) setTarget(pos cp.Vector) {
	h.target = &TargetRef{ID: 1, Position: pos}
}

func (h *fakeHost) IsAuthority() bool { return h.authority }

func (h *fakeHost) SpawnProjectile(p Projectile) ProjectileHandle {
	h.spawns = append(h.spawns, p)
	return ProjectileHandle(len(h.spawns))
}

func (h *fakeHost) PlayEffect(kind EffectKind, _ cp.Vector, _ float64) { h.effects[kind]++ }
func (h *fakeHost) PlaySound(kind SoundKind, _ cp.Vector, _ float64)   { h.sounds[kind]++ }
func (h *fakeHost) ShakeScreen(float64, int)                           { h.shakes++ }
func (h *fakeHost) ApplyAreaDamage(cp.Vector, float64, float64, float64) {
	h.areas++
}
func (h *fakeHost) Despawn() { h.despawns++ }

func (h *fakeHost) FindNearestValidTarget(origin cp.Vector, maxRange float64) (TargetRef, bool) {
	if h.target == nil {
		return TargetRef{}, false
	}
	if maxRange > 0 && origin.Distance(h.target.Position) > maxRange {
		return TargetRef{}, false
	}
	return *h.target, true
}

// fakeBody only moves when integrate is set.
type fakeBody struct {
	pos, vel  cp.Vector
	integrate bool
}

func (b *fakeBody) Position() cp.Vector     { return b.pos }
func (b *fakeBody) SetPosition(p cp.Vector) { b.pos = p }
func (b *fakeBody) Velocity() cp.Vector     { return b.vel }
func (b *fakeBody) SetVelocity(v cp.Vector) { b.vel = v }

func tickN(c *Controller, h *fakeHost, b *fakeBody, n int) {
	for i := 0; i < n; i++ {
		c.Tick(h, b)
		if b.integrate {
			b.pos = b.pos.Add(b.vel)
		}
	}
}

func testProfile() *Profile {
	return &Profile{
		Kind:       KindHeraldOfFate,
		HealthMax:  1000,
		Defense:    1,
		BaseDamage: 10,
		Tiers:      TierThresholds{0.6, 0.3},
		Aggression: AggressionCurve{
			RampTicks:     600,
			SpeedPerLevel: 0.5,
			SpeedPerTier:  0.1,
			RatePerLevel:  0.4,
			RatePerTier:   0.1,
			CooldownFloor: 0.4,
		},
		Pool: Pool{
			Base:    []AttackID{AttackCosmicBolts, AttackDestinyDash, AttackConstellationRing},
			Default: AttackCosmicBolts,
		},
		TelegraphFloor:     5,
		PostAttackCooldown: 20,
		InitialDelay:       10,
		SpawnTicks:         10,
		MoveSpeed:          3,
		RepositionEvery:    3,
		RepositionTicks:    20,
		Engagement: EngagementConfig{
			EnrageDistance:       800,
			SustainTicks:         180,
			DecayPerTick:         1,
			HardTeleportDistance: 1600,
			VolleyTicks:          20,
			VolleyCount:          2,
		},
		TargetRange:  5000,
		DespawnTicks: 60,
		DespawnRise:  2,
		Death:        DeathConfig{BuildupTicks: 30, ClimaxTicks: 10, FadeTicks: 20},
	}
}

// testMoves gives every test attack the same timing and counts Fire calls.
func testMoves(timing Timing, fired *int) Choreography {
	moves := make(Choreography)
	for _, id := range []AttackID{AttackCosmicBolts, AttackDestinyDash, AttackConstellationRing, AttackFinaleOfFate} {
		moves[id] = &AttackDef{
			ID:     id,
			Timing: timing,
			Fire: func(a *Action) {
				*fired++
				a.Spawn(Projectile{Kind: ProjectileBolt, Origin: a.Origin(), Velocity: a.Aim().Mult(5)})
			},
		}
	}
	return moves
}

var defaultTestTiming = Timing{Telegraph: 10, Waves: 2, WaveTicks: 5, Recovery: 5, DamageMul: 1}

func newTestController(p *Profile, fired *int) *Controller {
	if fired == nil {
		fired = new(int)
	}
	return NewController(p, testMoves(defaultTestTiming, fired), rand.New(rand.NewSource(7)))
}
