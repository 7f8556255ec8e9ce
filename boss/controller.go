package boss

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// AmbientHook runs every non-lockout tick, with or without a target. It is
// cosmetic only.
type AmbientHook interface {
	Ambient(a *Ambient)
}

// AmbientFunc adapts a function to AmbientHook.
type AmbientFunc func(a *Ambient)

func (f AmbientFunc) Ambient(a *Ambient) { f(a) }

// Ambient is the read-only view passed to ambient hooks.
type Ambient struct {
	Encounter Encounter
	Position  cp.Vector
	Host      Host
}

// Controller drives one boss encounter. It is not safe for concurrent use;
// Tick is called once per simulation tick.
type Controller struct {
	enc      Encounter
	profile  *Profile
	moves    Choreography
	timings  map[AttackID]Timing
	rng      *rand.Rand
	ambient  AmbientHook
	observer Observer

	host Host
	body Body
}

// NewController creates an encounter in Spawning at full health. moves is
// shared and never mutated.
func NewController(p *Profile, moves Choreography, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	c := &Controller{
		profile: p,
		moves:   moves,
		timings: make(map[AttackID]Timing, len(p.Timings)),
		rng:     rng,
	}
	for id, over := range p.Timings {
		if def := moves[id]; def != nil {
			c.timings[id] = def.Timing.merge(over)
		}
	}
	c.enc = Encounter{
		State:          StateSpawning,
		Health:         p.HealthMax,
		HealthMax:      p.HealthMax,
		DamageEnabled:  true,
		Stats:          baseMultipliers,
		RepositionSide: 1,
	}
	if p.Ambient != nil {
		c.ambient = p.Ambient
	}
	return c
}

func (c *Controller) Encounter() *Encounter { return &c.enc }
func (c *Controller) Profile() *Profile     { return c.profile }

// SetAmbient replaces the ambient hook. Nil disables it.
func (c *Controller) SetAmbient(h AmbientHook) { c.ambient = h }

func (c *Controller) SetObserver(o Observer) { c.observer = o }

// IsDead reports removal. A dying boss is not dead yet.
func (c *Controller) IsDead() bool { return c.enc.Removed }

// Tick advances the encounter by one tick. Tier and aggression are updated
// before the state handler runs.
func (c *Controller) Tick(host Host, body Body) {
	e := &c.enc
	if e.Removed || host == nil || body == nil {
		return
	}
	c.host, c.body = host, body

	c.checkThresholds()
	switch e.State {
	case StateDying:
		c.tickDeath()
		return
	case StatePhaseTransition, StatePhaseAwakening:
		c.tickTransition()
		return
	}

	c.evaluateTier()
	c.accumulateAggression()

	c.runAmbient()
	if !c.acquireTarget() {
		c.tickLostTarget()
		return
	}
	c.monitorEngagement()

	switch e.State {
	case StateSpawning:
		c.tickSpawning()
	case StateIdle:
		c.tickIdle()
	case StateAttack:
		if c.stepAttack() {
			c.finishAttack()
		}
	case StateReposition:
		c.tickReposition()
	case StateEnraged:
		c.tickEnraged()
	}
}

// ApplyDamage divides amount by defense and subtracts it from health. It
// returns the damage taken, zero while damage is disabled.
func (c *Controller) ApplyDamage(amount float64) float64 {
	e := &c.enc
	if !positive(amount) || e.Removed || e.Dying || !e.DamageEnabled {
		return 0
	}
	defense := c.profile.Defense * e.Stats.Defense
	if defense <= 0 {
		defense = 1
	}
	taken := amount / defense
	if taken > e.Health {
		taken = e.Health
	}
	e.Health -= taken
	c.checkThresholds()
	return taken
}

// Heal restores health up to max. The tier never drops.
func (c *Controller) Heal(amount float64) {
	e := &c.enc
	if !positive(amount) || e.Removed || e.Dying {
		return
	}
	e.Health = min(e.HealthMax, e.Health+amount)
	if c.host != nil && c.body != nil {
		c.host.PlayEffect(EffectHeal, c.body.Position(), amount/e.HealthMax)
	}
}

// positive rejects NaN and infinities along with non-positive amounts.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (c *Controller) setState(s State) {
	e := &c.enc
	prev := e.State
	e.State = s
	e.FrameTimer = 0
	e.SubPhase = 0
	if s != StateAttack {
		e.CurrentAttack = AttackNone
	}
	if prev != s && c.observer.OnStateChange != nil {
		c.observer.OnStateChange(prev, s)
	}
}

func (c *Controller) remove(reason RemovalReason) {
	e := &c.enc
	if e.Removed {
		return
	}
	e.Removed = true
	e.Reason = reason
	c.host.Despawn()
	if c.observer.OnRemoved != nil {
		c.observer.OnRemoved(reason)
	}
}

func (c *Controller) acquireTarget() bool {
	e := &c.enc
	t, ok := c.host.FindNearestValidTarget(c.body.Position(), c.profile.TargetRange)
	if !ok {
		e.HasTarget = false
		e.Target = TargetRef{}
		return false
	}
	e.HasTarget = true
	e.Target = t
	e.DespawnTimer = 0
	return true
}

// tickLostTarget counts down to despawn while the boss drifts away. Any
// acquired target cancels the countdown.
func (c *Controller) tickLostTarget() {
	e := &c.enc
	e.DespawnTimer++
	c.body.SetVelocity(cp.Vector{X: 0, Y: -c.profile.DespawnRise})
	if e.DespawnTimer >= max(1, c.profile.DespawnTicks) {
		c.remove(RemovedDespawned)
	}
}

func (c *Controller) runAmbient() {
	if c.ambient == nil {
		return
	}
	c.ambient.Ambient(&Ambient{Encounter: c.enc, Position: c.body.Position(), Host: c.host})
}

func (c *Controller) tickSpawning() {
	e := &c.enc
	e.FrameTimer++
	pos := c.body.Position()
	if e.FrameTimer == 1 {
		c.host.PlayEffect(EffectSpawnIntro, pos, 1)
		c.host.PlaySound(SoundRoar, pos, 0)
		c.host.ShakeScreen(5, 30)
	}
	c.hold(0.9)
	if e.FrameTimer >= c.profile.SpawnTicks {
		e.Cooldown = c.profile.InitialDelay
		c.setState(StateIdle)
	}
}

func (c *Controller) tickIdle() {
	e := &c.enc
	e.FrameTimer++
	c.steer(e.Target.Position.Add(c.profile.HoverOffset), c.profile.MoveSpeed, 0.1)
	if e.FrameTimer >= e.Cooldown {
		c.beginAttack(c.profile.Pool.Select(c.selectInput(), c.rangeOf, c.rng))
	}
}

func (c *Controller) selectInput() SelectInput {
	e := &c.enc
	return SelectInput{
		Tier:        e.Tier,
		Consecutive: e.ConsecutiveAttacks,
		Enraged:     e.Enraged,
		Distance:    c.body.Position().Distance(e.Target.Position),
		Last:        e.LastAttack,
	}
}

func (c *Controller) beginAttack(id AttackID) {
	e := &c.enc
	if c.moves[id] == nil {
		id = c.profile.Pool.Default
	}
	if c.moves[id] == nil {
		e.Cooldown = c.profile.PostAttackCooldown
		c.setState(StateIdle)
		return
	}
	c.setState(StateAttack)
	e.CurrentAttack = id
	e.LastAttack = id
	e.TotalAttacks++
	e.ConsecutiveAttacks++
	if id == c.profile.Pool.Climax {
		e.ConsecutiveAttacks = 0
	}
	e.Cooldown = max(1, int(float64(c.profile.PostAttackCooldown)*c.cooldownMultiplier()+0.5))
	if c.observer.OnAttack != nil {
		c.observer.OnAttack(id)
	}
}

func (c *Controller) finishAttack() {
	e := &c.enc
	every := c.profile.RepositionEvery
	if every > 0 && e.ConsecutiveAttacks%every == 0 {
		e.RepositionSide = -e.RepositionSide
		c.setState(StateReposition)
		return
	}
	c.setState(StateIdle)
}

func (c *Controller) tickReposition() {
	e := &c.enc
	e.FrameTimer++
	off := c.profile.RepositionOffset
	point := e.Target.Position.Add(cp.Vector{X: off.X * e.RepositionSide, Y: off.Y})
	c.steer(point, c.profile.MoveSpeed*1.5, 0.2)
	if e.FrameTimer >= max(1, c.profile.RepositionTicks) {
		c.setState(StateIdle)
	}
}

// steer blends the current velocity toward point at the scaled speed.
func (c *Controller) steer(point cp.Vector, speed, blend float64) {
	pos := c.body.Position()
	d := point.Sub(pos)
	dist := d.Length()
	want := cp.Vector{}
	if dist > 1 {
		want = d.Mult(min(speed*c.speedMultiplier(), dist) / dist)
	}
	c.body.SetVelocity(c.body.Velocity().Lerp(want, blend))
}

func (c *Controller) hold(keep float64) {
	c.body.SetVelocity(c.body.Velocity().Mult(keep))
}
