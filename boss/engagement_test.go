package boss

import (
	"fmt"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestEnrageAfterSustainedSeparation(t *testing.T) {
	p := testProfile()
	p.SpawnTicks = 1
	p.InitialDelay = 100000
	c := newTestController(p, nil)
	target := cp.Vector{}
	h := newFakeHost(&target)
	b := &fakeBody{pos: cp.Vector{X: 1000}}

	tickN(c, h, b, 180)
	if c.Encounter().Enraged {
		t.Fatalf("enraged before tick 181 (timer %d)", c.Encounter().EnrageTimer)
	}
	tickN(c, h, b, 1)
	if !c.Encounter().Enraged {
		t.Fatalf("expected enrage on tick 181 (timer %d)", c.Encounter().EnrageTimer)
	}
	if c.Encounter().State != StateEnraged {
		t.Fatalf("expected enraged state, got %s", c.Encounter().State)
	}

	// Closing the gap decays the timer and returns to Idle at zero.
	b.pos = cp.Vector{X: 100}
	tickN(c, h, b, 180)
	if !c.Encounter().Enraged {
		t.Fatal("enrage cleared before timer decayed")
	}
	tickN(c, h, b, 1)
	if c.Encounter().Enraged || c.Encounter().EnrageTimer != 0 {
		t.Fatalf("expected enrage cleared, timer %d", c.Encounter().EnrageTimer)
	}
	if c.Encounter().State != StateIdle {
		t.Fatalf("expected idle after enrage, got %s", c.Encounter().State)
	}
}

func TestEnrageNotForcedDuringSpawning(t *testing.T) {
	p := testProfile()
	p.SpawnTicks = 400
	c := newTestController(p, nil)
	target := cp.Vector{}
	h := newFakeHost(&target)
	b := &fakeBody{pos: cp.Vector{X: 1000}}

	tickN(c, h, b, 300)
	if !c.Encounter().Enraged {
		t.Fatal("expected enraged flag while spawning")
	}
	if c.Encounter().State != StateSpawning {
		t.Fatalf("spawning interrupted by enrage: %s", c.Encounter().State)
	}
	tickN(c, h, b, 101)
	if c.Encounter().State != StateEnraged {
		t.Fatalf("expected enraged once spawning ends, got %s", c.Encounter().State)
	}
}

func TestEnrageHysteresis(t *testing.T) {
	c := newTestController(testProfile(), nil)
	target := cp.Vector{}
	h := newFakeHost(&target)
	b := &fakeBody{}

	toggles := 0
	was := false
	for i := 0; i < 2000; i++ {
		if i%2 == 0 {
			b.pos = cp.Vector{X: 801}
		} else {
			b.pos = cp.Vector{X: 799}
		}
		c.Tick(h, b)
		if c.Encounter().Enraged != was {
			toggles++
			was = c.Encounter().Enraged
		}
	}
	if toggles != 0 {
		t.Fatalf("oscillating at the threshold toggled enrage %d times", toggles)
	}
	if c.Encounter().EnrageTimer > 1 {
		t.Fatalf("timer grew while oscillating: %d", c.Encounter().EnrageTimer)
	}
}

func TestHardTeleport(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
		want  State
	}{
		{"spawning", func(c *Controller) {}, StateSpawning},
		{"idle", func(c *Controller) {
			c.setState(StateIdle)
			c.enc.Cooldown = 1000
		}, StateIdle},
		{"attack", func(c *Controller) {
			c.beginAttack(AttackDestinyDash)
		}, StateAttack},
		{"reposition", func(c *Controller) { c.setState(StateReposition) }, StateReposition},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController(testProfile(), nil)
			target := cp.Vector{}
			h := newFakeHost(&target)
			b := &fakeBody{pos: cp.Vector{X: 1650}}
			tc.setup(c)

			c.Tick(h, b)
			if d := b.pos.Distance(target); d >= c.Profile().Engagement.EnrageDistance {
				t.Fatalf("expected relocation into enrage range, distance %v", d)
			}
			if c.Encounter().State != tc.want {
				t.Fatalf("teleport changed state to %s", c.Encounter().State)
			}
			if h.effects[EffectTeleport] != 2 {
				t.Fatalf("expected departure and arrival effects, got %d", h.effects[EffectTeleport])
			}
			if c.Encounter().EnrageTimer != 0 {
				t.Fatalf("enrage timer counted the pre-teleport distance")
			}
		})
	}
}

// enragedController starts an encounter already enraged, held far enough from
// the target that enrage never decays and the teleport never fires.
func enragedController(p *Profile, authority bool) (*Controller, *fakeHost, *fakeBody) {
	c := newTestController(p, nil)
	target := cp.Vector{}
	h := newFakeHost(&target)
	h.authority = authority
	b := &fakeBody{pos: cp.Vector{X: 1000}}
	c.setState(StateEnraged)
	c.enc.Enraged = true
	c.enc.EnrageTimer = 200
	return c, h, b
}

func TestEnragedVolleys(t *testing.T) {
	tests := []struct {
		name      string
		authority bool
		ramp      int
		want      int
	}{
		// Cooldown multiplier 1: volleys every 20 ticks.
		{"base_interval", true, 100000, 3 * 2},
		// Saturated aggression scales the interval to 12 ticks.
		{"scaled_interval", true, 0, 5 * 2},
		{"not_authority", false, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testProfile()
			p.Aggression.RampTicks = tc.ramp
			if tc.ramp > 0 {
				p.Aggression.RatePerLevel = 0
			}
			c, h, b := enragedController(p, tc.authority)

			tickN(c, h, b, 60)
			if c.Encounter().State != StateEnraged {
				t.Fatalf("expected enraged state, got %s", c.Encounter().State)
			}
			if len(h.spawns) != tc.want {
				t.Fatalf("expected %d volley spawns, got %d", tc.want, len(h.spawns))
			}
			for _, s := range h.spawns {
				if s.Kind != ProjectileBolt || s.Velocity.X >= 0 {
					t.Fatalf("volley not aimed at target: %+v", s)
				}
			}
			if h.effects[EffectAura] == 0 {
				t.Fatal("expected enraged aura on every node")
			}
		})
	}
}

func TestClimaxFromEnraged(t *testing.T) {
	for _, authority := range []bool{true, false} {
		t.Run(fmt.Sprintf("authority_%v", authority), func(t *testing.T) {
			p := testProfile()
			p.Pool.Climax = AttackFinaleOfFate
			p.Pool.ClimaxAfter = 2
			p.Pool.ClimaxWhileEnraged = true
			c, h, b := enragedController(p, authority)
			c.enc.ConsecutiveAttacks = 2

			var launched []AttackID
			c.SetObserver(Observer{OnAttack: func(id AttackID) { launched = append(launched, id) }})
			tickN(c, h, b, 1)
			if c.Encounter().State != StateAttack || c.Encounter().CurrentAttack != AttackFinaleOfFate {
				t.Fatalf("expected climax launch, got %s %s", c.Encounter().State, c.Encounter().CurrentAttack)
			}
			for i := 0; c.Encounter().State == StateAttack; i++ {
				if i > 1000 {
					t.Fatal("climax never finished")
				}
				tickN(c, h, b, 1)
			}
			if len(launched) != 1 || launched[0] != AttackFinaleOfFate {
				t.Fatalf("expected one climax, got %v", launched)
			}
			want := 0
			if authority {
				want = defaultTestTiming.Waves
			}
			if len(h.spawns) != want {
				t.Fatalf("expected %d spawns, got %d", want, len(h.spawns))
			}
			if c.Encounter().ConsecutiveAttacks != 0 || !c.Encounter().Enraged {
				t.Fatalf("expected reset count while still enraged, count=%d enraged=%v",
					c.Encounter().ConsecutiveAttacks, c.Encounter().Enraged)
			}
		})
	}
}

func TestClimaxWaitsForEnrage(t *testing.T) {
	p := testProfile()
	p.Pool.Climax = AttackFinaleOfFate
	p.Pool.ClimaxAfter = 2
	p.Pool.ClimaxWhileEnraged = true

	has := func(ids []AttackID) bool {
		for _, id := range ids {
			if id == AttackFinaleOfFate {
				return true
			}
		}
		return false
	}
	if has(p.Pool.Available(SelectInput{Consecutive: 5})) {
		t.Fatal("climax available while calm")
	}
	if !has(p.Pool.Available(SelectInput{Consecutive: 5, Enraged: true})) {
		t.Fatal("climax missing while enraged")
	}
}

func TestEnrageLetsAttackFinish(t *testing.T) {
	p := testProfile()
	p.SpawnTicks = 1
	p.InitialDelay = 100000
	c := newTestController(p, nil)
	target := cp.Vector{}
	h := newFakeHost(&target)
	b := &fakeBody{pos: cp.Vector{X: 1000}}

	tickN(c, h, b, 175)
	c.beginAttack(AttackCosmicBolts)
	tickN(c, h, b, 10)
	if !c.Encounter().Enraged {
		t.Fatal("expected enraged flag during the attack")
	}
	if c.Encounter().State != StateAttack {
		t.Fatalf("enrage interrupted the attack: %s", c.Encounter().State)
	}
	for i := 0; c.Encounter().State == StateAttack; i++ {
		if i > 1000 {
			t.Fatal("attack never finished")
		}
		tickN(c, h, b, 1)
	}
	tickN(c, h, b, 1)
	if c.Encounter().State != StateEnraged {
		t.Fatalf("expected enraged after the attack, got %s", c.Encounter().State)
	}
}
