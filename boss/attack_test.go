package boss

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
)

// runAttack starts id and ticks until the attack ends.
func runAttack(t *testing.T, c *Controller, h *fakeHost, b *fakeBody, id AttackID) int {
	t.Helper()
	c.beginAttack(id)
	ticks := 0
	for c.Encounter().State == StateAttack {
		c.Tick(h, b)
		ticks++
		if ticks > 10000 {
			t.Fatal("attack never finished")
		}
	}
	return ticks
}

func TestFireOncePerWave(t *testing.T) {
	for _, waveTicks := range []int{1, 5, 50} {
		t.Run("wave_ticks", func(t *testing.T) {
			fired := 0
			timing := Timing{Telegraph: 3, Waves: 3, WaveTicks: waveTicks, Recovery: 2, DamageMul: 1}
			c := NewController(testProfile(), testMoves(timing, &fired), rand.New(rand.NewSource(1)))
			target := cp.Vector{X: 0, Y: 100}
			h := newFakeHost(&target)
			b := &fakeBody{}

			runAttack(t, c, h, b, AttackCosmicBolts)
			if fired != 3 {
				t.Fatalf("wave ticks %d: expected 3 fires, got %d", waveTicks, fired)
			}
			if len(h.spawns) != 3 {
				t.Fatalf("expected 3 spawns, got %d", len(h.spawns))
			}
		})
	}
}

func TestExtraWavesPerTier(t *testing.T) {
	fired := 0
	timing := Timing{Telegraph: 3, Waves: 1, WavesPerTier: 2, WaveTicks: 2, Recovery: 1}
	c := NewController(testProfile(), testMoves(timing, &fired), rand.New(rand.NewSource(1)))
	target := cp.Vector{X: 0, Y: 100}
	h := newFakeHost(&target)
	b := &fakeBody{}

	c.ApplyDamage(750)
	c.Tick(h, b)
	if c.Encounter().Tier != 2 {
		t.Fatalf("expected tier 2, got %d", c.Encounter().Tier)
	}
	runAttack(t, c, h, b, AttackCosmicBolts)
	if fired != 5 {
		t.Fatalf("expected 1+2*2 waves, got %d", fired)
	}
}

func TestNonAuthorityNeverSpawns(t *testing.T) {
	fired := 0
	c := newTestController(testProfile(), &fired)
	target := cp.Vector{X: 0, Y: 100}
	h := newFakeHost(&target)
	h.authority = false
	b := &fakeBody{}

	tickN(c, h, b, 2000)
	if fired != 0 || len(h.spawns) != 0 || h.areas != 0 {
		t.Fatalf("non-authority produced side effects: fired=%d spawns=%d areas=%d", fired, len(h.spawns), h.areas)
	}
	if h.effects[EffectCommit] == 0 {
		t.Fatal("cosmetic commit cue should still play")
	}
	if c.Encounter().TotalAttacks == 0 {
		t.Fatal("expected attacks to run")
	}
}

func TestTelegraphFloor(t *testing.T) {
	c := newTestController(testProfile(), nil)
	c.enc.Aggression = 1
	c.enc.Tier = 2
	if got := c.telegraphTicks(Timing{Telegraph: 6}); got != 5 {
		t.Fatalf("expected profile floor 5, got %d", got)
	}
	if got := c.telegraphTicks(Timing{Telegraph: 100, TelegraphFloor: 80}); got != 80 {
		t.Fatalf("expected attack floor 80, got %d", got)
	}
	c.enc.Aggression = 0
	c.enc.Tier = 0
	if got := c.telegraphTicks(Timing{Telegraph: 100}); got != 100 {
		t.Fatalf("expected unscaled telegraph, got %d", got)
	}
}

func TestSpawnDefaults(t *testing.T) {
	c := newTestController(testProfile(), nil)
	target := cp.Vector{X: 0, Y: 100}
	h := newFakeHost(&target)
	c.host, c.body = h, &fakeBody{}

	a := &Action{c: c, Timing: Timing{DamageMul: -3, Knockback: 2}}
	a.Spawn(Projectile{Kind: ProjectileBolt})
	p := h.spawns[0]
	if p.Lifetime < 1 {
		t.Fatalf("spawned with lifetime %d", p.Lifetime)
	}
	if p.Damage <= 0 {
		t.Fatalf("expected positive damage, got %v", p.Damage)
	}
	if p.Knockback != 2 {
		t.Fatalf("expected attack knockback, got %v", p.Knockback)
	}
}

func TestRepositionEveryN(t *testing.T) {
	c := newTestController(testProfile(), nil)
	target := cp.Vector{X: 0, Y: 100}
	h := newFakeHost(&target)
	b := &fakeBody{}

	var after []State
	for i := 1; i <= 6; i++ {
		runAttack(t, c, h, b, AttackCosmicBolts)
		after = append(after, c.Encounter().State)
	}
	want := []State{StateIdle, StateIdle, StateReposition, StateIdle, StateIdle, StateReposition}
	for i := range want {
		if after[i] != want[i] {
			t.Fatalf("after attack %d: got %s, want %s", i+1, after[i], want[i])
		}
	}
}

func TestClimaxResetsConsecutive(t *testing.T) {
	p := testProfile()
	p.Pool.Climax = AttackFinaleOfFate
	p.Pool.ClimaxAfter = 2
	c := newTestController(p, nil)
	target := cp.Vector{X: 0, Y: 100}
	h := newFakeHost(&target)
	b := &fakeBody{}

	runAttack(t, c, h, b, AttackCosmicBolts)
	runAttack(t, c, h, b, AttackDestinyDash)
	if !p.Pool.ClimaxReady(c.selectInput()) {
		t.Fatal("climax should be unlocked after two attacks")
	}
	runAttack(t, c, h, b, AttackFinaleOfFate)
	if c.Encounter().ConsecutiveAttacks != 0 {
		t.Fatalf("expected reset after climax, got %d", c.Encounter().ConsecutiveAttacks)
	}
}

func TestTimingOverrides(t *testing.T) {
	p := testProfile()
	p.Timings = map[AttackID]Timing{AttackCosmicBolts: {Waves: 4, Range: RangePreference{Max: 50}}}
	c := newTestController(p, nil)

	got := c.timing(c.moves[AttackCosmicBolts])
	if got.Waves != 4 || got.WaveTicks != defaultTestTiming.WaveTicks {
		t.Fatalf("override not merged: %+v", got)
	}
	if c.rangeOf(AttackCosmicBolts).Max != 50 {
		t.Fatal("range override ignored")
	}
	if c.moves[AttackCosmicBolts].Timing.Waves != defaultTestTiming.Waves {
		t.Fatal("override mutated shared choreography")
	}
}

func TestRepositionFollowsConsecutiveCount(t *testing.T) {
	p := testProfile()
	p.Pool.Climax = AttackFinaleOfFate
	c := newTestController(p, nil)
	target := cp.Vector{X: 0, Y: 100}
	h := newFakeHost(&target)
	b := &fakeBody{}

	c.enc.TotalAttacks = 7
	c.enc.ConsecutiveAttacks = 2
	runAttack(t, c, h, b, AttackCosmicBolts)
	if c.Encounter().State != StateReposition {
		t.Fatalf("expected reposition on the third consecutive attack, got %s", c.Encounter().State)
	}

	c.enc.ConsecutiveAttacks = 1
	runAttack(t, c, h, b, AttackFinaleOfFate)
	if c.Encounter().State != StateReposition {
		t.Fatalf("expected reposition after the climax resets the count, got %s", c.Encounter().State)
	}
}
