package boss

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func transitionProfile() *Profile {
	p := testProfile()
	p.Transition = &TransitionConfig{
		Name:            "second movement",
		Threshold:       0.5,
		TransitionTicks: 20,
		AwakeningTicks:  10,
		Multipliers:     Multipliers{Damage: 1.25, Defense: 1.25, Movement: 1.15},
	}
	return p
}

func TestPhaseTransitionOnce(t *testing.T) {
	c := newTestController(transitionProfile(), nil)
	target := cp.Vector{X: 0, Y: 100}
	h := newFakeHost(&target)
	b := &fakeBody{}

	entered := 0
	c.SetObserver(Observer{OnStateChange: func(_, to State) {
		if to == StatePhaseTransition {
			entered++
		}
	}})

	tickN(c, h, b, 15)
	c.ApplyDamage(600)
	enc := c.Encounter()
	if enc.State != StatePhaseTransition || enc.Health != 500 {
		t.Fatalf("expected transition clamped at 500, got %s at %v", enc.State, enc.Health)
	}
	if got := c.ApplyDamage(100); got != 0 || enc.Health != 500 {
		t.Fatalf("damage leaked into transition: took %v, health %v", got, enc.Health)
	}

	tickN(c, h, b, 20)
	if enc.State != StatePhaseAwakening {
		t.Fatalf("expected awakening, got %s", enc.State)
	}
	if c.ApplyDamage(100) != 0 {
		t.Fatal("damage accepted during awakening")
	}
	tickN(c, h, b, 10)
	if enc.State != StateIdle || !enc.DamageEnabled {
		t.Fatalf("expected idle with damage enabled, got %s enabled=%v", enc.State, enc.DamageEnabled)
	}
	if enc.Stats != transitionProfile().Transition.Multipliers || enc.Phase != 1 {
		t.Fatalf("phase two stats not applied: %+v", enc.Stats)
	}

	if got := c.ApplyDamage(125); got != 100 {
		t.Fatalf("expected defense multiplier to reduce 125 to 100, got %v", got)
	}
	c.ApplyDamage(60)
	tickN(c, h, b, 5)
	if entered != 1 {
		t.Fatalf("transition entered %d times", entered)
	}
}

func TestTransitionTakesPrecedenceOverDeath(t *testing.T) {
	c := newTestController(transitionProfile(), nil)
	c.ApplyDamage(5000)
	enc := c.Encounter()
	if enc.Dying || enc.State != StatePhaseTransition {
		t.Fatalf("expected transition, got %s dying=%v", enc.State, enc.Dying)
	}
	if enc.Health != 500 {
		t.Fatalf("expected health clamped to 500, got %v", enc.Health)
	}
}
