package boss

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/prefabs"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	for _, k := range Kinds() {
		p, err := cat.Profile(k)
		if err != nil {
			t.Fatalf("missing profile %s: %v", k, err)
		}
		if p.Kind != k || p.HealthMax <= 0 || len(p.Pool.Base) == 0 {
			t.Fatalf("profile %s not populated: %+v", k, p)
		}
	}

	conductor, _ := cat.Profile(KindChromaticRoseConductor)
	if conductor.Transition == nil || conductor.Transition.Threshold != 0.5 {
		t.Fatal("conductor should transition at half health")
	}
	if !conductor.Pool.ClimaxWhileEnraged {
		t.Fatal("crescendo should require enrage")
	}
	herald, _ := cat.Profile(KindHeraldOfFate)
	if herald.Transition != nil {
		t.Fatal("herald has no transition")
	}
	if herald.AmbientScript == "" {
		t.Fatal("herald should carry an ambient script")
	}
	primavera, _ := cat.Profile(KindPrimavera)
	if got := primavera.Tiers; len(got) != 2 || got[0] != 0.66 {
		t.Fatalf("unexpected primavera tiers %v", got)
	}

	if _, err := cat.Profile(Kind(99)); !errors.Is(err, ErrUnknownBoss) {
		t.Fatalf("expected ErrUnknownBoss, got %v", err)
	}
}

func TestChoreographyCoversEveryAttack(t *testing.T) {
	moves := NewChoreography()
	for id := AttackNone + 1; id < attackCount; id++ {
		def := moves[id]
		if def == nil {
			t.Fatalf("no choreography for %s", id)
		}
		if def.ID != id || def.Fire == nil {
			t.Fatalf("%s: malformed definition", id)
		}
		if def.Timing.WaveTicks < 1 || def.Timing.Recovery < 1 {
			t.Fatalf("%s: zero length stage", id)
		}
	}
}

func TestProfileFromSpecErrors(t *testing.T) {
	base, err := prefabs.LoadBossSpec("primavera.yaml")
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	tests := []struct {
		name   string
		mutate func(s *prefabs.BossSpec)
		want   error
	}{
		{"unknown_boss", func(s *prefabs.BossSpec) { s.Name = "autunno" }, ErrUnknownBoss},
		{"unknown_attack", func(s *prefabs.BossSpec) { s.Attacks.Base = append(s.Attacks.Base, "falling_leaves") }, ErrUnknownAttack},
		{"unknown_timing", func(s *prefabs.BossSpec) {
			s.Timings = map[string]prefabs.TimingSpec{"frost": {Waves: 2}}
		}, ErrUnknownAttack},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := base
			spec.Attacks.Base = append([]string(nil), base.Attacks.Base...)
			tc.mutate(&spec)
			if _, err := ProfileFromSpec(spec); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestProfileValidate(t *testing.T) {
	moves := testMoves(defaultTestTiming, new(int))
	tests := []struct {
		name   string
		mutate func(p *Profile)
		want   error
	}{
		{"valid", func(p *Profile) {}, nil},
		{"no_health", func(p *Profile) { p.HealthMax = 0 }, ErrInvalidProfile},
		{"nan_base_damage", func(p *Profile) { p.BaseDamage = math.NaN() }, ErrInvalidProfile},
		{"inf_defense", func(p *Profile) { p.Defense = math.Inf(1) }, ErrInvalidProfile},
		{"nan_tier", func(p *Profile) { p.Tiers = TierThresholds{math.NaN(), 0.3} }, ErrInvalidProfile},
		{"nan_transition", func(p *Profile) {
			p.Transition = &TransitionConfig{Threshold: math.NaN(), Multipliers: Multipliers{Damage: 1, Defense: 1, Movement: 1}}
		}, ErrInvalidProfile},
		{"ascending_tiers", func(p *Profile) { p.Tiers = TierThresholds{0.3, 0.6} }, ErrInvalidProfile},
		{"negative_ramp", func(p *Profile) { p.Aggression.SpeedPerLevel = -1 }, ErrInvalidProfile},
		{"empty_pool", func(p *Profile) { p.Pool.Base = nil }, ErrInvalidProfile},
		{"missing_move", func(p *Profile) { p.Pool.Base = append(p.Pool.Base, AttackZenith) }, ErrUnknownAttack},
		{"teleport_inside_enrage", func(p *Profile) { p.Engagement.HardTeleportDistance = 500 }, ErrInvalidProfile},
		{"bad_transition", func(p *Profile) { p.Transition = &TransitionConfig{Threshold: 1.5} }, ErrInvalidProfile},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testProfile()
			tc.mutate(p)
			err := p.Validate(moves)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// TestFullFight drives every boss from spawn to removal against a stationary
// target that chips away at its health.
func TestFullFight(t *testing.T) {
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			c, err := cat.NewController(k, rand.New(rand.NewSource(42)))
			if err != nil {
				t.Fatal(err)
			}
			target := cp.Vector{X: 0, Y: 300}
			h := newFakeHost(&target)
			b := &fakeBody{integrate: true}

			var attacks []AttackID
			states := map[State]int{}
			c.SetObserver(Observer{
				OnAttack:      func(id AttackID) { attacks = append(attacks, id) },
				OnStateChange: func(_, to State) { states[to]++ },
			})

			for tick := 0; tick < 30000 && !c.IsDead(); tick++ {
				c.ApplyDamage(4)
				c.Tick(h, b)
			}
			if !c.IsDead() || c.Encounter().Reason != RemovedDefeated {
				t.Fatalf("fight did not finish: %+v", c.Encounter().Snapshot())
			}
			if len(attacks) < 5 || len(h.spawns) == 0 {
				t.Fatalf("expected a real fight, got %d attacks and %d spawns", len(attacks), len(h.spawns))
			}
			for i := 1; i < len(attacks); i++ {
				if attacks[i] == attacks[i-1] {
					t.Fatalf("%s repeated at %d", attacks[i], i)
				}
			}
			wantTransitions := 0
			if c.Profile().Transition != nil {
				wantTransitions = 1
			}
			if states[StatePhaseTransition] != wantTransitions {
				t.Fatalf("expected %d transitions, got %d", wantTransitions, states[StatePhaseTransition])
			}
			if c.Encounter().Tier != 2 {
				t.Fatalf("expected final tier 2, got %d", c.Encounter().Tier)
			}
			for _, p := range h.spawns {
				if p.Lifetime < 1 || p.Damage < 0 {
					t.Fatalf("bad projectile %+v", p)
				}
			}
		})
	}
}
