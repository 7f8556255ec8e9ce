package system

import (
	"testing"

	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

func TestChallengerSystem(t *testing.T) {
	w := ecs.NewWorld()
	catalog := mustCatalog(t)
	ctl, err := catalog.NewController(boss.KindLEstate, nil)
	if err != nil {
		t.Fatal(err)
	}
	b := ecs.CreateEntity(w)
	must(t, ecs.Add(w, b, component.BossComponent.Kind(), &component.Boss{Kind: boss.KindLEstate, Radius: 40, Controller: ctl}))
	must(t, ecs.Add(w, b, component.TransformComponent.Kind(), &component.Transform{X: 100}))

	near := addTarget(t, w, "near", 0, 0, 10)
	must(t, ecs.Add(w, near, component.ChallengerComponent.Kind(), &component.Challenger{Damage: 5, Interval: 10, Range: 80}))
	far := addTarget(t, w, "far", 1000, 0, 10)
	must(t, ecs.Add(w, far, component.ChallengerComponent.Kind(), &component.Challenger{Damage: 5, Interval: 10, Range: 80}))

	sys := NewChallengerSystem()
	sys.Update(w)
	sys.Update(w)

	req, ok := ecs.Get(w, b, component.DamageRequestComponent.Kind())
	if !ok || len(req.Hits) != 1 {
		t.Fatalf("expected exactly one hit on the boss, got %+v", req)
	}
	if req.Hits[0].Source != uint64(near) {
		t.Fatalf("expected hit from near challenger")
	}
	if !ecs.Has(w, near, component.CooldownComponent.Kind()) {
		t.Fatalf("expected cooldown on challenger")
	}
	if ecs.Has(w, far, component.CooldownComponent.Kind()) {
		t.Fatalf("far challenger should not have attacked")
	}
}
