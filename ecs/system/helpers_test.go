package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

func mustCatalog(t *testing.T) *boss.Catalog {
	t.Helper()
	c, err := boss.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func addTarget(t *testing.T, w *ecs.World, name string, x, y, hp float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.TargetComponent.Kind(), &component.Target{Name: name, Radius: 0}))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	must(t, ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(hp)))
	return e
}

func addBoss(t *testing.T, w *ecs.World, kind boss.Kind, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{Kind: kind, Radius: 40}))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	must(t, ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(1)))
	return e
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func eventsOfType(events []ecs.Event, typ string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range events {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// recordingHost captures ambient output for script tests.
type recordingHost struct {
	effects []boss.EffectKind
	sounds  []boss.SoundKind
	levels  []float64
}

func (h *recordingHost) IsAuthority() bool                                     { return true }
func (h *recordingHost) SpawnProjectile(boss.Projectile) boss.ProjectileHandle { return 0 }
func (h *recordingHost) PlayEffect(kind boss.EffectKind, _ cp.Vector, intensity float64) {
	h.effects = append(h.effects, kind)
	h.levels = append(h.levels, intensity)
}
func (h *recordingHost) PlaySound(kind boss.SoundKind, _ cp.Vector, _ float64) {
	h.sounds = append(h.sounds, kind)
}
func (h *recordingHost) ShakeScreen(float64, int) {}
func (h *recordingHost) FindNearestValidTarget(cp.Vector, float64) (boss.TargetRef, bool) {
	return boss.TargetRef{}, false
}
func (h *recordingHost) ApplyAreaDamage(cp.Vector, float64, float64, float64) {}
func (h *recordingHost) Despawn()                                             {}
