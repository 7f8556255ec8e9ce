package system

import (
	"log"

	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
)

// QueueDamage appends a hit to e's pending damage.
func QueueDamage(w *ecs.World, e ecs.Entity, hit component.DamageEvent) {
	if hit.Amount <= 0 {
		return
	}
	if req, ok := ecs.Get(w, e, component.DamageRequestComponent.Kind()); ok {
		req.Hits = append(req.Hits, hit)
		return
	}
	_ = ecs.Add(w, e, component.DamageRequestComponent.Kind(), &component.DamageRequest{Hits: []component.DamageEvent{hit}})
}

// DamageSystem resolves queued hits. Boss damage goes through the encounter
// controller; everything else uses Health.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem { return &DamageSystem{} }

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DamageRequestComponent.Kind(), func(e ecs.Entity, req *component.DamageRequest) {
		hits := req.Hits
		ecs.Remove(w, e, component.DamageRequestComponent.Kind())
		if ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
			return
		}

		if b, ok := ecs.Get(w, e, component.BossComponent.Kind()); ok {
			if b.Controller == nil {
				return
			}
			for _, hit := range hits {
				b.Controller.ApplyDamage(hit.Amount)
			}
			return
		}

		hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok || !hp.IsAlive() {
			return
		}
		iframes := 0
		name := ""
		if tg, ok := ecs.Get(w, e, component.TargetComponent.Kind()); ok {
			iframes = tg.IFrames
			name = tg.Name
		}

		for _, hit := range hits {
			if !hp.ApplyDamage(hit) {
				continue
			}
			if hit.Knockback > 0 {
				_ = ecs.Add(w, e, component.DamageKnockbackRequestComponent.Kind(), &component.DamageKnockback{
					SourceX:  hit.SourceX,
					SourceY:  hit.SourceY,
					Strength: hit.Knockback,
				})
			}
			if hp.Dead {
				log.Printf("DamageSystem: %s down", name)
				w.Events().Push(ecs.Event{Type: ecs.EventTargetDown, Data: component.TargetDownRecord{Name: name, Source: hit.Source}})
				return
			}
			// One hit per i-frame window.
			if iframes > 0 {
				_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: iframes})
				return
			}
		}
	})
}
