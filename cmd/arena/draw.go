package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
	"golang.org/x/image/colornames"
)

var stateColors = map[boss.State]color.Color{
	boss.StateSpawning:        colornames.Gold,
	boss.StateIdle:            colornames.Whitesmoke,
	boss.StateAttack:          colornames.Orangered,
	boss.StateReposition:      colornames.Lightgreen,
	boss.StateEnraged:         colornames.Crimson,
	boss.StatePhaseTransition: colornames.Violet,
	boss.StatePhaseAwakening:  colornames.Magenta,
	boss.StateDying:           colornames.Gray,
}

var projectileColors = map[boss.ProjectileKind]color.Color{
	boss.ProjectileBolt:     colornames.Lightskyblue,
	boss.ProjectileStar:     colornames.Lightyellow,
	boss.ProjectilePetal:    colornames.Pink,
	boss.ProjectileNote:     colornames.Plum,
	boss.ProjectileBlossom:  colornames.Hotpink,
	boss.ProjectileThorn:    colornames.Olivedrab,
	boss.ProjectileRaindrop: colornames.Deepskyblue,
	boss.ProjectileFlare:    colornames.Orange,
	boss.ProjectileCicada:   colornames.Khaki,
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.arena.World()
	var ox, oy float64
	if cam, ok := ecs.Get(w, g.arena.Camera(), component.CameraComponent.Kind()); ok {
		ox, oy = cam.OffsetX, cam.OffsetY
	}
	at := func(x, y float64) (float32, float32) {
		return float32(x + ox), float32(y + oy)
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
		x, y := at(t.X, t.Y)
		clr, ok := projectileColors[p.Kind]
		if !ok {
			clr = colornames.White
		}
		if p.Zone {
			vector.StrokeCircle(screen, x, y, float32(p.Radius), 2, clr, true)
			return
		}
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), clr, true)
	})

	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tg *component.Target, t *component.Transform) {
		x, y := at(t.X, t.Y)
		r := float32(tg.Radius)
		var clr color.Color = colornames.Skyblue
		if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			if !hp.IsAlive() {
				clr = colornames.Dimgray
			}
			drawBar(screen, x-r, y+r+4, r*2, hp.Fraction(), colornames.Limegreen)
		}
		if ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
			clr = colornames.Lightcyan
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	})

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Boss, t *component.Transform) {
		x, y := at(t.X, t.Y)
		var clr color.Color = colornames.White
		if b.Controller != nil {
			enc := b.Controller.Encounter()
			if c, ok := stateColors[enc.State]; ok {
				clr = c
			}
			r := float32(b.Radius)
			drawBar(screen, x-r, y-r-10, r*2, enc.HealthFraction(), colornames.Crimson)
		}
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), clr, true)
	})

	for _, f := range g.flashes {
		x, y := at(f.x, f.y)
		grow := float32(flashTicks-f.ttl) * 3
		alpha := uint8(255 * f.ttl / flashTicks)
		clr := color.RGBA{0xff, 0xf0, 0xc0, alpha}
		if f.kind == boss.EffectTelegraph {
			clr = color.RGBA{0xff, 0x40, 0x40, alpha}
		}
		vector.StrokeCircle(screen, x, y, 12+grow*float32(0.5+f.intensity), 2, clr, true)
	}
}

func drawBar(screen *ebiten.Image, x, y, width float32, fraction float64, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, width, 4, colornames.Black, false)
	vector.DrawFilledRect(screen, x, y, width*float32(max(0, min(1, fraction))), 4, clr, false)
}
