package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/maestro/arena"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/ecs"
	"github.com/milk9111/maestro/ecs/component"
	"github.com/milk9111/maestro/prefabs"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

const (
	flashTicks  = 20
	statusTicks = 120
)

// flash is a short-lived ring drawn for an effect event.
type flash struct {
	kind      boss.EffectKind
	x, y      float64
	intensity float64
	ttl       int
}

type Game struct {
	opts    arena.Options
	catalog *boss.Catalog
	arena   *arena.Arena

	watcher     *prefabs.Watcher
	clipboardOK bool

	paused bool
	ui     *ebitenui.UI

	flashes []flash
	status  string
	statusT int
}

func NewGame(opts arena.Options, watcher *prefabs.Watcher, clipboardOK bool) (*Game, error) {
	catalog, err := boss.LoadCatalog()
	if err != nil {
		return nil, err
	}
	g := &Game{
		opts:        opts,
		catalog:     catalog,
		watcher:     watcher,
		clipboardOK: clipboardOK,
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.ui = NewPauseUI(g)
	return g, nil
}

func (g *Game) restart() error {
	a, err := arena.New(g.catalog, g.opts)
	if err != nil {
		return err
	}
	g.arena = a
	g.flashes = g.flashes[:0]
	g.setStatus(fmt.Sprintf("fighting %s", g.opts.Boss))
	return nil
}

// nextBoss cycles to the next boss and restarts the fight.
func (g *Game) nextBoss() {
	kinds := boss.Kinds()
	for i, k := range kinds {
		if k == g.opts.Boss {
			g.opts.Boss = kinds[(i+1)%len(kinds)]
			break
		}
	}
	if err := g.restart(); err != nil {
		log.Printf("arena: restart: %v", err)
	}
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusT = statusTicks
}

func (g *Game) Update() error {
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			log.Printf("arena: restart: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.nextBoss()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	if g.statusT > 0 {
		g.statusT--
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	for _, evt := range g.arena.Step() {
		g.observe(evt)
	}
	live := g.flashes[:0]
	for _, f := range g.flashes {
		f.ttl--
		if f.ttl > 0 {
			live = append(live, f)
		}
	}
	g.flashes = live

	if g.arena.Done() {
		s := g.arena.Summary()
		g.status = fmt.Sprintf("%s %s after %d ticks (R to restart)", s.Boss, s.Outcome, s.Ticks)
		g.statusT = 1
	}
	return nil
}

func (g *Game) observe(evt ecs.Event) {
	switch evt.Type {
	case ecs.EventEffect:
		rec, ok := evt.Data.(component.EffectRecord)
		if !ok {
			return
		}
		g.flashes = append(g.flashes, flash{kind: rec.Kind, x: rec.X, y: rec.Y, intensity: rec.Intensity, ttl: flashTicks})
	case ecs.EventTargetDown:
		if rec, ok := evt.Data.(component.TargetDownRecord); ok {
			g.setStatus(fmt.Sprintf("%s is down", rec.Name))
		}
	}
}

// pollReload rebuilds the catalog when a profile or script changes on disk.
// The running fight restarts with the new catalog.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("arena: watcher: %v", err)
			}
			if !ok {
				g.watcher = nil
			}
			return
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	catalog, err := boss.LoadCatalog()
	if err != nil {
		log.Printf("arena: reload %s: %v", path, err)
		g.setStatus("reload failed, see log")
		return
	}
	g.catalog = catalog
	if err := g.restart(); err != nil {
		log.Printf("arena: reload %s: %v", path, err)
		return
	}
	log.Printf("arena: reloaded %s", path)
	g.setStatus("reloaded " + path)
}

func (g *Game) copySnapshot() {
	ctl := g.arena.Controller()
	if ctl == nil {
		return
	}
	data, err := json.MarshalIndent(ctl.Encounter().Snapshot(), "", "  ")
	if err != nil {
		log.Printf("arena: snapshot: %v", err)
		return
	}
	if !g.clipboardOK {
		log.Printf("arena: snapshot\n%s", data)
		g.setStatus("snapshot logged")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("snapshot copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x12, 0x10, 0x1c, 0xff})
	g.drawWorld(screen)
	g.drawHUD(screen)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := fmt.Sprintf("tick %d  FPS %.1f  [P]ause [R]estart [N]ext boss [C]opy snapshot", g.arena.Tick(), ebiten.ActualFPS())
	if ctl := g.arena.Controller(); ctl != nil {
		enc := ctl.Encounter()
		lines += fmt.Sprintf("\n%s  %s  hp %.0f/%.0f  tier %d  phase %d  aggression %.2f",
			ctl.Profile().DisplayName, enc.State, enc.Health, enc.HealthMax, enc.Tier, enc.Phase, enc.Aggression)
		if enc.State == boss.StateAttack {
			lines += fmt.Sprintf("\nattack %s  stage %d  frame %d", enc.CurrentAttack, enc.SubPhase, enc.FrameTimer)
		}
		if enc.Enraged {
			lines += "\nENRAGED"
		}
	}
	if g.statusT > 0 {
		lines += "\n" + g.status
	}
	ebitenutil.DebugPrintAt(screen, lines, 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	spec := g.arena.Spec()
	return int(spec.Width), int(spec.Height)
}
