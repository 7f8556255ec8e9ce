package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/maestro/arena"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/common"
	"github.com/milk9111/maestro/prefabs"
	"golang.design/x/clipboard"
)

func main() {
	bossName := flag.String("boss", boss.KindHeraldOfFate.String(), "boss to fight")
	seed := flag.Int64("seed", 1, "random seed")
	prefabDir := flag.String("prefabs", "prefabs", "directory overriding embedded prefabs; watched for changes")
	arenaSpec := flag.String("arena", arena.DefaultSpec, "arena prefab")
	verbose := flag.Bool("v", false, "log state, tier and attack changes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	prefabs.SetDir(*prefabDir)

	kind, err := boss.ParseKind(*bossName)
	if err != nil {
		log.Fatal(err)
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("arena: clipboard unavailable: %v", err)
		clipboardOK = false
	}

	var watcher *prefabs.Watcher
	if *prefabDir != "" {
		w, err := prefabs.NewWatcher(*prefabDir, filepath.Join(*prefabDir, "scripts"))
		if err != nil {
			log.Printf("arena: hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	game, err := NewGame(arena.Options{
		Boss:      kind,
		Seed:      *seed,
		Authority: true,
		Spec:      *arenaSpec,
		Verbose:   *verbose,
	}, watcher, clipboardOK)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetTPS(common.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("maestro arena")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
