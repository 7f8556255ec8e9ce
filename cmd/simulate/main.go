package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/milk9111/maestro/arena"
	"github.com/milk9111/maestro/boss"
	"github.com/milk9111/maestro/prefabs"
)

func main() {
	bossName := flag.String("boss", boss.KindHeraldOfFate.String(), "boss to fight ("+kindList()+")")
	ticks := flag.Int("ticks", 60*60*5, "maximum ticks to simulate")
	seed := flag.Int64("seed", 1, "random seed")
	authority := flag.Bool("authority", true, "run as the authoritative node")
	verbose := flag.Bool("v", false, "log state, tier and attack changes")
	prefabDir := flag.String("prefabs", "prefabs", "directory overriding embedded prefabs (empty disables)")
	arenaSpec := flag.String("arena", arena.DefaultSpec, "arena prefab")
	list := flag.Bool("list", false, "list bosses and embedded prefabs, then exit")
	flag.Parse()

	prefabs.SetDir(*prefabDir)

	if *list {
		fmt.Println("bosses:", kindList())
		fmt.Println("prefabs:", strings.Join(prefabs.Names(), ", "))
		return
	}

	kind, err := boss.ParseKind(*bossName)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := boss.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	a, err := arena.New(catalog, arena.Options{
		Boss:      kind,
		Seed:      *seed,
		Authority: *authority,
		Spec:      *arenaSpec,
		Verbose:   *verbose,
	})
	if err != nil {
		log.Fatal(err)
	}

	summary := a.Run(*ticks)
	log.Printf("simulate: %s %s after %d ticks", summary.Boss, summary.Outcome, summary.Ticks)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatal(err)
	}
}

func kindList() string {
	names := make([]string, 0, len(boss.Kinds()))
	for _, k := range boss.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
