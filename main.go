package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/prefabs"
)

func main() {
	character := flag.String("character", "", "start directly as this character (warrior, assassin, tank)")
	seed := flag.Uint64("seed", 0, "random seed for spawns and obstacles (0 = random)")
	tuningPath := flag.String("tuning", "", "load tuning from this YAML file instead of prefabs/tuning.yaml")
	pet := flag.Bool("pet", false, "bring the companion pet")
	watch := flag.Bool("watch", false, "reload tuning and scripts from prefabs/ when they change")
	flag.Parse()

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	if *pet {
		tuning.Pet.Enabled = true
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("madzslay")
	ebiten.SetTPS(common.TicksPerSecond)

	game := NewGame(tuning, *seed, *tuningPath)
	if *watch {
		if err := game.WatchPrefabs(prefabs.Dir, prefabs.Dir+"/scripts"); err != nil {
			log.Printf("watch: %v", err)
		}
	}
	defer game.Close()

	if *character != "" {
		if err := game.Start(*character); err != nil {
			log.Fatal(err)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadTuning(path string) (*prefabs.TuningSpec, error) {
	if path == "" {
		return prefabs.LoadTuning()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return prefabs.ParseTuning(data)
}
