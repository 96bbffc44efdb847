package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/prefabs"
	"github.com/milk9111/madzslay/session"
	"gopkg.in/yaml.v3"
)

// simulate plays headless runs with a simple bot and reports how long each
// character survives. Useful when editing tuning.yaml.

type runResult struct {
	RunID     string  `yaml:"run_id"`
	Character string  `yaml:"character"`
	Seed      uint64  `yaml:"seed"`
	Kills     int     `yaml:"kills"`
	Seconds   float64 `yaml:"seconds"`
	Died      bool    `yaml:"died"`
	Bosses    int     `yaml:"bosses"`
}

type report struct {
	Runs []runResult `yaml:"runs"`
}

func main() {
	character := flag.String("character", "", "character to simulate (default: all)")
	runs := flag.Int("runs", 5, "runs per character")
	seed := flag.Uint64("seed", 1, "seed of the first run")
	minutes := flag.Float64("minutes", 5, "give up on a run after this much game time")
	out := flag.String("out", "", "write the YAML report here instead of stdout")
	flag.Parse()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}

	characters := tuning.CharacterNames()
	if *character != "" {
		if _, err := tuning.Character(*character); err != nil {
			log.Fatalf("simulate: %v", err)
		}
		characters = []string{*character}
	}

	maxTicks := int(*minutes * 60 * common.TicksPerSecond)
	var rep report
	for _, name := range characters {
		for i := 0; i < *runs; i++ {
			s := *seed + uint64(i)
			res, err := play(tuning, name, s, maxTicks)
			if err != nil {
				log.Fatalf("simulate: %v", err)
			}
			log.Printf("simulate: %s seed=%d kills=%d time=%.1fs", name, s, res.Kills, res.Seconds)
			rep.Runs = append(rep.Runs, res)
		}
	}

	data, err := yaml.Marshal(rep)
	if err != nil {
		log.Fatalf("simulate: marshal report: %v", err)
	}
	if *out == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("simulate: write %s: %v", *out, err)
	}
}

func play(tuning *prefabs.TuningSpec, character string, seed uint64, maxTicks int) (runResult, error) {
	s, err := session.New(session.Config{Tuning: tuning, Character: character, Seed: seed})
	if err != nil {
		return runResult{}, err
	}

	res := runResult{RunID: s.RunID(), Character: character, Seed: seed}
	for tick := 0; tick < maxTicks && s.State() != session.StateEnded; tick++ {
		if s.State() == session.StatePlaying {
			steer(s)
		}
		s.Tick(session.TickDuration)
		for _, evt := range s.Events() {
			switch evt.Type {
			case ecs.EventBossSpawned:
				res.Bosses++
			case ecs.EventPlayerDied:
				res.Died = true
			}
		}
	}

	snap := s.Snapshot()
	res.Kills = snap.Kills
	res.Seconds = time.Duration(snap.ElapsedSeconds * float64(time.Second)).Round(100 * time.Millisecond).Seconds()
	return res, nil
}

// steer targets the nearest hostile and fires every ready ability at it.
func steer(s *session.Session) {
	w := s.World()
	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	var (
		nearest ecs.Entity
		found   bool
		best    float64
	)
	ecs.ForEach2(w, component.HostileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Hostile, t *component.Transform) {
		d := t.Pos.Distance(pt.Pos)
		if !found || d < best {
			nearest, best, found = e, d, true
		}
	})
	if !found {
		return
	}

	if current, ok := s.AttackTarget(); !ok || current != nearest {
		s.SetAttackTarget(nearest)
	}
	t, _ := ecs.Get(w, nearest, component.TransformComponent.Kind())
	snap := s.Snapshot()
	for slot := component.SlotR; slot >= component.SlotQ; slot-- {
		if snap.CooldownRemaining[slot] == 0 {
			s.CastAbility(slot, t.Pos.X, t.Pos.Y)
		}
	}
}
