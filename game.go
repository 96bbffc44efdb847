package main

import (
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/prefabs"
	"github.com/milk9111/madzslay/session"
)

type Game struct {
	tuning     *prefabs.TuningSpec
	tuningPath string
	tuningMod  time.Time
	seed       uint64

	sess  *session.Session
	input *Input
	menu  *ebitenui.UI
	hud   *hud

	watcher *prefabs.Watcher

	// lastRun is shown on the select screen after a run ends.
	lastRun *session.Snapshot
}

func NewGame(tuning *prefabs.TuningSpec, seed uint64, tuningPath string) *Game {
	g := &Game{
		tuning:     tuning,
		tuningPath: tuningPath,
		seed:       seed,
		input:      NewInput(),
		hud:        newHUD(),
	}
	g.tuningMod, _ = prefabs.ModTime(prefabs.TuningFile)
	g.menu = NewSelectUI(g)
	return g
}

// Start begins a run as character.
func (g *Game) Start(character string) error {
	sess, err := session.New(session.Config{
		Tuning:    g.tuning,
		Character: character,
		Seed:      g.seed,
	})
	if err != nil {
		return err
	}
	g.sess = sess
	g.input.Reset()
	return nil
}

// WatchPrefabs reloads tuning and hostile scripts when files under dirs
// change. New tuning applies from the next run.
func (g *Game) WatchPrefabs(dirs ...string) error {
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) pollWatcher() {
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
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if prefabs.IsScriptFile(path) {
		if g.sess != nil {
			g.sess.ReloadScripts()
		}
		log.Printf("watch: reloaded scripts (%s)", path)
		return
	}
	if g.tuningPath != "" {
		return
	}
	mod, changed := prefabs.Changed(prefabs.TuningFile, g.tuningMod)
	if !changed {
		return
	}
	g.tuningMod = mod
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("watch: keeping previous tuning: %v", err)
		return
	}
	tuning.Pet.Enabled = tuning.Pet.Enabled || g.tuning.Pet.Enabled
	g.tuning = tuning
	g.menu = NewSelectUI(g)
	log.Printf("watch: reloaded tuning (%s)", path)
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.sess == nil {
		g.menu.Update()
		return nil
	}

	g.input.Apply(g.sess)
	g.sess.Tick(session.TickDuration)

	for _, evt := range g.sess.Events() {
		g.hud.onEvent(evt)
		if evt.Type == ecs.EventSessionEnded {
			snap := g.sess.Snapshot()
			g.lastRun = &snap
			g.sess = nil
			g.menu = NewSelectUI(g)
			return nil
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sess == nil {
		g.menu.Draw(screen)
		return
	}
	drawWorld(screen, g.sess, g.tuning)
	g.hud.draw(screen, g.sess.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
