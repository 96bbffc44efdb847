package session

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/ecs/entity"
	"github.com/milk9111/madzslay/ecs/system"
	"github.com/milk9111/madzslay/prefabs"
)

// TickDuration is the frame-clock period assumed when Tick gets no delta.
const TickDuration = time.Second / common.TicksPerSecond

// Config selects the tuning, character and randomness of a run.
type Config struct {
	Tuning    *prefabs.TuningSpec
	Character string
	// Seed fixes the run's randomness; zero picks a random seed.
	Seed uint64
	// Rand overrides Seed when set.
	Rand common.Rand
}

// Session is one run. It owns the world, the fixed-order scheduler and the
// life-cycle state; presentation drives it through Tick and the intent
// methods and reads it back through Snapshot.
type Session struct {
	cfg   Config
	runID string
	rng   common.Rand

	world     *ecs.World
	scheduler *ecs.Scheduler
	abilities *system.AbilitySystem
	ai        *system.HostileAISystem
	director  *system.SpawnDirector
	life      *Lifecycle

	player  ecs.Entity
	elapsed time.Duration
	ticks   int
	events  []ecs.Event
}

func New(cfg Config) (*Session, error) {
	if cfg.Tuning == nil {
		return nil, fmt.Errorf("session: nil tuning")
	}
	s := &Session{cfg: cfg}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build() error {
	tuning := s.cfg.Tuning

	rng := s.cfg.Rand
	if rng == nil {
		seed := s.cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	abilities, err := system.NewAbilitySystem(tuning, s.cfg.Character)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	w := ecs.NewWorld()
	w.SetPlayfield(tuning.Playfield.Width, tuning.Playfield.Height)

	player, err := entity.NewPlayer(w, tuning, s.cfg.Character)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	spawn := cp.Vector{X: tuning.Playfield.Width / 2, Y: tuning.Playfield.Height / 2}
	if _, err := entity.NewObstacleField(w, tuning.Obstacles, rng, spawn, tuning.Player.Radius*2); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if tuning.Pet.Enabled {
		if _, err := entity.NewPet(w, tuning.Pet, spawn.Add(cp.Vector{X: tuning.Pet.FollowDistance})); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}

	ai := system.NewHostileAISystem()
	director := system.NewSpawnDirector(tuning, rng)

	s.rng = rng
	s.runID = uuid.NewString()
	s.world = w
	s.player = player
	s.abilities = abilities
	s.ai = ai
	s.director = director
	s.scheduler = ecs.NewScheduler(
		system.NewPlayerControlSystem(),
		system.NewPetSystem(rng),
		ai,
		system.NewProjectileSystem(tuning.Playfield.ProjectileMargin),
		system.NewAbilityEffectSystem(),
		system.NewAbilityCooldownSystem(),
		director,
	)
	s.life = NewLifecycle(time.Duration(tuning.Lifecycle.DeathFadeSeconds * float64(time.Second)))
	s.elapsed = 0
	s.ticks = 0
	s.events = nil

	log.Printf("session: run %s started as %s", s.runID, s.cfg.Character)
	return nil
}

// Reset discards every entity, projectile and effect and starts a fresh run
// with the same character.
func (s *Session) Reset() error {
	if s == nil {
		return fmt.Errorf("session: nil session")
	}
	return s.build()
}

// Tick runs one frame. While playing it performs the fixed-order update pass
// and then checks the player's health; once dying only the death fade
// advances.
func (s *Session) Tick(dt time.Duration) {
	if s == nil || s.world == nil {
		return
	}
	if dt <= 0 {
		dt = TickDuration
	}

	switch s.life.State() {
	case StatePlaying:
		s.ticks++
		s.elapsed += dt
		s.scheduler.Update(s.world)
		if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
			if s.life.Observe(h.Current, s.elapsed) {
				s.world.SetAttackTarget(0)
				s.world.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Data: s.world.Kills()})
				log.Printf("session: run %s player died with %d kills after %.1fs", s.runID, s.world.Kills(), s.elapsed.Seconds())
			}
		}
	case StateDying:
		if s.life.Advance(dt) {
			s.world.Events().Push(ecs.Event{Type: ecs.EventSessionEnded, Data: s.runID})
			log.Printf("session: run %s ended", s.runID)
		}
	}

	s.events = s.world.Events().Drain()
}

// Events returns what happened during the last Tick.
func (s *Session) Events() []ecs.Event {
	if s == nil {
		return nil
	}
	return s.events
}

func (s *Session) RunID() string {
	if s == nil {
		return ""
	}
	return s.runID
}

func (s *Session) Character() string {
	if s == nil {
		return ""
	}
	return s.cfg.Character
}

// World exposes the entity store to the renderer. Presentation must treat it
// as read-only.
func (s *Session) World() *ecs.World {
	if s == nil {
		return nil
	}
	return s.world
}

func (s *Session) State() State {
	if s == nil {
		return StateEnded
	}
	return s.life.State()
}

// Ticks returns the number of update passes run while playing.
func (s *Session) Ticks() int {
	if s == nil {
		return 0
	}
	return s.ticks
}

// ReloadScripts makes hostile scripts recompile on the next tick.
func (s *Session) ReloadScripts() {
	if s == nil {
		return
	}
	s.ai.ReloadScripts()
}

// MilestoneFired reports whether milestone i has spawned its boss.
func (s *Session) MilestoneFired(i int) bool {
	if s == nil {
		return false
	}
	return s.director.Fired(i)
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{}
	if s == nil || s.world == nil {
		return snap
	}
	snap.RunID = s.runID
	snap.Character = s.cfg.Character
	snap.Kills = s.world.Kills()
	snap.ElapsedSeconds = s.elapsed.Seconds()
	snap.Lifecycle = s.life.State()
	snap.DeathFadeProgress = s.life.Progress()
	snap.Hostiles = ecs.Count(s.world, component.HostileComponent.Kind())
	snap.Projectiles = ecs.Count(s.world, component.ProjectileComponent.Kind())

	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		snap.Health = h.Current
		snap.MaxHealth = h.Max
	}
	if m, ok := ecs.Get(s.world, s.player, component.ManaComponent.Kind()); ok {
		snap.Mana = m.Current
		snap.MaxMana = m.Max
	}
	if l, ok := ecs.Get(s.world, s.player, component.AbilityLedgerComponent.Kind()); ok {
		snap.CooldownRemaining = l.Remaining
		snap.MaxCooldown = l.Max
	}
	return snap
}
