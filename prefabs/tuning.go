package prefabs

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

const TuningFile = "tuning.yaml"

var (
	ErrUnknownCharacter = errors.New("prefabs: unknown character")
	ErrUnknownHostile   = errors.New("prefabs: unknown hostile type")
)

// TuningSpec is every balance number a run needs.
type TuningSpec struct {
	Playfield  PlayfieldSpec                     `yaml:"playfield"`
	Player     PlayerSpec                        `yaml:"player"`
	Characters map[string]CharacterSpec          `yaml:"characters"`
	Effect     EffectDefaultsSpec                `yaml:"effect"`
	Abilities  map[string]map[string]AbilitySpec `yaml:"abilities"`
	Hostiles   map[string]HostileSpec            `yaml:"hostiles"`
	Bosses     map[string]HostileSpec            `yaml:"bosses"`
	Milestones []MilestoneSpec                   `yaml:"milestones"`
	Spawn      SpawnSpec                         `yaml:"spawn"`
	Pet        PetSpec                           `yaml:"pet"`
	Lifecycle  LifecycleSpec                     `yaml:"lifecycle"`
	Obstacles  ObstacleFieldSpec                 `yaml:"obstacles"`
}

type PlayfieldSpec struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	ProjectileMargin float64 `yaml:"projectile_margin"`
}

type PlayerSpec struct {
	Radius     float64 `yaml:"radius"`
	ShotFrames int     `yaml:"shot_frames"`
	ShotSpeed  float64 `yaml:"shot_speed"`
	ShotDamage float64 `yaml:"shot_damage"`
	ShotRadius float64 `yaml:"shot_radius"`
}

type CharacterSpec struct {
	Name   string     `yaml:"name"`
	Speed  float64    `yaml:"speed"`
	Health float64    `yaml:"health"`
	Mana   float64    `yaml:"mana"`
	Regen  float64    `yaml:"regen"`
	Color  *YAMLColor `yaml:"color"`
}

type EffectDefaultsSpec struct {
	Duration int     `yaml:"duration"`
	Growth   float64 `yaml:"growth"`
}

// AbilitySpec is one (character, slot) entry of the ability table.
type AbilitySpec struct {
	Name     string       `yaml:"name"`
	Cost     float64      `yaml:"cost"`
	Cooldown int          `yaml:"cooldown"`
	Effects  []EffectSpec `yaml:"effects"`
}

type EffectKind string

const (
	EffectDash       EffectKind = "dash"
	EffectTeleport   EffectKind = "teleport"
	EffectHeal       EffectKind = "heal"
	EffectMarker     EffectKind = "marker"
	EffectArea       EffectKind = "area"
	EffectSlow       EffectKind = "slow"
	EffectKnockback  EffectKind = "knockback"
	EffectProjectile EffectKind = "projectile"
)

// Anchor picks where an area or marker is centered.
type Anchor string

const (
	AnchorPlayer Anchor = "player"
	AnchorAim    Anchor = "aim"
)

// EffectSpec is one step of an ability. Which fields matter depends on Kind.
type EffectSpec struct {
	Kind      EffectKind `yaml:"kind"`
	At        Anchor     `yaml:"at"`
	Distance  float64    `yaml:"distance"`
	Amount    float64    `yaml:"amount"`
	Radius    float64    `yaml:"radius"`
	Damage    float64    `yaml:"damage"`
	Duration  int        `yaml:"duration"`
	Growth    *float64   `yaml:"growth"`
	Immediate bool       `yaml:"immediate"`
	Factor    float64    `yaml:"factor"`
	Force     float64    `yaml:"force"`
	Speed     float64    `yaml:"speed"`
	Tag       string     `yaml:"tag"`
}

type HostileSpec struct {
	Size            float64    `yaml:"size"`
	Health          float64    `yaml:"health"`
	Speed           float64    `yaml:"speed"`
	Attack          string     `yaml:"attack"`
	Damage          float64    `yaml:"damage"`
	Range           float64    `yaml:"range"`
	Cooldown        int        `yaml:"cooldown"`
	ProjectileSpeed float64    `yaml:"projectile_speed"`
	ProjectileSize  float64    `yaml:"projectile_size"`
	AttackAnim      int        `yaml:"attack_anim"`
	IgnoreObstacles bool       `yaml:"ignore_obstacles"`
	Script          string     `yaml:"script"`
	KillBonus       int        `yaml:"kill_bonus"`
	Color           *YAMLColor `yaml:"color"`
}

type MilestoneSpec struct {
	Kills int    `yaml:"kills"`
	Boss  string `yaml:"boss"`
}

type SpawnSpec struct {
	Interval int      `yaml:"interval"`
	Types    []string `yaml:"types"`
}

type PetSpec struct {
	Enabled        bool    `yaml:"enabled"`
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	FollowDistance float64 `yaml:"follow_distance"`
	Cooldown       int     `yaml:"cooldown"`
	FireChance     float64 `yaml:"fire_chance"`
	ShotSpeed      float64 `yaml:"shot_speed"`
	ShotDamage     float64 `yaml:"shot_damage"`
	ShotRadius     float64 `yaml:"shot_radius"`
}

type LifecycleSpec struct {
	DeathFadeSeconds float64 `yaml:"death_fade_seconds"`
}

type ObstacleFieldSpec struct {
	Count    int     `yaml:"count"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Attempts int     `yaml:"attempts"`
}

// LoadTuning loads tuning.yaml (disk copy first, embedded copy otherwise).
func LoadTuning() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (*TuningSpec, error) {
	var spec TuningSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate reports the first inconsistency in the tuning data.
func (t *TuningSpec) Validate() error {
	if t == nil {
		return fmt.Errorf("prefabs: nil tuning")
	}
	if t.Playfield.Width <= 0 || t.Playfield.Height <= 0 {
		return fmt.Errorf("prefabs: playfield must have a positive size")
	}
	if t.Player.Radius <= 0 {
		return fmt.Errorf("prefabs: player radius must be positive")
	}
	if len(t.Characters) == 0 {
		return fmt.Errorf("prefabs: no characters defined")
	}
	for _, name := range t.CharacterNames() {
		table, ok := t.Abilities[name]
		if !ok {
			return fmt.Errorf("prefabs: character %q has no abilities", name)
		}
		for _, slot := range []string{"q", "w", "e", "r"} {
			ab, ok := table[slot]
			if !ok {
				return fmt.Errorf("prefabs: character %q is missing ability %q", name, slot)
			}
			if ab.Cost < 0 || ab.Cooldown < 0 {
				return fmt.Errorf("prefabs: ability %s/%s has a negative cost or cooldown", name, slot)
			}
			for i, fx := range ab.Effects {
				if err := fx.validate(); err != nil {
					return fmt.Errorf("prefabs: ability %s/%s effect %d: %w", name, slot, i, err)
				}
			}
		}
	}
	for name, h := range t.Hostiles {
		if err := h.validate(); err != nil {
			return fmt.Errorf("prefabs: hostile %q: %w", name, err)
		}
	}
	for name, h := range t.Bosses {
		if err := h.validate(); err != nil {
			return fmt.Errorf("prefabs: boss %q: %w", name, err)
		}
	}
	for _, typ := range t.Spawn.Types {
		if _, ok := t.Hostiles[typ]; !ok {
			return fmt.Errorf("prefabs: spawn type %q: %w", typ, ErrUnknownHostile)
		}
	}
	for _, m := range t.Milestones {
		if _, ok := t.Bosses[m.Boss]; !ok {
			return fmt.Errorf("prefabs: milestone %d boss %q: %w", m.Kills, m.Boss, ErrUnknownHostile)
		}
	}
	return nil
}

func (fx EffectSpec) validate() error {
	switch fx.Kind {
	case EffectDash, EffectTeleport, EffectHeal, EffectSlow, EffectKnockback, EffectProjectile:
	case EffectMarker, EffectArea:
		if fx.Radius <= 0 {
			return fmt.Errorf("%s needs a positive radius", fx.Kind)
		}
	default:
		return fmt.Errorf("unknown effect kind %q", fx.Kind)
	}
	switch fx.At {
	case "", AnchorPlayer, AnchorAim:
	default:
		return fmt.Errorf("unknown anchor %q", fx.At)
	}
	return nil
}

func (h HostileSpec) validate() error {
	if h.Size <= 0 || h.Health <= 0 {
		return fmt.Errorf("size and health must be positive")
	}
	switch h.Attack {
	case "melee", "ranged":
	default:
		return fmt.Errorf("unknown attack %q", h.Attack)
	}
	return nil
}

// CharacterNames returns the playable characters in a stable order.
func (t *TuningSpec) CharacterNames() []string {
	names := make([]string, 0, len(t.Characters))
	for name := range t.Characters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *TuningSpec) Character(name string) (CharacterSpec, error) {
	c, ok := t.Characters[name]
	if !ok {
		return CharacterSpec{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
	}
	return c, nil
}

// Hostile looks a type up among regular hostiles and bosses. boss reports
// which table it came from.
func (t *TuningSpec) Hostile(name string) (spec HostileSpec, boss bool, err error) {
	if h, ok := t.Hostiles[name]; ok {
		return h, false, nil
	}
	if h, ok := t.Bosses[name]; ok {
		return h, true, nil
	}
	return HostileSpec{}, false, fmt.Errorf("%w: %q", ErrUnknownHostile, name)
}

// EffectDuration returns the effect's lifetime, falling back to the table default.
func (t *TuningSpec) EffectDuration(fx EffectSpec) int {
	if fx.Duration > 0 {
		return fx.Duration
	}
	return t.Effect.Duration
}

// EffectGrowth returns the per-tick radius growth for fx.
func (t *TuningSpec) EffectGrowth(fx EffectSpec) float64 {
	if fx.Growth != nil {
		return *fx.Growth
	}
	return t.Effect.Growth
}
