package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/madzslay/common"
	"github.com/milk9111/madzslay/ecs"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/prefabs"
	"github.com/milk9111/madzslay/session"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{R: 0x1b, G: 0x26, B: 0x31, A: 0xff}
	obstacleColor   = color.RGBA{R: 0x56, G: 0x65, B: 0x73, A: 0xff}
	playerShotColor = color.RGBA{R: 0xf7, G: 0xdc, B: 0x6f, A: 0xff}
	enemyShotColor  = color.RGBA{R: 0xff, G: 0x57, B: 0x33, A: 0xff}
	effectColor     = color.RGBA{R: 0x85, G: 0xc1, B: 0xe9, A: 0x60}
	markerColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x90}
	petColor        = color.RGBA{R: 0xf8, G: 0xc4, B: 0x71, A: 0xff}
	healthBarColor  = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	manaBarColor    = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	barBackColor    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0}
	playerFallback  = color.RGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
)

// drawWorld draws every entity as a fallback shape.
func drawWorld(screen *ebiten.Image, sess *session.Session, tuning *prefabs.TuningSpec) {
	screen.Fill(backgroundColor)
	w := sess.World()

	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		r := o.Rect
		vector.FillRect(screen, float32(r.L), float32(r.B), float32(r.R-r.L), float32(r.T-r.B), obstacleColor, false)
	})

	ecs.ForEach2(w, component.AbilityEffectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, fx *component.AbilityEffect, t *component.Transform) {
		if fx.Damage > 0 {
			vector.FillCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(fx.Radius), effectColor, true)
			return
		}
		vector.StrokeCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(fx.Radius), 2, markerColor, true)
	})

	target, hasTarget := w.AttackTarget()
	ecs.ForEach3(w, component.HostileComponent.Kind(), component.TransformComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Hostile, t *component.Transform, hp *component.Health) {
		x, y, r := float32(t.Pos.X), float32(t.Pos.Y), float32(t.Radius)
		vector.FillCircle(screen, x, y, r, h.Tint, true)
		if h.AnimRemaining > 0 {
			vector.StrokeCircle(screen, x, y, r+4, 3, enemyShotColor, true)
		}
		if hasTarget && e == target {
			vector.StrokeCircle(screen, x, y, r+2, 2, playerShotColor, true)
		}
		drawBar(screen, x-r, y-r-8, 2*r, 4, hp.Current/hp.Max, healthBarColor)
	})

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Projectile, t *component.Transform) {
		clr := playerShotColor
		if p.Faction == component.FactionHostile {
			clr = enemyShotColor
		}
		vector.FillCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(t.Radius), clr, true)
	})

	ecs.ForEach2(w, component.PetComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Pet, t *component.Transform) {
		vector.FillCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(t.Radius), petColor, true)
	})

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		clr := color.Color(playerFallback)
		if spec, ok := tuning.Characters[p.Character]; ok {
			clr = spec.Color.Or(playerFallback)
		}
		x, y, r := float32(t.Pos.X), float32(t.Pos.Y), float32(t.Radius)
		vector.FillCircle(screen, x, y, r, clr, true)
		eye := r / 2
		if !t.FacingRight {
			eye = -eye
		}
		vector.FillCircle(screen, x+eye, y-r/3, 2, color.Black, true)
		vector.StrokeLine(screen, x, y, float32(p.Hover.X), float32(p.Hover.Y), 1, markerColor, true)
	})
}

func drawBar(screen *ebiten.Image, x, y, width, height float32, fraction float64, clr color.Color) {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	fraction = common.Clamp(fraction, 0, 1)
	vector.FillRect(screen, x, y, width, height, barBackColor, false)
	vector.FillRect(screen, x, y, width*float32(fraction), height, clr, false)
}

type hud struct {
	face   ebtext.Face
	banner string
	timer  int
}

func newHUD() *hud {
	return &hud{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

// onEvent turns notable world events into a short banner.
func (h *hud) onEvent(evt ecs.Event) {
	if evt.Type != ecs.EventBossSpawned {
		return
	}
	if spawn, ok := evt.Data.(ecs.SpawnEvent); ok {
		h.banner = fmt.Sprintf("%s approaches!", spawn.Type)
		h.timer = 3 * common.TicksPerSecond
	}
}

func (h *hud) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, h.face, op)
}

func (h *hud) draw(screen *ebiten.Image, snap session.Snapshot) {
	drawBar(screen, 16, 16, 200, 12, snap.Health/snap.MaxHealth, healthBarColor)
	drawBar(screen, 16, 32, 200, 12, snap.Mana/snap.MaxMana, manaBarColor)
	h.text(screen, fmt.Sprintf("%.0f/%.0f", snap.Health, snap.MaxHealth), 224, 16, color.White)
	h.text(screen, fmt.Sprintf("%.0f/%.0f", snap.Mana, snap.MaxMana), 224, 32, color.White)
	h.text(screen, fmt.Sprintf("Kills %d   Time %.0fs", snap.Kills, snap.ElapsedSeconds), 16, 52, color.White)

	for slot := component.SlotQ; slot < component.SlotCount; slot++ {
		x := float32(common.BaseWidth/2-110) + float32(slot)*56
		y := float32(common.BaseHeight - 64)
		vector.FillRect(screen, x, y, 48, 48, barBackColor, false)
		if frac := snap.CooldownFraction(slot); frac > 0 {
			vector.FillRect(screen, x, y+48*float32(1-frac), 48, 48*float32(frac), effectColor, false)
		}
		label := slot.String()
		if rem := snap.CooldownRemaining[slot]; rem > 0 {
			label = fmt.Sprintf("%s %.1f", label, float64(rem)/common.TicksPerSecond)
		}
		h.text(screen, label, float64(x)+6, float64(y)+18, color.White)
	}

	if h.timer > 0 {
		h.timer--
		h.text(screen, h.banner, common.BaseWidth/2-60, 80, enemyShotColor)
	}

	if snap.Lifecycle != session.StatePlaying {
		alpha := uint8(common.Lerp(0, 220, float32(snap.DeathFadeProgress)))
		vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, color.RGBA{A: alpha}, false)
		if snap.DeathFadeProgress > 0.3 {
			h.text(screen, fmt.Sprintf("You died. %d kills.", snap.Kills), common.BaseWidth/2-70, common.BaseHeight/2, color.White)
		}
	}
}
