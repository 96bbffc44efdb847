package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/madzslay/ecs/component"
	"github.com/milk9111/madzslay/session"
)

var abilityKeys = [component.SlotCount]ebiten.Key{
	component.SlotQ: ebiten.KeyQ,
	component.SlotW: ebiten.KeyW,
	component.SlotE: ebiten.KeyE,
	component.SlotR: ebiten.KeyR,
}

// Input turns mouse and keyboard state into session intents. Holding the
// left button on a hostile attacks it, holding it elsewhere walks there, and
// releasing it stops both.
type Input struct {
	holding bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Reset() {
	in.holding = false
}

func (in *Input) Apply(sess *session.Session) {
	if in == nil || sess == nil {
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	sess.SetHover(x, y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.holding = true
		if e, ok := sess.PickHostile(x, y); ok {
			sess.SetAttackTarget(e)
		} else {
			sess.SetMoveTarget(x, y)
		}
	case in.holding && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if _, attacking := sess.AttackTarget(); !attacking {
			sess.SetMoveTarget(x, y)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		in.holding = false
		sess.ClearIntent()
	}

	for slot, key := range abilityKeys {
		if inpututil.IsKeyJustPressed(key) {
			sess.CastAbility(component.Slot(slot), x, y)
		}
	}
}
