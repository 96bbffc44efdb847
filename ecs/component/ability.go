package component

import "strings"

// Slot is one of the four ability keys.
type Slot int

const (
	SlotQ Slot = iota
	SlotW
	SlotE
	SlotR
	SlotCount
)

var slotNames = [SlotCount]string{"q", "w", "e", "r"}

func (s Slot) Valid() bool {
	return s >= 0 && s < SlotCount
}

func (s Slot) String() string {
	if !s.Valid() {
		return "?"
	}
	return slotNames[s]
}

// ParseSlot accepts "q", "W" and so on.
func ParseSlot(name string) (Slot, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// AbilityLedger tracks per-slot cooldowns in ticks and mana costs.
type AbilityLedger struct {
	Remaining [SlotCount]int
	Max       [SlotCount]int
	Cost      [SlotCount]float64
}

var AbilityLedgerComponent = NewComponent[AbilityLedger]()

// Ready reports whether the slot is off cooldown.
func (l *AbilityLedger) Ready(s Slot) bool {
	return l != nil && s.Valid() && l.Remaining[s] <= 0
}

// Arm starts the slot's full cooldown.
func (l *AbilityLedger) Arm(s Slot) {
	if l == nil || !s.Valid() {
		return
	}
	l.Remaining[s] = l.Max[s]
}

// Tick moves every slot one tick toward zero.
func (l *AbilityLedger) Tick() {
	if l == nil {
		return
	}
	for i := range l.Remaining {
		if l.Remaining[i] > 0 {
			l.Remaining[i]--
		}
	}
}
