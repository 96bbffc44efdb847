package component

import (
	"testing"

	"pgregory.net/rapid"
)

func TestParseSlot(t *testing.T) {
	cases := map[string]struct {
		slot Slot
		ok   bool
	}{
		"q":   {SlotQ, true},
		"W":   {SlotW, true},
		" e ": {SlotE, true},
		"r":   {SlotR, true},
		"t":   {0, false},
		"":    {0, false},
	}
	for in, want := range cases {
		got, ok := ParseSlot(in)
		if ok != want.ok || (ok && got != want.slot) {
			t.Fatalf("ParseSlot(%q) = %v,%v want %v,%v", in, got, ok, want.slot, want.ok)
		}
	}
	if Slot(7).Valid() || Slot(-1).Valid() {
		t.Fatalf("out-of-range slots must be invalid")
	}
}

func TestLedgerArmAndTick(t *testing.T) {
	l := &AbilityLedger{Max: [SlotCount]int{60, 90, 300, 600}}
	if !l.Ready(SlotQ) {
		t.Fatalf("fresh ledger should be ready")
	}
	l.Arm(SlotQ)
	if l.Ready(SlotQ) || l.Remaining[SlotQ] != 60 {
		t.Fatalf("armed slot should hold 60, got %d", l.Remaining[SlotQ])
	}
	for i := 0; i < 60; i++ {
		l.Tick()
	}
	if !l.Ready(SlotQ) {
		t.Fatalf("slot should be ready after 60 ticks, remaining %d", l.Remaining[SlotQ])
	}
	if l.Ready(Slot(9)) {
		t.Fatalf("invalid slot can never be ready")
	}
}

func TestLedgerCountdownIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		max := rapid.IntRange(0, 700).Draw(t, "max")
		ticks := rapid.IntRange(0, 800).Draw(t, "ticks")

		l := &AbilityLedger{}
		l.Max[SlotR] = max
		l.Arm(SlotR)
		prev := l.Remaining[SlotR]
		for i := 0; i < ticks; i++ {
			l.Tick()
			if l.Remaining[SlotR] > prev || l.Remaining[SlotR] < 0 {
				t.Fatalf("remaining moved from %d to %d", prev, l.Remaining[SlotR])
			}
			prev = l.Remaining[SlotR]
		}
		want := max - ticks
		if want < 0 {
			want = 0
		}
		if l.Remaining[SlotR] != want {
			t.Fatalf("remaining = %d, want %d", l.Remaining[SlotR], want)
		}
	})
}
