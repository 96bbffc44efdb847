package component

import (
	"testing"

	"pgregory.net/rapid"
)

func TestManaSpend(t *testing.T) {
	m := &Mana{Max: 100, Current: 100}
	if !m.Spend(20) || m.Current != 80 {
		t.Fatalf("expected 80 after spending 20, got %v", m.Current)
	}
	if m.Spend(90) {
		t.Fatalf("spend beyond current should fail")
	}
	if m.Current != 80 {
		t.Fatalf("failed spend must not debit, got %v", m.Current)
	}
}

func TestManaRegenerateCaps(t *testing.T) {
	m := &Mana{Max: 100, Current: 99.99, Regen: 0.05}
	m.Regenerate()
	if m.Current != 100 {
		t.Fatalf("Current = %v, want 100", m.Current)
	}
}

func TestManaStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := &Mana{Max: 100, Current: rapid.Float64Range(0, 100).Draw(t, "start"), Regen: 0.05}
		ops := rapid.SliceOf(rapid.Float64Range(0, 120)).Draw(t, "costs")
		for _, cost := range ops {
			m.Spend(cost)
			m.Regenerate()
			if m.Current < 0 || m.Current > m.Max {
				t.Fatalf("mana out of range: %v", m.Current)
			}
		}
	})
}
