package component

import (
	"testing"

	"pgregory.net/rapid"
)

func TestHealthApplyDamage(t *testing.T) {
	cases := []struct {
		name      string
		max       float64
		hits      []float64
		wantHP    float64
		wantKills int
	}{
		{"partial", 20, []float64{5}, 15, 0},
		{"exact_kill", 20, []float64{10, 10}, 0, 1},
		{"overkill_clamps", 20, []float64{50}, 0, 1},
		{"hits_after_death_ignored", 20, []float64{25, 10, 10}, 0, 1},
		{"negative_ignored", 20, []float64{-5}, 20, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(c.max)
			kills := 0
			for _, d := range c.hits {
				if h.ApplyDamage(d) {
					kills++
				}
			}
			if h.Current != c.wantHP {
				t.Fatalf("Current = %v, want %v", h.Current, c.wantHP)
			}
			if kills != c.wantKills {
				t.Fatalf("kills = %d, want %d", kills, c.wantKills)
			}
		})
	}
}

func TestHealthHealCapsAtMax(t *testing.T) {
	h := NewHealth(30)
	h.ApplyDamage(20)
	h.Heal(25)
	if h.Current != 30 {
		t.Fatalf("Current = %v, want 30", h.Current)
	}

	h.ApplyDamage(100)
	h.Heal(10)
	if h.Current != 0 {
		t.Fatalf("dead entities must not heal, got %v", h.Current)
	}
}

func TestHealthNeverNegativeAndCreditsOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewHealth(rapid.Float64Range(1, 200).Draw(t, "max"))
		hits := rapid.SliceOf(rapid.Float64Range(-10, 80)).Draw(t, "hits")

		credits := 0
		for _, d := range hits {
			if h.ApplyDamage(d) {
				credits++
			}
			if h.Current < 0 {
				t.Fatalf("health went negative: %v", h.Current)
			}
		}
		if credits > 1 {
			t.Fatalf("credited %d times", credits)
		}
		if credits == 1 && h.Current != 0 {
			t.Fatalf("credited but health is %v", h.Current)
		}
	})
}
