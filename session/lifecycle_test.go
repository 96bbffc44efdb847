package session

import (
	"testing"
	"time"
)

func TestLifecycleTransitions(t *testing.T) {
	l := NewLifecycle(2 * time.Second)

	if l.Observe(5, time.Second) {
		t.Fatalf("living player must not start dying")
	}
	if l.State() != StatePlaying || l.Progress() != 0 {
		t.Fatalf("expected playing with no progress, got %s %v", l.State(), l.Progress())
	}

	if !l.Observe(0, 3*time.Second) {
		t.Fatalf("expected the Playing -> Dying transition")
	}
	if l.Observe(0, 4*time.Second) {
		t.Fatalf("transition must only be reported once")
	}
	if l.DiedAt() != 3*time.Second {
		t.Fatalf("DiedAt = %v, want 3s", l.DiedAt())
	}

	if l.Advance(time.Second) {
		t.Fatalf("fade is not complete after 1s")
	}
	if l.Progress() != 0.5 {
		t.Fatalf("Progress = %v, want 0.5", l.Progress())
	}
	if !l.Advance(time.Second) {
		t.Fatalf("fade should complete after 2s")
	}
	if l.Advance(time.Second) {
		t.Fatalf("ended must be reported once")
	}
	if l.State() != StateEnded || l.Progress() != 1 {
		t.Fatalf("expected ended with full progress, got %s %v", l.State(), l.Progress())
	}
}

func TestLifecycleDefaultFade(t *testing.T) {
	l := NewLifecycle(0)
	l.Observe(0, 0)
	if l.Advance(1999 * time.Millisecond) {
		t.Fatalf("default fade is two seconds")
	}
	if !l.Advance(time.Millisecond) {
		t.Fatalf("default fade should complete at two seconds")
	}
}

func TestLifecycleFadeCountsWholeTicks(t *testing.T) {
	cases := []struct {
		name  string
		fade  time.Duration
		ticks int
	}{
		{"default", 0, 120},
		{"half_second", 500 * time.Millisecond, 30},
		{"one_tick", TickDuration, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewLifecycle(c.fade)
			l.Observe(0, 0)
			for i := 1; i < c.ticks; i++ {
				if l.Advance(TickDuration) {
					t.Fatalf("fade completed early on tick %d", i)
				}
			}
			if !l.Advance(TickDuration) {
				t.Fatalf("fade should complete on tick %d", c.ticks)
			}
			if l.Progress() != 1 {
				t.Fatalf("Progress = %v after the fade", l.Progress())
			}
		})
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StatePlaying: "playing",
		StateDying:   "dying",
		StateEnded:   "ended",
		State(9):     "unknown",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Fatalf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
