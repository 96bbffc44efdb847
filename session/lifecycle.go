package session

import "time"

// State is the run's life-cycle phase.
type State int

const (
	StatePlaying State = iota
	StateDying
	StateEnded
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

const defaultDeathFade = 2 * time.Second

// fadeSlack absorbs the rounding in TickDuration, so a fade that is a whole
// number of frames long completes on its last frame.
const fadeSlack = time.Microsecond

// Lifecycle sequences Playing -> Dying -> Ended. Dying starts the first time
// the player's health is seen at zero; Ended is reached, and reported once,
// when the death fade completes.
type Lifecycle struct {
	state   State
	fade    time.Duration
	dyingAt time.Duration
	since   time.Duration
	ended   bool
}

func NewLifecycle(fade time.Duration) *Lifecycle {
	if fade <= 0 {
		fade = defaultDeathFade
	}
	return &Lifecycle{fade: fade}
}

func (l *Lifecycle) State() State {
	if l == nil {
		return StatePlaying
	}
	return l.state
}

// Observe checks the player's health after an update pass. now is the run's
// elapsed time and is recorded as the moment of death. It returns true on
// the Playing -> Dying transition only.
func (l *Lifecycle) Observe(playerHealth float64, now time.Duration) bool {
	if l == nil || l.state != StatePlaying || playerHealth > 0 {
		return false
	}
	l.state = StateDying
	l.dyingAt = now
	l.since = 0
	return true
}

// Advance moves the death fade forward by dt. It returns true exactly once,
// on the call where the fade first completes.
func (l *Lifecycle) Advance(dt time.Duration) bool {
	if l == nil || l.state != StateDying {
		return false
	}
	if dt > 0 {
		l.since += dt
	}
	if l.since+fadeSlack < l.fade || l.ended {
		return false
	}
	l.ended = true
	l.state = StateEnded
	return true
}

// Progress is the death fade in [0,1]; 0 while playing.
func (l *Lifecycle) Progress() float64 {
	if l == nil || l.state == StatePlaying {
		return 0
	}
	if l.state == StateEnded {
		return 1
	}
	p := float64(l.since) / float64(l.fade)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// DiedAt returns the run time at which Dying began.
func (l *Lifecycle) DiedAt() time.Duration {
	if l == nil {
		return 0
	}
	return l.dyingAt
}
