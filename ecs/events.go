package ecs

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventKill           = "kill"
	EventBossSpawned    = "boss_spawned"
	EventPlayerDied     = "player_died"
	EventSessionEnded   = "session_ended"
	EventAbilityCast    = "ability_cast"
	EventHostileSpawned = "hostile_spawned"
)

// KillEvent is emitted once per kill credit.
type KillEvent struct {
	Entity Entity
	Type   string
	Boss   bool
}

// SpawnEvent is emitted when the spawn director creates a hostile.
type SpawnEvent struct {
	Entity    Entity
	Type      string
	Threshold int
}

// CastEvent is emitted for every accepted ability cast.
type CastEvent struct {
	Slot  string
	Kills int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
