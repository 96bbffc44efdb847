package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TicksPerSecond is the frame clock rate the tick-counted timers assume.
	TicksPerSecond = 60
)
