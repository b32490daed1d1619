package component

// Animation tracks frame progress for animated entities. StateTimer counts
// time spent in the current control/AI state (the player's dying sequence
// uses it to delay the Dead transition).
type Animation struct {
	Frame      int
	FrameTimer float64
	StateTimer float64

	// TrackedState detects control-state changes so StateTimer can restart.
	TrackedState int
}

var AnimationComponent = New[Animation]()
