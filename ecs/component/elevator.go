package component

// Elevator is a platform the player can ride vertically while holding
// up or down.
type Elevator struct {
	Speed float64

	// Remainder accumulates fractional movement between frames.
	Remainder float64
}

var ElevatorComponent = New[Elevator]()
