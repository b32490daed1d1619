package data

// InputState is a live snapshot of the currently held gameplay keys. It is
// rewritten by raw input translation every frame and read by the
// input-consuming systems; there is no historical buffering.
type InputState struct {
	MovingUp    bool
	MovingDown  bool
	MovingLeft  bool
	MovingRight bool
	Jumping     bool
	Shooting    bool
}
