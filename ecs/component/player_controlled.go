package component

// PlayerState is the player's control state. Dead is terminal within a level
// instance; the death check requires it in addition to zero health.
type PlayerState int

const (
	PlayerStateStanding PlayerState = iota
	PlayerStateWalking
	PlayerStateJumping
	PlayerStateFalling
	PlayerStateClimbing
	PlayerStateDying
	PlayerStateDead
)

// Orientation is the player's facing direction.
type Orientation int

const (
	OrientationLeft Orientation = iota
	OrientationRight
)

// PlayerControlled marks the player entity and carries its control state.
type PlayerControlled struct {
	State       PlayerState
	Orientation Orientation
}

var PlayerControlledComponent = New[PlayerControlled]()
