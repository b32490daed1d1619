package component

// Physical marks an entity as moved by the physics system. Velocities are in
// tiles per second; positions stay integer, so fractional movement
// accumulates in the remainders until a whole tile step is due.
type Physical struct {
	VelocityX float64
	VelocityY float64

	GravityAffected bool

	RemainderX float64
	RemainderY float64

	// Contact flags from the most recent physics pass.
	OnGround     bool
	BlockedLeft  bool
	BlockedRight bool
	BlockedUp    bool
}

var PhysicalComponent = New[Physical]()
