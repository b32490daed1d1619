package component

// Invulnerable grants mercy frames after the player takes contact damage.
// Removed by the player damage system when the timer runs out.
type Invulnerable struct {
	TimeLeft float64
}

var InvulnerableComponent = New[Invulnerable]()
