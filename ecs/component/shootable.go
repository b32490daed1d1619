package component

// Shootable gives an entity hit points and a score bounty for destroying it.
type Shootable struct {
	Health     int
	GivenScore int
}

var ShootableComponent = New[Shootable]()
