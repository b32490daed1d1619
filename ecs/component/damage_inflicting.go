package component

// DamageInflicting deals damage to shootable entities on contact. Attached
// to projectiles and hazards; projectiles are destroyed on first impact.
type DamageInflicting struct {
	Amount           int
	DestroyOnContact bool
}

var DamageInflictingComponent = New[DamageInflicting]()
