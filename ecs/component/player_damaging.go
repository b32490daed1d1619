package component

// PlayerDamaging hurts the player on contact.
type PlayerDamaging struct {
	Amount int
}

var PlayerDamagingComponent = New[PlayerDamaging]()
