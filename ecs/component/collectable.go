package component

import "github.com/gh-fork-dump/RigelEngine/data"

// Collectable is applied to the player model when picked up, then the
// carrying entity is destroyed.
type Collectable struct {
	GivenScore  int
	GivenHealth int
	GivenAmmo   int
	GivenItem   data.InventoryItem
}

var CollectableComponent = New[Collectable]()
