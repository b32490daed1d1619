package component

import "github.com/gh-fork-dump/RigelEngine/base"

// MapGeometryLink ties a shootable entity to a section of map geometry.
// When the entity is destroyed, the section's collision data is cleared,
// which is how destructible walls work. The level snapshot restores the
// section on restart.
type MapGeometryLink struct {
	LinkedGeometrySection base.Rect
}

var MapGeometryLinkComponent = New[MapGeometryLink]()
