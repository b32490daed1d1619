package component

import "github.com/gh-fork-dump/RigelEngine/base"

// WorldPosition is an entity's top-left tile coordinate in the map grid.
type WorldPosition struct {
	X int
	Y int
}

func (p WorldPosition) Vec() base.Vec2 {
	return base.Vec2{X: p.X, Y: p.Y}
}

var WorldPositionComponent = New[WorldPosition]()
