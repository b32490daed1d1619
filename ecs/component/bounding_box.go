package component

import "github.com/gh-fork-dump/RigelEngine/base"

// BoundingBox is an entity's collision box, expressed as an offset from its
// world position plus a size in tiles.
type BoundingBox struct {
	Offset base.Vec2
	Size   base.Extents
}

// ToWorldSpace anchors the box at pos and returns it in world coordinates.
func (b BoundingBox) ToWorldSpace(pos WorldPosition) base.Rect {
	return base.Rect{
		TopLeft: pos.Vec().Add(b.Offset),
		Size:    b.Size,
	}
}

var BoundingBoxComponent = New[BoundingBox]()
