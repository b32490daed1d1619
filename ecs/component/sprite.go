package component

import "image/color"

// Sprite is the draw request for an entity: a flat-colored box sized like the
// entity's bounding box, drawn by the rendering system.
type Sprite struct {
	Color     color.RGBA
	DrawOrder int
}

var SpriteComponent = New[Sprite]()
