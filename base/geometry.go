package base

// Vec2 is a position or offset in tile coordinates. Y grows downward.
type Vec2 struct {
	X int
	Y int
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Extents is a width/height pair in tile units.
type Extents struct {
	Width  int
	Height int
}

// Rect is an axis-aligned box of tiles anchored at its top-left corner.
// All edges are inclusive: a Rect of Width 1 covers a single column.
type Rect struct {
	TopLeft Vec2
	Size    Extents
}

func NewRect(x, y, width, height int) Rect {
	return Rect{TopLeft: Vec2{X: x, Y: y}, Size: Extents{Width: width, Height: height}}
}

func (r Rect) Left() int {
	return r.TopLeft.X
}

func (r Rect) Right() int {
	return r.TopLeft.X + r.Size.Width - 1
}

func (r Rect) Top() int {
	return r.TopLeft.Y
}

func (r Rect) Bottom() int {
	return r.TopLeft.Y + r.Size.Height - 1
}

// Intersects reports whether r and other share at least one tile.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() &&
		r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() &&
		r.Bottom() >= other.Top()
}

// Contains reports whether the tile at p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}
