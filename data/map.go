package data

import "github.com/gh-fork-dump/RigelEngine/base"

// SolidEdge flags describe which edges of a tile block movement.
type SolidEdge uint8

const (
	SolidTop SolidEdge = 1 << iota
	SolidRight
	SolidBottom
	SolidLeft

	SolidAll = SolidTop | SolidRight | SolidBottom | SolidLeft
)

// CollisionData is the per-tile edge solidity mask.
type CollisionData struct {
	SolidEdges SolidEdge
}

// IsSolidOn reports whether the given edge of the tile blocks movement.
func (c CollisionData) IsSolidOn(edge SolidEdge) bool {
	return c.SolidEdges&edge != 0
}

// TileAttributes holds the gameplay flags of a tile, queried by physics and
// the debug overlay.
type TileAttributes struct {
	Climbable bool
	Ladder    bool
	Flammable bool
}

// Map is a 2-D grid of tiles with per-cell collision edges and attributes.
// It is mutable during play (destructible geometry); the orchestrator keeps a
// pristine Clone for restarts. Grid dimensions never change for the lifetime
// of a level.
type Map struct {
	width  int
	height int
	cells  []CollisionData
	attrs  []TileAttributes
}

// NewMap creates an empty (fully passable) map of the given dimensions.
func NewMap(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic("data: map dimensions must be positive")
	}
	return &Map{
		width:  width,
		height: height,
		cells:  make([]CollisionData, width*height),
		attrs:  make([]TileAttributes, width*height),
	}
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// CollisionData returns the edge mask at (x, y). Out-of-bounds tiles are
// treated as fully solid so actors cannot leave the map.
func (m *Map) CollisionData(x, y int) CollisionData {
	if !m.inBounds(x, y) {
		return CollisionData{SolidEdges: SolidAll}
	}
	return m.cells[y*m.width+x]
}

// SetCollisionData replaces the edge mask at (x, y). No-op out of bounds.
func (m *Map) SetCollisionData(x, y int, c CollisionData) {
	if !m.inBounds(x, y) {
		return
	}
	m.cells[y*m.width+x] = c
}

// Attributes returns the tile attributes at (x, y).
func (m *Map) Attributes(x, y int) TileAttributes {
	if !m.inBounds(x, y) {
		return TileAttributes{}
	}
	return m.attrs[y*m.width+x]
}

// SetAttributes replaces the tile attributes at (x, y). No-op out of bounds.
func (m *Map) SetAttributes(x, y int, a TileAttributes) {
	if !m.inBounds(x, y) {
		return
	}
	m.attrs[y*m.width+x] = a
}

// ClearSection removes collision data and attributes from every tile inside
// the given rect. Used when destructible geometry is shot away.
func (m *Map) ClearSection(section base.Rect) {
	for y := section.Top(); y <= section.Bottom(); y++ {
		for x := section.Left(); x <= section.Right(); x++ {
			m.SetCollisionData(x, y, CollisionData{})
			m.SetAttributes(x, y, TileAttributes{})
		}
	}
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	clone := &Map{
		width:  m.width,
		height: m.height,
		cells:  make([]CollisionData, len(m.cells)),
		attrs:  make([]TileAttributes, len(m.attrs)),
	}
	copy(clone.cells, m.cells)
	copy(clone.attrs, m.attrs)
	return clone
}

// Restore copies snapshot's contents into m without changing m's identity, so
// systems holding the map pointer see the restored state.
func (m *Map) Restore(snapshot *Map) {
	m.width = snapshot.width
	m.height = snapshot.height
	m.cells = append(m.cells[:0], snapshot.cells...)
	m.attrs = append(m.attrs[:0], snapshot.attrs...)
}

// Equal reports whether both maps hold identical dimensions, collision data
// and attributes.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	for i := range m.attrs {
		if m.attrs[i] != other.attrs[i] {
			return false
		}
	}
	return true
}
