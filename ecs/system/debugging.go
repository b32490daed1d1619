package system

import (
	"image/color"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
	"github.com/gh-fork-dump/RigelEngine/renderer"
)

var (
	collisionEdgeColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	climbableColor     = color.RGBA{R: 255, G: 100, B: 255, A: 220}
	ladderColor        = color.RGBA{R: 0, G: 100, B: 255, A: 220}
	flammableColor     = color.RGBA{R: 255, G: 127, B: 0, A: 220}
	gridColor          = color.RGBA{R: 255, G: 255, B: 255, A: 190}
	geometryLinkColor  = color.RGBA{R: 0, G: 255, B: 255, A: 190}
	damagingBoxColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	defaultBoxColor    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// DebuggingSystem draws diagnostic overlays into the viewport target: world
// collision edges and tile attributes, entity bounding boxes, and the tile
// grid. The three displays toggle independently and the system never mutates
// simulation state.
type DebuggingSystem struct {
	target       renderer.Renderer
	scrollOffset *base.Vec2
	worldMap     *data.Map

	showBoundingBoxes      bool
	showWorldCollisionData bool
	showGrid               bool
}

func NewDebuggingSystem(target renderer.Renderer, scrollOffset *base.Vec2, worldMap *data.Map) *DebuggingSystem {
	return &DebuggingSystem{target: target, scrollOffset: scrollOffset, worldMap: worldMap}
}

func (s *DebuggingSystem) ToggleBoundingBoxDisplay() {
	s.showBoundingBoxes = !s.showBoundingBoxes
}

func (s *DebuggingSystem) ToggleWorldCollisionDataDisplay() {
	s.showWorldCollisionData = !s.showWorldCollisionData
}

func (s *DebuggingSystem) ToggleGridDisplay() {
	s.showGrid = !s.showGrid
}

func (s *DebuggingSystem) ShowingBoundingBoxes() bool      { return s.showBoundingBoxes }
func (s *DebuggingSystem) ShowingWorldCollisionData() bool { return s.showWorldCollisionData }
func (s *DebuggingSystem) ShowingGrid() bool               { return s.showGrid }

func (s *DebuggingSystem) Update(w *ecs.World, dt float64) {
	if s.showWorldCollisionData {
		s.drawCollisionData()
	}
	if s.showBoundingBoxes {
		s.drawBoundingBoxes(w)
	}
	if s.showGrid {
		s.drawGrid()
	}
}

func (s *DebuggingSystem) drawCollisionData() {
	for y := 0; y < data.ViewportHeightTiles; y++ {
		for x := 0; x < data.ViewportWidthTiles; x++ {
			col := x + s.scrollOffset.X
			row := y + s.scrollOffset.Y
			if col >= s.worldMap.Width() || row >= s.worldMap.Height() {
				continue
			}

			collision := s.worldMap.CollisionData(col, row)
			left := x * data.TileSize
			top := y * data.TileSize
			right := (x + 1) * data.TileSize
			bottom := (y + 1) * data.TileSize

			if collision.IsSolidOn(data.SolidTop) {
				s.target.DrawLine(left, top, right, top, collisionEdgeColor)
			}
			if collision.IsSolidOn(data.SolidRight) {
				s.target.DrawLine(right, top, right, bottom, collisionEdgeColor)
			}
			if collision.IsSolidOn(data.SolidBottom) {
				s.target.DrawLine(left, bottom, right, bottom, collisionEdgeColor)
			}
			if collision.IsSolidOn(data.SolidLeft) {
				s.target.DrawLine(left, top, left, bottom, collisionEdgeColor)
			}

			attrs := s.worldMap.Attributes(col, row)
			if attrs.Climbable {
				s.target.DrawRectangle(left, top, data.TileSize, data.TileSize, climbableColor)
			}
			if attrs.Ladder {
				s.target.DrawRectangle(left, top, data.TileSize, data.TileSize, ladderColor)
			}
			if attrs.Flammable {
				s.target.DrawRectangle(left, top, data.TileSize, data.TileSize, flammableColor)
			}
		}
	}
}

func (s *DebuggingSystem) drawBoundingBoxes(w *ecs.World) {
	ecs.ForEach(w, component.BoundingBoxComponent, func(e ecs.Entity, bbox *component.BoundingBox) {
		pos, ok := ecs.Get(w, e, component.WorldPositionComponent)
		if !ok {
			return
		}
		box := bbox.ToWorldSpace(*pos)
		s.target.DrawRectangle(
			(box.Left()-s.scrollOffset.X)*data.TileSize,
			(box.Top()-s.scrollOffset.Y)*data.TileSize,
			box.Size.Width*data.TileSize,
			box.Size.Height*data.TileSize,
			s.colorForEntity(w, e),
		)
	})

	ecs.ForEach(w, component.MapGeometryLinkComponent, func(e ecs.Entity, link *component.MapGeometryLink) {
		section := link.LinkedGeometrySection
		s.target.DrawRectangle(
			(section.Left()-s.scrollOffset.X)*data.TileSize,
			(section.Top()-s.scrollOffset.Y)*data.TileSize,
			section.Size.Width*data.TileSize,
			section.Size.Height*data.TileSize,
			geometryLinkColor,
		)
	})
}

func (s *DebuggingSystem) colorForEntity(w *ecs.World, e ecs.Entity) color.RGBA {
	if ecs.Has(w, e, component.PlayerDamagingComponent) {
		return damagingBoxColor
	}
	return defaultBoxColor
}

func (s *DebuggingSystem) drawGrid() {
	for x := 0; x <= data.ViewportWidthTiles; x++ {
		s.target.DrawLine(x*data.TileSize, 0, x*data.TileSize, data.ViewportHeight, gridColor)
	}
	for y := 0; y <= data.ViewportHeightTiles; y++ {
		s.target.DrawLine(0, y*data.TileSize, data.ViewportWidth, y*data.TileSize, gridColor)
	}
}
