package system

import (
	"image/color"
	"sort"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
	"github.com/gh-fork-dump/RigelEngine/renderer"
)

var (
	solidTileColor  = color.RGBA{R: 0x50, G: 0x50, B: 0x5a, A: 0xff}
	ladderTileColor = color.RGBA{R: 0x64, G: 0x8c, B: 0xc8, A: 0xff}
)

// RenderingSystem draws the visible map slice and all sprites into the
// off-screen viewport target. Everything is flat-colored boxes; real tile
// art is out of scope, the geometry is what matters.
type RenderingSystem struct {
	target       renderer.RenderTarget
	worldMap     *data.Map
	scrollOffset *base.Vec2
	backdrop     color.RGBA
}

func NewRenderingSystem(target renderer.RenderTarget, worldMap *data.Map, scrollOffset *base.Vec2, backdrop color.RGBA) *RenderingSystem {
	return &RenderingSystem{target: target, worldMap: worldMap, scrollOffset: scrollOffset, backdrop: backdrop}
}

func (s *RenderingSystem) Update(w *ecs.World, dt float64) {
	s.target.Clear(s.backdrop)
	s.drawMap()
	s.drawSprites(w)
}

func (s *RenderingSystem) drawMap() {
	for y := 0; y < data.ViewportHeightTiles; y++ {
		for x := 0; x < data.ViewportWidthTiles; x++ {
			col := x + s.scrollOffset.X
			row := y + s.scrollOffset.Y
			if col >= s.worldMap.Width() || row >= s.worldMap.Height() {
				continue
			}

			attrs := s.worldMap.Attributes(col, row)
			switch {
			case attrs.Ladder || attrs.Climbable:
				s.fillTile(x, y, ladderTileColor)
			case s.worldMap.CollisionData(col, row).SolidEdges != 0:
				s.fillTile(x, y, solidTileColor)
			}
		}
	}
}

func (s *RenderingSystem) fillTile(x, y int, c color.RGBA) {
	s.target.FillRectangle(x*data.TileSize, y*data.TileSize, data.TileSize, data.TileSize, c)
}

type spriteDraw struct {
	box    base.Rect
	sprite *component.Sprite
}

func (s *RenderingSystem) drawSprites(w *ecs.World) {
	var draws []spriteDraw
	ecs.ForEach(w, component.SpriteComponent, func(e ecs.Entity, sprite *component.Sprite) {
		box, ok := worldSpaceBox(w, e)
		if !ok {
			return
		}
		draws = append(draws, spriteDraw{box: box, sprite: sprite})
	})
	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].sprite.DrawOrder < draws[j].sprite.DrawOrder
	})

	for _, d := range draws {
		s.target.FillRectangle(
			(d.box.Left()-s.scrollOffset.X)*data.TileSize,
			(d.box.Top()-s.scrollOffset.Y)*data.TileSize,
			d.box.Size.Width*data.TileSize,
			d.box.Size.Height*data.TileSize,
			d.sprite.Color,
		)
	}
}
