package system

import (
	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
	"github.com/gh-fork-dump/RigelEngine/loader"
)

const autoScrollSpeed = 2.0

// MapScrollSystem keeps the shared scroll offset pointed at the action:
// centered on the player in follow mode, creeping right in auto-scroll mode.
// Centering is a pure function of the player position, so the restart
// reconciliation tick (dt = 0) resynchronizes the camera immediately.
type MapScrollSystem struct {
	player       *PlayerHandle
	scrollOffset *base.Vec2
	worldMap     *data.Map
	mode         loader.ScrollMode

	autoRemainder float64
}

func NewMapScrollSystem(player *PlayerHandle, scrollOffset *base.Vec2, worldMap *data.Map, mode loader.ScrollMode) *MapScrollSystem {
	return &MapScrollSystem{player: player, scrollOffset: scrollOffset, worldMap: worldMap, mode: mode}
}

func (s *MapScrollSystem) Update(w *ecs.World, dt float64) {
	if s.mode == loader.ScrollModeAutoScroll {
		s.autoRemainder += autoScrollSpeed * dt
		for s.autoRemainder >= 1 {
			s.autoRemainder--
			s.scrollOffset.X++
		}
		s.clamp()
		return
	}

	pos, ok := ecs.Get(w, s.player.Entity, component.WorldPositionComponent)
	if !ok {
		return
	}
	s.scrollOffset.X = pos.X - data.ViewportWidthTiles/2
	s.scrollOffset.Y = pos.Y - data.ViewportHeightTiles/2
	s.clamp()
}

func (s *MapScrollSystem) clamp() {
	maxX := s.worldMap.Width() - data.ViewportWidthTiles
	maxY := s.worldMap.Height() - data.ViewportHeightTiles
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if s.scrollOffset.X < 0 {
		s.scrollOffset.X = 0
	}
	if s.scrollOffset.Y < 0 {
		s.scrollOffset.Y = 0
	}
	if s.scrollOffset.X > maxX {
		s.scrollOffset.X = maxX
	}
	if s.scrollOffset.Y > maxY {
		s.scrollOffset.Y = maxY
	}
}
