package system

import (
	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

// ElevatorSystem moves elevator platforms, and the player standing on them,
// vertically while up or down is held. It runs first in the pipeline so the
// player's position is settled before movement intent is computed.
type ElevatorSystem struct {
	player   *PlayerHandle
	worldMap *data.Map

	inputs data.InputState
}

func NewElevatorSystem(player *PlayerHandle, worldMap *data.Map) *ElevatorSystem {
	return &ElevatorSystem{player: player, worldMap: worldMap}
}

// SetInputState pushes the current frame's held keys.
func (s *ElevatorSystem) SetInputState(inputs data.InputState) {
	s.inputs = inputs
}

func (s *ElevatorSystem) Update(w *ecs.World, dt float64) {
	if !s.inputs.MovingUp && !s.inputs.MovingDown {
		return
	}

	playerBox, ok := worldSpaceBox(w, s.player.Entity)
	if !ok {
		return
	}

	ecs.ForEach(w, component.ElevatorComponent, func(e ecs.Entity, elevator *component.Elevator) {
		pos, ok := ecs.Get(w, e, component.WorldPositionComponent)
		if !ok {
			return
		}
		bbox, ok := ecs.Get(w, e, component.BoundingBoxComponent)
		if !ok {
			return
		}
		box := bbox.ToWorldSpace(*pos)
		if !s.playerRides(playerBox, box) {
			return
		}

		elevator.Remainder += elevator.Speed * dt
		steps := int(elevator.Remainder)
		if steps == 0 {
			return
		}
		elevator.Remainder -= float64(steps)

		dir := 1
		if s.inputs.MovingUp {
			dir = -1
		}

		playerPos, ok := ecs.Get(w, s.player.Entity, component.WorldPositionComponent)
		if !ok {
			return
		}
		for i := 0; i < steps; i++ {
			if !s.canMove(box, dir) {
				break
			}
			pos.Y += dir
			playerPos.Y += dir
			box = bbox.ToWorldSpace(*pos)
		}
	})
}

// playerRides reports whether the player stands directly on the platform.
func (s *ElevatorSystem) playerRides(playerBox, platform base.Rect) bool {
	return playerBox.Bottom()+1 == platform.Top() &&
		playerBox.Right() >= platform.Left() &&
		playerBox.Left() <= platform.Right()
}

func (s *ElevatorSystem) canMove(box base.Rect, dir int) bool {
	var row int
	var edge data.SolidEdge
	if dir > 0 {
		row = box.Bottom() + 1
		edge = data.SolidTop
	} else {
		row = box.Top() - 1
		edge = data.SolidBottom
	}
	for x := box.Left(); x <= box.Right(); x++ {
		if s.worldMap.CollisionData(x, row).IsSolidOn(edge) {
			return false
		}
	}
	return true
}
