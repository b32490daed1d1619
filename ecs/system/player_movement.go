package system

import (
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

const (
	playerMoveSpeed  = 8.0
	playerJumpSpeed  = 18.0
	playerClimbSpeed = 5.0
)

// PlayerMovementSystem turns held input into movement intent on the player's
// Physical component. It runs before physics; physics resolves the intent
// against the map.
type PlayerMovementSystem struct {
	player   *PlayerHandle
	inputs   *data.InputState
	worldMap *data.Map
}

func NewPlayerMovementSystem(player *PlayerHandle, inputs *data.InputState, worldMap *data.Map) *PlayerMovementSystem {
	return &PlayerMovementSystem{player: player, inputs: inputs, worldMap: worldMap}
}

func (s *PlayerMovementSystem) Update(w *ecs.World, dt float64) {
	ctrl, ok := ecs.Get(w, s.player.Entity, component.PlayerControlledComponent)
	if !ok {
		return
	}
	phys, ok := ecs.Get(w, s.player.Entity, component.PhysicalComponent)
	if !ok {
		return
	}

	if ctrl.State == component.PlayerStateDying || ctrl.State == component.PlayerStateDead {
		phys.VelocityX = 0
		return
	}

	moveX := 0.0
	if s.inputs.MovingLeft {
		moveX -= 1
		ctrl.Orientation = component.OrientationLeft
	}
	if s.inputs.MovingRight {
		moveX += 1
		ctrl.Orientation = component.OrientationRight
	}
	phys.VelocityX = moveX * playerMoveSpeed

	if s.onClimbableTile(w) && (s.inputs.MovingUp || ctrl.State == component.PlayerStateClimbing) {
		s.climb(ctrl, phys)
		return
	}
	if ctrl.State == component.PlayerStateClimbing {
		// Climbed off the ladder.
		phys.GravityAffected = true
		ctrl.State = component.PlayerStateFalling
		return
	}

	if s.inputs.Jumping && phys.OnGround {
		phys.VelocityY = -playerJumpSpeed
		ctrl.State = component.PlayerStateJumping
		return
	}

	switch {
	case !phys.OnGround && phys.VelocityY < 0:
		ctrl.State = component.PlayerStateJumping
	case !phys.OnGround && phys.VelocityY > 0:
		ctrl.State = component.PlayerStateFalling
	case moveX != 0:
		ctrl.State = component.PlayerStateWalking
	default:
		ctrl.State = component.PlayerStateStanding
	}
}

func (s *PlayerMovementSystem) climb(ctrl *component.PlayerControlled, phys *component.Physical) {
	ctrl.State = component.PlayerStateClimbing
	phys.GravityAffected = false
	phys.VelocityY = 0
	if s.inputs.MovingUp {
		phys.VelocityY = -playerClimbSpeed
	}
	if s.inputs.MovingDown {
		phys.VelocityY = playerClimbSpeed
	}
}

// onClimbableTile reports whether any tile inside the player's box is a
// ladder or climbable.
func (s *PlayerMovementSystem) onClimbableTile(w *ecs.World) bool {
	box, ok := worldSpaceBox(w, s.player.Entity)
	if !ok {
		return false
	}
	for y := box.Top(); y <= box.Bottom(); y++ {
		for x := box.Left(); x <= box.Right(); x++ {
			attrs := s.worldMap.Attributes(x, y)
			if attrs.Ladder || attrs.Climbable {
				return true
			}
		}
	}
	return false
}
