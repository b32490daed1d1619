package system

import (
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

const (
	walkFrameTime  = 0.1
	walkFrameCount = 4
	dyingDuration  = 0.8
)

// PlayerAnimationSystem advances the player's animation and owns the
// Dying -> Dead transition: Dead is only entered once the death sequence has
// played out, which is the animation half of the dual-signal death check.
type PlayerAnimationSystem struct {
	player *PlayerHandle
}

func NewPlayerAnimationSystem(player *PlayerHandle) *PlayerAnimationSystem {
	return &PlayerAnimationSystem{player: player}
}

func (s *PlayerAnimationSystem) Update(w *ecs.World, dt float64) {
	ctrl, ok := ecs.Get(w, s.player.Entity, component.PlayerControlledComponent)
	if !ok {
		return
	}
	anim, ok := ecs.Get(w, s.player.Entity, component.AnimationComponent)
	if !ok {
		return
	}

	if int(ctrl.State) != anim.TrackedState {
		anim.TrackedState = int(ctrl.State)
		anim.StateTimer = 0
		anim.Frame = 0
		anim.FrameTimer = 0
	}
	anim.StateTimer += dt

	switch ctrl.State {
	case component.PlayerStateWalking:
		anim.FrameTimer += dt
		for anim.FrameTimer >= walkFrameTime {
			anim.FrameTimer -= walkFrameTime
			anim.Frame = (anim.Frame + 1) % walkFrameCount
		}
	case component.PlayerStateDying:
		if anim.StateTimer >= dyingDuration {
			ctrl.State = component.PlayerStateDead
		}
	}
}
