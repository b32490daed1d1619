// Package system contains the gameplay systems run by the ingame pipeline.
// Systems hold only borrowed references to the map, player model, and shared
// handles wired in at construction; the orchestrator owns all of them.
package system

import (
	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

// PlayerHandle points at the current player entity. It is shared between the
// orchestrator and every system that needs the player: entities are destroyed
// and recreated on restart, so the handle is re-acquired rather than copied.
type PlayerHandle struct {
	Entity ecs.Entity
}

// SoundPlayer is the slice of the service provider the systems need.
// Calls are synchronous fire-and-forget.
type SoundPlayer interface {
	PlaySound(name string)
}

// Sound effect names passed to the service provider.
const (
	SoundShot        = "SHOT"
	SoundPickup      = "PICKUP"
	SoundExplosion   = "EXPLOSION"
	SoundPlayerDeath = "PLAYER_DEATH"
	SoundPlayerHurt  = "PLAYER_HURT"
)

// worldSpaceBox returns e's bounding box anchored at its world position.
func worldSpaceBox(w *ecs.World, e ecs.Entity) (base.Rect, bool) {
	pos, ok := ecs.Get(w, e, component.WorldPositionComponent)
	if !ok {
		return base.Rect{}, false
	}
	bbox, ok := ecs.Get(w, e, component.BoundingBoxComponent)
	if !ok {
		return base.Rect{}, false
	}
	return bbox.ToWorldSpace(*pos), true
}
