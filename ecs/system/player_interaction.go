package system

import (
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

// PlayerInteractionSystem handles non-combat contact: collectables touching
// the player are applied to the player model and removed from the world.
type PlayerInteractionSystem struct {
	player *PlayerHandle
	model  *data.PlayerModel
	sounds SoundPlayer
}

func NewPlayerInteractionSystem(player *PlayerHandle, model *data.PlayerModel, sounds SoundPlayer) *PlayerInteractionSystem {
	return &PlayerInteractionSystem{player: player, model: model, sounds: sounds}
}

func (s *PlayerInteractionSystem) Update(w *ecs.World, dt float64) {
	playerBox, ok := worldSpaceBox(w, s.player.Entity)
	if !ok {
		return
	}

	ecs.ForEach(w, component.CollectableComponent, func(e ecs.Entity, c *component.Collectable) {
		box, ok := worldSpaceBox(w, e)
		if !ok || !box.Intersects(playerBox) {
			return
		}

		s.model.Score += c.GivenScore
		if c.GivenHealth > 0 {
			s.model.GiveHealth(c.GivenHealth)
		}
		if c.GivenAmmo > 0 {
			s.model.GiveAmmo(c.GivenAmmo)
		}
		if c.GivenItem != "" && !s.model.HasItem(c.GivenItem) {
			s.model.Inventory = append(s.model.Inventory, c.GivenItem)
		}

		w.DestroyEntity(e)
		if s.sounds != nil {
			s.sounds.PlaySound(SoundPickup)
		}
	})
}
