package system

import (
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

const mercyTime = 1.5

// PlayerDamageSystem applies contact damage to the player model. It runs
// right after physics so overlaps are tested against resolved positions.
// Reaching zero health puts the control state into Dying; the animation
// system later advances Dying to Dead, which is what arms the orchestrator's
// death check.
type PlayerDamageSystem struct {
	player     *PlayerHandle
	model      *data.PlayerModel
	sounds     SoundPlayer
	difficulty data.Difficulty
}

func NewPlayerDamageSystem(player *PlayerHandle, model *data.PlayerModel, sounds SoundPlayer, difficulty data.Difficulty) *PlayerDamageSystem {
	return &PlayerDamageSystem{player: player, model: model, sounds: sounds, difficulty: difficulty}
}

func (s *PlayerDamageSystem) Update(w *ecs.World, dt float64) {
	ctrl, ok := ecs.Get(w, s.player.Entity, component.PlayerControlledComponent)
	if !ok {
		return
	}
	if ctrl.State == component.PlayerStateDying || ctrl.State == component.PlayerStateDead {
		return
	}

	if inv, ok := ecs.Get(w, s.player.Entity, component.InvulnerableComponent); ok {
		inv.TimeLeft -= dt
		if inv.TimeLeft <= 0 {
			ecs.Remove(w, s.player.Entity, component.InvulnerableComponent)
		}
		return
	}

	playerBox, ok := worldSpaceBox(w, s.player.Entity)
	if !ok {
		return
	}

	damage := 0
	ecs.ForEach(w, component.PlayerDamagingComponent, func(e ecs.Entity, d *component.PlayerDamaging) {
		box, ok := worldSpaceBox(w, e)
		if !ok || !box.Intersects(playerBox) {
			return
		}
		damage += d.Amount
	})
	if damage == 0 {
		return
	}
	if s.difficulty == data.DifficultyHard {
		damage *= 2
	}

	s.model.TakeDamage(damage)
	if s.model.Health <= 0 {
		ctrl.State = component.PlayerStateDying
		if s.sounds != nil {
			s.sounds.PlaySound(SoundPlayerDeath)
		}
		return
	}

	ecs.Add(w, s.player.Entity, component.InvulnerableComponent, &component.Invulnerable{TimeLeft: mercyTime})
	if s.sounds != nil {
		s.sounds.PlaySound(SoundPlayerHurt)
	}
}
