package system

import (
	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

// ProjectileType selects which projectile prefab is spawned.
type ProjectileType int

const (
	ProjectileNormal ProjectileType = iota
	ProjectileLaser
	ProjectileRocket
	ProjectileFlame
)

// ProjectileDirection is the travel direction of a spawned projectile.
type ProjectileDirection int

const (
	ProjectileDirectionLeft ProjectileDirection = iota
	ProjectileDirectionRight
	ProjectileDirectionUp
	ProjectileDirectionDown
)

// ProjectileSpawnFunc creates a projectile entity. The attack system never
// owns the entity factory; it only gets this narrow creation capability.
type ProjectileSpawnFunc func(kind ProjectileType, pos base.Vec2, direction ProjectileDirection)

// PlayerAttackSystem spawns projectiles when the shoot key goes down. The
// normal weapon fires for free; special weapons consume ammo and fall back
// to normal when it runs out.
type PlayerAttackSystem struct {
	player *PlayerHandle
	model  *data.PlayerModel
	sounds SoundPlayer
	spawn  ProjectileSpawnFunc

	inputs       data.InputState
	prevShooting bool
}

func NewPlayerAttackSystem(player *PlayerHandle, model *data.PlayerModel, sounds SoundPlayer, spawn ProjectileSpawnFunc) *PlayerAttackSystem {
	return &PlayerAttackSystem{player: player, model: model, sounds: sounds, spawn: spawn}
}

// SetInputState pushes the current frame's held keys. Called by the
// orchestrator before the pipeline runs.
func (s *PlayerAttackSystem) SetInputState(inputs data.InputState) {
	s.inputs = inputs
}

func (s *PlayerAttackSystem) Update(w *ecs.World, dt float64) {
	firePressed := s.inputs.Shooting && !s.prevShooting
	s.prevShooting = s.inputs.Shooting
	if !firePressed {
		return
	}

	ctrl, ok := ecs.Get(w, s.player.Entity, component.PlayerControlledComponent)
	if !ok {
		return
	}
	if ctrl.State == component.PlayerStateDying || ctrl.State == component.PlayerStateDead {
		return
	}
	pos, ok := ecs.Get(w, s.player.Entity, component.WorldPositionComponent)
	if !ok {
		return
	}
	bbox, ok := ecs.Get(w, s.player.Entity, component.BoundingBoxComponent)
	if !ok {
		return
	}

	if s.model.Weapon != data.WeaponNormal {
		if s.model.Ammo <= 0 {
			s.model.Weapon = data.WeaponNormal
		} else {
			s.model.Ammo--
		}
	}

	box := bbox.ToWorldSpace(*pos)
	direction := ProjectileDirectionRight
	spawnAt := base.Vec2{X: box.Right() + 1, Y: box.Top() + box.Size.Height/2}
	if s.inputs.MovingUp {
		direction = ProjectileDirectionUp
		spawnAt = base.Vec2{X: box.Left() + box.Size.Width/2, Y: box.Top() - 1}
	} else if ctrl.Orientation == component.OrientationLeft {
		direction = ProjectileDirectionLeft
		spawnAt = base.Vec2{X: box.Left() - 1, Y: box.Top() + box.Size.Height/2}
	}

	s.spawn(projectileForWeapon(s.model.Weapon), spawnAt, direction)
	if s.sounds != nil {
		s.sounds.PlaySound(SoundShot)
	}
}

func projectileForWeapon(weapon data.WeaponType) ProjectileType {
	switch weapon {
	case data.WeaponLaser:
		return ProjectileLaser
	case data.WeaponRocket:
		return ProjectileRocket
	case data.WeaponFlame:
		return ProjectileFlame
	}
	return ProjectileNormal
}
