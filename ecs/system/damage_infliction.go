package system

import (
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

// DamageInflictionSystem resolves damage-dealing entities (projectiles,
// hazards) against shootable ones. Destroyed shootables award their bounty
// to the player model; shootables linked to map geometry take their section
// of the map with them. Runs after physics, so a projectile spawned earlier
// this same frame has already moved and can connect this frame.
type DamageInflictionSystem struct {
	model    *data.PlayerModel
	worldMap *data.Map
	sounds   SoundPlayer
}

func NewDamageInflictionSystem(model *data.PlayerModel, worldMap *data.Map, sounds SoundPlayer) *DamageInflictionSystem {
	return &DamageInflictionSystem{model: model, worldMap: worldMap, sounds: sounds}
}

func (s *DamageInflictionSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.DamageInflictingComponent, func(inflicter ecs.Entity, d *component.DamageInflicting) {
		inflicterBox, ok := worldSpaceBox(w, inflicter)
		if !ok {
			return
		}

		hit := false
		ecs.ForEach(w, component.ShootableComponent, func(target ecs.Entity, shootable *component.Shootable) {
			if hit && d.DestroyOnContact {
				return
			}
			targetBox, ok := worldSpaceBox(w, target)
			if !ok || !targetBox.Intersects(inflicterBox) {
				return
			}
			hit = true

			shootable.Health -= d.Amount
			if shootable.Health > 0 {
				return
			}

			s.model.Score += shootable.GivenScore
			if link, ok := ecs.Get(w, target, component.MapGeometryLinkComponent); ok {
				s.worldMap.ClearSection(link.LinkedGeometrySection)
			}
			w.DestroyEntity(target)
			if s.sounds != nil {
				s.sounds.PlaySound(SoundExplosion)
			}
		})

		if hit && d.DestroyOnContact {
			w.DestroyEntity(inflicter)
		}
	})
}
