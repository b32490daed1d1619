package ingame

import (
	"fmt"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
	"github.com/gh-fork-dump/RigelEngine/ecs/system"
	"github.com/gh-fork-dump/RigelEngine/loader"
	"github.com/gh-fork-dump/RigelEngine/prefabs"
)

// Speed of player projectiles, in tiles per second.
const projectileSpeed = 24.0

// EntityFactory turns prefab specs into component sets. The orchestrator
// uses it for level population and hands the attack system a narrow
// projectile-spawning closure over it.
type EntityFactory struct {
	world *ecs.World
	db    *prefabs.Database
}

func NewEntityFactory(world *ecs.World, db *prefabs.Database) *EntityFactory {
	return &EntityFactory{world: world, db: db}
}

// CreateEntitiesForLevel spawns every placement and returns the player
// entity. A level without exactly one player placement is unplayable.
func (f *EntityFactory) CreateEntitiesForLevel(placements []loader.ActorPlacement) (ecs.Entity, error) {
	var player ecs.Entity
	found := false
	for _, p := range placements {
		e, err := f.CreateActor(p.Kind, p.Position)
		if err != nil {
			return 0, err
		}
		if p.Kind == data.StartingPlayerKind {
			if found {
				return 0, fmt.Errorf("ingame: level has more than one player placement")
			}
			player = e
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("ingame: level has no player placement")
	}
	return player, nil
}

// CreateActor spawns one entity of the given prefab kind at pos.
func (f *EntityFactory) CreateActor(kind string, pos base.Vec2) (ecs.Entity, error) {
	spec, ok := f.db.Actor(kind)
	if !ok {
		return 0, fmt.Errorf("ingame: unknown actor kind %q", kind)
	}

	e := f.world.CreateEntity()
	ecs.Add(f.world, e, component.ActorTagComponent, &component.ActorTag{Kind: kind})
	ecs.Add(f.world, e, component.WorldPositionComponent, &component.WorldPosition{X: pos.X, Y: pos.Y})

	if spec.BoundingBox.Width > 0 && spec.BoundingBox.Height > 0 {
		ecs.Add(f.world, e, component.BoundingBoxComponent, &component.BoundingBox{
			Offset: base.Vec2{X: spec.BoundingBox.OffsetX, Y: spec.BoundingBox.OffsetY},
			Size:   base.Extents{Width: spec.BoundingBox.Width, Height: spec.BoundingBox.Height},
		})
	}
	if spec.Color != "" {
		ecs.Add(f.world, e, component.SpriteComponent, &component.Sprite{
			Color:     prefabs.ParseHexColor(spec.Color),
			DrawOrder: spec.DrawOrder,
		})
	}
	if spec.Gravity || spec.Script != "" {
		ecs.Add(f.world, e, component.PhysicalComponent, &component.Physical{
			GravityAffected: spec.Gravity,
		})
	}
	if spec.Health > 0 {
		ecs.Add(f.world, e, component.ShootableComponent, &component.Shootable{
			Health:     spec.Health,
			GivenScore: spec.Score,
		})
	}
	if spec.ContactDamage > 0 {
		ecs.Add(f.world, e, component.PlayerDamagingComponent, &component.PlayerDamaging{
			Amount: spec.ContactDamage,
		})
	}
	if spec.Damage > 0 {
		ecs.Add(f.world, e, component.DamageInflictingComponent, &component.DamageInflicting{
			Amount:           spec.Damage,
			DestroyOnContact: true,
		})
	}
	if spec.Trigger == "level-exit" {
		ecs.Add(f.world, e, component.TriggerComponent, &component.Trigger{
			Type: component.TriggerLevelExit,
		})
	}
	if spec.Collectable != nil {
		ecs.Add(f.world, e, component.CollectableComponent, &component.Collectable{
			GivenScore:  spec.Collectable.Score,
			GivenHealth: spec.Collectable.Health,
			GivenAmmo:   spec.Collectable.Ammo,
			GivenItem:   data.InventoryItem(spec.Collectable.Item),
		})
	}
	if spec.ElevatorSpeed > 0 {
		ecs.Add(f.world, e, component.ElevatorComponent, &component.Elevator{
			Speed: spec.ElevatorSpeed,
		})
	}
	if spec.Destructible {
		ecs.Add(f.world, e, component.MapGeometryLinkComponent, &component.MapGeometryLink{
			LinkedGeometrySection: base.NewRect(
				pos.X+spec.BoundingBox.OffsetX,
				pos.Y+spec.BoundingBox.OffsetY,
				spec.BoundingBox.Width,
				spec.BoundingBox.Height,
			),
		})
	}
	if spec.Script != "" {
		ecs.Add(f.world, e, component.BehaviorComponent, &component.Behavior{Script: spec.Script})
	}
	if kind == data.StartingPlayerKind {
		ecs.Add(f.world, e, component.PlayerControlledComponent, &component.PlayerControlled{
			State:       component.PlayerStateStanding,
			Orientation: component.OrientationRight,
		})
		ecs.Add(f.world, e, component.AnimationComponent, &component.Animation{})
	}

	return e, nil
}

// CreateProjectile spawns a player projectile travelling in the given
// direction. It matches the signature of system.ProjectileSpawnFunc so the
// attack system never sees the factory itself.
func (f *EntityFactory) CreateProjectile(kind system.ProjectileType, pos base.Vec2, direction system.ProjectileDirection) {
	e, err := f.CreateActor(projectileKindName(kind), pos)
	if err != nil {
		// Unknown special projectile prefabs degrade to the normal shot.
		e, err = f.CreateActor("projectile-normal", pos)
		if err != nil {
			return
		}
	}

	phys := &component.Physical{}
	switch direction {
	case system.ProjectileDirectionLeft:
		phys.VelocityX = -projectileSpeed
	case system.ProjectileDirectionRight:
		phys.VelocityX = projectileSpeed
	case system.ProjectileDirectionUp:
		phys.VelocityY = -projectileSpeed
	case system.ProjectileDirectionDown:
		phys.VelocityY = projectileSpeed
	}
	ecs.Add(f.world, e, component.PhysicalComponent, phys)
}

func projectileKindName(kind system.ProjectileType) string {
	switch kind {
	case system.ProjectileLaser:
		return "projectile-laser"
	case system.ProjectileRocket:
		return "projectile-rocket"
	case system.ProjectileFlame:
		return "projectile-flame"
	}
	return "projectile-normal"
}
