package system

import (
	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

// floorMap returns a width x height map with a fully solid bottom row.
func floorMap(width, height int) *data.Map {
	m := data.NewMap(width, height)
	for x := 0; x < width; x++ {
		m.SetCollisionData(x, height-1, data.CollisionData{SolidEdges: data.SolidAll})
	}
	return m
}

// spawnBox creates an entity with a position and a 1x1 bounding box.
func spawnBox(w *ecs.World, x, y int) ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(w, e, component.WorldPositionComponent, &component.WorldPosition{X: x, Y: y})
	ecs.Add(w, e, component.BoundingBoxComponent, &component.BoundingBox{
		Size: base.Extents{Width: 1, Height: 1},
	})
	return e
}

// spawnPlayer creates a grounded 2x3 player with control, physical, and
// animation components, and returns a handle pointed at it.
func spawnPlayer(w *ecs.World, x, y int) (*PlayerHandle, ecs.Entity) {
	e := w.CreateEntity()
	ecs.Add(w, e, component.WorldPositionComponent, &component.WorldPosition{X: x, Y: y})
	ecs.Add(w, e, component.BoundingBoxComponent, &component.BoundingBox{
		Size: base.Extents{Width: 2, Height: 3},
	})
	ecs.Add(w, e, component.PhysicalComponent, &component.Physical{
		GravityAffected: true,
		OnGround:        true,
	})
	ecs.Add(w, e, component.PlayerControlledComponent, &component.PlayerControlled{
		State:       component.PlayerStateStanding,
		Orientation: component.OrientationRight,
	})
	ecs.Add(w, e, component.AnimationComponent, &component.Animation{})
	return &PlayerHandle{Entity: e}, e
}

// soundRecorder collects played sound names for assertions.
type soundRecorder struct {
	played []string
}

func (r *soundRecorder) PlaySound(name string) {
	r.played = append(r.played, name)
}
