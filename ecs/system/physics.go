package system

import (
	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

const (
	// Gravity in tiles per second squared, terminal fall speed in tiles
	// per second.
	gravityAccel     = 60.0
	terminalVelocity = 20.0
)

// PhysicsSystem integrates velocities and resolves movement against the
// map's per-edge collision data. Positions stay integer tiles; fractional
// movement accumulates in the Physical remainders. It runs after all intent
// systems so it sees this frame's velocities, and before the damage systems
// so they see resolved positions.
type PhysicsSystem struct {
	worldMap *data.Map
}

func NewPhysicsSystem(worldMap *data.Map) *PhysicsSystem {
	return &PhysicsSystem{worldMap: worldMap}
}

func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.PhysicalComponent, func(e ecs.Entity, phys *component.Physical) {
		pos, ok := ecs.Get(w, e, component.WorldPositionComponent)
		if !ok {
			return
		}
		bbox, ok := ecs.Get(w, e, component.BoundingBoxComponent)
		if !ok {
			return
		}

		if phys.GravityAffected {
			phys.VelocityY += gravityAccel * dt
			if phys.VelocityY > terminalVelocity {
				phys.VelocityY = terminalVelocity
			}
		}

		phys.RemainderX += phys.VelocityX * dt
		phys.RemainderY += phys.VelocityY * dt

		s.moveHorizontal(pos, bbox, phys)
		s.moveVertical(pos, bbox, phys)
		s.updateContactFlags(pos, bbox, phys)
	})
}

func (s *PhysicsSystem) moveHorizontal(pos *component.WorldPosition, bbox *component.BoundingBox, phys *component.Physical) {
	for phys.RemainderX >= 1 {
		phys.RemainderX--
		if s.blockedHorizontally(bbox.ToWorldSpace(*pos), 1) {
			phys.RemainderX = 0
			phys.VelocityX = 0
			break
		}
		pos.X++
	}
	for phys.RemainderX <= -1 {
		phys.RemainderX++
		if s.blockedHorizontally(bbox.ToWorldSpace(*pos), -1) {
			phys.RemainderX = 0
			phys.VelocityX = 0
			break
		}
		pos.X--
	}
}

func (s *PhysicsSystem) moveVertical(pos *component.WorldPosition, bbox *component.BoundingBox, phys *component.Physical) {
	for phys.RemainderY >= 1 {
		phys.RemainderY--
		if s.blockedVertically(bbox.ToWorldSpace(*pos), 1) {
			phys.RemainderY = 0
			phys.VelocityY = 0
			break
		}
		pos.Y++
	}
	for phys.RemainderY <= -1 {
		phys.RemainderY++
		if s.blockedVertically(bbox.ToWorldSpace(*pos), -1) {
			phys.RemainderY = 0
			phys.VelocityY = 0
			break
		}
		pos.Y--
	}
}

// blockedHorizontally checks the column the box would enter when moving one
// tile in direction dir. Entering a tile from the left is blocked by that
// tile's left edge, and vice versa.
func (s *PhysicsSystem) blockedHorizontally(box base.Rect, dir int) bool {
	var col int
	var edge data.SolidEdge
	if dir > 0 {
		col = box.Right() + 1
		edge = data.SolidLeft
	} else {
		col = box.Left() - 1
		edge = data.SolidRight
	}
	for y := box.Top(); y <= box.Bottom(); y++ {
		if s.worldMap.CollisionData(col, y).IsSolidOn(edge) {
			return true
		}
	}
	return false
}

// blockedVertically checks the row the box would enter when moving one tile
// in direction dir. Falling onto a tile is blocked by its top edge, rising
// into one by its bottom edge.
func (s *PhysicsSystem) blockedVertically(box base.Rect, dir int) bool {
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
			return true
		}
	}
	return false
}

func (s *PhysicsSystem) updateContactFlags(pos *component.WorldPosition, bbox *component.BoundingBox, phys *component.Physical) {
	box := bbox.ToWorldSpace(*pos)
	phys.OnGround = s.blockedVertically(box, 1)
	phys.BlockedUp = s.blockedVertically(box, -1)
	phys.BlockedLeft = s.blockedHorizontally(box, -1)
	phys.BlockedRight = s.blockedHorizontally(box, 1)

	if phys.OnGround && phys.VelocityY > 0 {
		phys.VelocityY = 0
		phys.RemainderY = 0
	}
}
