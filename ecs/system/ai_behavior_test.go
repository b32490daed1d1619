package system

import (
	"testing"

	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
)

const patrolScript = `
state_out := state
if state_out == "" {
	state_out = "left"
}
if blocked_left {
	state_out = "right"
}
if blocked_right {
	state_out = "left"
}
vx := 2.0
if state_out == "left" {
	vx = -2.0
}
facing_left := state_out == "left"
`

func spawnScripted(w *ecs.World, x, y int, script string) ecs.Entity {
	e := spawnBox(w, x, y)
	ecs.Add(w, e, component.PhysicalComponent, &component.Physical{})
	ecs.Add(w, e, component.BehaviorComponent, &component.Behavior{Script: script})
	return e
}

func TestPatrolScriptDrivesVelocityAndState(t *testing.T) {
	w := ecs.NewWorld()
	player, _ := spawnPlayer(w, 1, 1)
	e := spawnScripted(w, 10, 10, patrolScript)

	sys := NewAIBehaviorSystem(player, nil)
	sys.Update(w, 1.0/60)

	phys, _ := ecs.Get(w, e, component.PhysicalComponent)
	b, _ := ecs.Get(w, e, component.BehaviorComponent)
	if phys.VelocityX != -2 {
		t.Fatalf("velocity = %v, want -2 (patrolling left first)", phys.VelocityX)
	}
	if b.State != "left" || !b.FacingLeft {
		t.Fatalf("state=%q facingLeft=%v, want left/true", b.State, b.FacingLeft)
	}

	// Hitting a wall on the left turns the patrol around.
	phys.BlockedLeft = true
	sys.Update(w, 1.0/60)
	if phys.VelocityX != 2 {
		t.Fatalf("velocity = %v after turning, want 2", phys.VelocityX)
	}
	if b.State != "right" || b.FacingLeft {
		t.Fatalf("state=%q facingLeft=%v after turning, want right/false", b.State, b.FacingLeft)
	}
}

func TestScriptSeesPlayerPosition(t *testing.T) {
	w := ecs.NewWorld()
	player, pe := spawnPlayer(w, 3, 10)
	e := spawnScripted(w, 10, 10, `facing_left := player_x < self_x`)

	sys := NewAIBehaviorSystem(player, nil)
	sys.Update(w, 1.0/60)

	b, _ := ecs.Get(w, e, component.BehaviorComponent)
	if !b.FacingLeft {
		t.Fatal("entity should face the player on its left")
	}

	pos, _ := ecs.Get(w, pe, component.WorldPositionComponent)
	pos.X = 20
	sys.Update(w, 1.0/60)
	if b.FacingLeft {
		t.Fatal("entity should turn toward the player on its right")
	}
}

func TestBrokenScriptIsDisabledNotFatal(t *testing.T) {
	w := ecs.NewWorld()
	player, _ := spawnPlayer(w, 1, 1)
	bad := spawnScripted(w, 10, 10, `this is not tengo (`)
	good := spawnScripted(w, 12, 10, `vx := 1.0`)

	sys := NewAIBehaviorSystem(player, nil)
	sys.Update(w, 1.0/60)
	sys.Update(w, 1.0/60)

	badPhys, _ := ecs.Get(w, bad, component.PhysicalComponent)
	goodPhys, _ := ecs.Get(w, good, component.PhysicalComponent)
	if badPhys.VelocityX != 0 {
		t.Fatalf("broken script moved its entity: %v", badPhys.VelocityX)
	}
	if goodPhys.VelocityX != 1 {
		t.Fatalf("healthy script blocked by a broken one: %v", goodPhys.VelocityX)
	}
}
