package system

import (
	"testing"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/loader"
)

func TestFollowModeCentersOnPlayer(t *testing.T) {
	cases := []struct {
		name    string
		playerX int
		playerY int
		want    base.Vec2
	}{
		{"centered", 50, 30, base.Vec2{X: 34, Y: 20}},
		{"clamped_to_origin", 1, 1, base.Vec2{X: 0, Y: 0}},
		{"clamped_to_far_edge", 99, 59, base.Vec2{X: 68, Y: 40}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player, _ := spawnPlayer(w, c.playerX, c.playerY)
			var offset base.Vec2
			sys := NewMapScrollSystem(player, &offset, data.NewMap(100, 60), loader.ScrollModeFollowPlayer)
			sys.Update(w, 1.0/60)
			if offset != c.want {
				t.Fatalf("offset = %v, want %v", offset, c.want)
			}
		})
	}
}

func TestFollowModeWorksOnZeroDelta(t *testing.T) {
	w := ecs.NewWorld()
	player, _ := spawnPlayer(w, 50, 30)
	offset := base.Vec2{X: 3, Y: 3}
	sys := NewMapScrollSystem(player, &offset, data.NewMap(100, 60), loader.ScrollModeFollowPlayer)
	sys.Update(w, 0)
	if (offset != base.Vec2{X: 34, Y: 20}) {
		t.Fatalf("offset = %v on zero-delta tick, want recentered 34,20", offset)
	}
}

func TestAutoScrollCreepsRight(t *testing.T) {
	w := ecs.NewWorld()
	player, _ := spawnPlayer(w, 5, 5)
	var offset base.Vec2
	sys := NewMapScrollSystem(player, &offset, data.NewMap(100, 60), loader.ScrollModeAutoScroll)

	sys.Update(w, 0.25) // 0.5 tiles accumulated
	if offset.X != 0 {
		t.Fatalf("offset.X = %d after half a tile, want 0", offset.X)
	}
	sys.Update(w, 0.25) // full tile
	if offset.X != 1 {
		t.Fatalf("offset.X = %d after a full tile, want 1", offset.X)
	}
}
