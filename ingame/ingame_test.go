package ingame

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
	"github.com/gh-fork-dump/RigelEngine/ecs/system"
	"github.com/gh-fork-dump/RigelEngine/loader"
)

const frameDelta = 1.0 / 60

// testLevelJSON builds a 20x12 level with a solid floor across the bottom
// row and the given actor list.
func testLevelJSON(actors string) string {
	tiles := make([]string, 0, 240)
	for i := 0; i < 220; i++ {
		tiles = append(tiles, "0")
	}
	for i := 0; i < 20; i++ {
		tiles = append(tiles, "1")
	}
	return fmt.Sprintf(`{
		"width": 20,
		"height": 12,
		"tiles": [%s],
		"tileset": {"1": {"edges": "TRBL"}},
		"actors": [%s],
		"backdrop_color": "#000010",
		"music": "TEST.IMF"
	}`, strings.Join(tiles, ","), actors)
}

const defaultActors = `
	{"kind": "player", "x": 1, "y": 8},
	{"kind": "destructible-wall", "x": 3, "y": 8},
	{"kind": "level-exit", "x": 17, "y": 10}`

func newTestMode(t *testing.T, actors string, override *base.Vec2) *IngameMode {
	t.Helper()
	fsys := fstest.MapFS{
		"L1.MNI": &fstest.MapFile{Data: []byte(testLevelJSON(actors))},
	}
	mode, err := NewIngameMode(0, 0, data.DifficultyMedium, Context{
		Resources: loader.New(fsys, zap.NewNop()),
	}, override)
	if err != nil {
		t.Fatalf("NewIngameMode: %v", err)
	}
	return mode
}

func playerControl(t *testing.T, m *IngameMode) *component.PlayerControlled {
	t.Helper()
	ctrl, ok := ecs.Get(m.world, m.player.Entity, component.PlayerControlledComponent)
	if !ok {
		t.Fatal("player has no control component")
	}
	return ctrl
}

func playerPosition(t *testing.T, m *IngameMode) *component.WorldPosition {
	t.Helper()
	pos, ok := ecs.Get(m.world, m.player.Entity, component.WorldPositionComponent)
	if !ok {
		t.Fatal("player has no world position")
	}
	return pos
}

func TestLevelFileName(t *testing.T) {
	cases := []struct {
		episode int
		level   int
		want    string
	}{
		{0, 0, "L1.MNI"},
		{0, 7, "L8.MNI"},
		{1, 0, "M1.MNI"},
		{2, 4, "N5.MNI"},
		{3, 7, "O8.MNI"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			if got := LevelFileName(c.episode, c.level); got != c.want {
				t.Fatalf("LevelFileName(%d, %d) = %q, want %q", c.episode, c.level, got, c.want)
			}
		})
	}
}

func TestLevelFileNamePanicsOnBadIndices(t *testing.T) {
	cases := []struct {
		name    string
		episode int
		level   int
	}{
		{"episode_too_high", 4, 0},
		{"episode_negative", -1, 0},
		{"level_too_high", 0, 8},
		{"level_negative", 0, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("LevelFileName(%d, %d) should panic", c.episode, c.level)
				}
			}()
			LevelFileName(c.episode, c.level)
		})
	}
}

func TestNewIngameModeLoadFailures(t *testing.T) {
	cases := []struct {
		name  string
		files fstest.MapFS
	}{
		{"missing_file", fstest.MapFS{}},
		{"corrupt_json", fstest.MapFS{
			"L1.MNI": &fstest.MapFile{Data: []byte("{not json")},
		}},
		{"no_player", fstest.MapFS{
			"L1.MNI": &fstest.MapFile{Data: []byte(testLevelJSON(`{"kind": "level-exit", "x": 5, "y": 5}`))},
		}},
		{"unknown_kind", fstest.MapFS{
			"L1.MNI": &fstest.MapFile{Data: []byte(testLevelJSON(`{"kind": "player", "x": 1, "y": 8}, {"kind": "bogus", "x": 2, "y": 2}`))},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewIngameMode(0, 0, data.DifficultyMedium, Context{
				Resources: loader.New(c.files, zap.NewNop()),
			}, nil)
			if err == nil {
				t.Fatal("expected a load error")
			}
		})
	}
}

func TestPositionOverride(t *testing.T) {
	mode := newTestMode(t, defaultActors, &base.Vec2{X: 9, Y: 5})
	pos := playerPosition(t, mode)
	if pos.X != 9 || pos.Y != 5 {
		t.Fatalf("player at %d,%d, want 9,5", pos.X, pos.Y)
	}
}

func TestExitTriggerGeometry(t *testing.T) {
	cases := []struct {
		name      string
		playerPos base.Vec2
		want      bool
	}{
		// Player box is 11 wide, 3 tall; trigger sits at 100,50.
		{"bottom_at_trigger_height", base.Vec2{X: 95, Y: 48}, true},
		{"bottom_below_trigger", base.Vec2{X: 95, Y: 49}, false},
		{"trigger_right_of_box", base.Vec2{X: 84, Y: 48}, false},
		{"right_edge_tolerance", base.Vec2{X: 89, Y: 48}, true},
		{"trigger_left_of_box", base.Vec2{X: 101, Y: 48}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			player := w.CreateEntity()
			ecs.Add(w, player, component.WorldPositionComponent,
				&component.WorldPosition{X: c.playerPos.X, Y: c.playerPos.Y})
			ecs.Add(w, player, component.BoundingBoxComponent,
				&component.BoundingBox{Size: base.Extents{Width: 11, Height: 3}})

			trigger := w.CreateEntity()
			ecs.Add(w, trigger, component.WorldPositionComponent,
				&component.WorldPosition{X: 100, Y: 50})
			ecs.Add(w, trigger, component.TriggerComponent,
				&component.Trigger{Type: component.TriggerLevelExit})

			m := &IngameMode{
				state:  StatePlaying,
				world:  w,
				player: &system.PlayerHandle{Entity: player},
				ctx:    Context{Services: NopServices{}},
				log:    zap.NewNop(),
			}
			m.checkForLevelExitReached()
			if m.LevelFinished() != c.want {
				t.Fatalf("LevelFinished() = %v, want %v", m.LevelFinished(), c.want)
			}
		})
	}
}

func TestDeathRequiresBothSignals(t *testing.T) {
	cases := []struct {
		name        string
		state       component.PlayerState
		health      int
		wantRestart bool
	}{
		{"dead_state_but_health_left", component.PlayerStateDead, 1, false},
		{"no_health_but_not_dead_yet", component.PlayerStateStanding, 0, false},
		{"dying_not_yet_dead", component.PlayerStateDying, 0, false},
		{"both_signals", component.PlayerStateDead, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mode := newTestMode(t, defaultActors, nil)
			mode.model.Score = 777 // sentinel wiped by restart

			playerControl(t, mode).State = c.state
			mode.model.Health = c.health

			mode.checkForPlayerDeath()

			restarted := mode.model.Score == 0
			if restarted != c.wantRestart {
				t.Fatalf("restarted = %v, want %v", restarted, c.wantRestart)
			}
			if mode.State() != StatePlaying {
				t.Fatalf("state = %v after death check, want playing", mode.State())
			}
		})
	}
}

func TestRestartRestoresSnapshots(t *testing.T) {
	mode := newTestMode(t, defaultActors, nil)
	initialEntities := mode.world.EntityCount()

	// Wreck everything a failed attempt could wreck.
	mode.worldMap.ClearSection(base.NewRect(5, 11, 3, 1))
	mode.model.TakeDamage(4)
	mode.model.Score += 500
	mode.model.Ammo -= 5
	wall, ok := ecs.First(mode.world, component.MapGeometryLinkComponent)
	if !ok {
		t.Fatal("no destructible wall in fixture")
	}
	mode.world.DestroyEntity(wall)
	playerPosition(t, mode).X = 12

	playerControl(t, mode).State = component.PlayerStateDead
	mode.model.Health = 0
	mode.checkForPlayerDeath()

	if !mode.worldMap.Equal(mode.mapAtLevelStart) {
		t.Error("map does not match its start-of-level snapshot after restart")
	}
	if !mode.model.Equal(mode.modelAtLevelStart) {
		t.Error("player model does not match its start-of-level snapshot after restart")
	}
	if got := mode.world.EntityCount(); got != initialEntities {
		t.Errorf("entity count = %d after restart, want %d", got, initialEntities)
	}
	if !mode.world.IsAlive(mode.player.Entity) {
		t.Fatal("player handle is stale after restart")
	}
	if pos := playerPosition(t, mode); pos.X != 1 || pos.Y != 8 {
		t.Errorf("player respawned at %d,%d, want 1,8", pos.X, pos.Y)
	}
	if mode.State() != StatePlaying {
		t.Fatalf("state = %v after restart, want playing", mode.State())
	}

	// A second restart from the restored state is just as clean.
	playerControl(t, mode).State = component.PlayerStateDead
	mode.model.Health = 0
	mode.checkForPlayerDeath()
	if !mode.worldMap.Equal(mode.mapAtLevelStart) {
		t.Error("map diverged on second restart")
	}
}

func TestRestartThroughAdvanceFrame(t *testing.T) {
	mode := newTestMode(t, defaultActors, nil)

	playerControl(t, mode).State = component.PlayerStateDead
	mode.model.Health = 0
	mode.AdvanceFrame(frameDelta)

	if mode.model.Health != data.MaxHealth {
		t.Fatalf("health = %d after restart frame, want %d", mode.model.Health, data.MaxHealth)
	}
	if mode.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", mode.State())
	}
}

func TestLevelFinishedLatchIsMonotonic(t *testing.T) {
	mode := newTestMode(t, defaultActors, nil)

	// Stand on the exit: box covers columns 16-17, bottom row 10.
	pos := playerPosition(t, mode)
	pos.X, pos.Y = 16, 8
	mode.AdvanceFrame(frameDelta)
	if !mode.LevelFinished() {
		t.Fatal("level should finish on trigger contact")
	}

	// Death signals present, but a finished level must stay inert.
	playerControl(t, mode).State = component.PlayerStateDead
	mode.model.Health = 0
	for i := 0; i < 5; i++ {
		mode.AdvanceFrame(frameDelta)
	}
	if !mode.LevelFinished() {
		t.Fatal("latch cleared by a later frame")
	}
	if mode.model.Health != 0 {
		t.Fatal("pipeline ran after the level finished")
	}
}

func TestEndToEndExitReached(t *testing.T) {
	mode := newTestMode(t, `
		{"kind": "player", "x": 1, "y": 8},
		{"kind": "level-exit", "x": 10, "y": 10}`, nil)

	// Walk the player across to the trigger column; contact must register
	// within a single frame of horizontal alignment.
	mode.AdvanceFrame(frameDelta)
	if mode.LevelFinished() {
		t.Fatal("finished while still far from the trigger")
	}

	playerPosition(t, mode).X = 9
	mode.AdvanceFrame(frameDelta)
	if !mode.LevelFinished() {
		t.Fatal("level not finished within one frame of contact")
	}
}

func TestProjectileConnectsSameFrame(t *testing.T) {
	mode := newTestMode(t, defaultActors, nil)
	wall, ok := ecs.First(mode.world, component.ShootableComponent)
	if !ok {
		t.Fatal("no shootable in fixture")
	}

	// The wall sits directly in front of the muzzle, so the shot spawned by
	// the attack system this frame must be resolved by damage infliction in
	// the same frame, not the next one.
	mode.HandleKeyEvent(KeyShoot, true)
	mode.AdvanceFrame(frameDelta)

	if mode.world.IsAlive(wall) {
		t.Fatal("shootable survived the frame its projectile was spawned in")
	}
	if mode.model.Score == 0 {
		t.Fatal("no score awarded for the destroyed shootable")
	}
}

func TestDestroyedWallClearsAndRestartRestoresGeometry(t *testing.T) {
	fsys := fstest.MapFS{
		"L1.MNI": &fstest.MapFile{Data: []byte(wallLevelJSON())},
	}
	mode, err := NewIngameMode(0, 0, data.DifficultyMedium, Context{
		Resources: loader.New(fsys, zap.NewNop()),
	}, nil)
	if err != nil {
		t.Fatalf("NewIngameMode: %v", err)
	}

	if mode.worldMap.CollisionData(3, 8).SolidEdges == 0 {
		t.Fatal("wall tiles should start solid")
	}

	mode.HandleKeyEvent(KeyShoot, true)
	mode.AdvanceFrame(frameDelta)

	if mode.worldMap.CollisionData(3, 8).SolidEdges != 0 {
		t.Fatal("destroying the wall should clear its map section")
	}

	playerControl(t, mode).State = component.PlayerStateDead
	mode.model.Health = 0
	mode.checkForPlayerDeath()

	if mode.worldMap.CollisionData(3, 8).SolidEdges == 0 {
		t.Fatal("restart should restore the destroyed geometry")
	}
}

// wallLevelJSON is the default fixture plus solid map tiles underneath the
// destructible wall's geometry section.
func wallLevelJSON() string {
	tiles := make([]int, 240)
	for x := 0; x < 20; x++ {
		tiles[11*20+x] = 1
	}
	tiles[8*20+3] = 1
	tiles[9*20+3] = 1
	parts := make([]string, len(tiles))
	for i, v := range tiles {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf(`{
		"width": 20,
		"height": 12,
		"tiles": [%s],
		"tileset": {"1": {"edges": "TRBL"}},
		"actors": [%s],
		"music": "TEST.IMF"
	}`, strings.Join(parts, ","), defaultActors)
}

func TestDebugTogglesActOnReleaseOnly(t *testing.T) {
	mode := newTestMode(t, defaultActors, nil)

	mode.HandleKeyEvent(KeyToggleBoundingBoxes, true)
	if mode.debugging.ShowingBoundingBoxes() {
		t.Fatal("toggle fired on key press")
	}
	mode.HandleKeyEvent(KeyToggleBoundingBoxes, false)
	if !mode.debugging.ShowingBoundingBoxes() {
		t.Fatal("toggle did not fire on key release")
	}

	mode.HandleKeyEvent(KeyToggleCollisionData, true)
	mode.HandleKeyEvent(KeyToggleCollisionData, true)
	if mode.debugging.ShowingWorldCollisionData() {
		t.Fatal("repeated presses must not toggle")
	}

	mode.HandleKeyEvent(KeyToggleDebugText, false)
	if !mode.showDebugText {
		t.Fatal("debug text toggle did not fire on release")
	}
}

func TestCarriedPlayerModelSeedsSnapshot(t *testing.T) {
	carried := data.NewPlayerModel()
	carried.Score = 4200
	carried.Inventory = append(carried.Inventory, data.InventoryItemBlueKey)

	fsys := fstest.MapFS{
		"L1.MNI": &fstest.MapFile{Data: []byte(testLevelJSON(defaultActors))},
	}
	mode, err := NewIngameMode(0, 0, data.DifficultyMedium, Context{
		Resources:   loader.New(fsys, zap.NewNop()),
		PlayerModel: &carried,
	}, nil)
	if err != nil {
		t.Fatalf("NewIngameMode: %v", err)
	}

	if mode.model.Score != 4200 || !mode.model.HasItem(data.InventoryItemBlueKey) {
		t.Fatal("carried model not applied")
	}

	// Restart must fall back to the carried-in stats, not a blank model.
	mode.model.Score = 9999
	playerControl(t, mode).State = component.PlayerStateDead
	mode.model.Health = 0
	mode.checkForPlayerDeath()
	if mode.model.Score != 4200 {
		t.Fatalf("score = %d after restart, want the carried-in 4200", mode.model.Score)
	}
}

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		name      string
		from      State
		to        State
		wantPanic bool
	}{
		{"playing_to_finished", StatePlaying, StateFinished, false},
		{"playing_to_restarting", StatePlaying, StateRestarting, false},
		{"restarting_to_playing", StateRestarting, StatePlaying, false},
		{"finished_to_playing", StateFinished, StatePlaying, true},
		{"finished_to_restarting", StateFinished, StateRestarting, true},
		{"restarting_to_finished", StateRestarting, StateFinished, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := &IngameMode{state: c.from}
			defer func() {
				if (recover() != nil) != c.wantPanic {
					t.Fatalf("transition %v -> %v: panic expectation %v violated", c.from, c.to, c.wantPanic)
				}
			}()
			m.transition(c.to)
			if m.state != c.to {
				t.Fatalf("state = %v, want %v", m.state, c.to)
			}
		})
	}
}

func TestPipelineSystemOrder(t *testing.T) {
	mode := newTestMode(t, defaultActors, nil)

	want := []string{
		"*system.ElevatorSystem",
		"*system.PlayerMovementSystem",
		"*system.PlayerAttackSystem",
		"*system.PlayerInteractionSystem",
		"*system.AIBehaviorSystem",
		"*system.PhysicsSystem",
		"*system.PlayerDamageSystem",
		"*system.DamageInflictionSystem",
		"*system.PlayerAnimationSystem",
		"*system.MapScrollSystem",
		"*system.RenderingSystem",
		"*system.DebuggingSystem",
	}

	systems := mode.scheduler.Systems()
	if len(systems) != len(want) {
		t.Fatalf("pipeline has %d systems, want %d", len(systems), len(want))
	}
	for i, s := range systems {
		if got := fmt.Sprintf("%T", s); got != want[i] {
			t.Errorf("pipeline[%d] = %s, want %s", i, got, want[i])
		}
	}
}
