// Package ingame is the per-frame simulation orchestrator: it owns one
// level's lifetime (load, play, restart on death, finish on exit trigger),
// the fixed ordering of the gameplay systems, and the snapshots that make
// restarts deterministic.
package ingame

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ecs"
	"github.com/gh-fork-dump/RigelEngine/ecs/component"
	"github.com/gh-fork-dump/RigelEngine/ecs/system"
	"github.com/gh-fork-dump/RigelEngine/loader"
	"github.com/gh-fork-dump/RigelEngine/prefabs"
	"github.com/gh-fork-dump/RigelEngine/renderer"
)

// Key identifies one of the fixed gameplay/debug keys. Raw device input is
// translated into these by the outer game loop.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyJump
	KeyShoot
	KeyToggleBoundingBoxes
	KeyToggleCollisionData
	KeyToggleDebugText
)

// LevelFileName derives the level resource name for an episode/level pair:
// episodes map to the letters L through O, levels to 1-based numbers, so
// episode 0 level 0 is "L1.MNI". Out-of-range indices are a programming
// error and panic.
func LevelFileName(episode, level int) string {
	if episode < 0 || episode >= data.EpisodeCount {
		panic(fmt.Sprintf("ingame: episode index %d out of range", episode))
	}
	if level < 0 || level >= data.LevelsPerEpisode {
		panic(fmt.Sprintf("ingame: level index %d out of range", level))
	}
	return fmt.Sprintf("%c%d.MNI", rune('L'+episode), level+1)
}

func loadingScreenFileName(episode int) string {
	return fmt.Sprintf("LOAD%d.MNI", episode+1)
}

// IngameMode drives one loaded level. It exclusively owns the map, the
// player model, the entity world, and the pipeline's system instances;
// systems only borrow them.
type IngameMode struct {
	ctx        Context
	log        *zap.Logger
	difficulty data.Difficulty

	state State

	world    *ecs.World
	worldMap *data.Map
	model    data.PlayerModel

	levelData         *loader.LevelData
	mapAtLevelStart   *data.Map
	modelAtLevelStart data.PlayerModel

	factory      *EntityFactory
	player       *system.PlayerHandle
	scheduler    *ecs.Scheduler
	scrollOffset base.Vec2
	inputs       data.InputState

	// Input-consuming and toggleable systems the orchestrator talks to
	// directly, outside the uniform update contract.
	elevator  *system.ElevatorSystem
	attack    *system.PlayerAttackSystem
	debugging *system.DebuggingSystem

	showDebugText bool
}

// NewIngameMode loads episode/level at the given difficulty and returns a
// ready-to-play mode. It panics on out-of-range indices; a missing or
// corrupt level file is a fatal load error with no partial level.
// positionOverride, when non-nil, replaces the spawned player's position,
// which is how mid-level resumes start.
func NewIngameMode(episode, level int, difficulty data.Difficulty, ctx Context, positionOverride *base.Vec2) (*IngameMode, error) {
	filename := LevelFileName(episode, level)

	if ctx.Services == nil {
		ctx.Services = NopServices{}
	}
	if ctx.Log == nil {
		ctx.Log = zap.NewNop()
	}
	if ctx.Target == nil {
		// Headless runs still execute the full pipeline; the draws just
		// land in an in-memory target.
		ctx.Target = renderer.NewRecording(data.ViewportWidth, data.ViewportHeight)
	}

	ctx.Services.FadeOutScreen()
	ctx.Services.ShowLoadingScreen(loadingScreenFileName(episode))
	ctx.Services.PlayMusic(data.MenuMusicFile)
	ctx.Services.FadeInScreen()

	start := time.Now()

	levelData, err := ctx.Resources.LoadLevel(filename, difficulty)
	if err != nil {
		return nil, fmt.Errorf("ingame: load level %s: %w", filename, err)
	}
	db, err := prefabs.Load()
	if err != nil {
		return nil, fmt.Errorf("ingame: load level %s: %w", filename, err)
	}

	model := data.NewPlayerModel()
	if ctx.PlayerModel != nil {
		model = ctx.PlayerModel.Snapshot()
	}

	m := &IngameMode{
		ctx:        ctx,
		log:        ctx.Log,
		difficulty: difficulty,
		state:      StatePlaying,
		world:      ecs.NewWorld(),
		worldMap:   levelData.Map,
		model:      model,
		levelData:  levelData,
		player:     &system.PlayerHandle{},
	}
	m.factory = NewEntityFactory(m.world, db)

	playerEntity, err := m.factory.CreateEntitiesForLevel(levelData.InitialActors)
	if err != nil {
		return nil, fmt.Errorf("ingame: load level %s: %w", filename, err)
	}
	m.player.Entity = playerEntity

	if positionOverride != nil {
		pos, ok := ecs.Get(m.world, m.player.Entity, component.WorldPositionComponent)
		if !ok {
			panic("ingame: player entity has no world position")
		}
		pos.X = positionOverride.X
		pos.Y = positionOverride.Y
	}

	// Snapshots for restart. The actor list stays pristine in levelData;
	// nothing after this point may mutate it.
	m.mapAtLevelStart = m.worldMap.Clone()
	m.modelAtLevelStart = m.model.Snapshot()

	m.buildPipeline()

	m.log.Info("level loaded",
		zap.String("file", filename),
		zap.Int("episode", episode),
		zap.Int("level", level),
		zap.Stringer("difficulty", difficulty),
		zap.Int("entities", m.world.EntityCount()),
		zap.Duration("elapsed", time.Since(start)))

	ctx.Services.FadeOutScreen()
	m.updateAndRender(0)
	ctx.Services.PlayMusic(levelData.MusicFile)
	ctx.Services.FadeInScreen()

	return m, nil
}

// buildPipeline wires the systems in their fixed execution order. The order
// is a correctness invariant: each system assumes every earlier one already
// ran this frame.
func (m *IngameMode) buildPipeline() {
	m.elevator = system.NewElevatorSystem(m.player, m.worldMap)
	m.attack = system.NewPlayerAttackSystem(m.player, &m.model, m.ctx.Services, m.factory.CreateProjectile)
	m.debugging = system.NewDebuggingSystem(m.ctx.Target, &m.scrollOffset, m.worldMap)

	m.scheduler = ecs.NewScheduler(
		m.elevator,
		system.NewPlayerMovementSystem(m.player, &m.inputs, m.worldMap),
		m.attack,
		system.NewPlayerInteractionSystem(m.player, &m.model, m.ctx.Services),
		system.NewAIBehaviorSystem(m.player, m.log),
		system.NewPhysicsSystem(m.worldMap),
		system.NewPlayerDamageSystem(m.player, &m.model, m.ctx.Services, m.difficulty),
		system.NewDamageInflictionSystem(&m.model, m.worldMap, m.ctx.Services),
		system.NewPlayerAnimationSystem(m.player),
		system.NewMapScrollSystem(m.player, &m.scrollOffset, m.worldMap, m.levelData.ScrollMode),
		system.NewRenderingSystem(m.ctx.Target, m.worldMap, &m.scrollOffset, m.levelData.BackdropColor),
		m.debugging,
	)
}

// AdvanceFrame simulates one tick: input distribution, one pass over the
// pipeline in fixed order, then the death and exit-trigger checks. Once the
// level is finished it does nothing.
func (m *IngameMode) AdvanceFrame(dt float64) {
	if m.state != StatePlaying {
		return
	}
	m.updateAndRender(dt)
	m.checkForPlayerDeath()
	m.checkForLevelExitReached()
}

func (m *IngameMode) updateAndRender(dt float64) {
	m.elevator.SetInputState(m.inputs)
	m.attack.SetInputState(m.inputs)
	m.scheduler.Update(m.world, dt)
	if m.showDebugText {
		m.ctx.Services.ShowDebugText(m.debugText())
	}
}

// HandleKeyEvent translates a key transition into input flags or debug
// toggles. Toggles act on release only, so key-repeat delivery cannot
// flip them twice.
func (m *IngameMode) HandleKeyEvent(key Key, pressed bool) {
	switch key {
	case KeyUp:
		m.inputs.MovingUp = pressed
	case KeyDown:
		m.inputs.MovingDown = pressed
	case KeyLeft:
		m.inputs.MovingLeft = pressed
	case KeyRight:
		m.inputs.MovingRight = pressed
	case KeyJump:
		m.inputs.Jumping = pressed
	case KeyShoot:
		m.inputs.Shooting = pressed
	case KeyToggleBoundingBoxes:
		if !pressed {
			m.debugging.ToggleBoundingBoxDisplay()
		}
	case KeyToggleCollisionData:
		if !pressed {
			m.debugging.ToggleWorldCollisionDataDisplay()
		}
	case KeyToggleDebugText:
		if !pressed {
			m.showDebugText = !m.showDebugText
		}
	}
}

// ToggleGridDisplay flips the debug grid. No key is bound to it; callers
// reach it programmatically.
func (m *IngameMode) ToggleGridDisplay() {
	m.debugging.ToggleGridDisplay()
}

// checkForLevelExitReached finishes the level when the player has climbed to
// at least an exit trigger's height while horizontally on it. There is no
// on-screen visibility requirement: an exit anywhere in the map qualifies.
func (m *IngameMode) checkForLevelExitReached() {
	if m.state != StatePlaying {
		return
	}
	playerBox, ok := m.playerBox()
	if !ok {
		return
	}
	ecs.ForEach(m.world, component.TriggerComponent, func(e ecs.Entity, t *component.Trigger) {
		if m.state != StatePlaying || t.Type != component.TriggerLevelExit {
			return
		}
		pos, ok := ecs.Get(m.world, e, component.WorldPositionComponent)
		if !ok {
			return
		}
		// One tile of tolerance past the right edge.
		inReachX := pos.X >= playerBox.Left() && pos.X <= playerBox.Right()+1
		if playerBox.Bottom() <= pos.Y && inReachX {
			m.transition(StateFinished)
			m.ctx.Services.StopMusic()
			m.log.Info("level finished",
				zap.Int("trigger_x", pos.X),
				zap.Int("trigger_y", pos.Y))
		}
	})
}

// checkForPlayerDeath restarts the level when the player is fully dead.
// Both signals must agree: the control state must have reached Dead AND the
// model's health must be spent. One without the other means the dying
// animation and the numbers have not converged yet, and nothing happens.
func (m *IngameMode) checkForPlayerDeath() {
	if m.state != StatePlaying {
		return
	}
	ctrl, ok := ecs.Get(m.world, m.player.Entity, component.PlayerControlledComponent)
	if !ok {
		panic("ingame: player entity has no control component")
	}
	if ctrl.State == component.PlayerStateDead && m.model.Health <= 0 {
		m.restartLevel()
	}
}

// restartLevel restores the level to its captured start state: pristine map,
// entities respawned from the unmodified placement list, player model reset
// to its start-of-level snapshot. A dt=0 pipeline tick then re-derives
// dependent state (camera position, contact flags) before the next real
// frame. Only the post-update death check may call this, never a system.
func (m *IngameMode) restartLevel() {
	m.transition(StateRestarting)
	m.ctx.Services.FadeOutScreen()

	m.worldMap.Restore(m.mapAtLevelStart)
	m.world.Reset()
	playerEntity, err := m.factory.CreateEntitiesForLevel(m.levelData.InitialActors)
	if err != nil {
		// The same list already spawned successfully at load time.
		panic(fmt.Sprintf("ingame: respawn failed: %v", err))
	}
	m.player.Entity = playerEntity
	m.model = m.modelAtLevelStart.Snapshot()
	m.inputs = data.InputState{}

	m.updateAndRender(0)

	m.transition(StatePlaying)
	m.ctx.Services.FadeInScreen()
	m.log.Info("level restarted", zap.Int("entities", m.world.EntityCount()))
}

// LevelFinished reports whether the exit trigger has latched. It stays true
// until a new level instance is created.
func (m *IngameMode) LevelFinished() bool {
	return m.state == StateFinished
}

// State returns the current lifecycle state.
func (m *IngameMode) State() State {
	return m.state
}

// PlayerModel exposes the live player stats, for HUDs and for carrying
// progress into the next level.
func (m *IngameMode) PlayerModel() *data.PlayerModel {
	return &m.model
}

// ScrollOffset returns the camera position in tiles.
func (m *IngameMode) ScrollOffset() base.Vec2 {
	return m.scrollOffset
}

func (m *IngameMode) playerBox() (base.Rect, bool) {
	pos, ok := ecs.Get(m.world, m.player.Entity, component.WorldPositionComponent)
	if !ok {
		return base.Rect{}, false
	}
	bbox, ok := ecs.Get(m.world, m.player.Entity, component.BoundingBoxComponent)
	if !ok {
		return base.Rect{}, false
	}
	return bbox.ToWorldSpace(*pos), true
}

func (m *IngameMode) debugText() string {
	text := fmt.Sprintf("scroll: %d,%d", m.scrollOffset.X, m.scrollOffset.Y)
	if pos, ok := ecs.Get(m.world, m.player.Entity, component.WorldPositionComponent); ok {
		text += fmt.Sprintf("\nplayer: %d,%d", pos.X, pos.Y)
	}
	if phys, ok := ecs.Get(m.world, m.player.Entity, component.PhysicalComponent); ok {
		text += fmt.Sprintf("\nvelocity: %.1f,%.1f", phys.VelocityX, phys.VelocityY)
	}
	text += fmt.Sprintf("\nhealth: %d  score: %d", m.model.Health, m.model.Score)
	return text
}
