package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/ingame"
	"github.com/gh-fork-dump/RigelEngine/levels"
	"github.com/gh-fork-dump/RigelEngine/loader"
	"github.com/gh-fork-dump/RigelEngine/renderer"
)

const (
	logicalWidth  = data.ViewportWidth + 2*data.ViewportOffsetX
	logicalHeight = data.ViewportHeight + 2*data.ViewportOffsetY

	ticksPerSecond = 60
	frameDelta     = 1.0 / ticksPerSecond
)

// keyBindings is the fixed set of keys the simulation reacts to.
var keyBindings = map[ebiten.Key]ingame.Key{
	ebiten.KeyArrowUp:     ingame.KeyUp,
	ebiten.KeyArrowDown:   ingame.KeyDown,
	ebiten.KeyArrowLeft:   ingame.KeyLeft,
	ebiten.KeyArrowRight:  ingame.KeyRight,
	ebiten.KeyControlLeft: ingame.KeyJump,
	ebiten.KeyAltLeft:     ingame.KeyShoot,
	ebiten.KeyB:           ingame.KeyToggleBoundingBoxes,
	ebiten.KeyC:           ingame.KeyToggleCollisionData,
	ebiten.KeyD:           ingame.KeyToggleDebugText,
}

type GameConfig struct {
	Episode    int
	Level      int
	Difficulty data.Difficulty
	Debug      bool
	LevelDir   string
	StartX     int
	StartY     int
}

// Game owns the window-facing side: it translates raw keys, drives the
// orchestrator once per tick, composites the viewport target, and hops to
// the next level when the current one finishes.
type Game struct {
	cfg       GameConfig
	log       *zap.Logger
	resources *loader.Loader
	target    *renderer.EbitenTarget
	services  *ebitenServices
	watcher   *loader.Watcher

	episode int
	level   int
	mode    *ingame.IngameMode
}

func NewGame(cfg GameConfig, log *zap.Logger) (*Game, error) {
	var levelFS fs.FS = levels.FS
	var watcher *loader.Watcher
	if cfg.LevelDir != "" {
		levelFS = os.DirFS(cfg.LevelDir)
		w, err := loader.NewWatcher(cfg.LevelDir)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", cfg.LevelDir, err)
		}
		watcher = w
	}

	g := &Game{
		cfg:       cfg,
		log:       log,
		resources: loader.New(levelFS, log),
		target:    renderer.NewEbitenTarget(data.ViewportWidth, data.ViewportHeight),
		services:  newEbitenServices(log),
		watcher:   watcher,
		episode:   cfg.Episode,
		level:     cfg.Level,
	}

	var override *base.Vec2
	if cfg.StartX >= 0 && cfg.StartY >= 0 {
		override = &base.Vec2{X: cfg.StartX, Y: cfg.StartY}
	}
	if err := g.enterLevel(nil, override); err != nil {
		return nil, err
	}
	if cfg.Debug {
		g.mode.HandleKeyEvent(ingame.KeyToggleDebugText, false)
	}
	return g, nil
}

func (g *Game) enterLevel(carried *data.PlayerModel, override *base.Vec2) error {
	mode, err := ingame.NewIngameMode(g.episode, g.level, g.cfg.Difficulty, ingame.Context{
		Resources:   g.resources,
		Target:      g.target,
		Services:    g.services,
		Log:         g.log,
		PlayerModel: carried,
	}, override)
	if err != nil {
		return err
	}
	g.mode = mode
	return nil
}

func (g *Game) Update() error {
	g.services.update(frameDelta)
	g.pollHotReload()

	for key, mapped := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.mode.HandleKeyEvent(mapped, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.mode.HandleKeyEvent(mapped, false)
		}
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyG) {
		g.mode.ToggleGridDisplay()
	}

	g.mode.AdvanceFrame(frameDelta)

	if g.mode.LevelFinished() {
		return g.nextLevel()
	}
	return nil
}

func (g *Game) nextLevel() error {
	g.level++
	if g.level >= data.LevelsPerEpisode {
		g.level = 0
		g.episode++
	}
	if g.episode >= data.EpisodeCount {
		g.log.Info("all episodes finished")
		return ebiten.Termination
	}
	return g.enterLevel(g.mode.PlayerModel(), nil)
}

func (g *Game) pollHotReload() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name == ingame.LevelFileName(g.episode, g.level) {
				reload = true
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("level watcher", zap.Error(err))
		default:
			if reload {
				g.log.Info("reloading level after file change")
				if err := g.enterLevel(nil, nil); err != nil {
					g.log.Error("hot reload failed", zap.Error(err))
				}
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.target.Composite(screen, data.ViewportOffsetX, data.ViewportOffsetY)
	g.services.draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return logicalWidth, logicalHeight
}
