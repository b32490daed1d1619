package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gh-fork-dump/RigelEngine/data"
)

func main() {
	episode := flag.Int("episode", 0, "episode index (0-3)")
	level := flag.Int("level", 0, "level index (0-7)")
	difficultyName := flag.String("difficulty", "medium", "easy, medium, or hard")
	debug := flag.Bool("debug", false, "verbose logging and debug text overlay")
	levelDir := flag.String("levels", "", "load levels from this directory instead of the embedded set, with hot reload")
	startX := flag.Int("startx", -1, "override the player's starting x tile")
	startY := flag.Int("starty", -1, "override the player's starting y tile")
	configPath := flag.String("config", "", "YAML file with defaults for the flags above")
	flag.Parse()

	if *configPath != "" {
		cfg, err := loadFileConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		setFlags := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
		cfg.apply(setFlags, episode, level, difficultyName, debug, levelDir)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	difficulty, err := data.ParseDifficulty(*difficultyName)
	if err != nil {
		logger.Fatal("bad difficulty flag", zap.Error(err))
	}

	game, err := NewGame(GameConfig{
		Episode:    *episode,
		Level:      *level,
		Difficulty: difficulty,
		Debug:      *debug,
		LevelDir:   *levelDir,
		StartX:     *startX,
		StartY:     *startY,
	}, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	ebiten.SetWindowSize(logicalWidth*4, logicalHeight*4)
	ebiten.SetWindowTitle("rigel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop ended", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
