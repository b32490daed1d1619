// Package loader parses level files into maps, tile attributes, and actor
// placement lists. Level files are addressed by their derived resource names
// (e.g. "L1.MNI") inside any fs.FS, embedded or on disk.
package loader

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"

	"go.uber.org/zap"

	"github.com/gh-fork-dump/RigelEngine/base"
	"github.com/gh-fork-dump/RigelEngine/data"
)

// ScrollMode selects how the camera follows play.
type ScrollMode int

const (
	ScrollModeFollowPlayer ScrollMode = iota
	ScrollModeAutoScroll
)

// ActorPlacement is one entry of the level's actor list. The list is read
// once at load time and never mutated afterwards; restarts respawn from it.
type ActorPlacement struct {
	Kind          string
	Position      base.Vec2
	MinDifficulty data.Difficulty
}

// LevelData is a fully parsed level.
type LevelData struct {
	Map           *data.Map
	InitialActors []ActorPlacement
	BackdropColor color.RGBA
	ScrollMode    ScrollMode
	MusicFile     string
}

// Loader reads levels out of a file system.
type Loader struct {
	fsys fs.FS
	log  *zap.Logger
}

func New(fsys fs.FS, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{fsys: fsys, log: log}
}

type levelFile struct {
	Width         int                `json:"width"`
	Height        int                `json:"height"`
	Tiles         []int              `json:"tiles"`
	Tileset       map[string]tileDef `json:"tileset"`
	Actors        []actorDef         `json:"actors"`
	BackdropColor string             `json:"backdrop_color"`
	ScrollMode    string             `json:"scroll_mode"`
	Music         string             `json:"music"`
}

type tileDef struct {
	// Edges lists the solid edges as a subset of "TRBL".
	Edges     string `json:"edges"`
	Climbable bool   `json:"climbable"`
	Ladder    bool   `json:"ladder"`
	Flammable bool   `json:"flammable"`
}

type actorDef struct {
	Kind       string `json:"kind"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Difficulty string `json:"difficulty,omitempty"`
}

// LoadLevel reads and validates the level stored under filename, dropping
// actors gated behind a higher difficulty. Any failure is fatal for the load
// attempt; no partial level is returned.
func (l *Loader) LoadLevel(filename string, difficulty data.Difficulty) (*LevelData, error) {
	raw, err := fs.ReadFile(l.fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("loader: read level %s: %w", filename, err)
	}

	var lf levelFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return nil, fmt.Errorf("loader: unmarshal level %s: %w", filename, err)
	}
	if lf.Width <= 0 || lf.Height <= 0 {
		return nil, fmt.Errorf("loader: level %s: invalid dimensions %dx%d", filename, lf.Width, lf.Height)
	}
	if len(lf.Tiles) != lf.Width*lf.Height {
		return nil, fmt.Errorf("loader: level %s: %d tiles for %dx%d grid",
			filename, len(lf.Tiles), lf.Width, lf.Height)
	}

	m := data.NewMap(lf.Width, lf.Height)
	for i, index := range lf.Tiles {
		if index == 0 {
			continue
		}
		def, ok := lf.Tileset[fmt.Sprint(index)]
		if !ok {
			return nil, fmt.Errorf("loader: level %s: tile index %d missing from tileset", filename, index)
		}
		x, y := i%lf.Width, i/lf.Width
		m.SetCollisionData(x, y, data.CollisionData{SolidEdges: parseEdges(def.Edges)})
		m.SetAttributes(x, y, data.TileAttributes{
			Climbable: def.Climbable,
			Ladder:    def.Ladder,
			Flammable: def.Flammable,
		})
	}

	var actors []ActorPlacement
	for _, a := range lf.Actors {
		if a.Kind == "" {
			return nil, fmt.Errorf("loader: level %s: actor without kind", filename)
		}
		minDifficulty := data.DifficultyEasy
		if a.Difficulty != "" {
			parsed, err := data.ParseDifficulty(a.Difficulty)
			if err != nil {
				return nil, fmt.Errorf("loader: level %s: %w", filename, err)
			}
			minDifficulty = parsed
		}
		if difficulty < minDifficulty {
			continue
		}
		actors = append(actors, ActorPlacement{
			Kind:          a.Kind,
			Position:      base.Vec2{X: a.X, Y: a.Y},
			MinDifficulty: minDifficulty,
		})
	}

	scrollMode := ScrollModeFollowPlayer
	if lf.ScrollMode == "auto" {
		scrollMode = ScrollModeAutoScroll
	}

	l.log.Debug("level parsed",
		zap.String("file", filename),
		zap.Int("width", lf.Width),
		zap.Int("height", lf.Height),
		zap.Int("actors", len(actors)))

	return &LevelData{
		Map:           m,
		InitialActors: actors,
		BackdropColor: parseHexColor(lf.BackdropColor),
		ScrollMode:    scrollMode,
		MusicFile:     lf.Music,
	}, nil
}

func parseEdges(s string) data.SolidEdge {
	var edges data.SolidEdge
	for _, r := range s {
		switch r {
		case 'T':
			edges |= data.SolidTop
		case 'R':
			edges |= data.SolidRight
		case 'B':
			edges |= data.SolidBottom
		case 'L':
			edges |= data.SolidLeft
		}
	}
	return edges
}

func parseHexColor(s string) color.RGBA {
	var r, g, b uint32
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
		}
	}
	return color.RGBA{A: 0xff}
}
