// Package prefabs holds the actor database: per-kind construction data the
// entity factory turns into component sets.
package prefabs

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

type BoundingBoxSpec struct {
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
}

type CollectableSpec struct {
	Score  int    `yaml:"score"`
	Health int    `yaml:"health"`
	Ammo   int    `yaml:"ammo"`
	Item   string `yaml:"item"`
}

// ActorSpec describes one actor kind. Zero-valued sections are simply not
// attached as components.
type ActorSpec struct {
	BoundingBox   BoundingBoxSpec  `yaml:"bounding_box"`
	Color         string           `yaml:"color"`
	DrawOrder     int              `yaml:"draw_order"`
	Gravity       bool             `yaml:"gravity"`
	Health        int              `yaml:"health"`
	Score         int              `yaml:"score"`
	ContactDamage int              `yaml:"contact_damage"`
	Damage        int              `yaml:"damage"`
	Trigger       string           `yaml:"trigger"`
	Collectable   *CollectableSpec `yaml:"collectable"`
	ElevatorSpeed float64          `yaml:"elevator_speed"`
	Destructible  bool             `yaml:"destructible"`
	Script        string           `yaml:"script"`
}

// Database maps actor kind names to their specs.
type Database struct {
	Actors map[string]ActorSpec `yaml:"actors"`
}

// Load parses the embedded actor database.
func Load() (*Database, error) {
	return Parse(actorsYAML)
}

// Parse reads a database from raw YAML.
func Parse(raw []byte) (*Database, error) {
	var db Database
	if err := yaml.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal actors: %w", err)
	}
	if len(db.Actors) == 0 {
		return nil, fmt.Errorf("prefabs: actor database is empty")
	}
	return &db, nil
}

// Actor looks up a spec by kind name.
func (db *Database) Actor(kind string) (ActorSpec, bool) {
	spec, ok := db.Actors[kind]
	return spec, ok
}

// ParseHexColor parses "#rrggbb". Returns opaque white if the string does not
// match, so a bad prefab is visible rather than invisible.
func ParseHexColor(s string) color.RGBA {
	var r, g, b uint32
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
		}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
