package component

// Behavior attaches a tengo AI script to an entity. The script runs once per
// frame with the entity's and the player's positions and may update the
// entity's orientation, velocity, and opaque state string.
type Behavior struct {
	Script string
	State  string

	// Orientation mirrors the script's facing decision so the renderer and
	// debug overlay can read it without touching the script runtime.
	FacingLeft bool
}

var BehaviorComponent = New[Behavior]()
