package component

// TriggerType tags what a trigger entity reacts to.
type TriggerType int

const (
	// TriggerLevelExit finishes the level when the player reaches it.
	TriggerLevelExit TriggerType = iota
)

// Trigger is attached to level geometry; the orchestrator compares its
// position against the player's world-space bounding box every frame.
type Trigger struct {
	Type TriggerType
}

var TriggerComponent = New[Trigger]()
