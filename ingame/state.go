package ingame

import "fmt"

// State is the level lifecycle state. Finished is terminal for the level
// instance; Restarting exists only for the duration of restartLevel.
type State int

const (
	StatePlaying State = iota
	StateFinished
	StateRestarting
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	case StateRestarting:
		return "restarting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// transition is the single place level state may change. Anything not listed
// here is a programming error.
func (m *IngameMode) transition(to State) {
	allowed := false
	switch m.state {
	case StatePlaying:
		allowed = to == StateFinished || to == StateRestarting
	case StateRestarting:
		allowed = to == StatePlaying
	}
	if !allowed {
		panic(fmt.Sprintf("ingame: illegal state transition %v -> %v", m.state, to))
	}
	m.state = to
}
