package timer

import (
	"time"

	"boxtimer/internal/core/model"
)

// Phase is the active interval kind.
type Phase string

const (
	PhaseRound Phase = "round"
	PhaseRest  Phase = "rest"
)

// State is a read-only snapshot of the engine.
type State struct {
	Config           model.TimerConfig
	Phase            Phase
	RemainingSeconds int
	CurrentRound     int
	Running          bool
}

// Completed reports whether every configured round has finished.
func (state State) Completed() bool {
	return !state.Running &&
		state.Phase == PhaseRest &&
		state.RemainingSeconds == 0 &&
		state.CurrentRound >= state.Config.TotalRounds
}

// EventType defines the type of engine event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
	EventCompleted   EventType = "completed"
	EventToggle      EventType = "toggle"
	EventReset       EventType = "reset"
)

// Event represents an engine update for observers.
type Event struct {
	Type  EventType
	State State
	Cue   model.Cue
	At    time.Time
}
