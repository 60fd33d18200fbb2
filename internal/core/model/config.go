package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a TimerConfig with a non-positive field.
var ErrInvalidConfig = errors.New("invalid timer config")

// TimerConfig defines the round/rest cycle.
type TimerConfig struct {
	RoundDurationSeconds int
	RestDurationSeconds  int
	TotalRounds          int
}

// Validate reports the first non-positive field.
func (config TimerConfig) Validate() error {
	if config.RoundDurationSeconds <= 0 {
		return fmt.Errorf("%w: round duration %d", ErrInvalidConfig, config.RoundDurationSeconds)
	}
	if config.RestDurationSeconds <= 0 {
		return fmt.Errorf("%w: rest duration %d", ErrInvalidConfig, config.RestDurationSeconds)
	}
	if config.TotalRounds <= 0 {
		return fmt.Errorf("%w: total rounds %d", ErrInvalidConfig, config.TotalRounds)
	}
	return nil
}

// MaxDurationSeconds returns the longest interval in the cycle.
func (config TimerConfig) MaxDurationSeconds() int {
	if config.RestDurationSeconds > config.RoundDurationSeconds {
		return config.RestDurationSeconds
	}
	return config.RoundDurationSeconds
}

// Cue identifies an audio signal fired at a phase transition.
type Cue string

const (
	CueRoundStart Cue = "round_start"
	CueRoundEnd   Cue = "round_end"
)

// CuePlayer triggers fire-and-forget playback of a cue.
type CuePlayer interface {
	Play(cue Cue)
}
