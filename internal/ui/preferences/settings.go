package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"boxtimer/internal/core/model"
)

// ErrInvalidInput indicates a settings field that is not a positive integer.
var ErrInvalidInput = errors.New("invalid input")

// Settings defines editable user preferences.
type Settings struct {
	RoundDurationSeconds int
	RestDurationSeconds  int
	TotalRounds          int
}

// DefaultSettings returns default settings: twelve 3-minute rounds with
// 1-minute rests.
func DefaultSettings() Settings {
	return Settings{
		RoundDurationSeconds: 180,
		RestDurationSeconds:  60,
		TotalRounds:          12,
	}
}

// TimerConfig converts settings to a TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		RoundDurationSeconds: settings.RoundDurationSeconds,
		RestDurationSeconds:  settings.RestDurationSeconds,
		TotalRounds:          settings.TotalRounds,
	}
}

// ParseSettings validates the three text fields of the editor.
func ParseSettings(round, rest, rounds string) (Settings, error) {
	var settings Settings
	var err error
	if settings.RoundDurationSeconds, err = parsePositiveInt("round duration", round); err != nil {
		return Settings{}, err
	}
	if settings.RestDurationSeconds, err = parsePositiveInt("rest duration", rest); err != nil {
		return Settings{}, err
	}
	if settings.TotalRounds, err = parsePositiveInt("total rounds", rounds); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func parsePositiveInt(field, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive whole number, got %q", ErrInvalidInput, field, value)
	}
	return parsed, nil
}
