package preferences

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxtimer/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, model.TimerConfig{RoundDurationSeconds: 180, RestDurationSeconds: 60, TotalRounds: 12}, settings.TimerConfig())
	assert.NoError(t, settings.TimerConfig().Validate())
}

func TestParseSettings(t *testing.T) {
	settings, err := ParseSettings("120", " 30 ", "8")
	require.NoError(t, err)
	assert.Equal(t, Settings{RoundDurationSeconds: 120, RestDurationSeconds: 30, TotalRounds: 8}, settings)
}

func TestParseSettings_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name                string
		round, rest, rounds string
		field               string
	}{
		{"non numeric round", "abc", "30", "8", "round duration"},
		{"empty rest", "120", "", "8", "rest duration"},
		{"zero rounds", "120", "30", "0", "total rounds"},
		{"negative round", "-5", "30", "8", "round duration"},
		{"fractional rest", "120", "1.5", "8", "rest duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings(tt.round, tt.rest, tt.rounds)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
