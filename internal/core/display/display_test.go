package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boxtimer/internal/core/model"
	"boxtimer/internal/core/timer"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{180, "3:00"},
		{3599, "59:59"},
		{3600, "60:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestRender_Round(t *testing.T) {
	state := timer.State{
		Config:           model.TimerConfig{RoundDurationSeconds: 180, RestDurationSeconds: 60, TotalRounds: 12},
		Phase:            timer.PhaseRound,
		RemainingSeconds: 125,
		CurrentRound:     3,
	}

	view := Render(state)

	assert.Equal(t, "Round 3/12", view.PhaseLabel)
	assert.Equal(t, "3/12", view.RoundLabel)
	assert.Equal(t, "2:05", view.Remaining)
	assert.Equal(t, "¡Dale con todo!", view.Subtitle)
	assert.Equal(t, "Tiempo restante del round", view.Caption)
	assert.Equal(t, "Iniciar", view.ToggleLabel)
}

func TestRender_RestRunning(t *testing.T) {
	state := timer.State{
		Config:           model.TimerConfig{RoundDurationSeconds: 180, RestDurationSeconds: 60, TotalRounds: 12},
		Phase:            timer.PhaseRest,
		RemainingSeconds: 59,
		CurrentRound:     1,
		Running:          true,
	}

	view := Render(state)

	assert.Equal(t, "¡Descanso!", view.PhaseLabel)
	assert.Equal(t, "0:59", view.Remaining)
	assert.Equal(t, "Tiempo restante de descanso", view.Caption)
	assert.Equal(t, "¡Buen trabajo! Prepárate para el siguiente round.", view.Motivation)
	assert.Equal(t, "Pausar", view.ToggleLabel)
}
