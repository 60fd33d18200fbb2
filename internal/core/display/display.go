// Package display turns engine snapshots into the strings shown on the
// timer screen. The app ships a single Spanish locale.
package display

import (
	"fmt"

	"boxtimer/internal/core/timer"
)

const (
	Header        = "Entrenamiento HIIT"
	SettingsTitle = "Configuración"
	ResetLabel    = "Reiniciar"
	SaveLabel     = "Guardar"
	CancelLabel   = "Cancelar"
)

// View holds every text element of the timer screen.
type View struct {
	PhaseLabel  string
	RoundLabel  string
	Subtitle    string
	Remaining   string
	Caption     string
	Motivation  string
	ToggleLabel string
}

// FormatTime renders seconds as M:SS. Minutes are not padded.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// RoundCounter renders "current/total".
func RoundCounter(state timer.State) string {
	return fmt.Sprintf("%d/%d", state.CurrentRound, state.Config.TotalRounds)
}

// Render builds the View for a snapshot.
func Render(state timer.State) View {
	view := View{
		RoundLabel:  RoundCounter(state),
		Remaining:   FormatTime(state.RemainingSeconds),
		ToggleLabel: "Iniciar",
	}
	if state.Running {
		view.ToggleLabel = "Pausar"
	}

	if state.Phase == timer.PhaseRest {
		view.PhaseLabel = "¡Descanso!"
		view.Subtitle = "Respira y recupera energía"
		view.Caption = "Tiempo restante de descanso"
		view.Motivation = "¡Buen trabajo! Prepárate para el siguiente round."
		return view
	}

	view.PhaseLabel = "Round " + view.RoundLabel
	view.Subtitle = "¡Dale con todo!"
	view.Caption = "Tiempo restante del round"
	view.Motivation = "¡Tú puedes! Mantén el ritmo y supera tus límites."
	return view
}
