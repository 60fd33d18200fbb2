package animation

import "time"

// DefaultConfig returns the pulse used on round transitions.
func DefaultConfig() Config {
	return Config{
		Pulses: 3,
		On:     180 * time.Millisecond,
		Off:    120 * time.Millisecond,
	}
}
