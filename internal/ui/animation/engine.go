package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains pulse timing values.
type Config struct {
	Pulses int
	On     time.Duration
	Off    time.Duration
}

// Flasher pulses a highlight on the timer screen.
type Flasher struct {
	mu           sync.Mutex
	config       Config
	setHighlight func(bool)
	cancel       context.CancelFunc
	done         chan struct{}
}

// New creates a flasher that toggles the highlight through setHighlight.
func New(config Config, setHighlight func(bool)) *Flasher {
	return &Flasher{
		config:       config,
		setHighlight: setHighlight,
	}
}

// Flash starts a pulse, replacing any pulse still in progress. The
// highlight always ends switched off.
func (flasher *Flasher) Flash(ctx context.Context) {
	flasher.Stop()

	flasher.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	flasher.cancel = cancel
	flasher.done = done
	flasher.mu.Unlock()

	go func() {
		defer close(done)
		defer flasher.setHighlight(false)
		for i := 0; i < flasher.config.Pulses; i++ {
			flasher.setHighlight(true)
			if !sleepWithContext(runCtx, flasher.config.On) {
				return
			}
			flasher.setHighlight(false)
			if !sleepWithContext(runCtx, flasher.config.Off) {
				return
			}
		}
	}()
}

// Stop terminates the active pulse and waits for it to settle.
func (flasher *Flasher) Stop() {
	flasher.mu.Lock()
	cancel := flasher.cancel
	done := flasher.done
	flasher.cancel = nil
	flasher.done = nil
	flasher.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
