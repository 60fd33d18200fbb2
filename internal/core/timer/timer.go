package timer

import (
	"context"
	"sync"
	"time"

	"boxtimer/internal/core/model"
)

// Options contains runtime options for Engine.
type Options struct {
	TickInterval time.Duration
}

// Engine is the round/rest state machine.
//
// Tick is a pure step function; Run drives it from a wall clock. Tests call
// Tick directly.
type Engine struct {
	mu        sync.Mutex
	config    model.TimerConfig
	options   Options
	phase     Phase
	remaining int
	round     int
	running   bool
	cues      model.CuePlayer
	events    []chan Event
	wake      chan struct{}
	closed    bool
}

// New creates an Engine in its initial state: round 1, stopped.
func New(config model.TimerConfig, options Options) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}

	engine := &Engine{
		config:  config,
		options: options,
		wake:    make(chan struct{}, 1),
	}
	engine.resetLocked()
	return engine, nil
}

// SetCuePlayer injects the cue player used on phase transitions.
func (engine *Engine) SetCuePlayer(cues model.CuePlayer) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.cues = cues
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns a copy of the current state.
func (engine *Engine) Snapshot() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Tick advances the countdown by one second. It is a no-op while stopped.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}

	if engine.remaining > 0 {
		engine.remaining--
	}

	eventType := EventTick
	var cue model.Cue
	if engine.remaining == 0 {
		switch engine.phase {
		case PhaseRound:
			engine.phase = PhaseRest
			engine.remaining = engine.config.RestDurationSeconds
			cue = model.CueRoundEnd
			eventType = EventPhaseChange
		case PhaseRest:
			if engine.round < engine.config.TotalRounds {
				engine.round++
				engine.phase = PhaseRound
				engine.remaining = engine.config.RoundDurationSeconds
				cue = model.CueRoundStart
				eventType = EventPhaseChange
			} else {
				engine.running = false
				eventType = EventCompleted
				engine.notifyLocked()
			}
		}
	}

	cues := engine.cues
	engine.emitLocked(Event{
		Type:  eventType,
		State: engine.snapshotLocked(),
		Cue:   cue,
		At:    time.Now(),
	})
	engine.mu.Unlock()

	if cue != "" && cues != nil {
		cues.Play(cue)
	}
}

// Toggle starts or pauses the countdown and returns the new running flag.
// Resuming never fires a cue.
func (engine *Engine) Toggle() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.running = !engine.running
	engine.notifyLocked()
	engine.emitLocked(Event{
		Type:  EventToggle,
		State: engine.snapshotLocked(),
		At:    time.Now(),
	})
	return engine.running
}

// Reset stops the countdown and returns to the start of round 1.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.resetLocked()
	engine.notifyLocked()
	engine.emitLocked(Event{
		Type:  EventReset,
		State: engine.snapshotLocked(),
		At:    time.Now(),
	})
}

// ApplyConfig replaces the configuration and resets. An invalid config is
// rejected and leaves the engine untouched.
func (engine *Engine) ApplyConfig(config model.TimerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	engine.mu.Lock()
	engine.config = config
	engine.mu.Unlock()
	engine.Reset()
	return nil
}

// Run drives Tick once per TickInterval while the engine is running. The
// ticker only exists while running, so resuming restarts a full interval.
func (engine *Engine) Run(ctx context.Context) {
	var ticker *time.Ticker
	var tickCh <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		running := engine.isRunning()
		switch {
		case running && ticker == nil:
			ticker = time.NewTicker(engine.options.TickInterval)
			tickCh = ticker.C
		case !running && ticker != nil:
			ticker.Stop()
			ticker = nil
			tickCh = nil
		}

		select {
		case <-ctx.Done():
			return
		case <-engine.wake:
		case <-tickCh:
			engine.Tick()
		}
	}
}

// Close closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) isRunning() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

func (engine *Engine) resetLocked() {
	engine.running = false
	engine.phase = PhaseRound
	engine.remaining = engine.config.RoundDurationSeconds
	engine.round = 1
}

func (engine *Engine) snapshotLocked() State {
	return State{
		Config:           engine.config,
		Phase:            engine.phase,
		RemainingSeconds: engine.remaining,
		CurrentRound:     engine.round,
		Running:          engine.running,
	}
}

// notifyLocked wakes Run so it can start or stop its ticker.
func (engine *Engine) notifyLocked() {
	select {
	case engine.wake <- struct{}{}:
	default:
	}
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
