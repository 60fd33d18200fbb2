// Package sound plays the audio cues fired on round transitions.
//
// Cue handles load asynchronously; a cue whose load failed or has not
// finished yet is silently skipped by Play. Teardown releases every handle
// exactly once, including handles whose load completes after teardown.
package sound

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"boxtimer/internal/core/model"
)

// Clip is a loaded, replayable audio handle.
type Clip interface {
	// Replay starts playback from the beginning without blocking.
	Replay()
	Release()
}

// Decoder turns encoded audio into a Clip.
type Decoder interface {
	Decode(name string, data []byte) (Clip, error)
}

// Asset is an encoded sound file.
type Asset struct {
	Name string
	Data []byte
}

// Player owns one Clip per cue.
type Player struct {
	mu       sync.Mutex
	decoder  Decoder
	clips    map[model.Cue]Clip
	released bool
	pending  sync.WaitGroup
}

// NewPlayer creates a player that decodes assets with decoder.
func NewPlayer(decoder Decoder) *Player {
	return &Player{
		decoder: decoder,
		clips:   make(map[model.Cue]Clip),
	}
}

// Load decodes each asset in the background. It never blocks.
func (player *Player) Load(assets map[model.Cue]Asset) {
	for cue, asset := range assets {
		player.pending.Add(1)
		go player.load(cue, asset)
	}
}

// Wait blocks until every pending load has finished.
func (player *Player) Wait() {
	player.pending.Wait()
}

// Play replays the cue from the start. Unloaded cues are skipped.
func (player *Player) Play(cue model.Cue) {
	player.mu.Lock()
	clip := player.clips[cue]
	player.mu.Unlock()
	if clip == nil {
		return
	}
	clip.Replay()
}

// Loaded reports whether the cue has a playable handle.
func (player *Player) Loaded(cue model.Cue) bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.clips[cue] != nil
}

// Teardown releases every handle. Later calls are no-ops.
func (player *Player) Teardown() {
	player.mu.Lock()
	if player.released {
		player.mu.Unlock()
		return
	}
	player.released = true
	clips := player.clips
	player.clips = nil
	player.mu.Unlock()

	for _, clip := range clips {
		clip.Release()
	}
}

func (player *Player) load(cue model.Cue, asset Asset) {
	defer player.pending.Done()

	clip, err := player.decoder.Decode(asset.Name, asset.Data)
	if err != nil {
		fyne.LogError(fmt.Sprintf("load cue %s", cue), err)
		return
	}

	player.mu.Lock()
	if player.released {
		player.mu.Unlock()
		clip.Release()
		return
	}
	previous := player.clips[cue]
	player.clips[cue] = clip
	player.mu.Unlock()

	if previous != nil {
		previous.Release()
	}
}
