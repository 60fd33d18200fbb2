package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat indicates an asset extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

const resampleQuality = 4

// BeepDecoder decodes WAV and MP3 assets into in-memory buffers played
// through the beep speaker. The speaker is initialised on first decode with
// that asset's sample rate.
type BeepDecoder struct {
	once       sync.Once
	initErr    error
	sampleRate beep.SampleRate
}

// NewBeepDecoder creates a decoder backed by the system speaker.
func NewBeepDecoder() *BeepDecoder {
	return &BeepDecoder{}
}

// Decode implements Decoder.
func (decoder *BeepDecoder) Decode(name string, data []byte) (Clip, error) {
	buffer, err := decodeBuffer(name, data)
	if err != nil {
		return nil, err
	}

	decoder.once.Do(func() {
		rate := buffer.Format().SampleRate
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			decoder.initErr = fmt.Errorf("init speaker: %w", err)
			return
		}
		decoder.sampleRate = rate
	})
	if decoder.initErr != nil {
		return nil, decoder.initErr
	}

	return &beepClip{buffer: buffer, targetRate: decoder.sampleRate}, nil
}

func decodeBuffer(name string, data []byte) (*beep.Buffer, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		streamer, format, err = wav.Decode(bytes.NewReader(data))
	case ".mp3":
		streamer, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return buffer, nil
}

type beepClip struct {
	mu         sync.Mutex
	buffer     *beep.Buffer
	targetRate beep.SampleRate
	ctrl       *beep.Ctrl
	released   bool
}

// Replay stops any in-flight playback of this clip and starts it again.
func (clip *beepClip) Replay() {
	clip.mu.Lock()
	defer clip.mu.Unlock()
	if clip.released {
		return
	}

	clip.stopLocked()

	var streamer beep.Streamer = clip.buffer.Streamer(0, clip.buffer.Len())
	if rate := clip.buffer.Format().SampleRate; rate != clip.targetRate {
		streamer = beep.Resample(resampleQuality, rate, clip.targetRate, streamer)
	}
	clip.ctrl = &beep.Ctrl{Streamer: streamer}
	speaker.Play(clip.ctrl)
}

func (clip *beepClip) Release() {
	clip.mu.Lock()
	defer clip.mu.Unlock()
	if clip.released {
		return
	}
	clip.released = true
	clip.stopLocked()
}

// stopLocked detaches the current stream; the mixer drops a Ctrl whose
// Streamer is nil.
func (clip *beepClip) stopLocked() {
	if clip.ctrl == nil {
		return
	}
	speaker.Lock()
	clip.ctrl.Streamer = nil
	speaker.Unlock()
	clip.ctrl = nil
}
