// Package audio plays short synthesized sound cues for game events.
// When no output device is available the board stays silent and every
// call is a no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bulletstorm/internal/config"
	"github.com/vovakirdan/bulletstorm/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps overlapping cues so held fire cannot pile up sounds.
const maxVoices = 8

// Board mixes cues into the speaker.
type Board struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	started bool
}

// NewBoard creates a board from the audio settings. Nothing touches the
// sound device until Start.
func NewBoard(cfg config.AudioConfig) *Board {
	return &Board{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
	}
}

// Start opens the speaker. On failure the board stays silent and the error
// is returned for logging.
func (b *Board) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled || b.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		b.enabled = false
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.started = true
	return nil
}

// Active reports whether cues are audible.
func (b *Board) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.started
}

// Play queues the cue for one event.
func (b *Board) Play(kind core.EventKind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return
	}
	s := CueFor(kind).Streamer(sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	if b.mixer.Len() < maxVoices {
		b.mixer.Add(withVolume(s, b.volume))
	}
	speaker.Unlock()
}

// Handle plays the cues for a frame's events. Consecutive duplicates of
// the same kind collapse into one cue.
func (b *Board) Handle(events []core.Event) {
	last := core.EventKind(-1)
	for _, ev := range events {
		if ev.Kind == last {
			continue
		}
		last = ev.Kind
		b.Play(ev.Kind)
	}
}

// Close stops every cue in flight.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.started = false
}
