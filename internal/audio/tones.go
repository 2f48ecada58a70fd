package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *core.SimpleRNG
}

// Tone returns a streamer playing one wave at freq for d.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    core.NewSimpleRNG(int64(freq * 1000)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a fixed-length streamer in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Envelope shapes s, which lasts d, with linear attack and release ramps.
func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			gain = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note is a shaped tone, the building block of every cue.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Envelope(Tone(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// withVolume scales s; vol is linear in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue names the sound played for a game event.
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueKill
	CuePickup
	CueExpired
	CueDeath
	CueLevel
	CuePause
)

// CueFor maps a game event to its sound.
func CueFor(kind core.EventKind) Cue {
	switch kind {
	case core.EventShot:
		return CueShot
	case core.EventKill:
		return CueKill
	case core.EventPickup:
		return CuePickup
	case core.EventPowerUpExpired:
		return CueExpired
	case core.EventDeath:
		return CueDeath
	case core.EventLevelStart:
		return CueLevel
	case core.EventPause:
		return CuePause
	default:
		return CueNone
	}
}

// Streamer synthesizes the cue. CueNone yields nil.
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueShot:
		return note(880, 40*ms, WaveSquare, rate)
	case CueKill:
		return beep.Seq(note(660, 50*ms, WaveSaw, rate), note(440, 70*ms, WaveSaw, rate))
	case CuePickup:
		return beep.Seq(note(523, 60*ms, WaveSine, rate), note(659, 60*ms, WaveSine, rate), note(784, 90*ms, WaveSine, rate))
	case CueExpired:
		return beep.Seq(note(392, 80*ms, WaveSine, rate), note(262, 120*ms, WaveSine, rate))
	case CueDeath:
		return beep.Mix(note(0, 300*ms, WaveNoise, rate), note(110, 300*ms, WaveSaw, rate))
	case CueLevel:
		return beep.Seq(note(440, 80*ms, WaveSine, rate), note(554, 80*ms, WaveSine, rate),
			note(659, 80*ms, WaveSine, rate), note(880, 160*ms, WaveSine, rate))
	case CuePause:
		return note(330, 60*ms, WaveSine, rate)
	default:
		return nil
	}
}
