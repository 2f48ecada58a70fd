package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/bulletstorm/internal/config"
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// drain streams s to the end and returns how many samples it produced.
func drain(t *testing.T, s beep.Streamer) ([][2]float64, int) {
	t.Helper()
	var all [][2]float64
	buf := make([][2]float64, 512)
	for range 10_000 {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all, len(all)
		}
	}
	t.Fatal("streamer never drained")
	return nil, 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples, n := drain(t, Tone(440, 100*time.Millisecond, wave, rate))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, expected %d", wave, n, rate.N(100*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d = %v", wave, i, s)
			}
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	samples, _ := drain(t, Envelope(Tone(0, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, attack should start silent", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %v, expected full level", samples[50][0])
	}
	if last := samples[len(samples)-1][0]; last <= 0 || last >= 0.1 {
		t.Errorf("last sample = %v, release should fade out", last)
	}
}

func TestEveryEventHasACue(t *testing.T) {
	kinds := []core.EventKind{
		core.EventShot, core.EventKill, core.EventPickup, core.EventPowerUpExpired,
		core.EventDeath, core.EventLevelStart, core.EventPause,
	}
	for _, kind := range kinds {
		cue := CueFor(kind)
		if cue == CueNone {
			t.Errorf("%s has no cue", kind)
			continue
		}
		if _, n := drain(t, cue.Streamer(sampleRate)); n == 0 {
			t.Errorf("%s cue is empty", kind)
		}
	}
	if CueNone.Streamer(sampleRate) != nil {
		t.Error("CueNone should have no streamer")
	}
}

func TestDisabledBoardIsSilent(t *testing.T) {
	b := NewBoard(config.AudioConfig{Enabled: false, Volume: 0.5})
	if err := b.Start(); err != nil {
		t.Fatalf("Start() on a disabled board = %v", err)
	}
	if b.Active() {
		t.Error("disabled board should not be active")
	}
	b.Handle([]core.Event{{Kind: core.EventShot}, {Kind: core.EventKill}})
	b.Close()
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(Tone(440, 10*time.Millisecond, WaveSquare, sampleRate), 0)
	samples, _ := drain(t, s)
	for _, v := range samples {
		if v[0] != 0 {
			t.Fatalf("zero volume produced %v", v)
		}
	}
}
