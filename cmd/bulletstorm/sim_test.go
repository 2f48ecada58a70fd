package main

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bulletstorm/internal/audio"
	"github.com/vovakirdan/bulletstorm/internal/config"
	"github.com/vovakirdan/bulletstorm/internal/core"
	"github.com/vovakirdan/bulletstorm/internal/storage"
)

func newTestSession(t *testing.T, seed int64) *session {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	cfg := config.DefaultBlitzConfig()
	s := &session{
		cfg:     cfg,
		runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed},
		logger:  log.New(io.Discard),
		store:   store,
		board:   audio.NewBoard(config.AudioConfig{}),
	}
	t.Cleanup(s.Close)
	return s
}

func TestSimulateIsReproducible(t *testing.T) {
	a, err := simulate(context.Background(), newTestSession(t, 42), 600, true)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}
	b, err := simulate(context.Background(), newTestSession(t, 42), 600, true)
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	if a.frames != 600 {
		t.Errorf("frames = %d, expected 600", a.frames)
	}
	if a.hash != b.hash {
		t.Errorf("same seed gave hashes %x and %x", a.hash, b.hash)
	}
	if a.kills != b.kills || a.deaths != b.deaths || a.state != b.state {
		t.Errorf("same seed gave different runs: %+v vs %+v", a, b)
	}
	if a.endMs != 10_000 {
		t.Errorf("end time = %d ms, expected 10000", a.endMs)
	}
}

func TestSimulateKeepsTickTime(t *testing.T) {
	tests := []struct {
		name   string
		tps    int
		frames int
		endMs  int64
	}{
		{"60 tps over ten seconds", 60, 600, 10_000},
		{"30 tps", 30, 90, 3_000},
		{"tick rate at the cap", 1000, 500, 500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, 3)
			s.runtime.TickRate = tc.tps
			res, err := simulate(context.Background(), s, tc.frames, true)
			if err != nil {
				t.Fatalf("simulate() error = %v", err)
			}
			if res.endMs != tc.endMs {
				t.Errorf("end time = %d ms, expected %d", res.endMs, tc.endMs)
			}
		})
	}
}

func TestSimulateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := simulate(ctx, newTestSession(t, 1), 1000, true)
	if err == nil {
		t.Fatal("expected the cancelled context error")
	}
	if res.frames != 1 {
		t.Errorf("frames = %d, expected to stop after the first", res.frames)
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := newLogger(io.Discard, "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if _, err := newLogger(io.Discard, "debug"); err != nil {
		t.Errorf("newLogger(debug) error = %v", err)
	}
}
