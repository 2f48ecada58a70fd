package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bulletstorm/internal/audio"
	"github.com/vovakirdan/bulletstorm/internal/config"
	"github.com/vovakirdan/bulletstorm/internal/core"
	"github.com/vovakirdan/bulletstorm/internal/storage"
)

// session holds everything a command opens before playing. Close releases
// it on every exit path.
type session struct {
	cfg      config.BlitzConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	logFile  *os.File
	store    *storage.Store
	recorder *storage.Recorder
	board    *audio.Board
}

// openSession loads config, logger, run ledger and sound board. stderrOK
// says whether logs may go to stderr when no log file is given; the
// terminal front-end owns the screen and sets it false.
func openSession(cmd *cobra.Command, stderrOK bool) (*session, error) {
	s := &session{}

	var out io.Writer = io.Discard
	if stderrOK {
		out = os.Stderr
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, err
		}
		s.logFile = f
		out = f
	}
	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.logger = logger

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}
	s.cfg = cfg
	logger.Debug("config loaded", "source", source)

	s.runtime = core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: cfg.Loop.TickRate,
		Seed:     flagSeed,
	}
	if flagFPS > config.MaxTickRate {
		s.Close()
		return nil, fmt.Errorf("--fps must be at most %d, got %d", config.MaxTickRate, flagFPS)
	}
	if flagFPS > 0 {
		s.runtime.TickRate = flagFPS
	}
	if s.runtime.Seed == 0 {
		s.runtime.Seed = time.Now().UnixNano()
	}
	logger.Info("session", "seed", s.runtime.Seed, "tps", s.runtime.TickRate)

	store, err := storage.Open()
	if err != nil {
		s.Close()
		return nil, err
	}
	s.store = store
	s.recorder = storage.NewRecorder(store, time.Now())

	s.board = audio.NewBoard(cfg.Audio)
	if err := s.board.Start(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	return s, nil
}

// newLogger creates the session logger.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bulletstorm",
		Level:           lvl,
	})
	return logger, nil
}

// finish closes the run in progress at time at.
func (s *session) finish(at time.Time) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Finish(at); err != nil {
		s.logger.Error("cannot record final run", "err", err)
	}
}

// Close releases the session's resources.
func (s *session) Close() {
	if s.board != nil {
		s.board.Close()
	}
	if s.store != nil {
		//nolint:errcheck // In-memory database, nothing to flush
		s.store.Close()
	}
	if s.logFile != nil {
		//nolint:errcheck // Best-effort close
		s.logFile.Close()
	}
}
