package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bulletstorm/internal/games/blitz"
	"github.com/vovakirdan/bulletstorm/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Bulletstorm Blitz in an 800x600 desktop window.

Controls:
  A/Left, D/Right  - Move
  W/Up             - Jump (double jump in the air)
  Space            - Fire (hold to keep firing)
  P                - Pause
  Q/Esc            - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	s, err := openSession(cmd, true)
	if err != nil {
		fail("cannot start session", err)
	}
	defer s.Close()

	game := blitz.New(s.cfg, nil)
	state, runErr := window.Run(game, window.Options{
		Runtime:  s.runtime,
		Board:    s.board,
		Recorder: s.recorder,
		Logger:   s.logger,
	})
	s.finish(time.Now())
	if runErr != nil {
		s.Close()
		fail("running game", runErr)
	}
	printSummary(state, s.store)
}
