package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bulletstorm/internal/core"
	"github.com/vovakirdan/bulletstorm/internal/games/blitz"
	"github.com/vovakirdan/bulletstorm/internal/platform/tui"
	"github.com/vovakirdan/bulletstorm/internal/storage"
)

var flagNoScoreboard bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Bulletstorm Blitz in the terminal.

Controls:
  A/Left, D/Right  - Move
  W/Up             - Jump (double jump in the air)
  Space            - Fire (hold to keep firing)
  P/Esc            - Pause
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so a key counts as held
for a short window after each press (terminal.hold_ms in the config).

When you quit, the session scoreboard lists every run of the session.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoScoreboard, "no-scoreboard", false, "Skip the scoreboard after quitting")
}

func runPlay(cmd *cobra.Command, _ []string) {
	s, err := openSession(cmd, false)
	if err != nil {
		fail("cannot start session", err)
	}
	defer s.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	runtime := s.runtime
	runtime.ScreenW = width
	runtime.ScreenH = height

	game := blitz.New(s.cfg, nil)
	state, runErr := tui.Run(game, tui.Options{
		Runtime:  runtime,
		HoldMs:   s.cfg.Terminal.HoldMs,
		Board:    s.board,
		Recorder: s.recorder,
		Logger:   s.logger,
	})
	s.finish(time.Now())
	if runErr != nil {
		s.Close()
		fail("running game", runErr)
	}

	if !flagNoScoreboard {
		if err := tui.RunScoreboard(s.store, width, height); err != nil {
			s.logger.Error("scoreboard failed", "err", err)
		}
	}
	printSummary(state, s.store)
}

var summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// printSummary writes the end-of-session line to stdout.
func printSummary(state core.GameState, store *storage.Store) {
	fmt.Println(summaryStyle.Render(blitz.Title))
	fmt.Printf("Level %d  Score %d  High Score %d\n", state.Level, state.Score, state.HighScore)
	if store == nil {
		return
	}
	stats, err := store.Stats()
	if err != nil || stats.Runs == 0 {
		return
	}
	fmt.Printf("Runs %d  Best %d  Kills %d  Max level %d\n",
		stats.Runs, stats.BestScore, stats.TotalKills, stats.MaxLevel)
}
