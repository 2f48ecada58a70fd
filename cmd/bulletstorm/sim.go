package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bulletstorm/internal/core"
	"github.com/vovakirdan/bulletstorm/internal/games/blitz"
	"github.com/vovakirdan/bulletstorm/internal/storage"
)

var (
	flagFrames int
	flagFast   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Run the game without a display. An autopilot holds fire, runs from
nearby enemies and otherwise wanders. Game time advances exactly one tick
per frame, so the same --seed always produces the same run and the same
final state hash.

By default frames are paced at the tick rate; --fast runs them back to
back. Ctrl+C stops early and still prints the summary.

Examples:
  bulletstorm sim --seed 42
  bulletstorm sim --seed 42 --frames 36000 --fast --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagFast, "fast", false, "Do not pace ticks in real time")
}

// simResult tallies a headless run.
type simResult struct {
	frames int
	kills  int
	deaths int
	endMs  int64
	state  core.GameState
	hash   uint64
}

func runSim(cmd *cobra.Command, _ []string) {
	s, err := openSession(cmd, true)
	if err != nil {
		fail("cannot start session", err)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, simErr := simulate(ctx, s, flagFrames, flagFast)
	s.finish(time.UnixMilli(res.endMs))
	if simErr != nil && !errors.Is(simErr, context.Canceled) {
		s.Close()
		fail("simulation", simErr)
	}

	s.logger.Info("simulation finished",
		"frames", res.frames,
		"level", res.state.Level,
		"score", res.state.Score,
		"high", res.state.HighScore,
		"kills", res.kills,
		"deaths", res.deaths,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	fmt.Printf("hash %016x\n", res.hash)
	printSummary(res.state, s.store)
}

// simulate drives the game with the autopilot for up to frames ticks.
func simulate(ctx context.Context, s *session, frames int, fast bool) (simResult, error) {
	tps := int64(s.runtime.TickRate)
	clock := core.NewManualClock(0)
	game := blitz.New(s.cfg, clock)
	game.Reset(s.runtime)
	pilot := blitz.NewAutopilot(s.runtime.Seed)
	s.recorder = storage.NewRecorder(s.store, clockTime(clock))

	var res simResult
	step := func() bool {
		// Frame n lands at n*1000/tps ms, so rounding never accumulates.
		clock.Set(int64(res.frames+1) * 1000 / tps)
		result := game.Step(pilot.Next(game))
		res.frames++
		res.state = result.State

		s.board.Handle(result.Events)
		for _, ev := range result.Events {
			switch ev.Kind {
			case core.EventKill:
				res.kills++
			case core.EventDeath:
				res.deaths++
				s.logger.Info("death", "level", ev.Level, "score", ev.Value)
			case core.EventLevelStart:
				s.logger.Info("level", "level", ev.Level, "enemies", ev.Value)
			case core.EventPickup:
				s.logger.Debug("pickup", "kind", ev.Label)
			}
			if err := s.recorder.Observe(ev, clockTime(clock)); err != nil {
				s.logger.Error("cannot record run", "err", err)
			}
		}
		return res.frames < frames
	}

	var err error
	if fast {
		for step() {
			if err = ctx.Err(); err != nil {
				break
			}
		}
	} else {
		err = core.RunFixed(ctx, s.runtime.TickRate, step)
	}

	res.endMs = clock.Millis()
	snap := game.Snapshot()
	res.hash = snap.Hash()
	return res, err
}

// clockTime maps simulated milliseconds onto a timestamp so recorded run
// durations are game time.
func clockTime(c core.Clock) time.Time {
	return time.UnixMilli(c.Millis())
}
