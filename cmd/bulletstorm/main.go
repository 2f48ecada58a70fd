// bulletstorm is a single-screen arcade shooter: jump between platforms,
// fire auto-aimed volleys and survive ever larger enemy waves.
//
// Usage:
//
//	bulletstorm play     - Play in the terminal
//	bulletstorm window   - Play in a desktop window
//	bulletstorm sim      - Run a headless autopilot session
//	bulletstorm config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load tuning from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
//	--sound              - Play synthesized sound cues
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bulletstorm",
	Short: "Bulletstorm Blitz - a real-time arcade shooter",
	Long: `Bulletstorm Blitz is a single-screen arcade shooter. Move along the
floor, jump between platforms and fire volleys that aim at the nearest
enemy. Every cleared wave brings a larger, faster one.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless autopilot session
  config   - Print the effective configuration

Examples:
  bulletstorm play
  bulletstorm play --seed 42 --sound
  bulletstorm window --config ./blitz.yaml
  bulletstorm sim --frames 18000 --fast
  bulletstorm config > blitz.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints err and exits.
func fail(format string, err error) {
	fmt.Fprintf(os.Stderr, "Error: "+format+": %v\n", err)
	os.Exit(1)
}
