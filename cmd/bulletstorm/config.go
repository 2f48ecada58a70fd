package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bulletstorm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Lookup order: --config, ~/.bulletstorm/configs/blitz.yaml,
./configs/blitz.yaml, then the built-in defaults. The source is printed
to stderr so the output can be redirected into a new config file.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, source, err := config.Load(flagConfig)
		if err != nil {
			fail("loading config", err)
		}
		data, err := cfg.Marshal()
		if err != nil {
			fail("encoding config", err)
		}
		fmt.Fprintf(os.Stderr, "# source: %s\n", source)
		os.Stdout.Write(data) //nolint:errcheck // Best-effort output
	},
}
