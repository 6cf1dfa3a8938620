// ABOUTME: Root command and shared setup for the gcstress CLI
// ABOUTME: Tuning file loading and zerolog console logging

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/prateek/cyclegc/gc"
)

var (
	tuningFile string
	debug      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gcstress",
	Short: "Stress and inspect the cyclegc collector",
	Long: `gcstress exercises the cyclegc cycle collector with synthetic cyclic
workloads, reports collection statistics, and helps hunt leaks via heap
snapshots and retained-size analysis.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tuningFile, "tuning", "", "TOML tuning file (default built-in tuning)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log collection passes")
}

// newHeap builds a heap from the --tuning file (or defaults) with console
// logging wired when --debug is set.
func newHeap() (*gc.Heap, zerolog.Logger, error) {
	tuning := gc.DefaultTuning()
	if tuningFile != "" {
		loaded, err := gc.LoadTuning(tuningFile)
		if err != nil {
			return nil, zerolog.Nop(), fmt.Errorf("gcstress: %w", err)
		}
		tuning = loaded
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	h := gc.NewHeapWith(tuning)
	h.SetLogger(log)
	return h, log, nil
}
