// flappy is a terminal Flappy Bird with a deterministic, replayable core.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy sim               - Run a headless session driven by the autopilot
//	flappy runs              - List journaled runs
//	flappy replay <id>       - Re-simulate a journaled run
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set run journal path (default: ~/.flappy/runs.db)
//	--config <path>     - Load a custom config YAML
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file while playing
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jecht83/Flappy-Swift/internal/config"
	"github.com/jecht83/Flappy-Swift/internal/logging"
	"github.com/jecht83/Flappy-Swift/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Swift - tap to fly between the pipes",
	Long: `Flappy Swift is a Flappy Bird clone for the terminal. Every run is
journaled with its seed and input ticks, so it can be replayed exactly.

Available commands:
  play     - Play in the terminal
  sim      - Headless autopilot session
  runs     - List or browse journaled runs
  replay   - Re-simulate a journaled run
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42 --log-file /tmp/flappy.log
  flappy sim --seconds 120
  flappy runs --top
  flappy replay 7`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (the terminal is busy)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints err the way every command reports errors and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func loadConfig() config.FlappyConfig {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

func stderrLogger() *log.Logger {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	return logger
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	return store
}

// seed returns the --seed flag, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
