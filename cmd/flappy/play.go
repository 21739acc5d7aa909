package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jecht83/Flappy-Swift/internal/core"
	"github.com/jecht83/Flappy-Swift/internal/game"
	"github.com/jecht83/Flappy-Swift/internal/logging"
	"github.com/jecht83/Flappy-Swift/internal/platform/tui"
	"github.com/jecht83/Flappy-Swift/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a play session. Finished runs are journaled to the database.

Controls:
  Space/Up/W/click - Flap (also starts a run)
  P/Esc            - Pause
  R                - Restart right after a crash
  Q/Ctrl+C         - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file /tmp/flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	logger := logging.Discard()
	var logCloser io.Closer
	if flagLogFile != "" {
		var err error
		logger, logCloser, err = logging.OpenFile(flagLogFile, flagLogLevel)
		if err != nil {
			fail("%v", err)
		}
	}

	var saver tui.RunSaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		saver = store
	}

	logger.Info("session", "seed", rc.Seed, "fps", rc.TickRate, "size", fmt.Sprintf("%dx%d", width, height))
	best, runErr := tui.Run(game.New(cfg, game.WithLogger(logger)), saver, rc, logger)

	if store != nil {
		store.Close()
	}
	if logCloser != nil {
		logCloser.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
	fmt.Printf("Best score this session: %d\n", best)
}
