package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jecht83/Flappy-Swift/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the search order:
--config, ~/.flappy/configs/flappy.yaml, ./configs/flappy.yaml, then the
built-in defaults. The output is a valid config file.

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --default`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	data, err := config.Encode(loadConfig())
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
