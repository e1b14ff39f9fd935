package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tphakala/go-zplane/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// Execute runs the CLI with os.Args.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zplane",
		Short:         "Frequency response and pole-zero analysis of digital filters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)

			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(responseCmd(), pzkCmd(), graphCmd(), designCmd(), filterCmd())
	return root
}

func setupLogging(debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}
