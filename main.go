package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"lsbstego/internal/config"
	"lsbstego/internal/version"
)

// options is shared by every subcommand. cfg is filled in before any
// command runs.
type options struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Empty()}

	root := &cobra.Command{
		Use:           "lsbstego",
		Short:         "Hide and reveal text in the green channel of an image",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()

			if opts.configPath == "" {
				return nil
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			log.Debug().Str("path", opts.configPath).Msg("loaded config")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a JSON config file")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(
		newHideCmd(opts),
		newRevealCmd(opts),
		newFlipCmd(opts),
		newCapacityCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
