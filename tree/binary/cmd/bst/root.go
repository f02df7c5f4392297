package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// app is what every subcommand gets once the root command
// has loaded the configuration.
type app struct {
	cfg Config
	log zerolog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:          "bst",
		Short:        "Builds and queries binary search trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "YAML config file")
	flags.String(flagLogLevel, "", "log level (trace, debug, info, warn, error, disabled)")
	flags.String(flagLogFormat, "", "log format (text or json)")

	cmd.AddCommand(
		newLoadCommand(a),
		newDemoCommand(a),
		newRandomCommand(a),
		newBuildCommand(a),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()

	configFile, _ := flags.GetString(flagConfig)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}

	overrideLogConfig(&cfg.Log, flags)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, logger
	a.log.Debug().Str("config_file", configFile).Msg("configuration loaded")

	return nil
}

// overrideLogConfig applies the log flags that were set explicitly.
func overrideLogConfig(conf *LogConfig, flags *pflag.FlagSet) {
	if flags.Changed(flagLogLevel) {
		conf.Level, _ = flags.GetString(flagLogLevel)
	}
	if flags.Changed(flagLogFormat) {
		conf.Format, _ = flags.GetString(flagLogFormat)
	}
}
