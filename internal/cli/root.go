// Package cli implements the cpusched command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"
)

// app is the state one root command shares with its subcommands. It is filled
// in by the root's PersistentPreRunE before any subcommand runs.
type app struct {
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	cfg    *config.SchedulerConfig
}

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "CPU scheduling simulator",
		Long: `cpusched replays a fixed set of processes through classic CPU scheduling
algorithms and reports the resulting timeline and per-process metrics.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.flagConfig)
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = a.flagLogLevel
			}
			if a.flagDebug {
				level = "debug"
			}
			format := cfg.LogFormat
			if cmd.Flags().Changed("log-format") {
				format = a.flagLogFormat
			}
			a.cfg = cfg
			a.logger = logging.NewLogger(logging.ParseLevel(level), format)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&a.flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newGenerateCmd(),
		newServeCmd(a),
	)

	return root
}
