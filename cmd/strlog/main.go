package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coffersTech/strlog/internal/config"
	"github.com/coffersTech/strlog/internal/logger"
)

// app carries state shared by every subcommand.
type app struct {
	cfg config.Config
	log *slog.Logger

	// flag overrides
	logLevel string
	format   string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "strlog",
		Short:         "Append-only string log playground",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format: text, json or nano")

	root.AddCommand(
		newDemoCmd(a),
		newInsertCmd(a),
		newStatsCmd(a),
		newDecodeCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and starts the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.Init(logger.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.Source,
		Output:    cmd.ErrOrStderr(),
	}).With(slog.String("component", "cli"))

	a.log.Debug("configuration loaded",
		slog.String("output", cfg.Output.Format),
		slog.Int("capacity", cfg.Capacity))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
