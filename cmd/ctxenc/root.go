// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/StuttgarterDotNet/contextual-encoders/config"
	"github.com/StuttgarterDotNet/contextual-encoders/logger"
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	failMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const rootLongDesc string = `ctxenc turns categorical attributes into coordinates.

Each column is compared through a semantic context (a concept tree or a
relation graph), the per-column matrices are aggregated, and the result is
embedded with SMACOF MDS or a kernel eigendecomposition.

  ctxenc validate -c encoder.yaml
  ctxenc encode -c encoder.yaml -i data.csv --header
  ctxenc context export -c encoder.yaml job job.json`

const rootShortDesc string = "ctxenc - contextual encoders"

// rootCommander carries the settings and logger resolved before any
// subcommand runs.
type rootCommander struct {
	configDir string

	settings config.Settings
	log      *slog.Logger
	logFile  *os.File
}

// settingFlags maps viper keys to the flag names that may override them.
var settingFlags = map[string]string{
	"debug":        "debug",
	"log_format":   "log-format",
	"log_file":     "log-file",
	"workers":      "workers",
	"metrics_file": "metrics-file",
}

func newRootCmd() *cobra.Command {
	r := &rootCommander{}

	cmd := &cobra.Command{
		Use:          "ctxenc",
		Short:        rootShortDesc,
		Long:         rootLongDesc,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return r.close()
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolP("debug", "d", false, "Enable debug logging")
	pf.String("log-format", config.LogFormatPretty, "Log format: text, json or pretty")
	pf.String("log-file", "", "Also append JSON logs to this file")
	pf.StringVar(&r.configDir, "config-dir", "", "Directory holding ctxenc.yaml settings")

	cmd.AddCommand(
		newEncodeCmd(r),
		newValidateCmd(r),
		newContextCmd(r),
	)

	return cmd
}

// setup resolves settings (flags, CTXENC_ environment, ctxenc.yaml,
// defaults) and builds the logger.
func (r *rootCommander) setup(cmd *cobra.Command) error {
	v, err := config.InitViper(r.configDir)
	if err != nil {
		return err
	}
	for key, name := range settingFlags {
		if err := bindFlag(v.BindPFlag, key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	if r.settings, err = config.ReadSettings(v); err != nil {
		return err
	}

	s := r.settings
	r.log = logger.New(
		logger.WithDebug(s.Debug),
		logger.WithFormat(s.LogFormat),
		logger.WithWriter(cmd.ErrOrStderr()),
	)
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		r.logFile = f
		r.log = logger.Multi(r.log, logger.New(
			logger.WithDebug(s.Debug),
			logger.WithFormat(logger.FormatJSON),
			logger.WithWriter(f),
		))
	}

	return nil
}

func bindFlag(bind func(string, *pflag.Flag) error, key string, f *pflag.Flag) error {
	if f == nil {
		return nil
	}
	if err := bind(key, f); err != nil {
		return fmt.Errorf("binding --%s: %w", f.Name, err)
	}

	return nil
}

func (r *rootCommander) close() error {
	if r.logFile == nil {
		return nil
	}
	err := r.logFile.Close()
	r.logFile = nil

	return err
}
