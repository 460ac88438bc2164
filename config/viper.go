// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/StuttgarterDotNet/contextual-encoders/logger"
)

// Settings are the ctxenc process settings, separate from encoder documents.
type Settings struct {
	Debug       bool   `mapstructure:"debug"`
	LogFormat   string `mapstructure:"log_format"`
	LogFile     string `mapstructure:"log_file"`
	Workers     int    `mapstructure:"workers"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Log formats accepted by Settings.LogFormat.
const (
	LogFormatText   = logger.FormatText
	LogFormatJSON   = logger.FormatJSON
	LogFormatPretty = logger.FormatPretty
)

// NewDefaultSettings returns the built-in settings.
func NewDefaultSettings() Settings {
	return Settings{LogFormat: LogFormatPretty}
}

// InitViper returns a viper instance with defaults, the optional settings
// file in dir (ctxenc.yaml) and CTXENC_ environment variables bound.
//
// Precedence, highest first: flags bound by the caller, environment,
// settings file, defaults.
func InitViper(dir string) (*viper.Viper, error) {
	v := viper.New()

	d := NewDefaultSettings()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("metrics_file", d.MetricsFile)

	v.SetConfigName("ctxenc")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			// A missing file leaves the defaults in place.
			if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
				return nil, fmt.Errorf("reading settings: %w", err)
			}
		}
	}

	v.SetEnvPrefix("CTXENC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v, nil
}

// ReadSettings decodes v into Settings and validates the log format.
func ReadSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	switch s.LogFormat {
	case LogFormatText, LogFormatJSON, LogFormatPretty:
	default:
		return Settings{}, fmt.Errorf("log_format %q: %w", s.LogFormat, ErrBadValue)
	}
	if s.Workers < 0 {
		return Settings{}, fmt.Errorf("workers %d: %w", s.Workers, ErrBadValue)
	}

	return s, nil
}
