// Package logging builds the zap loggers used by the command line tool.
//
// Libraries in this module take a *zap.Logger through their options and stay
// silent by default; only cmd/coulomb3d constructs a real logger, from the
// log section of the configuration:
//
//	log:
//	  level: info          # debug | info | warn | error
//	  format: console      # console | json
//	  output_paths: [stderr]
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Defaults.
const (
	DefaultLevel  = "info"
	DefaultFormat = FormatConsole
)

// Encodings accepted in LogConfig.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	// ErrLevel is returned for an unrecognised level name.
	ErrLevel = errors.New("logging: unknown level")

	// ErrFormat is returned for an unrecognised encoding.
	ErrFormat = errors.New("logging: unknown format")
)

// LogConfig carries the parameters of NewLogger.
type LogConfig struct {
	// Level is the minimum severity emitted: debug, info, warn or error.
	// Empty means info.
	Level string `mapstructure:"level" yaml:"level"`

	// Format selects the encoder: "console" for people, "json" for pipelines.
	// Empty means console.
	Format string `mapstructure:"format" yaml:"format"`

	// OutputPaths lists zap sinks. "stdout" and "stderr" are special; other
	// values are file paths. Empty means stderr, which keeps stdout free for
	// command output.
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths"`
}

// ParseLevel converts a level name, case-insensitively. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%q: %w", s, ErrLevel)
	}
}

// Validate checks Level and Format without building anything.
func (c LogConfig) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Format {
	case "", FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%q: %w", c.Format, ErrFormat)
	}
}

// NewLogger builds a zap logger from cfg, applying defaults to unset fields.
//
// Errors: ErrLevel, ErrFormat, or the zap build error for an unusable sink.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := ParseLevel(cfg.Level)
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stderr"}
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Format == FormatConsole {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         cfg.Format,
		EncoderConfig:    encCfg,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}

	z, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}

	return z, nil
}
