// Package log wraps Uber's Zap logging library for the pwstrength command.
//
// Nothing in this repository logs a password. Log the label, score and
// policy of a result, never its input.
package log

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// Env selects a logger configuration.
type Env string

// String implements the Stringer interface.
func (e Env) String() string {
	return string(e)
}

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

// ParseEnv accepts "dev" or "prod" in any case.
func ParseEnv(s string) (Env, error) {
	switch Env(strings.ToLower(strings.TrimSpace(s))) {
	case EnvDev, "":
		return EnvDev, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("unknown logging env %q", s)
	}
}

// New builds a logger for env. Development loggers write console output at
// debug level; production loggers write JSON at info level. Both go to stderr
// so command output on stdout stays machine readable.
func New(env Env) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case EnvProd:
		cfg = zap.NewProductionConfig()
		// Make sure sampling is disabled.
		cfg.Sampling = nil
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Initialize builds the logger for env, redirects the standard library log
// package to it, and makes slog.Default write to the same core.
func Initialize(env Env) (*zap.Logger, error) {
	logger, err := New(env)
	if err != nil {
		return nil, err
	}
	zap.RedirectStdLog(logger)
	slog.SetDefault(slog.New(zapslog.NewHandler(logger.Core(), zapslog.WithCaller(true))))
	return logger, nil
}

// ResultFields returns the loggable summary of an analysis.
func ResultFields(label string, score int, policy string, findings int) []zap.Field {
	return []zap.Field{
		zap.String("label", label),
		zap.Int("score", score),
		zap.String("policy", policy),
		zap.Int("findings", findings),
	}
}
