package log_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/creativesar/Password-Strength-Checker/internal/log"
)

func TestParseEnv(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Env
		wantErr bool
	}{
		{"", log.EnvDev, false},
		{"dev", log.EnvDev, false},
		{" PROD ", log.EnvProd, false},
		{"staging", "", true},
	}
	for _, tt := range tests {
		got, err := log.ParseEnv(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEnv(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, env := range []log.Env{log.EnvDev, log.EnvProd} {
		logger, err := log.New(env)
		if err != nil {
			t.Fatalf("New(%v) error: %v", env, err)
		}
		if logger == nil {
			t.Fatalf("New(%v) returned nil logger", env)
		}
	}
}

func TestInitialize(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger, err := log.Initialize(log.EnvProd)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	def := slog.Default()
	if def == prev {
		t.Fatal("Initialize() did not replace the default slog logger")
	}
	if !def.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("prod slog logger should be enabled at info level")
	}
	if def.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("prod slog logger should not be enabled at debug level")
	}
	def.Info("slog routed through zap", "score", 75)
}

func TestResultFields(t *testing.T) {
	fields := log.ResultFields("Strong", 75, "canonical@1", 0)
	keys := map[string]bool{}
	for _, f := range fields {
		keys[f.Key] = true
	}
	for _, k := range []string{"label", "score", "policy", "findings"} {
		if !keys[k] {
			t.Errorf("missing field %q", k)
		}
	}
	if len(fields) != 4 {
		t.Errorf("got %d fields, want 4", len(fields))
	}
}
