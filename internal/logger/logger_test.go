package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestNewLogger_KnownEnvironments(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev", "docker"} {
		l, err := NewLogger(env)
		if err != nil {
			t.Fatalf("env %q: unexpected error: %v", env, err)
		}
		if l == nil {
			t.Fatalf("env %q: nil logger", env)
		}
	}
}

func TestNewLogger_UnknownEnvironment(t *testing.T) {
	if _, err := NewLogger("staging-42"); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zap.InfoLevel) {
		t.Error("info must be disabled at warn level")
	}

	if _, err := NewLogger("prod", "loud"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}

	fallback := zap.NewExample()
	if FromContextOr(context.Background(), fallback) != fallback {
		t.Error("expected fallback logger for empty context")
	}

	stored := zap.NewNop().Named("req")
	ctx := ContextWithLogger(context.Background(), stored)
	if FromContextOr(ctx, fallback) != stored {
		t.Error("expected stored logger")
	}
}
