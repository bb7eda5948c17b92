package editor

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolvePrefersVisualThenEditor(t *testing.T) {
	env := map[string]string{EnvVisual: " code -w ", EnvEditor: "nano"}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	if got := Resolve(lookup); got != "code -w" {
		t.Fatalf("expected VISUAL, got %q", got)
	}

	delete(env, EnvVisual)
	if got := Resolve(lookup); got != "nano" {
		t.Fatalf("expected EDITOR, got %q", got)
	}

	delete(env, EnvEditor)
	if got := Resolve(lookup); got != DefaultEditor {
		t.Fatalf("expected default editor, got %q", got)
	}
	if got := Resolve(nil); got != DefaultEditor {
		t.Fatalf("expected default editor for nil lookup, got %q", got)
	}
}

func TestLaunchReportsEditorFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := Launch(context.Background(), "true", path, Streams{}); err != nil {
		t.Fatalf("expected successful editor run, got %v", err)
	}

	err := Launch(context.Background(), "false", path, Streams{})
	if err == nil || !strings.Contains(err.Error(), "failed to launch editor") {
		t.Fatalf("expected editor failure, got %v", err)
	}

	if err := Launch(context.Background(), "   ", path, Streams{}); err == nil {
		t.Fatalf("expected invalid editor command error")
	}
}
