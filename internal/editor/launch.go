package editor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const (
	EnvVisual     = "VISUAL"
	EnvEditor     = "EDITOR"
	DefaultEditor = "vi"
)

// Streams are attached to the editor process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Resolve picks $VISUAL, then $EDITOR, then vi.
func Resolve(lookup func(string) (string, bool)) string {
	for _, key := range []string{EnvVisual, EnvEditor} {
		if lookup == nil {
			break
		}
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return DefaultEditor
}

func Launch(ctx context.Context, editor string, absolutePath string, streams Streams) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("invalid editor command")
	}

	args := append(parts[1:], absolutePath)
	command := exec.CommandContext(ctx, parts[0], args...)
	command.Stdin = streams.Stdin
	command.Stdout = streams.Stdout
	command.Stderr = streams.Stderr
	if err := command.Run(); err != nil {
		return fmt.Errorf("failed to launch editor: %w", err)
	}

	return nil
}
