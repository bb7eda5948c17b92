package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pweiskircher/base-converter/internal/config"
	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/editor"
	"github.com/pweiskircher/base-converter/internal/output"
)

type ConfigEditOptions struct {
	ConfigPath string
	Editor     string
	Streams    editor.Streams
	// Launch defaults to editor.Launch.
	Launch func(ctx context.Context, editorCmd string, path string, streams editor.Streams) error
}

// RunConfigEdit opens the config file in an editor and validates the result.
func RunConfigEdit(ctx context.Context, workDir string, options ConfigEditOptions) (output.Report, error) {
	report := output.Report{CommandName: string(contracts.CommandConfigEdit)}

	configPath := strings.TrimSpace(options.ConfigPath)
	if configPath == "" {
		configPath = filepath.Join(workDir, contracts.DefaultConfigFilePath)
	}
	absolutePath, err := filepath.Abs(configPath)
	if err != nil {
		return report, err
	}

	if _, err := os.Stat(absolutePath); err != nil {
		return report, fmt.Errorf("no config at %s (run config init first): %w", absolutePath, err)
	}

	launch := options.Launch
	if launch == nil {
		launch = editor.Launch
	}
	if err := launch(ctx, options.Editor, absolutePath, options.Streams); err != nil {
		return report, err
	}

	if _, err := config.Read(absolutePath); err != nil {
		return report, err
	}

	report.Messages = append(report.Messages, "config at "+absolutePath+" is valid")
	return report, nil
}
