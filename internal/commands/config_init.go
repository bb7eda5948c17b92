package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pweiskircher/base-converter/internal/config"
	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/converter"
	"github.com/pweiskircher/base-converter/internal/output"
)

type ConfigInitOptions struct {
	ConfigPath  string
	DefaultBase converter.Base
	Force       bool
}

// RunConfigInit writes a config file populated with defaults.
func RunConfigInit(workDir string, options ConfigInitOptions) (output.Report, error) {
	report := output.Report{CommandName: string(contracts.CommandConfigInit)}

	configPath := strings.TrimSpace(options.ConfigPath)
	if configPath == "" {
		configPath = filepath.Join(workDir, contracts.DefaultConfigFilePath)
	}

	if !options.Force {
		if _, err := os.Stat(configPath); err == nil {
			return report, fmt.Errorf("config already exists at %s (use --force to overwrite)", configPath)
		}
	}

	cfg := contracts.DefaultConfig()
	cfg.DefaultBase = options.DefaultBase.Name()

	if err := config.Write(configPath, cfg); err != nil {
		return report, err
	}

	action := "created"
	if options.Force {
		action = "written"
	}
	report.Messages = append(report.Messages, "config "+action+" at "+configPath)
	return report, nil
}
