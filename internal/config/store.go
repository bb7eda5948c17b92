// pattern: Imperative Shell
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pweiskircher/base-converter/internal/contracts"
	"gopkg.in/yaml.v3"
)

func Read(path string) (contracts.Config, error) {
	resolvedPath := resolvePath(path)
	raw, err := os.ReadFile(resolvedPath)
	if err != nil {
		return contracts.Config{}, &Error{Code: ErrorCodeReadFailed, Path: resolvedPath, Err: err}
	}

	config, err := decode(raw)
	if err != nil {
		return contracts.Config{}, newParseError(resolvedPath, err)
	}

	if err := contracts.ValidateConfig(config); err != nil {
		return contracts.Config{}, newValidationError(resolvedPath, raw, err)
	}

	return config, nil
}

// ReadOptional reads the config at path when it exists. A missing file is
// only an error when the caller named the path explicitly.
func ReadOptional(path string, explicit bool) (contracts.Config, bool, error) {
	config, err := Read(path)
	if err == nil {
		return config, true, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return contracts.Config{}, false, nil
	}
	return contracts.Config{}, false, err
}

func Write(path string, config contracts.Config) error {
	resolvedPath := resolvePath(path)
	if err := contracts.ValidateConfig(config); err != nil {
		return newValidationError(resolvedPath, nil, err)
	}

	dir := filepath.Dir(resolvedPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Code: ErrorCodeWriteFailed, Path: resolvedPath, Err: fmt.Errorf("failed to create parent directory: %w", err)}
	}

	encoded, err := encode(config)
	if err != nil {
		return &Error{Code: ErrorCodeWriteFailed, Path: resolvedPath, Err: err}
	}

	if err := os.WriteFile(resolvedPath, encoded, 0o644); err != nil {
		return &Error{Code: ErrorCodeWriteFailed, Path: resolvedPath, Err: err}
	}

	return nil
}

func decode(raw []byte) (contracts.Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var config contracts.Config
	if err := decoder.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return contracts.Config{}, errors.New("config file is empty")
		}
		return contracts.Config{}, fmt.Errorf("failed to decode config YAML: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return contracts.Config{}, errors.New("unexpected additional YAML document")
		}
		return contracts.Config{}, fmt.Errorf("failed to decode trailing config YAML content: %w", err)
	}

	return config, nil
}

func encode(config contracts.Config) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to encode config YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func resolvePath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return contracts.DefaultConfigFilePath
	}
	return trimmed
}
