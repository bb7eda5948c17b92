package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pweiskircher/base-converter/internal/contracts"
	"gopkg.in/yaml.v3"
)

type ErrorCode string

const (
	ErrorCodeReadFailed       ErrorCode = "config_read_failed"
	ErrorCodeParseFailed      ErrorCode = "config_parse_failed"
	ErrorCodeValidationFailed ErrorCode = "config_validation_failed"
	ErrorCodeWriteFailed      ErrorCode = "config_write_failed"
)

// Error is a config file failure. Line is the 1-based line in the YAML file
// when it is known, and Field names the first key that failed validation.
type Error struct {
	Code  ErrorCode
	Path  string
	Line  int
	Field string
	Err   error
}

func (err *Error) Error() string {
	if err == nil {
		return ""
	}

	var prefix string
	switch err.Code {
	case ErrorCodeReadFailed:
		prefix = "failed to read config"
	case ErrorCodeParseFailed:
		prefix = "failed to parse config"
	case ErrorCodeValidationFailed:
		prefix = "invalid configuration"
	case ErrorCodeWriteFailed:
		prefix = "failed to write config"
	default:
		prefix = "config error"
	}

	switch {
	case err.Path != "" && err.Line > 0:
		prefix = fmt.Sprintf("%s at %s:%d", prefix, err.Path, err.Line)
	case err.Path != "":
		prefix = fmt.Sprintf("%s at %s", prefix, err.Path)
	}
	if err.Err == nil {
		return prefix
	}
	return fmt.Sprintf("%s: %v", prefix, err.Err)
}

func (err *Error) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

func IsErrorCode(err error, code ErrorCode) bool {
	var configErr *Error
	if !errors.As(err, &configErr) {
		return false
	}
	return configErr.Code == code
}

var yamlLinePattern = regexp.MustCompile(`line (\d+):`)

func newParseError(path string, err error) *Error {
	return &Error{Code: ErrorCodeParseFailed, Path: path, Line: yamlErrorLine(err), Err: err}
}

// newValidationError points at the first failing key. raw may be nil when
// the config did not come from a file.
func newValidationError(path string, raw []byte, err error) *Error {
	out := &Error{Code: ErrorCodeValidationFailed, Path: path, Err: err}

	var validationErr *contracts.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Fields) > 0 {
		out.Field = validationErr.Fields[0].Field
		out.Line = keyLine(raw, out.Field)
	}
	return out
}

// yamlErrorLine extracts the first "line N:" that yaml.v3 puts in syntax and
// type errors.
func yamlErrorLine(err error) int {
	if err == nil {
		return 0
	}
	match := yamlLinePattern.FindStringSubmatch(err.Error())
	if match == nil {
		return 0
	}
	line, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return 0
	}
	return line
}

func keyLine(raw []byte, key string) int {
	if len(raw) == 0 || key == "" {
		return 0
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil || len(doc.Content) == 0 {
		return 0
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return 0
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i].Line
		}
	}
	return 0
}

type ResolveErrorCode string

const (
	ResolveErrorCodeInvalidConfig ResolveErrorCode = "invalid_config"
	ResolveErrorCodeInvalidFlag   ResolveErrorCode = "invalid_flag_value"
	ResolveErrorCodeInvalidEnv    ResolveErrorCode = "invalid_env_value"
)

type ResolveError struct {
	Code    ResolveErrorCode
	Message string
	Err     error
}

func (err *ResolveError) Error() string {
	if err == nil {
		return ""
	}
	if err.Err == nil {
		return "failed to resolve runtime settings: " + err.Message
	}
	return fmt.Sprintf("failed to resolve runtime settings: %s: %v", err.Message, err.Err)
}

func (err *ResolveError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

func IsResolveErrorCode(err error, code ResolveErrorCode) bool {
	var resolveErr *ResolveError
	if !errors.As(err, &resolveErr) {
		return false
	}
	return resolveErr.Code == code
}
