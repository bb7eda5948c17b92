// pattern: Functional Core
package contracts

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pweiskircher/base-converter/internal/converter"
)

const ConfigSchemaVersionV1 = "1"

// Config models .base-converter.yaml. Every field is optional; empty values
// fall through to the next precedence layer.
type Config struct {
	ConfigVersion string `yaml:"config_version" validate:"required,eq=1"`
	DefaultBase   string `yaml:"default_base,omitempty" validate:"omitempty,base_name"`
	Output        string `yaml:"output,omitempty" validate:"omitempty,oneof=human json"`
	LogLevel      string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error"`
	LogFormat     string `yaml:"log_format,omitempty" validate:"omitempty,oneof=console json"`
}

func IsBaseName(name string) bool {
	_, err := converter.ParseBase(name)
	return err == nil
}

func DefaultConfig() Config {
	return Config{
		ConfigVersion: ConfigSchemaVersionV1,
		DefaultBase:   DefaultBaseName,
		Output:        string(OutputModeHuman),
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
	}
}

// Rules shared by the config schema and the flag/env layers.
const (
	LogLevelRule  = "oneof=trace debug info warn warning error"
	LogFormatRule = "oneof=console json"
)

// FieldError is one failed rule on a config field, named by its YAML key.
type FieldError struct {
	Field string
	Rule  string
	Value string
}

type ValidationError struct {
	Fields []FieldError
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Fields) == 0 {
		return "configuration is invalid"
	}
	messages := make([]string, 0, len(err.Fields))
	for _, field := range err.Fields {
		messages = append(messages, fmt.Sprintf("%s: failed %q rule (got %q)", field.Field, field.Rule, field.Value))
	}
	return strings.Join(messages, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := v.RegisterValidation("base_name", func(fl validator.FieldLevel) bool {
			return IsBaseName(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("register base_name validation: %v", err))
		}
		validate = v
	})
	return validate
}

// ValidateConfig returns a *ValidationError listing every failed field.
func ValidateConfig(config Config) error {
	err := configValidator().Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field: yamlFieldName(fe.StructField()),
			Rule:  fe.Tag(),
			Value: fmt.Sprint(fe.Value()),
		})
	}
	return out
}

// ValidateLogLevel applies the log_level rule to a value from a flag or the
// environment. Empty values pass.
func ValidateLogLevel(level string) error {
	return validateSetting("log_level", level, LogLevelRule)
}

func ValidateLogFormat(format string) error {
	return validateSetting("log_format", format, LogFormatRule)
}

func validateSetting(field string, value string, rule string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}
	if err := configValidator().Var(value, rule); err != nil {
		return &ValidationError{Fields: []FieldError{{Field: field, Rule: "oneof", Value: value}}}
	}
	return nil
}

func yamlFieldName(field string) string {
	switch field {
	case "ConfigVersion":
		return "config_version"
	case "DefaultBase":
		return "default_base"
	case "Output":
		return "output"
	case "LogLevel":
		return "log_level"
	case "LogFormat":
		return "log_format"
	default:
		return field
	}
}
