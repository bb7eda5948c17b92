// pattern: Functional Core
package config

import (
	"strings"

	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/converter"
)

const (
	EnvDefaultBase = "BASE_CONVERTER_DEFAULT_BASE"
	EnvOutput      = "BASE_CONVERTER_OUTPUT"
	EnvLogLevel    = "BASE_CONVERTER_LOG_LEVEL"
	EnvLogFormat   = "BASE_CONVERTER_LOG_FORMAT"
)

type RuntimeFlags struct {
	Base     string
	JSON     bool
	LogLevel string
}

type Environment struct {
	DefaultBase string
	Output      string
	LogLevel    string
	LogFormat   string
}

type BaseSource string

const (
	BaseSourceFlag    BaseSource = "flag"
	BaseSourceEnv     BaseSource = "env"
	BaseSourceConfig  BaseSource = "config"
	BaseSourceDefault BaseSource = "default"
)

type RuntimeSettings struct {
	Base       converter.Base
	BaseSource BaseSource
	OutputMode contracts.OutputMode
	LogLevel   string
	LogFormat  string
}

// Resolve applies flags > env > config file > defaults. A zero Config means no
// file was found.
func Resolve(config contracts.Config, flags RuntimeFlags, env Environment) (RuntimeSettings, error) {
	if config.ConfigVersion != "" {
		if err := contracts.ValidateConfig(config); err != nil {
			return RuntimeSettings{}, &ResolveError{
				Code:    ResolveErrorCodeInvalidConfig,
				Message: "configuration is invalid",
				Err:     err,
			}
		}
	}

	if flags.Base != "" && strings.TrimSpace(flags.Base) == "" {
		return RuntimeSettings{}, &ResolveError{
			Code:    ResolveErrorCodeInvalidFlag,
			Message: "--from must not be only whitespace",
		}
	}

	if err := validateLogSettings(flags, env); err != nil {
		return RuntimeSettings{}, err
	}

	base, source, err := resolveBase(config, flags, env)
	if err != nil {
		return RuntimeSettings{}, err
	}

	mode, err := resolveOutputMode(config, flags, env)
	if err != nil {
		return RuntimeSettings{}, err
	}

	return RuntimeSettings{
		Base:       base,
		BaseSource: source,
		OutputMode: mode,
		LogLevel:   strings.ToLower(firstNonEmpty(flags.LogLevel, env.LogLevel, config.LogLevel, contracts.DefaultLogLevel)),
		LogFormat:  strings.ToLower(firstNonEmpty(env.LogFormat, config.LogFormat, contracts.DefaultLogFormat)),
	}, nil
}

func EnvironmentFromLookup(lookup func(string) (string, bool)) Environment {
	if lookup == nil {
		return Environment{}
	}

	return Environment{
		DefaultBase: lookupTrimmed(lookup, EnvDefaultBase),
		Output:      lookupTrimmed(lookup, EnvOutput),
		LogLevel:    lookupTrimmed(lookup, EnvLogLevel),
		LogFormat:   lookupTrimmed(lookup, EnvLogFormat),
	}
}

func resolveBase(config contracts.Config, flags RuntimeFlags, env Environment) (converter.Base, BaseSource, error) {
	candidates := []struct {
		value  string
		source BaseSource
		code   ResolveErrorCode
		label  string
	}{
		{value: flags.Base, source: BaseSourceFlag, code: ResolveErrorCodeInvalidFlag, label: "--from"},
		{value: env.DefaultBase, source: BaseSourceEnv, code: ResolveErrorCodeInvalidEnv, label: EnvDefaultBase},
		{value: config.DefaultBase, source: BaseSourceConfig, code: ResolveErrorCodeInvalidConfig, label: "default_base"},
	}

	for _, candidate := range candidates {
		if strings.TrimSpace(candidate.value) == "" {
			continue
		}
		base, err := converter.ParseBase(candidate.value)
		if err != nil {
			return converter.Decimal, "", &ResolveError{
				Code:    candidate.code,
				Message: candidate.label + " is not a supported base",
				Err:     err,
			}
		}
		return base, candidate.source, nil
	}

	return converter.Decimal, BaseSourceDefault, nil
}

func validateLogSettings(flags RuntimeFlags, env Environment) error {
	checks := []struct {
		err   error
		code  ResolveErrorCode
		label string
	}{
		{err: contracts.ValidateLogLevel(flags.LogLevel), code: ResolveErrorCodeInvalidFlag, label: "--log-level"},
		{err: contracts.ValidateLogLevel(env.LogLevel), code: ResolveErrorCodeInvalidEnv, label: EnvLogLevel},
		{err: contracts.ValidateLogFormat(env.LogFormat), code: ResolveErrorCodeInvalidEnv, label: EnvLogFormat},
	}
	for _, check := range checks {
		if check.err != nil {
			return &ResolveError{
				Code:    check.code,
				Message: check.label + " is not a supported value",
				Err:     check.err,
			}
		}
	}
	return nil
}

func resolveOutputMode(config contracts.Config, flags RuntimeFlags, env Environment) (contracts.OutputMode, error) {
	if flags.JSON {
		return contracts.OutputModeJSON, nil
	}

	if env.Output != "" {
		mode := contracts.OutputMode(strings.ToLower(env.Output))
		if mode != contracts.OutputModeHuman && mode != contracts.OutputModeJSON {
			return "", &ResolveError{
				Code:    ResolveErrorCodeInvalidEnv,
				Message: EnvOutput + " must be human or json",
			}
		}
		return mode, nil
	}

	if config.Output != "" {
		return contracts.OutputMode(config.Output), nil
	}

	return contracts.OutputModeHuman, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func lookupTrimmed(lookup func(string) (string, bool), key string) string {
	value, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
