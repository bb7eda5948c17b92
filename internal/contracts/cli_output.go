package contracts

import (
	"errors"
	"strings"
)

const JSONEnvelopeVersionV1 = "1"

type OutputMode string

const (
	OutputModeHuman OutputMode = "human"
	OutputModeJSON  OutputMode = "json"
)

type ExitCode int

const (
	ExitCodeSuccess ExitCode = 0
	ExitCodeInvalid ExitCode = 1
	ExitCodeFatal   ExitCode = 2
)

// ExitCodeMeaning is printed in the root command's help.
var ExitCodeMeaning = map[ExitCode]string{
	ExitCodeSuccess: "input converted (or nothing to convert)",
	ExitCodeInvalid: "input is not a number in the selected base",
	ExitCodeFatal:   "fatal command failure (usage/config/output)",
}

type CommandEnvelope struct {
	EnvelopeVersion string            `json:"envelope_version"`
	Command         CommandMeta       `json:"command"`
	Conversion      *ConversionResult `json:"conversion,omitempty"`
	Bases           []BaseInfo        `json:"bases,omitempty"`
	Messages        []string          `json:"messages,omitempty"`
	Errors          int               `json:"errors"`
}

type CommandMeta struct {
	Name       string `json:"name"`
	DurationMS int64  `json:"duration_ms"`
}

// ConversionResult is the wire form of a conversion. Value and
// Representations are only set when Valid is true.
type ConversionResult struct {
	Input           string           `json:"input"`
	Base            string           `json:"base"`
	Valid           bool             `json:"valid"`
	Value           *int64           `json:"value,omitempty"`
	Reason          string           `json:"reason,omitempty"`
	Representations []Representation `json:"representations,omitempty"`
}

type Representation struct {
	Base   string `json:"base"`
	Digits string `json:"digits"`
}

type BaseInfo struct {
	Name   string `json:"name"`
	Radix  int    `json:"radix"`
	Prefix string `json:"prefix,omitempty"`
}

func ValidateEnvelopeBasics(env CommandEnvelope) error {
	if env.EnvelopeVersion != JSONEnvelopeVersionV1 {
		return errors.New("unsupported envelope_version")
	}
	if env.Command.Name == "" {
		return errors.New("command name is required")
	}
	if conv := env.Conversion; conv != nil {
		if conv.Valid && conv.Value == nil {
			return errors.New("valid conversion must carry a value")
		}
		if !conv.Valid && (conv.Value != nil || len(conv.Representations) > 0) {
			return errors.New("invalid conversion must not carry a value")
		}
	}
	return nil
}

func ResolveExitCode(conversion *ConversionResult, fatalErr bool) ExitCode {
	if fatalErr {
		return ExitCodeFatal
	}
	if conversion != nil && !conversion.Valid && strings.TrimSpace(conversion.Input) != "" {
		return ExitCodeInvalid
	}
	return ExitCodeSuccess
}
