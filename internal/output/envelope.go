package output

import (
	"errors"
	"fmt"
	"time"

	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/converter"
)

// pattern: Functional Core

// Report is command-level output data that can be rendered in human or JSON mode.
// Conversion is nil for commands that do not convert anything.
type Report struct {
	CommandName string
	Conversion  *contracts.ConversionResult
	Bases       []contracts.BaseInfo
	Messages    []string
}

// ConversionFromState maps a converter state to its wire form. The reason is
// only filled for attempted conversions that failed.
func ConversionFromState(state converter.State) *contracts.ConversionResult {
	result := &contracts.ConversionResult{
		Input: state.Input,
		Base:  state.Base.Name(),
	}

	value, ok := state.Result.Value()
	if !ok {
		if state.Attempted() {
			result.Reason = reasonFor(state)
		}
		return result
	}

	result.Valid = true
	result.Value = &value
	for _, row := range state.Rows() {
		result.Representations = append(result.Representations, contracts.Representation{
			Base:   row.Base.Name(),
			Digits: row.Digits,
		})
	}
	return result
}

func reasonFor(state converter.State) string {
	err := converter.Explain(state.Input, state.Base)
	var converterErr *converter.Error
	if errors.As(err, &converterErr) {
		return string(converterErr.Code)
	}
	return ""
}

// BaseInfos describes every supported base in display order.
func BaseInfos() []contracts.BaseInfo {
	bases := converter.Bases()
	infos := make([]contracts.BaseInfo, 0, len(bases))
	for _, base := range bases {
		infos = append(infos, contracts.BaseInfo{Name: base.Name(), Radix: base.Radix(), Prefix: base.Prefix()})
	}
	return infos
}

func BuildEnvelope(report Report, duration time.Duration, errorCount int) (contracts.CommandEnvelope, error) {
	env := contracts.CommandEnvelope{
		EnvelopeVersion: contracts.JSONEnvelopeVersionV1,
		Command: contracts.CommandMeta{
			Name:       report.CommandName,
			DurationMS: duration.Milliseconds(),
		},
		Conversion: report.Conversion,
		Bases:      report.Bases,
		Messages:   report.Messages,
		Errors:     errorCount,
	}

	if err := contracts.ValidateEnvelopeBasics(env); err != nil {
		return contracts.CommandEnvelope{}, fmt.Errorf("failed to build command envelope: %w", err)
	}

	return env, nil
}

func ResolveExitCode(report Report, fatalErr error) contracts.ExitCode {
	return contracts.ResolveExitCode(report.Conversion, fatalErr != nil)
}
