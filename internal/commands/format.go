package commands

import (
	"fmt"
	"strings"

	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/converter"
	"github.com/pweiskircher/base-converter/internal/output"
)

type FormatOptions struct {
	Value string
	// Target limits the output to one base; nil renders every base.
	Target *converter.Base
}

// RunFormat renders a decimal integer. Unlike convert, a value that is not a
// decimal integer is a usage error.
func RunFormat(options FormatOptions) (output.Report, error) {
	report := output.Report{CommandName: string(contracts.CommandFormat)}

	trimmed := strings.TrimSpace(options.Value)
	value, ok := converter.Convert(trimmed, converter.Decimal).Value()
	if !ok {
		return report, fmt.Errorf("value %q is not a decimal integer: %w", trimmed, converter.Explain(trimmed, converter.Decimal))
	}

	conversion := &contracts.ConversionResult{
		Input: trimmed,
		Base:  converter.Decimal.Name(),
		Valid: true,
		Value: &value,
	}
	for _, row := range converter.Rows(value) {
		if options.Target != nil && row.Base != *options.Target {
			continue
		}
		conversion.Representations = append(conversion.Representations, contracts.Representation{
			Base:   row.Base.Name(),
			Digits: row.Digits,
		})
	}

	report.Conversion = conversion
	return report, nil
}
