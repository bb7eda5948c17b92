package commands

import (
	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/converter"
	"github.com/pweiskircher/base-converter/internal/output"
)

type ConvertOptions struct {
	Input string
	Base  converter.Base
}

// RunConvert converts one literal. An invalid literal is a normal outcome
// reported through the conversion, not an error.
func RunConvert(options ConvertOptions) output.Report {
	state := converter.NewState(options.Base).WithInput(options.Input)
	return output.Report{
		CommandName: string(contracts.CommandConvert),
		Conversion:  output.ConversionFromState(state),
	}
}
