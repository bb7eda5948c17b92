package commands

import (
	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/output"
)

func RunBases() output.Report {
	return output.Report{
		CommandName: string(contracts.CommandBases),
		Bases:       output.BaseInfos(),
	}
}
