package contracts

const (
	DefaultConfigFilePath = ".base-converter.yaml"
	DefaultBaseName       = "decimal"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "console"
)

type CommandName string

const (
	CommandConvert     CommandName = "convert"
	CommandFormat      CommandName = "format"
	CommandBases       CommandName = "bases"
	CommandInteractive CommandName = "interactive"
	CommandConfigInit  CommandName = "config-init"
	CommandConfigEdit  CommandName = "config-edit"
)

// InvalidInputMessage is shown whenever non-empty input does not denote a
// number in the selected base.
const InvalidInputMessage = "number is not valid for the selected base"
