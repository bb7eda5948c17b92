package converter

import (
	"strconv"
	"strings"
)

// Base is one of the four supported numeral systems.
type Base uint8

const (
	Decimal Base = iota
	Binary
	Octal
	Hexadecimal
)

var displayOrder = []Base{Decimal, Binary, Octal, Hexadecimal}

// Bases returns every supported base in display order.
func Bases() []Base {
	return append([]Base(nil), displayOrder...)
}

func (b Base) Radix() int {
	switch b {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hexadecimal:
		return 16
	default:
		return 10
	}
}

// Prefix is the literal marker stripped from input before parsing. Decimal
// has none.
func (b Base) Prefix() string {
	switch b {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hexadecimal:
		return "0x"
	default:
		return ""
	}
}

func (b Base) Name() string {
	switch b {
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "base(" + strconv.Itoa(int(b)) + ")"
	}
}

func (b Base) String() string {
	return b.Name()
}

func (b Base) Valid() bool {
	return b <= Hexadecimal
}

// Next and Prev cycle through the bases in display order.
func (b Base) Next() Base {
	return Base((int(b) + 1) % len(displayOrder))
}

func (b Base) Prev() Base {
	return Base((int(b) + len(displayOrder) - 1) % len(displayOrder))
}

// MarshalText and UnmarshalText let a Base travel through JSON, YAML and
// flag values by name.
func (b Base) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &Error{Code: ErrorCodeUnknownBase, Base: b, Message: "cannot encode " + b.Name()}
	}
	return []byte(b.Name()), nil
}

func (b *Base) UnmarshalText(text []byte) error {
	parsed, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

var baseAliases = map[string]Base{
	"decimal":     Decimal,
	"dec":         Decimal,
	"10":          Decimal,
	"binary":      Binary,
	"bin":         Binary,
	"2":           Binary,
	"octal":       Octal,
	"oct":         Octal,
	"8":           Octal,
	"hexadecimal": Hexadecimal,
	"hex":         Hexadecimal,
	"16":          Hexadecimal,
}

// ParseBase resolves a base by name, short alias, or radix number.
func ParseBase(name string) (Base, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if base, ok := baseAliases[key]; ok {
		return base, nil
	}
	return Decimal, &Error{
		Code:    ErrorCodeUnknownBase,
		Input:   name,
		Message: "unknown base " + strconv.Quote(name) + " (want decimal, binary, octal or hexadecimal)",
	}
}
