// pattern: Functional Core
package converter

import (
	"errors"
	"strconv"
	"strings"
)

// Result is the outcome of a conversion: either a valid integer or invalid.
// The zero value is Invalid.
type Result struct {
	value int64
	valid bool
}

func Valid(value int64) Result {
	return Result{value: value, valid: true}
}

var Invalid = Result{}

func (r Result) Value() (int64, bool) {
	return r.value, r.valid
}

func (r Result) IsValid() bool {
	return r.valid
}

func (r Result) String() string {
	if !r.valid {
		return "Invalid"
	}
	return "Valid(" + strconv.FormatInt(r.value, 10) + ")"
}

// Convert interprets input as an integer literal in base. Every failure
// collapses to Invalid; use Explain to learn which rule rejected the input.
func Convert(input string, base Base) Result {
	value, err := parse(input, base)
	if err != nil {
		return Invalid
	}
	return Valid(value)
}

// Explain returns nil exactly when Convert reports Valid for the same
// arguments, and a typed *Error describing the rejection otherwise.
func Explain(input string, base Base) error {
	_, err := parse(input, base)
	return err
}

func parse(input string, base Base) (int64, error) {
	if !base.Valid() {
		return 0, &Error{Code: ErrorCodeUnknownBase, Base: base, Input: input, Message: "unsupported base " + base.Name()}
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, &Error{Code: ErrorCodeEmptyInput, Base: base, Input: input, Message: "no number entered"}
	}

	digits := stripPrefix(trimmed, base.Prefix())
	if digits == "" {
		return 0, &Error{Code: ErrorCodeMissingDigits, Base: base, Input: input, Message: "prefix " + base.Prefix() + " is not followed by digits"}
	}

	value, err := strconv.ParseInt(digits, base.Radix(), 64)
	if err == nil {
		return value, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return 0, &Error{Code: ErrorCodeOutOfRange, Base: base, Input: input, Message: "value does not fit in a signed 64-bit integer", Err: err}
	}
	return 0, &Error{Code: ErrorCodeInvalidDigit, Base: base, Input: input, Message: strconv.Quote(digits) + " is not a " + base.Name() + " number", Err: err}
}

func stripPrefix(s string, prefix string) string {
	if prefix == "" || len(s) < len(prefix) {
		return s
	}
	if strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}

// Format renders value in target without a prefix. Hexadecimal digits are
// upper case and negative values keep their sign in every base.
func Format(value int64, target Base) string {
	digits := strconv.FormatInt(value, target.Radix())
	if target == Hexadecimal {
		return strings.ToUpper(digits)
	}
	return digits
}

// Row is one rendered line of the conversion table.
type Row struct {
	Base   Base
	Digits string
}

// Rows renders value once per base, in display order.
func Rows(value int64) []Row {
	rows := make([]Row, 0, len(displayOrder))
	for _, base := range displayOrder {
		rows = append(rows, Row{Base: base, Digits: Format(value, base)})
	}
	return rows
}
