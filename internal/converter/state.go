package converter

import "strings"

// State is the caller-held (input, base, result) triple. It is replaced as a
// whole on every change and never mutated in place.
type State struct {
	Input  string
	Base   Base
	Result Result
}

func NewState(base Base) State {
	return State{Base: base, Result: Invalid}
}

func (s State) WithInput(input string) State {
	return State{Input: input, Base: s.Base, Result: Convert(input, s.Base)}
}

func (s State) WithBase(base Base) State {
	return State{Input: s.Input, Base: base, Result: Convert(s.Input, base)}
}

// Attempted reports whether there is any input to convert. Empty input is
// "no conversion attempted", not an error.
func (s State) Attempted() bool {
	return strings.TrimSpace(s.Input) != ""
}

// ShowInvalid reports whether the invalid-input message should be shown.
func (s State) ShowInvalid() bool {
	return s.Attempted() && !s.Result.IsValid()
}

// Rows returns the conversion table, or nil when the result is invalid.
func (s State) Rows() []Row {
	value, ok := s.Result.Value()
	if !ok {
		return nil
	}
	return Rows(value)
}
