package converter

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorCodeEmptyInput    ErrorCode = "empty_input"
	ErrorCodeMissingDigits ErrorCode = "missing_digits"
	ErrorCodeInvalidDigit  ErrorCode = "invalid_digit"
	ErrorCodeOutOfRange    ErrorCode = "out_of_range"
	ErrorCodeUnknownBase   ErrorCode = "unknown_base"
)

// Error is a typed conversion error. Callers that only need to know whether a
// literal converted should use Convert; Error exists for diagnostics.
type Error struct {
	Code    ErrorCode
	Base    Base
	Input   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func IsErrorCode(err error, code ErrorCode) bool {
	var converterErr *Error
	if !errors.As(err, &converterErr) {
		return false
	}
	return converterErr.Code == code
}
