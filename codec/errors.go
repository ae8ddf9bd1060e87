package codec

import (
	"errors"
	"fmt"
)

// Code categorizes conversion errors.
type Code string

const (
	// CodeUnknownSystem indicates an identifier outside the registry,
	// or an auto-detection pass that no codec claimed.
	CodeUnknownSystem Code = "unknown_system"

	// CodeNotPositive indicates an input of zero or below given to a
	// system that only represents positive integers.
	CodeNotPositive Code = "not_positive"

	// CodeNegative indicates a negative input given to a system that
	// only represents non-negative integers.
	CodeNegative Code = "negative"

	// CodeOutOfRange indicates an input beyond the system's upper
	// bound (e.g. Roman numerals stop at 3999).
	CodeOutOfRange Code = "out_of_range"

	// CodeInvalidDigit indicates a code point outside a positional
	// system's digit range.
	CodeInvalidDigit Code = "invalid_digit"

	// CodeNotImplemented indicates well-formed input of a class the
	// codec acknowledges it cannot decode (general Han hybrid decode).
	CodeNotImplemented Code = "not_implemented"

	// Per-system malformed-sequence codes.
	CodeInvalidRomanNumeral     Code = "invalid_roman_numeral"
	CodeInvalidAegeanNumeral    Code = "invalid_aegean_numeral"
	CodeInvalidAtticNumeral     Code = "invalid_attic_numeral"
	CodeInvalidEthiopicNumeral  Code = "invalid_ethiopic_numeral"
	CodeInvalidCuneiformNumeral Code = "invalid_cuneiform_numeral"
	CodeInvalidHanNumeral       Code = "invalid_han_numeral"
)

// Error is the only error type conversions return. It carries a
// machine-readable Code, the identifier of the system that produced it
// when known, and a human-readable message.
//
// Errors pass through the resolution layer unchanged: nothing rewraps
// or recovers, so errors.As always reaches the original value.
type Error struct {
	// Code identifies the error category.
	Code Code

	// System identifies the codec that produced the error, if any.
	System string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.System != "" {
		return fmt.Sprintf("%s: %s (system=%s)", e.Code, e.Message, e.System)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode extracts the Code from err, or "" if err is not a
// conversion error. Uses errors.As to handle wrapped errors.
func ErrorCode(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsCode reports whether err is a conversion error with the given
// code. Uses errors.As to handle wrapped errors.
func IsCode(err error, code Code) bool {
	return ErrorCode(err) == code
}
