package filesize

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrNegativeValue = errors.New("negative value")
	ErrInvalidValue  = errors.New("invalid value")
	ErrInvalidFile   = errors.New("invalid file")
)

// -- Errors --

// NegativeValueError is returned when a negative magnitude is rejected, either
// as input or as the running total of a subtraction.
type NegativeValueError struct {
	Value  float64
	Reason string
}

func (e *NegativeValueError) Error() string {
	return e.Reason
}

func (e *NegativeValueError) Unwrap() error {
	return ErrNegativeValue
}

// InvalidValueError is returned for non-finite magnitudes, zero divisors and
// unrecognised unit names.
type InvalidValueError struct {
	Reason string
}

func (e *InvalidValueError) Error() string {
	return e.Reason
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}

// UnknownOptionError is returned when an option map carries a key outside the
// recognised set.
type UnknownOptionError struct {
	Key string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("Unknown option: %s", e.Key)
}

func (e *UnknownOptionError) Unwrap() error {
	return ErrInvalidValue
}

// OptionValueError is returned when a recognised option carries a value that
// cannot be coerced to the option's type.
type OptionValueError struct {
	Key   string
	Cause error
}

func (e *OptionValueError) Error() string {
	return fmt.Sprintf("Invalid value for option %s: %v", e.Key, e.Cause)
}

// Is reports ErrInvalidValue so callers can match on the kind while Unwrap
// still exposes the decoder's cause.
func (e *OptionValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *OptionValueError) Unwrap() error {
	return e.Cause
}

// InvalidFileError is returned when a path is not a regular file or its size
// cannot be read.
type InvalidFileError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *InvalidFileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *InvalidFileError) Is(target error) bool {
	return target == ErrInvalidFile
}

func (e *InvalidFileError) Unwrap() error {
	return e.Cause
}

func negativeInput(v float64) error {
	return &NegativeValueError{Value: v, Reason: "Negative values are not allowed. Use subtraction methods instead."}
}

func negativeResult(v float64) error {
	return &NegativeValueError{Value: v, Reason: "Subtraction resulted in negative value."}
}

func invalidValue(format string, args ...any) error {
	return &InvalidValueError{Reason: fmt.Sprintf(format, args...)}
}
