package life

import (
	"errors"
	"fmt"
)

// Error classes shared by every stage of the pipeline.
var (
	// ErrValidation indicates malformed input: a ragged or empty grid,
	// characters outside 0/1, or mismatched sequence lengths.
	ErrValidation = errors.New("life: validation failed")

	// ErrConfiguration indicates a parameter outside its valid range, such as
	// a generation count below one or a non-positive frame duration.
	ErrConfiguration = errors.New("life: invalid configuration")
)

// ValidationError wraps ErrValidation with the location of the problem.
type ValidationError struct {
	Line    int // 1-based input line, 0 when not tied to a line
	Message string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrValidation, e.Line, e.Message)
	}
	return fmt.Sprintf("%v: %s", ErrValidation, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConfigurationError wraps ErrConfiguration with the offending parameter.
type ConfigurationError struct {
	Param string
	Value any
	Rule  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", ErrConfiguration, e.Param, e.Value, e.Rule)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// Invalid is shorthand for a ValidationError without line context.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Misconfigured is shorthand for a ConfigurationError.
func Misconfigured(param string, value any, rule string) error {
	return &ConfigurationError{Param: param, Value: value, Rule: rule}
}
