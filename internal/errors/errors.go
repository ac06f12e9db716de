package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// UsageError reports a bad, duplicate, or unrecognized command line argument.
type UsageError struct {
	s string
}

func (e UsageError) Error() string {
	return e.s
}

func NewUsageError(format string, args ...interface{}) error {
	return WithStackTrace(UsageError{s: fmt.Sprintf(format, args...)})
}

// UndefinedVariableError is returned when the named environment variable is
// unset or empty.
type UndefinedVariableError struct {
	Name string
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("environment variable not defined: %s, use -s to continue", e.Name)
}

func NewUndefinedVariableError(name string) error {
	return WithStackTrace(UndefinedVariableError{Name: name})
}

// InternalInvariantError signals a classification code that cannot occur.
type InternalInvariantError struct {
	Code  int
	Value string
}

func (e InternalInvariantError) Error() string {
	return fmt.Sprintf("invalid classification code %d for entry %q", e.Code, e.Value)
}

func NewInternalInvariantError(code int, value string) error {
	return WithStackTrace(InternalInvariantError{Code: code, Value: value})
}

// Wrap the given error in an Error type that contains the stack trace. If the given error already has a stack trace,
// it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// Wrap the given error with a stack trace and the given message prepended. If the given error is nil, return nil.
func WithStackTraceAndPrefix(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// Returns true if err, or anything it wraps, is of the error type pointed to by target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// If the given error is a wrapper that contains a stacktrace, unwrap it and return the original, underlying error.
// In all other cases, return the error unchanged
func Unwrap(err error) error {
	if err == nil {
		return nil
	}

	goError, isGoError := err.(*goerrors.Error)
	if isGoError {
		return goError.Err
	}

	return err
}

// Convert the given error to a string, including the stack trace if available
func PrintErrorWithStackTrace(err error) string {
	if err == nil {
		return ""
	}

	switch underlyingErr := err.(type) {
	case *goerrors.Error:
		return underlyingErr.ErrorStack()
	default:
		return err.Error()
	}
}
