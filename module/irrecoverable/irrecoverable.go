// Package irrecoverable marks errors that indicate a broken invariant rather
// than bad input. Such errors must never be handled as a benign condition:
// the component that observes one is in an undefined state.
package irrecoverable

import (
	"errors"
	"fmt"
)

// exception represents an unexpected error. An unexpected error is any error
// returned by a function other than the errors specifically documented as
// expected in that function's interface.
type exception struct {
	err error
}

func (e exception) Error() string {
	return fmt.Sprintf("[exception!] %s", e.err.Error())
}

func (e exception) Unwrap() error {
	return e.err
}

// NewException wraps err into an exception.
func NewException(err error) error {
	return exception{err: err}
}

// NewExceptionf wraps a formatted message into an exception.
func NewExceptionf(msg string, args ...interface{}) error {
	return NewException(fmt.Errorf(msg, args...))
}

// IsException returns true if err or any error it wraps is an exception.
func IsException(err error) bool {
	var e exception
	return errors.As(err, &e)
}
