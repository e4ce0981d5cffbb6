package random

import (
	"errors"
	"fmt"
)

// InvalidRangeError is returned when a sampling range holds no integer, i.e.
// low >= high once defaults are applied. It is returned before any device state
// is accessed, so the caller can adjust its arguments and call again.
type InvalidRangeError struct {
	Low  int64
	High int64
	err  error
}

func NewInvalidRangeError(low, high int64) InvalidRangeError {
	return InvalidRangeError{
		Low:  low,
		High: high,
		err:  fmt.Errorf("low >= high: %d >= %d", low, high),
	}
}

func NewInvalidRangeErrorf(msg string, args ...interface{}) InvalidRangeError {
	return InvalidRangeError{
		err: fmt.Errorf(msg, args...),
	}
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid sampling range: %s", e.err.Error())
}

func (e InvalidRangeError) Unwrap() error {
	return e.err
}

// IsInvalidRangeError returns whether err is an InvalidRangeError
func IsInvalidRangeError(err error) bool {
	var target InvalidRangeError
	return errors.As(err, &target)
}
