package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Shape describes the dimensions of an output array.
//
// A nil Shape stands for an absent size: the caller asked for a single,
// scalar-equivalent draw. A non-nil empty Shape is a 0-d array and also holds
// exactly one element.
type Shape []int

// Scalar is the shape of a single draw requested without any size.
var Scalar Shape = nil

// Of is a convenience constructor, Of(2, 3) is the shape (2, 3).
func Of(dims ...int) Shape {
	s := make(Shape, len(dims))
	copy(s, dims)
	return s
}

// IsScalar returns true if the shape was not provided at all.
func (s Shape) IsScalar() bool {
	return s == nil
}

// Validate checks that every dimension is non-negative and that the total
// number of elements is representable.
//
// Expected errors:
//   - InvalidShapeError if a dimension is negative or the shape holds more than MaxElements.
func (s Shape) Validate() error {
	_, err := s.NumElements()
	return err
}

// MaxElements is the largest number of elements a shape may hold. Larger
// requests are rejected before any array is allocated.
const MaxElements = 1 << 28

// NumElements returns the number of elements an array of this shape holds.
// Scalar and 0-d shapes hold one element, a shape with a zero dimension holds none.
//
// Expected errors:
//   - InvalidShapeError if a dimension is negative or the shape holds more than MaxElements.
func (s Shape) NumElements() (int, error) {
	empty := false
	for axis, dim := range s {
		if dim < 0 {
			return 0, NewInvalidShapeErrorf("dimension %d of shape %s is negative", axis, s)
		}
		if dim == 0 {
			empty = true
		}
	}
	if empty {
		return 0, nil
	}

	n := 1
	for _, dim := range s {
		if n > MaxElements/dim {
			return 0, NewInvalidShapeErrorf("shape %s holds more than %d elements", s, MaxElements)
		}
		n *= dim
	}
	return n, nil
}

// Equal compares two shapes, distinguishing the absent (nil) shape from the 0-d one.
func (s Shape) Equal(other Shape) bool {
	if (s == nil) != (other == nil) || len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent copy, preserving nil.
func (s Shape) Copy() Shape {
	if s == nil {
		return nil
	}
	return Of(s...)
}

func (s Shape) String() string {
	if s == nil {
		return "()"
	}
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// InvalidShapeError is returned when a shape descriptor is malformed.
type InvalidShapeError struct {
	err error
}

func NewInvalidShapeErrorf(msg string, args ...interface{}) InvalidShapeError {
	return InvalidShapeError{
		err: fmt.Errorf(msg, args...),
	}
}

func (e InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid shape: %s", e.err.Error())
}

func (e InvalidShapeError) Unwrap() error {
	return e.err
}

// IsInvalidShapeError returns whether err is an InvalidShapeError
func IsInvalidShapeError(err error) bool {
	var target InvalidShapeError
	return errors.As(err, &target)
}
