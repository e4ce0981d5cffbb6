package array

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/model/shape"
)

// Array is a device-resident array of int64 values stored in row-major order.
// Arrays are not mutated once returned to the caller.
type Array struct {
	device device.ID
	shape  shape.Shape
	values []int64
}

// New builds an array owning values. The number of values must match the shape.
func New(dev device.ID, s shape.Shape, values []int64) (*Array, error) {
	n, err := s.NumElements()
	if err != nil {
		return nil, err
	}
	if n != len(values) {
		return nil, fmt.Errorf("shape %s requires %d values, got %d", s, n, len(values))
	}
	return &Array{
		device: dev,
		shape:  s.Copy(),
		values: values,
	}, nil
}

// Zeros returns an array of the given shape filled with zeros.
func Zeros(dev device.ID, s shape.Shape) (*Array, error) {
	n, err := s.NumElements()
	if err != nil {
		return nil, err
	}
	return New(dev, s, make([]int64, n))
}

func (a *Array) Device() device.ID {
	return a.device
}

func (a *Array) Shape() shape.Shape {
	return a.shape.Copy()
}

// Size returns the number of elements.
func (a *Array) Size() int {
	return len(a.values)
}

// Get transfers the array to the host, returning a copy of its values in row-major order.
func (a *Array) Get() []int64 {
	host := make([]int64, len(a.values))
	copy(host, a.values)
	return host
}

// Item returns the only value of a one-element array.
func (a *Array) Item() (int64, error) {
	if len(a.values) != 1 {
		return 0, fmt.Errorf("only one-element arrays can be converted to a scalar, array has %d elements", len(a.values))
	}
	return a.values[0], nil
}

// Shift returns a new array with offset added to every value.
// The addition wraps around, so raw values drawn over the full 64-bit span
// land on the intended int64 values once shifted.
func (a *Array) Shift(offset int64) *Array {
	shifted := make([]int64, len(a.values))
	for i, v := range a.values {
		shifted[i] = int64(uint64(v) + uint64(offset))
	}
	return &Array{
		device: a.device,
		shape:  a.shape.Copy(),
		values: shifted,
	}
}

// MarshalJSON encodes the array as nested lists following its shape.
// A scalar array is encoded as a bare number.
func (a *Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if len(a.shape) == 0 {
		if len(a.values) != 1 {
			return nil, fmt.Errorf("scalar array holds %d values", len(a.values))
		}
		buf.WriteString(strconv.FormatInt(a.values[0], 10))
		return buf.Bytes(), nil
	}
	pos := 0
	writeNested(&buf, a.shape, a.values, &pos)
	return buf.Bytes(), nil
}

func writeNested(buf *bytes.Buffer, dims shape.Shape, values []int64, pos *int) {
	buf.WriteByte('[')
	for i := 0; i < dims[0]; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if len(dims) == 1 {
			buf.WriteString(strconv.FormatInt(values[*pos], 10))
			*pos++
			continue
		}
		writeNested(buf, dims[1:], values, pos)
	}
	buf.WriteByte(']')
}

func (a *Array) String() string {
	return fmt.Sprintf("array(device=%d, shape=%s, values=%v)", a.device, a.shape, a.values)
}
