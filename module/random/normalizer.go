package random

import (
	"github.com/onflow/devrand/model/shape"
)

// Bounds describes the range a sampling call draws from. It is one of:
//   - SingleBound: a single value n, the range [0, n) for Randint
//     and [1, n] for RandomIntegers.
//   - RangeBound: a low and a high value, the range [low, high) for Randint
//     and [low, high] for RandomIntegers.
type Bounds interface {
	// resolve returns the smallest and largest value of the range, both inclusive.
	//
	// Expected errors:
	//   - InvalidRangeError if the range is empty.
	resolve() (low int64, max int64, err error)
}

// SingleBound is the single-value form of Bounds.
type SingleBound struct {
	N int64
}

// RangeBound is the two-value form of Bounds.
type RangeBound struct {
	Low  int64
	High int64
}

// closedBound is the inclusive range [Low, Max]. It lets RandomIntegers express
// the high+1 upper bound of Randint without overflowing for high = MaxInt64.
type closedBound struct {
	Low int64
	Max int64
}

var (
	_ Bounds = SingleBound{}
	_ Bounds = RangeBound{}
	_ Bounds = closedBound{}
)

func (b SingleBound) resolve() (int64, int64, error) {
	return RangeBound{Low: 0, High: b.N}.resolve()
}

func (b RangeBound) resolve() (int64, int64, error) {
	if b.Low >= b.High {
		return 0, 0, NewInvalidRangeError(b.Low, b.High)
	}
	return b.Low, b.High - 1, nil
}

func (b closedBound) resolve() (int64, int64, error) {
	if b.Max < b.Low {
		// Max < Low <= MaxInt64, the exclusive high does not overflow
		return 0, 0, NewInvalidRangeError(b.Low, b.Max+1)
	}
	return b.Low, b.Max, nil
}

// Inclusive translates Bounds given with the inclusive convention of
// RandomIntegers into the Randint convention:
//   - SingleBound{n} draws from [1, n], as Randint(RangeBound{1, n+1}) would.
//   - RangeBound{low, high} draws from [low, high], as Randint(RangeBound{low, high+1}) would.
//
// No validation happens here, an empty range is reported when the result is normalized.
func Inclusive(b Bounds) Bounds {
	switch b := b.(type) {
	case SingleBound:
		return closedBound{Low: 1, Max: b.N}
	case RangeBound:
		return closedBound{Low: b.Low, Max: b.High}
	default:
		return b
	}
}

// Request is a validated sampling call in canonical form: values are drawn
// uniformly from [0, Bound] and shifted by Offset.
type Request struct {
	Offset int64
	// Bound is the inclusive maximum of a raw draw, i.e. the number of
	// integers in the range minus one.
	Bound uint64
	Size  shape.Shape
}

// Normalize validates bounds and size, and converts them into a Request.
// It does not access any device or generator state.
//
// Expected errors:
//   - InvalidRangeError if the range holds no integer or bounds is nil.
//   - shape.InvalidShapeError if size has a negative dimension.
func Normalize(b Bounds, size shape.Shape) (Request, error) {
	if b == nil {
		return Request{}, NewInvalidRangeErrorf("no bounds provided")
	}
	low, max, err := b.resolve()
	if err != nil {
		return Request{}, err
	}
	err = size.Validate()
	if err != nil {
		return Request{}, err
	}
	return Request{
		Offset: low,
		// the difference of two's complement values is exact in uint64 as max >= low
		Bound: uint64(max) - uint64(low),
		Size:  size.Copy(),
	}, nil
}
