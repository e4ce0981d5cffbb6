package random

import (
	"sync"

	"go.uber.org/atomic"

	prg "github.com/onflow/devrand/crypto/random"
	"github.com/onflow/devrand/model/array"
	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/model/shape"
	"github.com/onflow/devrand/module/irrecoverable"
)

// State is the generator state of one device.
type State interface {
	// DeviceID returns the device the state is bound to.
	DeviceID() device.ID

	// Interval draws values independently and uniformly from [0, bound], both
	// ends included, and returns them as an array of the given size on the
	// state's device. A nil size yields a single scalar-equivalent value.
	//
	// Expected errors:
	//   - shape.InvalidShapeError if size has a negative dimension.
	Interval(bound uint64, size shape.Shape) (*array.Array, error)
}

// RandomState implements State on top of a pseudo random generator.
// Draws of concurrent Interval calls never interleave.
type RandomState struct {
	deviceID device.ID

	mu  sync.Mutex
	prg prg.Rand // guarded by mu

	drawn *atomic.Uint64
}

var _ State = (*RandomState)(nil)

// NewRandomState returns a state for device id, drawing from generator.
// The state takes ownership of the generator.
func NewRandomState(id device.ID, generator prg.Rand) *RandomState {
	return &RandomState{
		deviceID: id,
		prg:      generator,
		drawn:    atomic.NewUint64(0),
	}
}

func (s *RandomState) DeviceID() device.ID {
	return s.deviceID
}

// Position returns the number of values drawn from the generator so far.
func (s *RandomState) Position() uint64 {
	return s.drawn.Load()
}

// Interval implements State.
//
// For bound == 0 every value is 0 and the generator is not consulted.
// A generator value above bound is an irrecoverable exception: no value out of
// [0, bound] is ever returned.
func (s *RandomState) Interval(bound uint64, size shape.Shape) (*array.Array, error) {
	n, err := size.NumElements()
	if err != nil {
		return nil, err
	}
	values := make([]int64, n)

	if bound > 0 && n > 0 {
		s.mu.Lock()
		for i := range values {
			v := s.prg.UintMax(bound)
			if v > bound {
				s.mu.Unlock()
				return nil, irrecoverable.NewExceptionf("generator of device %d returned %d, above the bound %d", s.deviceID, v, bound)
			}
			// values above MaxInt64 wrap, the offset shift restores them
			values[i] = int64(v)
		}
		s.drawn.Add(uint64(n))
		s.mu.Unlock()
	}

	return array.New(s.deviceID, size, values)
}
