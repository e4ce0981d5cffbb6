package random

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/onflow/devrand/model/array"
	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/model/shape"
	"github.com/onflow/devrand/module"
)

// Sampler draws uniformly distributed integers on the active device.
//
// Each call normalizes its arguments, resolves the generator state of the
// device active at the time of the call, and draws from it. The state is
// looked up in the registry on every call and never cached, so substituting
// or resetting registry entries takes effect on the next call.
type Sampler struct {
	log      zerolog.Logger
	metrics  module.RandomSamplerMetrics
	devices  device.Provider
	registry *Registry
	seed     []byte
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed makes all device states created by the sampler derive their
// generator from seed instead of system entropy. A nil seed keeps system entropy.
func WithSeed(seed []byte) Option {
	return func(s *Sampler) {
		if seed == nil {
			s.seed = nil
			return
		}
		s.seed = append([]byte{}, seed...)
	}
}

// WithRegistry makes the sampler resolve device states in registry.
func WithRegistry(registry *Registry) Option {
	return func(s *Sampler) {
		s.registry = registry
	}
}

func NewSampler(
	log zerolog.Logger,
	metrics module.RandomSamplerMetrics,
	devices device.Provider,
	opts ...Option,
) *Sampler {
	s := &Sampler{
		log:     log.With().Str("component", "random_sampler").Logger(),
		metrics: metrics,
		devices: devices,
	}
	for _, apply := range opts {
		apply(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry(log, metrics, s.newState)
	}
	return s
}

func (s *Sampler) newState(id device.ID) (State, error) {
	return NewSeededState(id, s.seed)
}

// Registry returns the registry holding the device states of the sampler.
func (s *Sampler) Registry() *Registry {
	return s.registry
}

// Randint returns integers drawn uniformly from the half-open range described by b:
// [0, n) for SingleBound{n}, [low, high) for RangeBound{low, high}.
// The result has the given size; a nil size returns a single scalar-equivalent value.
//
// Expected errors:
//   - InvalidRangeError if the range holds no integer.
//   - shape.InvalidShapeError if size has a negative dimension.
//
// Both are returned before any device state is accessed or created.
func (s *Sampler) Randint(b Bounds, size shape.Shape) (*array.Array, error) {
	req, err := Normalize(b, size)
	if err != nil {
		s.metrics.InvalidRequestRejected()
		return nil, err
	}
	return s.sample(req)
}

// RandomIntegers returns integers drawn uniformly from the closed range described by b:
// [1, n] for SingleBound{n}, [low, high] for RangeBound{low, high}.
// It has the same expected errors as Randint.
func (s *Sampler) RandomIntegers(b Bounds, size shape.Shape) (*array.Array, error) {
	return s.Randint(Inclusive(b), size)
}

func (s *Sampler) sample(req Request) (*array.Array, error) {
	id := s.devices.CurrentDevice()
	state, err := s.registry.GetOrCreate(id)
	if err != nil {
		return nil, fmt.Errorf("could not get random state of device %d: %w", id, err)
	}

	start := time.Now()
	raw, err := state.Interval(req.Bound, req.Size)
	if err != nil {
		return nil, fmt.Errorf("could not sample interval [0, %d] on device %d: %w", req.Bound, id, err)
	}
	s.metrics.IntervalSampled(int(id), raw.Size(), time.Since(start))

	return raw.Shift(req.Offset), nil
}

// Seed replaces the state of the active device with a new one derived from
// seed. A nil seed reseeds the device from system entropy.
func (s *Sampler) Seed(seed []byte) error {
	id := s.devices.CurrentDevice()
	state, err := NewSeededState(id, seed)
	if err != nil {
		return fmt.Errorf("could not seed device %d: %w", id, err)
	}
	s.registry.Install(id, state)
	s.log.Info().Int("device", int(id)).Bool("system_entropy", seed == nil).Msg("device random state seeded")
	return nil
}

// ResetStates drops the states of all devices. Each device gets a fresh state
// on its next draw.
func (s *Sampler) ResetStates() {
	s.registry.Reset()
}
