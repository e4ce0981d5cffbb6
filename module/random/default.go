package random

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/onflow/devrand/model/array"
	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/model/shape"
	"github.com/onflow/devrand/module/metrics"
)

var (
	defaultMu      sync.RWMutex
	defaultSampler *Sampler
)

// Default returns the process-wide sampler, creating it on first use.
// It follows device.DefaultSelector and does not log nor collect metrics.
func Default() *Sampler {
	defaultMu.RLock()
	s := defaultSampler
	defaultMu.RUnlock()
	if s != nil {
		return s
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSampler == nil {
		defaultSampler = NewSampler(zerolog.Nop(), metrics.NewNoopCollector(), device.DefaultSelector)
	}
	return defaultSampler
}

// SetDefault replaces the process-wide sampler and returns the previous one.
// Passing nil makes the next call to Default create a fresh sampler.
func SetDefault(s *Sampler) *Sampler {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	previous := defaultSampler
	defaultSampler = s
	return previous
}

// Randint draws from the process-wide sampler, see Sampler.Randint.
func Randint(b Bounds, size shape.Shape) (*array.Array, error) {
	return Default().Randint(b, size)
}

// RandomIntegers draws from the process-wide sampler, see Sampler.RandomIntegers.
func RandomIntegers(b Bounds, size shape.Shape) (*array.Array, error) {
	return Default().RandomIntegers(b, size)
}

// Seed reseeds the active device of the process-wide sampler, see Sampler.Seed.
func Seed(seed []byte) error {
	return Default().Seed(seed)
}

// ResetStates drops all device states of the process-wide sampler.
func ResetStates() {
	Default().ResetStates()
}
