package random

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/module"
	"github.com/onflow/devrand/module/irrecoverable"
)

// Factory creates the generator state of a device.
type Factory func(id device.ID) (State, error)

// Registry maps each device to its generator state. States are created lazily,
// on the first request for a device.
//
// The registry guarantees that at most one state is installed per device at
// any time, including when several goroutines request the same uninitialized
// device concurrently. It is safe for concurrent use.
type Registry struct {
	log     zerolog.Logger
	metrics module.RandomSamplerMetrics
	factory Factory

	mu     sync.RWMutex
	states map[device.ID]State
}

func NewRegistry(log zerolog.Logger, metrics module.RandomSamplerMetrics, factory Factory) *Registry {
	return &Registry{
		log:     log.With().Str("component", "random_state_registry").Logger(),
		metrics: metrics,
		factory: factory,
		states:  make(map[device.ID]State),
	}
}

// GetOrCreate returns the state of device id, creating and installing it if the
// device has none yet.
//
// No errors are expected during normal operation. Errors of the factory are
// returned wrapped.
func (r *Registry) GetOrCreate(id device.ID) (State, error) {
	r.mu.RLock()
	state, ok := r.states[id]
	r.mu.RUnlock()
	if ok {
		return state, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another goroutine may have created the state while the lock was released
	state, ok = r.states[id]
	if ok {
		return state, nil
	}

	state, err := r.factory(id)
	if err != nil {
		return nil, fmt.Errorf("could not create random state for device %d: %w", id, err)
	}
	if state == nil {
		return nil, irrecoverable.NewExceptionf("factory returned no random state for device %d", id)
	}
	if state.DeviceID() != id {
		return nil, irrecoverable.NewExceptionf("factory created a random state for device %d when asked for device %d", state.DeviceID(), id)
	}
	r.states[id] = state

	r.metrics.RandomStateCreated(int(id))
	r.log.Debug().Int("device", int(id)).Msg("random state created")
	return state, nil
}

// Prepare creates the states of all given devices that have none yet.
// All devices are attempted, the errors of the failed ones are aggregated.
func (r *Registry) Prepare(ids ...device.ID) error {
	var errs *multierror.Error
	for _, id := range ids {
		_, err := r.GetOrCreate(id)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// Lookup returns the state of device id, if one is installed.
func (r *Registry) Lookup(id device.ID) (State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[id]
	return state, ok
}

// Install replaces the state of device id. It is used to reseed a device, or
// to substitute a stand-in state.
func (r *Registry) Install(id device.ID, state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[id] = state
	r.log.Debug().Int("device", int(id)).Msg("random state installed")
}

// Reset drops all states. Devices get a new state on their next request.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = make(map[device.ID]State)
	r.log.Debug().Msg("random states reset")
}

// Len returns the number of devices with an installed state.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}

// Devices returns the devices with an installed state, in ascending order.
func (r *Registry) Devices() []device.ID {
	r.mu.RLock()
	ids := make([]device.ID, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
