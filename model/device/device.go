// Package device identifies the compute devices samplers are bound to and
// tracks which one is currently active.
package device

import (
	"go.uber.org/atomic"
)

// ID identifies a compute device. Each device owns an independent generator state.
type ID int

// Provider answers which device is active for the calling code.
type Provider interface {
	// CurrentDevice returns the identifier of the active device.
	CurrentDevice() ID
}

// Fixed is a Provider that always reports the same device.
type Fixed ID

var _ Provider = Fixed(0)

func (f Fixed) CurrentDevice() ID {
	return ID(f)
}

// Selector is a Provider whose active device can be switched at runtime.
// It is safe for concurrent use.
type Selector struct {
	current *atomic.Int64
}

var _ Provider = (*Selector)(nil)

// DefaultSelector is the process-wide device selector, starting on device 0.
var DefaultSelector = NewSelector(0)

func NewSelector(initial ID) *Selector {
	return &Selector{
		current: atomic.NewInt64(int64(initial)),
	}
}

func (s *Selector) CurrentDevice() ID {
	return ID(s.current.Load())
}

// Use makes id the active device and returns the previously active one,
// so callers can restore it:
//
//	prev := selector.Use(1)
//	defer selector.Use(prev)
func (s *Selector) Use(id ID) ID {
	return ID(s.current.Swap(int64(id)))
}
