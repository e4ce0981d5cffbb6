package module

import (
	"time"
)

// RandomSamplerMetrics encapsulates the metrics collectors of the per-device integer sampler.
type RandomSamplerMetrics interface {
	// RandomStateCreated is called when a generator state is created for a device
	// that had none yet.
	RandomStateCreated(device int)

	// IntervalSampled tracks a successful interval draw of `count` values on a device,
	// and the time spent drawing them.
	IntervalSampled(device int, count int, duration time.Duration)

	// InvalidRequestRejected is called when a sampling request is rejected before any
	// device state is touched (invalid range or malformed shape).
	InvalidRequestRejected()
}
