package metrics

import (
	"time"

	"github.com/onflow/devrand/module"
)

type NoopCollector struct{}

var _ module.RandomSamplerMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) RandomStateCreated(device int)                                 {}
func (nc *NoopCollector) IntervalSampled(device int, count int, duration time.Duration) {}
func (nc *NoopCollector) InvalidRequestRejected()                                       {}
