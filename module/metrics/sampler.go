package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/devrand/module"
)

// RandomSamplerCollector implements module.RandomSamplerMetrics on top of prometheus.
type RandomSamplerCollector struct {
	statesCreated   *prometheus.CounterVec
	valuesDrawn     *prometheus.CounterVec
	intervalLatency *prometheus.HistogramVec
	invalidRequests prometheus.Counter
}

var _ module.RandomSamplerMetrics = (*RandomSamplerCollector)(nil)

func NewRandomSamplerCollector(registerer prometheus.Registerer) *RandomSamplerCollector {
	r := NewRegisterer(registerer)

	return &RandomSamplerCollector{
		statesCreated: r.RegisterNewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceDevrand,
			Subsystem: subsystemSampler,
			Name:      "random_states_created_total",
			Help:      "the number of generator states created, per device",
		}, []string{LabelDevice}),

		valuesDrawn: r.RegisterNewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceDevrand,
			Subsystem: subsystemSampler,
			Name:      "values_drawn_total",
			Help:      "the number of integers drawn, per device",
		}, []string{LabelDevice}),

		intervalLatency: r.RegisterNewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespaceDevrand,
			Subsystem: subsystemSampler,
			Name:      "interval_duration_seconds",
			Help:      "the time spent drawing one interval request, per device",
			Buckets:   []float64{.000001, .00001, .0001, .001, .01, .1, 1},
		}, []string{LabelDevice}),

		invalidRequests: r.RegisterNewCounter(prometheus.CounterOpts{
			Namespace: namespaceDevrand,
			Subsystem: subsystemSampler,
			Name:      "invalid_requests_total",
			Help:      "the number of sampling requests rejected for an invalid range or shape",
		}),
	}
}

func (c *RandomSamplerCollector) RandomStateCreated(device int) {
	c.statesCreated.WithLabelValues(strconv.Itoa(device)).Inc()
}

func (c *RandomSamplerCollector) IntervalSampled(device int, count int, duration time.Duration) {
	label := strconv.Itoa(device)
	c.valuesDrawn.WithLabelValues(label).Add(float64(count))
	c.intervalLatency.WithLabelValues(label).Observe(duration.Seconds())
}

func (c *RandomSamplerCollector) InvalidRequestRejected() {
	c.invalidRequests.Inc()
}
