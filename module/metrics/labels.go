package metrics

const (
	LabelDevice = "device"
)

const (
	namespaceDevrand = "devrand"
	subsystemSampler = "sampler"
)
