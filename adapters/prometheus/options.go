package prometheus

import "github.com/prometheus/client_golang/prometheus"

// MetricsCollectorOptions defines the options for configuring MetricsCollector.
type MetricsCollectorOptions func(*MetricsCollector)

// WithServiceName sets the service name used as metric prefix and label.
func WithServiceName(serviceName string) MetricsCollectorOptions {
	return func(collector *MetricsCollector) {
		if serviceName != "" {
			collector.serviceName = serviceName
		}
	}
}

// WithRegistry sets the Prometheus registry for the metrics collector.
func WithRegistry(registry *prometheus.Registry) MetricsCollectorOptions {
	return func(collector *MetricsCollector) {
		if registry != nil {
			collector.registry = registry
		}
	}
}

// WithCustomMetrics registers additional collectors alongside the default ones.
func WithCustomMetrics(customMetrics map[string]prometheus.Collector) MetricsCollectorOptions {
	return func(collector *MetricsCollector) {
		collector.customMetrics = customMetrics
	}
}

// ServiceName returns the service name.
func (collector *MetricsCollector) ServiceName() string {
	return collector.serviceName
}

// Registry returns the Prometheus registry.
func (collector *MetricsCollector) Registry() *prometheus.Registry {
	return collector.registry
}

// CustomMetrics returns the custom metrics.
func (collector *MetricsCollector) CustomMetrics() map[string]prometheus.Collector {
	return collector.customMetrics
}

// ResolutionCount returns the counter of resolved descriptors.
func (collector *MetricsCollector) ResolutionCount() *prometheus.CounterVec {
	return collector.resolutionCount
}

// OpenCount returns the counter of provider opens.
func (collector *MetricsCollector) OpenCount() *prometheus.CounterVec {
	return collector.openCount
}
