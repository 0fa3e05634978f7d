package prometheus

import (
	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector is a struct for collecting Prometheus metrics.
type MetricsCollector struct {
	registry        *prometheus.Registry
	resolutionCount *prometheus.CounterVec
	openCount       *prometheus.CounterVec
	serviceName     string
	customMetrics   map[string]prometheus.Collector
}

// NewMetricsCollector creates a new Prometheus metrics collector with options.
func NewMetricsCollector(options ...MetricsCollectorOptions) *MetricsCollector {
	collector := &MetricsCollector{
		registry:      prometheus.NewRegistry(),
		serviceName:   constant.DefaultServiceName,
		customMetrics: make(map[string]prometheus.Collector),
	}

	// Apply options
	for _, option := range options {
		option(collector)
	}

	// Register default metrics
	collector.registerDefaultMetrics()

	return collector
}

func (mc *MetricsCollector) registerDefaultMetrics() {
	factory := promauto.With(mc.registry)

	mc.resolutionCount = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: mc.serviceName + "_connection_resolutions_total",
			Help: "Total number of resolved connection descriptors",
		},
		[]string{"service", "provider", "outcome"},
	)

	mc.openCount = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: mc.serviceName + "_provider_opens_total",
			Help: "Total number of database handles opened through a provider factory",
		},
		[]string{"service", "provider", "outcome"},
	)

	for _, metric := range mc.customMetrics {
		mc.registry.MustRegister(metric)
	}
}

// RecordResolution counts one resolution for provider. outcome is "ok" unless err is set.
func (mc *MetricsCollector) RecordResolution(provider string, err error) {
	mc.resolutionCount.WithLabelValues(mc.serviceName, provider, outcome(err)).Inc()
}

// RecordOpen counts one Open call for provider.
func (mc *MetricsCollector) RecordOpen(provider string, err error) {
	mc.openCount.WithLabelValues(mc.serviceName, provider, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
