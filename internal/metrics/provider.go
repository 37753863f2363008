package metrics

import "github.com/prometheus/client_golang/prometheus"

// Provider and rate gate Prometheus metrics.
var (
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reelscout",
			Name:      "provider_requests_total",
			Help:      "Total number of metadata provider requests",
		},
		[]string{"endpoint", "status"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reelscout",
			Name:      "provider_request_duration_seconds",
			Help:      "Metadata provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	RateGateDispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reelscout",
			Name:      "rategate_dispatch_total",
			Help:      "Total number of calls admitted by the rate gate",
		},
		[]string{"gate"},
	)

	RateGateDeferralsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reelscout",
			Name:      "rategate_deferrals_total",
			Help:      "Total number of rate gate deferrals",
		},
		[]string{"gate"},
	)

	RateGateWait = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reelscout",
			Name:      "rategate_wait_seconds",
			Help:      "Time a call spent deferred by the rate gate before dispatch",
			Buckets:   []float64{0, 0.1, 0.5, 1, 2.5, 5, 11, 22, 44},
		},
		[]string{"gate"},
	)

	PipelineExecutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reelscout",
			Name:      "pipeline_executions_total",
			Help:      "Total number of pipeline executions",
		},
		[]string{"status"},
	)
)

var providerMetricsRegistered bool

// ProviderCollectors lists provider, gate and pipeline collectors for custom registries.
func ProviderCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		ProviderRequestsTotal,
		ProviderRequestDuration,
		RateGateDispatchTotal,
		RateGateDeferralsTotal,
		RateGateWait,
		PipelineExecutionsTotal,
	}
}

// RegisterProviderMetrics registers provider, gate and pipeline metrics. Must be called once from main.
func RegisterProviderMetrics() {
	if providerMetricsRegistered {
		return
	}
	for _, c := range ProviderCollectors() {
		prometheus.MustRegister(c)
	}
	providerMetricsRegistered = true
}
