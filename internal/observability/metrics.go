package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	detectRequestsTotal    *prometheus.CounterVec
	detectLatencySeconds   *prometheus.HistogramVec
	detectErrorsTotal      *prometheus.CounterVec
	predictionsTotal       *prometheus.CounterVec
	analysisLatencySeconds prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors used by the detection API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		detectRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "detect_requests_total",
			Help: "Total number of detection API requests served.",
		}, []string{"method", "route", "status"})

		detectLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "detect_latency_seconds",
			Help:    "Latency distribution for detection API requests.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}, []string{"method", "route"})

		detectErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "detect_errors_total",
			Help: "Total number of error responses returned by detection endpoints.",
		}, []string{"method", "route", "status"})

		predictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "detect_predictions_total",
			Help: "Total number of predictions grouped by label.",
		}, []string{"label"})

		analysisLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "detect_analysis_seconds",
			Help:    "Time spent inside the feature extraction and scoring pipeline.",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		})

		prometheus.MustRegister(detectRequestsTotal, detectLatencySeconds, detectErrorsTotal, predictionsTotal, analysisLatencySeconds)
	})
}

// DetectRequests exposes the counter for detection requests.
func DetectRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return detectRequestsTotal
}

// DetectLatency exposes the latency histogram for detection requests.
func DetectLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return detectLatencySeconds
}

// DetectErrors exposes the counter for detection error responses.
func DetectErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return detectErrorsTotal
}

// Predictions exposes the per-label prediction counter.
func Predictions() *prometheus.CounterVec {
	RegisterMetrics()
	return predictionsTotal
}

// AnalysisLatency exposes the pipeline latency histogram.
func AnalysisLatency() prometheus.Histogram {
	RegisterMetrics()
	return analysisLatencySeconds
}
