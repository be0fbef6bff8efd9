package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// freshness pipeline. Generation and training run as one-shot batches; the
// prediction metrics are exposed by the serve command.
type Metrics struct {
	RecordsGenerated prometheus.Counter
	TrainingDuration prometheus.Histogram

	PredictionsTotal *prometheus.CounterVec // label: predicted freshness label
	PredictErrors    prometheus.Counter
	PredictDuration  prometheus.Histogram
	ModelLoaded      prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsGenerated,
		m.TrainingDuration,
		m.PredictionsTotal,
		m.PredictErrors,
		m.PredictDuration,
		m.ModelLoaded,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "freshness",
			Name:      "records_generated_total",
			Help:      "Total synthetic records written to the dataset.",
		}),
		TrainingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "freshness",
			Name:      "training_duration_seconds",
			Help:      "Duration of a complete training run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "freshness",
			Name:      "predictions_total",
			Help:      "Predictions served, by predicted label.",
		}, []string{"label"}),
		PredictErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "freshness",
			Name:      "predict_errors_total",
			Help:      "Prediction requests rejected as invalid.",
		}),
		PredictDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "freshness",
			Name:      "predict_duration_seconds",
			Help:      "Duration of a single prediction call.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		ModelLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "freshness",
			Name:      "model_loaded",
			Help:      "1 when a trained pipeline is loaded, 0 otherwise.",
		}),
	}
}
