package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for galaxy generation.
type Metrics struct {
	// Generated entity counts by kind
	EntitiesGenerated *prometheus.CounterVec

	// Full galaxy generation latency
	GenerateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all generation metrics registered.
func New() *Metrics {
	return &Metrics{
		EntitiesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "galaxy_entities_generated_total",
			Help: "Total generated entities by kind",
		}, []string{"kind"}), // kind: "sector", "system", "star", "planet"

		GenerateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "galaxy_generate_duration_seconds",
			Help:    "Duration of full galaxy generation",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

// AddGenerated records generated entities of one kind.
func (m *Metrics) AddGenerated(kind string, n int) {
	if m != nil {
		m.EntitiesGenerated.WithLabelValues(kind).Add(float64(n))
	}
}

// ObserveGenerateLatency records the duration of a full galaxy generation.
func (m *Metrics) ObserveGenerateLatency(d time.Duration) {
	if m != nil {
		m.GenerateLatency.Observe(d.Seconds())
	}
}
