// Package obsmetrics exposes an arena's [obstack.ArenaMetrics] snapshots as
// Prometheus gauges.
package obsmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cleeus/obstack"
)

var (
	sizeInUse = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "obstack_size_in_use_bytes",
			Help: "Bytes currently in use by a named arena, including headers and padding.",
		},
		[]string{"arena"},
	)
	capacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "obstack_capacity_bytes",
			Help: "Total fixed capacity of a named arena.",
		},
		[]string{"arena"},
	)
	liveChunks = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "obstack_live_chunks",
			Help: "Number of chunk headers currently linked from the top of a named arena.",
		},
		[]string{"arena"},
	)
	registeredTypes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "obstack_registered_types",
			Help: "Number of distinct payload types a named arena has registered a destructor for.",
		},
		[]string{"arena"},
	)
	utilization = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "obstack_utilization_ratio",
			Help: "Fraction of capacity currently in use for a named arena, in [0,1].",
		},
		[]string{"arena"},
	)
)

// Report publishes a single arena's metrics snapshot under name, which
// distinguishes arenas from one another on the /metrics endpoint (a
// request ID, a worker pool slot, or a fixed name for a singleton arena).
func Report(name string, m obstack.ArenaMetrics) {
	sizeInUse.WithLabelValues(name).Set(float64(m.SizeInUse))
	capacity.WithLabelValues(name).Set(float64(m.Capacity))
	liveChunks.WithLabelValues(name).Set(float64(m.LiveChunks))
	registeredTypes.WithLabelValues(name).Set(float64(m.RegisteredTypes))
	utilization.WithLabelValues(name).Set(m.Utilization())
}

// Handler returns the Prometheus HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
