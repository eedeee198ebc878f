package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RowsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_loaded_total",
			Help: "Rows kept in the working table per source",
		},
		[]string{"source"},
	)

	RowsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_dropped_total",
			Help: "Rows dropped for an unparseable price per source",
		},
		[]string{"source"},
	)

	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "API requests served per route",
		},
		[]string{"route"},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_cache_total",
			Help: "Report cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

// Register adds the collectors to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(RowsLoaded, RowsDropped, APIRequests, CacheLookups)
}

// Start registers the collectors globally and serves /metrics on port.
func Start(port string) {
	Register(prometheus.DefaultRegisterer)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, mux)
}
