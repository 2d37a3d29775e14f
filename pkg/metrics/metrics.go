package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bintrack_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bintrack_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "path"})
)

// Business metrics
var (
	BinsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bintrack_bins_created_total",
		Help: "Total number of bins registered",
	})

	BinsTippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bintrack_bins_tipped_total",
		Help: "Total number of bins marked as tipped",
	})

	BinsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bintrack_bins_deleted_total",
		Help: "Total number of bins deleted",
	})

	BinsOnStock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bintrack_bins_on_stock",
		Help: "Number of untipped bins currently on stock",
	})

	BarcodesRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bintrack_barcodes_rendered_total",
		Help: "Total number of barcode images rendered",
	})

	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bintrack_exports_total",
		Help: "Total number of report exports",
	}, []string{"format", "scope"})
)

// Event counters
var (
	AuthLoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bintrack_auth_logins_total",
		Help: "Total number of login attempts",
	}, []string{"status"})
)
