package observability

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recab"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	LedgerEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ledger_entries_total", Help: "Ledger entries posted by kind"},
		[]string{"kind"},
	)
	LedgerAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ledger_amount_minor_units_total", Help: "Money moved by entry kind in minor units"},
		[]string{"kind"},
	)
	WalletRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "wallet_rejections_total", Help: "Wallet operations rejected by reason"},
		[]string{"operation", "reason"},
	)

	RideRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ride_requests_total", Help: "Ride request transitions by resulting status"},
		[]string{"status"},
	)
	TripsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "trips_completed_total", Help: "Completed trips by payment method"},
		[]string{"payment_method"},
	)
	PresenceUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "presence_updates_total", Help: "Presence heartbeats by outcome"},
		[]string{"outcome"},
	)
	PresenceOnline = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: namespace, Name: "presence_online", Help: "Online actors seen by the last presence listing"},
	)
)

// RegisterMetricsEndpoint exposes the Prometheus registry on /metrics
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
