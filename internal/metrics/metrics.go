// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "farmledger"

// Registry is the registry all farmledger collectors are registered on.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// HTTPRequests counts handled requests by route and status code.
	HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// APIErrors counts error responses by application error code.
	APIErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Error responses, by application error code.",
	}, []string{"code"})

	// FeedConsumed accumulates feed quantity deducted from stock.
	FeedConsumed = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_consumed_quantity_total",
		Help:      "Feed quantity deducted from stock, by feed type and unit.",
	}, []string{"feed_type", "unit"})

	// FeedRejected counts consumptions refused for insufficient stock.
	FeedRejected = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_consumption_rejected_total",
		Help:      "Feeding records rejected because the stock was insufficient.",
	})

	// Recounts counts derived-aggregate recalculations by aggregate.
	Recounts = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregate_recounts_total",
		Help:      "Full recounts of derived aggregates.",
	}, []string{"aggregate"})

	// LowStockFeeds is the number of feed stocks below the sufficiency threshold
	// at the last scan.
	LowStockFeeds = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_stocks_low",
		Help:      "Feed stocks currently below the sufficiency threshold.",
	})

	// OverdueVaccinations counts vaccination records flipped to overdue.
	OverdueVaccinations = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vaccinations_marked_overdue_total",
		Help:      "Vaccination records marked overdue by the maintenance job.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
