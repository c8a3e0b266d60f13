// Package metrics holds the Prometheus collectors of a console session.
//
// The console has no scrape endpoint: collectors live in their own Registry and
// Summary reads them back when the session ends.
//
//	metrics.InitMetrics()
//	start := time.Now()
//	// ... run an action ...
//	metrics.ObserveAction("process_new_sale", "ok", time.Since(start))
//	log.Info("session summary", "actions", metrics.Summary().Actions)
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Action results
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Sale rejection reasons
const (
	ReasonInvalidIdentifier = "invalid_identifier"
	ReasonInsufficientStock = "insufficient_stock"
)

var (
	// initialized guards against double registration
	initialized bool

	// Registry private registry for all collectors below
	Registry *prometheus.Registry

	// ConsoleActionsTotal actions executed (Counter)
	// labels: action, result (ok/error)
	ConsoleActionsTotal *prometheus.CounterVec

	// ConsoleActionDuration action wall time including operator input (Histogram)
	ConsoleActionDuration *prometheus.HistogramVec

	// SalesProcessedTotal sales committed (Counter)
	SalesProcessedTotal prometheus.Counter

	// SalesRejectedTotal sales rolled back by a business rule (Counter)
	// labels: reason (invalid_identifier/insufficient_stock)
	SalesRejectedTotal *prometheus.CounterVec

	// SaleEventsPublishedTotal sale.created publish attempts (Counter)
	// labels: result (ok/error)
	SaleEventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics creates and registers the collectors once
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	Registry = prometheus.NewRegistry()
	factory := promauto.With(Registry)

	ConsoleActionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_console_actions_total",
			Help: "Console actions executed",
		},
		[]string{"action", "result"},
	)

	ConsoleActionDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "bookstore_console_action_duration_seconds",
			Help: "Console action duration in seconds, operator input included",
			// operator typing dominates: 100ms .. 5min
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		},
		[]string{"action"},
	)

	SalesProcessedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "bookstore_sales_processed_total",
			Help: "Sales committed",
		},
	)

	SalesRejectedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_sales_rejected_total",
			Help: "Sales rolled back by a business rule",
		},
		[]string{"reason"},
	)

	SaleEventsPublishedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookstore_sale_events_published_total",
			Help: "sale.created publish attempts",
		},
		[]string{"result"},
	)
}

// IncCounter increments a Counter; nil (metrics not initialized) is a no-op
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec increments a CounterVec child
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// ObserveHistogramVec records one observation
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}

// ObserveAction counts one console action and records its duration
func ObserveAction(action, result string, elapsed time.Duration) {
	IncCounterVec(ConsoleActionsTotal, map[string]string{"action": action, "result": result})
	ObserveHistogramVec(ConsoleActionDuration, map[string]string{"action": action}, elapsed.Seconds())
}

// SessionSummary totals read back from the registry
type SessionSummary struct {
	Actions         float64
	FailedActions   float64
	SalesProcessed  float64
	SalesRejected   float64
	EventsPublished float64
}

// Summary gathers the registry and folds every series into totals
func Summary() SessionSummary {
	var s SessionSummary
	if Registry == nil {
		return s
	}

	families, err := Registry.Gather()
	if err != nil {
		return s
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue()
			switch mf.GetName() {
			case "bookstore_console_actions_total":
				s.Actions += value
				if labelValue(m.GetLabel(), "result") == ResultError {
					s.FailedActions += value
				}
			case "bookstore_sales_processed_total":
				s.SalesProcessed += value
			case "bookstore_sales_rejected_total":
				s.SalesRejected += value
			case "bookstore_sale_events_published_total":
				if labelValue(m.GetLabel(), "result") == ResultOK {
					s.EventsPublished += value
				}
			}
		}
	}
	return s
}

func labelValue(labels []*dto.LabelPair, name string) string {
	for _, l := range labels {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}
