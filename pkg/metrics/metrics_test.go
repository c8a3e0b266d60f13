package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	registry := Registry

	require.NotNil(t, Registry)
	assert.NotNil(t, ConsoleActionsTotal)
	assert.NotNil(t, ConsoleActionDuration)
	assert.NotNil(t, SalesProcessedTotal)
	assert.NotNil(t, SalesRejectedTotal)
	assert.NotNil(t, SaleEventsPublishedTotal)

	// second call keeps the same registry
	InitMetrics()
	assert.Same(t, registry, Registry)
}

func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, SalesProcessedTotal)
	IncCounter(SalesProcessedTotal)
	IncCounter(SalesProcessedTotal)
	IncCounter(SalesProcessedTotal)

	assert.Equal(t, before+3, getCounterValue(t, SalesProcessedTotal))
}

func TestCounterVec(t *testing.T) {
	InitMetrics()

	stock := map[string]string{"reason": ReasonInsufficientStock}
	ids := map[string]string{"reason": ReasonInvalidIdentifier}
	beforeStock := getCounterVecValue(t, SalesRejectedTotal, stock)
	beforeIDs := getCounterVecValue(t, SalesRejectedTotal, ids)

	IncCounterVec(SalesRejectedTotal, stock)
	IncCounterVec(SalesRejectedTotal, ids)
	IncCounterVec(SalesRejectedTotal, stock)

	assert.Equal(t, beforeStock+2, getCounterVecValue(t, SalesRejectedTotal, stock))
	assert.Equal(t, beforeIDs+1, getCounterVecValue(t, SalesRejectedTotal, ids))
}

func TestNilCollectors(t *testing.T) {
	assert.NotPanics(t, func() {
		IncCounter(nil)
		IncCounterVec(nil, map[string]string{"reason": ReasonInsufficientStock})
		ObserveHistogramVec(nil, map[string]string{"action": "exit"}, 1)
	})
}

func TestObserveAction(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"action": "sold_book_report"}
	beforeCount := getHistogramVecCount(t, ConsoleActionDuration, labels)
	beforeOK := getCounterVecValue(t, ConsoleActionsTotal, map[string]string{"action": "sold_book_report", "result": ResultOK})

	ObserveAction("sold_book_report", ResultOK, 200*time.Millisecond)
	ObserveAction("sold_book_report", ResultError, 2*time.Second)

	assert.Equal(t, beforeCount+2, getHistogramVecCount(t, ConsoleActionDuration, labels))
	assert.Equal(t, beforeOK+1, getCounterVecValue(t, ConsoleActionsTotal, map[string]string{"action": "sold_book_report", "result": ResultOK}))
}

func TestSummary(t *testing.T) {
	InitMetrics()
	before := Summary()

	ObserveAction("process_new_sale", ResultOK, time.Second)
	ObserveAction("process_new_sale", ResultError, time.Second)
	IncCounter(SalesProcessedTotal)
	IncCounterVec(SalesRejectedTotal, map[string]string{"reason": ReasonInvalidIdentifier})
	IncCounterVec(SaleEventsPublishedTotal, map[string]string{"result": ResultOK})
	IncCounterVec(SaleEventsPublishedTotal, map[string]string{"result": ResultError})

	after := Summary()
	assert.Equal(t, before.Actions+2, after.Actions)
	assert.Equal(t, before.FailedActions+1, after.FailedActions)
	assert.Equal(t, before.SalesProcessed+1, after.SalesProcessed)
	assert.Equal(t, before.SalesRejected+1, after.SalesRejected)
	assert.Equal(t, before.EventsPublished+1, after.EventsPublished, "failed publishes are not counted")
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	return metric.Counter.GetValue()
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	return getCounterValue(t, counterVec.With(labels))
}

func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	require.NoError(t, histogram.(prometheus.Histogram).Write(&metric))
	return metric.Histogram.GetSampleCount()
}
