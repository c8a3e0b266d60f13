package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-console/internal/domain/sale"
	"github.com/xiebiao/bookstore-console/pkg/circuitbreaker"
)

type capturePublisher struct {
	routingKey string
	message    interface{}
	err        error
}

func (p *capturePublisher) Publish(_ context.Context, routingKey string, message interface{}) error {
	p.routingKey = routingKey
	p.message = message
	return p.err
}

func testSale() *sale.Sale {
	return &sale.Sale{
		ID:           7,
		BookID:       1,
		CustomerID:   2,
		DateOfSale:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		QuantitySold: 3,
		TotalPrice:   decimal.NewFromInt(60),
	}
}

func TestNewSaleCreatedEvent_JSON(t *testing.T) {
	raw, err := json.Marshal(NewSaleCreatedEvent(testSale()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"sale_id": 7,
		"book_id": 1,
		"customer_id": 2,
		"quantity_sold": 3,
		"total_price": "60.00",
		"date_of_sale": "2024-03-01"
	}`, string(raw))
}

func TestSaleEventPublisher(t *testing.T) {
	capture := &capturePublisher{}
	publisher := NewSaleEventPublisher(capture, nil)

	require.NoError(t, publisher.PublishSaleCreated(context.Background(), testSale()))
	assert.Equal(t, RoutingKeySaleCreated, capture.routingKey)

	event, ok := capture.message.(SaleCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, uint(7), event.SaleID)

	t.Run("broker error is returned", func(t *testing.T) {
		failing := NewSaleEventPublisher(&capturePublisher{err: errors.New("channel closed")}, nil)
		assert.Error(t, failing.PublishSaleCreated(context.Background(), testSale()))
	})
}

func TestSaleEventPublisher_BreakerSkipsDeadBroker(t *testing.T) {
	capture := &capturePublisher{err: errors.New("connection reset")}
	breaker := circuitbreaker.NewCircuitBreaker("rabbitmq", circuitbreaker.Config{
		Timeout:     time.Minute,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(2),
	})
	publisher := NewSaleEventPublisher(capture, breaker)
	ctx := context.Background()

	assert.Error(t, publisher.PublishSaleCreated(ctx, testSale()))
	assert.Error(t, publisher.PublishSaleCreated(ctx, testSale()))

	capture.routingKey = ""
	err := publisher.PublishSaleCreated(ctx, testSale())
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Empty(t, capture.routingKey, "broker is not called while open")
}
