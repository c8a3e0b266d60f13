package messaging

import (
	"context"

	"github.com/xiebiao/bookstore-console/internal/domain/sale"
	"github.com/xiebiao/bookstore-console/pkg/circuitbreaker"
)

// RoutingKeySaleCreated routing key of committed sales
const RoutingKeySaleCreated = "sale.created"

// Publisher is satisfied by *mq.Publisher
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// SaleCreatedEvent payload of sale.created
type SaleCreatedEvent struct {
	SaleID       uint   `json:"sale_id"`
	BookID       uint   `json:"book_id"`
	CustomerID   uint   `json:"customer_id"`
	QuantitySold int    `json:"quantity_sold"`
	TotalPrice   string `json:"total_price"`
	DateOfSale   string `json:"date_of_sale"`
}

// NewSaleCreatedEvent builds the payload; money is a fixed two-decimal string
func NewSaleCreatedEvent(s *sale.Sale) SaleCreatedEvent {
	return SaleCreatedEvent{
		SaleID:       s.ID,
		BookID:       s.BookID,
		CustomerID:   s.CustomerID,
		QuantitySold: s.QuantitySold,
		TotalPrice:   s.TotalPrice.StringFixed(2),
		DateOfSale:   s.DateOfSale.Format("2006-01-02"),
	}
}

// SaleEventPublisher adapts a Publisher to sale.EventPublisher.
// With a breaker, an unreachable broker is skipped (circuitbreaker.ErrOpenState)
// instead of being retried on every sale.
type SaleEventPublisher struct {
	publisher Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewSaleEventPublisher creates the adapter; breaker may be nil
func NewSaleEventPublisher(publisher Publisher, breaker *circuitbreaker.CircuitBreaker) *SaleEventPublisher {
	return &SaleEventPublisher{
		publisher: publisher,
		breaker:   breaker,
	}
}

// PublishSaleCreated publishes sale.created for a committed sale
func (p *SaleEventPublisher) PublishSaleCreated(ctx context.Context, s *sale.Sale) error {
	publish := func() error {
		return p.publisher.Publish(ctx, RoutingKeySaleCreated, NewSaleCreatedEvent(s))
	}
	if p.breaker == nil {
		return publish()
	}
	return p.breaker.Execute(publish)
}

var _ sale.EventPublisher = (*SaleEventPublisher)(nil)
