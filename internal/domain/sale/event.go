package sale

import (
	"context"
)

// EventPublisher announces committed sales to other systems.
// Implementations must not be called inside the sale transaction.
type EventPublisher interface {
	PublishSaleCreated(ctx context.Context, s *Sale) error
}

// NopPublisher drops every event
type NopPublisher struct{}

// PublishSaleCreated does nothing
func (NopPublisher) PublishSaleCreated(context.Context, *Sale) error {
	return nil
}
