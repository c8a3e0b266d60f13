package sale

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/domain/customer"
	"github.com/xiebiao/bookstore-console/internal/domain/sale"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/pkg/metrics"
	"github.com/xiebiao/bookstore-console/pkg/tracing"
)

// Clock returns the current time; injected so tests can pin the sale date
type Clock func() time.Time

// ProcessSaleUseCase records the sale of one book to one customer
// Notes:
// 1. Book and customer are resolved inside the sale transaction
// 2. An unresolved reference or a short stock rolls the transaction back
// 3. The book's stock is checked, never decremented
// 4. sale.created is published after commit; a publish failure does not undo the sale
type ProcessSaleUseCase struct {
	bookRepo     book.Repository
	customerRepo customer.Repository
	saleRepo     sale.Repository
	txManager    *gormdb.TxManager
	publisher    sale.EventPublisher
	now          Clock
	log          *slog.Logger
}

// NewProcessSaleUseCase creates the use case; a nil publisher means no events
func NewProcessSaleUseCase(
	bookRepo book.Repository,
	customerRepo customer.Repository,
	saleRepo sale.Repository,
	txManager *gormdb.TxManager,
	publisher sale.EventPublisher,
	now Clock,
	log *slog.Logger,
) *ProcessSaleUseCase {
	if publisher == nil {
		publisher = sale.NopPublisher{}
	}
	if now == nil {
		now = time.Now
	}
	return &ProcessSaleUseCase{
		bookRepo:     bookRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		txManager:    txManager,
		publisher:    publisher,
		now:          now,
		log:          log,
	}
}

// ProcessSaleRequest operator input
type ProcessSaleRequest struct {
	BookID     uint
	CustomerID uint
	Quantity   int
}

// ProcessSaleResponse the committed sale
type ProcessSaleResponse struct {
	SaleID     uint
	TotalPrice decimal.Decimal
	DateOfSale time.Time
}

// Execute runs the sale transaction.
// Errors: sale.ErrInvalidQuantity, sale.ErrInvalidIdentifier, sale.ErrInsufficientStock,
// or a wrapped store error.
func (uc *ProcessSaleUseCase) Execute(ctx context.Context, req ProcessSaleRequest) (_ *ProcessSaleResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "sale.process", trace.WithAttributes(
		attribute.Int64("sale.book_id", int64(req.BookID)),
		attribute.Int64("sale.customer_id", int64(req.CustomerID)),
		attribute.Int("sale.quantity", req.Quantity),
	))
	defer func() { tracing.EndSpan(span, err) }()

	if req.Quantity <= 0 {
		return nil, sale.ErrInvalidQuantity
	}

	var created *sale.Sale
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookRepo.FindByID(txCtx, req.BookID)
		if err != nil && !errors.Is(err, book.ErrBookNotFound) {
			return err
		}

		c, err := uc.customerRepo.FindByID(txCtx, req.CustomerID)
		if err != nil && !errors.Is(err, customer.ErrCustomerNotFound) {
			return err
		}

		// both lookups run before either miss is reported
		if b == nil || c == nil {
			return sale.ErrInvalidIdentifier
		}

		s, err := sale.NewSale(b, c, uc.now(), req.Quantity)
		if err != nil {
			return err
		}

		if err := uc.saleRepo.Create(txCtx, s); err != nil {
			return err
		}

		created = s
		return nil
	})
	if err != nil {
		uc.recordRejection(err)
		return nil, err
	}

	metrics.IncCounter(metrics.SalesProcessedTotal)
	span.SetAttributes(attribute.Int64("sale.id", int64(created.ID)))
	uc.publish(ctx, created)

	return &ProcessSaleResponse{
		SaleID:     created.ID,
		TotalPrice: created.TotalPrice,
		DateOfSale: created.DateOfSale,
	}, nil
}

func (uc *ProcessSaleUseCase) recordRejection(err error) {
	var reason string
	switch {
	case errors.Is(err, sale.ErrInvalidIdentifier):
		reason = metrics.ReasonInvalidIdentifier
	case errors.Is(err, sale.ErrInsufficientStock):
		reason = metrics.ReasonInsufficientStock
	default:
		return
	}
	metrics.IncCounterVec(metrics.SalesRejectedTotal, map[string]string{"reason": reason})
}

func (uc *ProcessSaleUseCase) publish(ctx context.Context, s *sale.Sale) {
	result := metrics.ResultOK
	if err := uc.publisher.PublishSaleCreated(ctx, s); err != nil {
		result = metrics.ResultError
		uc.log.Warn("failed to publish sale event", "sale_id", s.ID, "error", err)
	}
	metrics.IncCounterVec(metrics.SaleEventsPublishedTotal, map[string]string{"result": result})
}
