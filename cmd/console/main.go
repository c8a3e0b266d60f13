package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	appbook "github.com/xiebiao/bookstore-console/internal/application/book"
	appcustomer "github.com/xiebiao/bookstore-console/internal/application/customer"
	appsale "github.com/xiebiao/bookstore-console/internal/application/sale"
	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/domain/customer"
	"github.com/xiebiao/bookstore-console/internal/domain/sale"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/messaging"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/internal/interface/console"
	"github.com/xiebiao/bookstore-console/pkg/circuitbreaker"
	"github.com/xiebiao/bookstore-console/pkg/logger"
	"github.com/xiebiao/bookstore-console/pkg/metrics"
	"github.com/xiebiao/bookstore-console/pkg/mq"
	"github.com/xiebiao/bookstore-console/pkg/tracing"
)

// main entry point
// Dependencies are assembled by hand; wire.go declares the same graph for `wire gen`.
func main() {
	if err := run(); err != nil {
		log.Fatalf("bookstore console: %v", err)
	}
}

func run() error {
	// 1. configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. logger, tagged with a per-session id
	baseLog, closeLog, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return err
	}
	defer closeLog()
	lg := baseLog.With("session_id", uuid.NewString())

	metrics.InitMetrics()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(context.Background(), tracing.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				lg.Warn("failed to flush traces", "error", err)
			}
		}()
		lg.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint)
	}

	// 3. store, released on every exit path
	db, err := gormdb.NewDB(cfg, lg)
	if err != nil {
		return err
	}
	defer func() {
		if err := gormdb.Close(db); err != nil {
			lg.Error("failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.SeedFile != "" {
		data, err := gormdb.LoadSeedFile(cfg.Database.SeedFile)
		if err != nil {
			return err
		}
		if err := gormdb.Seed(ctx, db, data, lg); err != nil {
			return err
		}
	}

	// 4. optional sale event publisher
	var publisher sale.EventPublisher = sale.NopPublisher{}
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
		if err != nil {
			return err
		}
		defer p.Close()

		breaker := circuitbreaker.NewCircuitBreaker("rabbitmq", circuitbreaker.Config{
			MaxRequests: 1,
			Timeout:     cfg.MQ.BreakerTimeout,
			ReadyToTrip: circuitbreaker.ConsecutiveFailures(cfg.MQ.BreakerFailures),
		})
		breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
			lg.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		})

		publisher = messaging.NewSaleEventPublisher(p, breaker)
		lg.Info("sale events enabled", "exchange", cfg.MQ.Exchange)
	}

	// 5. dependency injection
	// Repository ← Service ← UseCase ← Handler ← App
	txManager := gormdb.NewTxManager(db)
	bookRepo := gormdb.NewBookRepository(db)
	customerRepo := gormdb.NewCustomerRepository(db)
	saleRepo := gormdb.NewSaleRepository(db)

	bookService := book.NewService(bookRepo)
	customerService := customer.NewService(customerRepo)

	bookHandler := console.NewBookHandler(
		appbook.NewUpdateBookUseCase(bookService, txManager),
		appbook.NewListBooksUseCase(bookService),
	)
	customerHandler := console.NewCustomerHandler(
		appcustomer.NewUpdateCustomerUseCase(customerService, txManager),
		appcustomer.NewPurchaseHistoryUseCase(customerService, saleRepo),
	)
	saleHandler := console.NewSaleHandler(
		appsale.NewProcessSaleUseCase(bookRepo, customerRepo, saleRepo, txManager, publisher, time.Now, lg),
		appsale.NewReportsUseCase(saleRepo),
	)

	app := console.NewApp(os.Stdin, os.Stdout, lg, bookHandler, customerHandler, saleHandler)

	// 6. menu loop
	lg.Info("session started", "driver", cfg.Database.Driver)
	runErr := app.Run(ctx)
	logSummary(lg, metrics.Summary())
	return runErr
}

func logSummary(lg *slog.Logger, s metrics.SessionSummary) {
	lg.Info("session ended",
		"actions", s.Actions,
		"failed_actions", s.FailedActions,
		"sales_processed", s.SalesProcessed,
		"sales_rejected", s.SalesRejected,
		"events_published", s.EventsPublished,
	)
}
