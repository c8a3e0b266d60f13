//go:build wireinject
// +build wireinject

// Wire provider graph of the console.
//
// main.go assembles the same graph by hand. Running `wire gen ./cmd/console`
// produces wire_gen.go with InitializeApp.

package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	appbook "github.com/xiebiao/bookstore-console/internal/application/book"
	appcustomer "github.com/xiebiao/bookstore-console/internal/application/customer"
	appsale "github.com/xiebiao/bookstore-console/internal/application/sale"
	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/domain/customer"
	"github.com/xiebiao/bookstore-console/internal/domain/sale"
	"github.com/xiebiao/bookstore-console/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/bookstore-console/internal/interface/console"
)

// repositorySet repositories and the transaction manager
var repositorySet = wire.NewSet(
	gormdb.NewBookRepository,
	gormdb.NewCustomerRepository,
	gormdb.NewSaleRepository,
	gormdb.NewTxManager,
)

// domainSet domain services
var domainSet = wire.NewSet(
	book.NewService,
	customer.NewService,
)

// applicationSet use cases
var applicationSet = wire.NewSet(
	appbook.NewUpdateBookUseCase,
	appbook.NewListBooksUseCase,
	appcustomer.NewUpdateCustomerUseCase,
	appcustomer.NewPurchaseHistoryUseCase,
	appsale.NewProcessSaleUseCase,
	appsale.NewReportsUseCase,
	provideClock,
)

// handlerSet console handlers
var handlerSet = wire.NewSet(
	console.NewBookHandler,
	console.NewCustomerHandler,
	console.NewSaleHandler,
	console.NewApp,
)

// provideClock wall clock for sale dates
func provideClock() appsale.Clock {
	return time.Now
}

// InitializeApp builds the console on an open store.
// db and publisher are owned by the caller, which also closes them.
func InitializeApp(
	db *gorm.DB,
	publisher sale.EventPublisher,
	log *slog.Logger,
	in io.Reader,
	out io.Writer,
) (*console.App, error) {
	wire.Build(
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
	)
	return nil, nil
}
