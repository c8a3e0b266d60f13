package gormdb

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-console/internal/domain/book"
	"github.com/xiebiao/bookstore-console/internal/domain/customer"
)

// SeedData fixture file layout
//
//	books:
//	  - title: Dune
//	    author: Herbert
//	    genre: SciFi
//	    price: 20.00
//	    quantity_in_stock: 5
//	customers:
//	  - name: Paul
//	    email: paul@arrakis.io
//	    phone: "5551234"
type SeedData struct {
	Books     []SeedBook     `yaml:"books"`
	Customers []SeedCustomer `yaml:"customers"`
}

type SeedBook struct {
	Title           string          `yaml:"title"`
	Author          string          `yaml:"author"`
	Genre           string          `yaml:"genre"`
	Price           decimal.Decimal `yaml:"price"`
	QuantityInStock int             `yaml:"quantity_in_stock"`
}

type SeedCustomer struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// LoadSeedFile parses a fixture file
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

// Seed inserts the fixture in one transaction.
// Each table is filled only while it is empty, so restarting with the same file is a no-op.
func Seed(ctx context.Context, db *gorm.DB, data *SeedData, log *slog.Logger) error {
	books := NewBookRepository(db)
	customers := NewCustomerRepository(db)

	return NewTxManager(db).Transaction(ctx, func(ctx context.Context) error {
		bookCount, err := books.Count(ctx)
		if err != nil {
			return err
		}
		if bookCount == 0 {
			for _, sb := range data.Books {
				b, err := book.NewBook(sb.Title, sb.Author, sb.Genre, sb.Price, sb.QuantityInStock)
				if err != nil {
					return fmt.Errorf("seed book %q: %w", sb.Title, err)
				}
				if err := books.Create(ctx, b); err != nil {
					return err
				}
			}
			log.Info("seeded books", "count", len(data.Books))
		}

		customerCount, err := customers.Count(ctx)
		if err != nil {
			return err
		}
		if customerCount == 0 {
			for _, sc := range data.Customers {
				if err := customers.Create(ctx, customer.NewCustomer(sc.Name, sc.Email, sc.Phone)); err != nil {
					return err
				}
			}
			log.Info("seeded customers", "count", len(data.Customers))
		}

		return nil
	})
}
