package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookstore-console/pkg/metrics"
	"github.com/xiebiao/bookstore-console/pkg/tracing"
)

// App interactive menu loop
// Notes:
// 1. One action runs at a time; each returns to the menu when done
// 2. Unexpected action errors are logged and the loop continues
// 3. End of input or a cancelled ctx ends the session normally
// 4. A panic inside an action is recovered here and returned as an error
type App struct {
	in        io.Reader
	out       io.Writer
	log       *slog.Logger
	books     *BookHandler
	customers *CustomerHandler
	sales     *SaleHandler
}

// NewApp creates the console application
func NewApp(
	in io.Reader,
	out io.Writer,
	log *slog.Logger,
	books *BookHandler,
	customers *CustomerHandler,
	sales *SaleHandler,
) *App {
	return &App{
		in:        in,
		out:       out,
		log:       log,
		books:     books,
		customers: customers,
		sales:     sales,
	}
}

// Run serves the menu until the operator exits
func (a *App) Run(ctx context.Context) (err error) {
	p := NewPrompter(a.in, a.out)
	defer p.Close()

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic recovered", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("console panic: %v", r)
		}
	}()

	for {
		p.Println(menuText)

		line, err := p.ReadLine(ctx)
		if err != nil {
			return endOfSession(err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		action, ok := ParseAction(n)
		if convErr != nil || !ok {
			p.Println("Invalid input. Please enter a number between 0 and 9.")
			continue
		}

		if action == ActionExit {
			return nil
		}

		if err := a.execute(ctx, p, action); err != nil {
			return endOfSession(err)
		}
		p.Println()
	}
}

// execute runs one action inside its own span and records its metrics.
// Only end-of-session errors are returned.
func (a *App) execute(ctx context.Context, p *Prompter, action ActionType) error {
	ctx, span := tracing.StartSpan(ctx, "console."+action.String(),
		trace.WithAttributes(attribute.String("console.action", action.String())))

	start := time.Now()
	err := a.dispatch(ctx, p, action)

	result := metrics.ResultOK
	var spanErr error
	if err != nil && !isEndOfSession(err) {
		result = metrics.ResultError
		spanErr = err
		a.log.Error("action failed", "action", action.String(), "trace_id", tracing.TraceID(ctx), "error", err)
	}
	metrics.ObserveAction(action.String(), result, time.Since(start))
	tracing.EndSpan(span, spanErr)

	if isEndOfSession(err) {
		return err
	}
	return nil
}

func (a *App) dispatch(ctx context.Context, p *Prompter, action ActionType) error {
	switch action {
	case ActionUpdateBookDetails:
		return a.books.UpdateDetails(ctx, p)
	case ActionListBooksByGenre:
		return a.books.ListByGenre(ctx, p)
	case ActionListBooksByAuthor:
		return a.books.ListByAuthor(ctx, p)
	case ActionUpdateCustomerInfo:
		return a.customers.UpdateInformation(ctx, p)
	case ActionCustomerPurchaseHistory:
		return a.customers.PurchaseHistory(ctx, p)
	case ActionRevenueByGenre:
		return a.sales.RevenueByGenre(ctx, p)
	case ActionProcessNewSale:
		return a.sales.ProcessNewSale(ctx, p)
	case ActionSoldBookReport:
		return a.sales.SoldBookReport(ctx, p)
	case ActionRevenueByGenreReport:
		return a.sales.RevenueByGenreReport(ctx, p)
	case ActionExit:
		return nil
	default:
		return fmt.Errorf("unknown action %d", action)
	}
}

func isEndOfSession(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// endOfSession maps end of input and cancellation to a clean exit
func endOfSession(err error) error {
	if isEndOfSession(err) {
		return nil
	}
	return err
}
