package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter line-oriented operator I/O
// Notes:
// 1. Every read consumes exactly one line; numbers are parsed from the trimmed line
// 2. Lines are scanned on a background goroutine so a cancelled ctx unblocks a pending read
// 3. End of input surfaces as io.EOF and ends the session
type Prompter struct {
	out   io.Writer
	lines chan string
	done  chan struct{}
	err   error // scanner error, readable once lines is closed
}

// NewPrompter starts scanning in; call Close to stop the scanner
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *Prompter) scan(in io.Reader) {
	defer close(p.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case p.lines <- scanner.Text():
		case <-p.done:
			return
		}
	}
	p.err = scanner.Err()
}

// Close stops the background scanner
func (p *Prompter) Close() {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

// Println writes a line to the operator
func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted output to the operator
func (p *Prompter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

// ReadLine next input line without its line ending
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", p.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// Ask prints prompt and reads one line
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.Println(prompt)
	return p.ReadLine(ctx)
}

// AskInt prints prompt and reads until the line is an integer, printing invalid after each miss
func (p *Prompter) AskInt(ctx context.Context, prompt, invalid string) (int, error) {
	return p.askIntWhere(ctx, prompt, invalid, func(int) bool { return true })
}

// AskPositiveInt like AskInt, also rejecting n <= 0
func (p *Prompter) AskPositiveInt(ctx context.Context, prompt, invalid string) (int, error) {
	return p.askIntWhere(ctx, prompt, invalid, func(n int) bool { return n > 0 })
}

// AskNonNegativeInt like AskInt, also rejecting n < 0
func (p *Prompter) AskNonNegativeInt(ctx context.Context, prompt, invalid string) (int, error) {
	return p.askIntWhere(ctx, prompt, invalid, func(n int) bool { return n >= 0 })
}

// AskPositiveDecimal reads until the line is a number > 0
func (p *Prompter) AskPositiveDecimal(ctx context.Context, prompt, invalid string) (decimal.Decimal, error) {
	for {
		line, err := p.Ask(ctx, prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, convErr := decimal.NewFromString(strings.TrimSpace(line))
		if convErr == nil && d.IsPositive() {
			return d, nil
		}
		p.Println(invalid)
	}
}

func (p *Prompter) askIntWhere(ctx context.Context, prompt, invalid string, accept func(int) bool) (int, error) {
	for {
		line, err := p.Ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && accept(n) {
			return n, nil
		}
		p.Println(invalid)
	}
}
