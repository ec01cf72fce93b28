package iso8583

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Processor parses batches and streams of independent messages
// concurrently. Parse itself is reentrant over the shared read-only
// schema, so the only coordination needed is bounding the number of
// in-flight goroutines.
type Processor struct {
	parser      *Parser
	concurrency int
	onResult    func(*Result) // Called for every result carrying an error
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency bounds the number of messages parsed at once.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithErrorHandler installs a callback invoked for every Result that ends
// up with an error attached. The default logs through slog.
func WithErrorHandler(handler func(*Result)) ProcessorOption {
	return func(p *Processor) {
		p.onResult = handler
	}
}

// NewProcessor creates a Processor over the given parser.
func NewProcessor(parser *Parser, opts ...ProcessorOption) *Processor {
	p := &Processor{
		parser:      parser,
		concurrency: 4,
		onResult: func(res *Result) {
			slog.Warn("message parse failed", "result", res)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseBatch parses every message in the slice, preserving input order in
// the returned results. Parse never fails, so the only possible error is
// context cancellation; results computed before cancellation are returned
// alongside it.
func (p *Processor) ParseBatch(ctx context.Context, msgs []string) ([]*Result, error) {
	results := make([]*Result, len(msgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, msg := range msgs {
		i, msg := i, msg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := p.parser.Parse(msg)
			if res.Err != nil && p.onResult != nil {
				p.onResult(res)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// ParseStream parses messages from input until the channel closes or the
// context is cancelled, sending each Result to output. Results may arrive
// out of input order.
func (p *Processor) ParseStream(ctx context.Context, input <-chan string, output chan<- *Result) error {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.concurrency)

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()

		case msg, ok := <-input:
			if !ok {
				wg.Wait()
				return nil
			}

			wg.Add(1)
			semaphore <- struct{}{}

			go func(raw string) {
				defer wg.Done()
				defer func() { <-semaphore }()

				res := p.parser.Parse(raw)
				if res.Err != nil && p.onResult != nil {
					p.onResult(res)
				}

				select {
				case output <- res:
				case <-ctx.Done():
				}
			}(msg)
		}
	}
}
