package monitor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
)

// QuotePair is one tick's snapshot for one canonical symbol. Either side may
// be absent; downstream consumers skip incomplete pairs.
type QuotePair struct {
	A, B     exchange.Quote
	AOK, BOK bool
}

func (qp QuotePair) Complete() bool {
	return qp.AOK && qp.BOK
}

// Aggregator fans quote fetches out across the worker pool and fans results
// back into per-symbol snapshots. Every poll is a synchronous barrier: it
// returns only once all dispatched fetches have resolved or failed, so no
// result ever leaks between ticks.
type Aggregator struct {
	pool *Pool
	a    exchange.QuoteService
	b    exchange.QuoteService
}

func NewAggregator(pool *Pool, a, b exchange.QuoteService) *Aggregator {
	return &Aggregator{pool: pool, a: a, b: b}
}

// PollPairs fetches both exchanges' books for every symbol, two concurrent
// fetches per symbol. A failed fetch leaves that side absent; it is not an
// error.
func (ag *Aggregator) PollPairs(ctx context.Context, symbols []string, mapping exchange.SymbolMapping) map[string]QuotePair {
	out := make(map[string]QuotePair, len(symbols))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, symbol := range symbols {
		symbol := symbol
		nativeA := mapping.NativeA(symbol)
		nativeB := mapping.NativeB(symbol)

		wg.Add(2)
		ag.pool.submit(func() {
			defer wg.Done()
			quote, err := ag.a.BookTicker(ctx, nativeA)
			if err != nil {
				slog.Debug("book fetch failed", "exchange", "a", "symbol", nativeA, "error", err)
				return
			}
			mu.Lock()
			pair := out[symbol]
			pair.A, pair.AOK = quote, true
			out[symbol] = pair
			mu.Unlock()
		})
		ag.pool.submit(func() {
			defer wg.Done()
			quote, err := ag.b.BookTicker(ctx, nativeB)
			if err != nil {
				slog.Debug("book fetch failed", "exchange", "b", "symbol", nativeB, "error", err)
				return
			}
			mu.Lock()
			pair := out[symbol]
			pair.B, pair.BOK = quote, true
			out[symbol] = pair
			mu.Unlock()
		})
	}

	wg.Wait()
	return out
}

// PollSingle fetches exchange B's book symbol by symbol through the pool, used
// during the full scan because that exchange has no batch quote endpoint.
func (ag *Aggregator) PollSingle(ctx context.Context, natives []string) map[string]exchange.Quote {
	out := make(map[string]exchange.Quote, len(natives))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, native := range natives {
		native := native
		wg.Add(1)
		ag.pool.submit(func() {
			defer wg.Done()
			quote, err := ag.b.BookTicker(ctx, native)
			if err != nil {
				slog.Debug("book fetch failed", "exchange", "b", "symbol", native, "error", err)
				return
			}
			mu.Lock()
			out[native] = quote
			mu.Unlock()
		})
	}

	wg.Wait()
	return out
}
