package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
)

// quoteFunc adapts a function to exchange.QuoteService for tests.
type quoteFunc func(ctx context.Context, native string) (exchange.Quote, error)

func (f quoteFunc) BookTicker(ctx context.Context, native string) (exchange.Quote, error) {
	return f(ctx, native)
}

func fixedQuote(bid, ask float64) exchange.Quote {
	return exchange.Quote{
		Bid:  decimal.NewFromFloat(bid),
		Ask:  decimal.NewFromFloat(ask),
		Time: time.Now(),
	}
}

func constQuotes(bid, ask float64) quoteFunc {
	return func(ctx context.Context, native string) (exchange.Quote, error) {
		return fixedQuote(bid, ask), nil
	}
}

func failing() quoteFunc {
	return func(ctx context.Context, native string) (exchange.Quote, error) {
		return exchange.Quote{}, errors.New("down")
	}
}

func TestAggregator_PollPairsBarrier(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	agg := NewAggregator(pool, constQuotes(100, 100.1), constQuotes(101, 101.1))
	symbols := []string{"AUSDT", "BUSDT", "CUSDT"}

	pairs := agg.PollPairs(context.Background(), symbols, exchange.SymbolMapping{})
	require.Len(t, pairs, len(symbols))
	for _, symbol := range symbols {
		assert.True(t, pairs[symbol].Complete(), "pair for %s must be complete", symbol)
	}
}

func TestAggregator_MissingSideIsAbsentNotError(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	agg := NewAggregator(pool, constQuotes(100, 100.1), failing())
	pairs := agg.PollPairs(context.Background(), []string{"AUSDT"}, exchange.SymbolMapping{})

	pair := pairs["AUSDT"]
	assert.True(t, pair.AOK)
	assert.False(t, pair.BOK)
	assert.False(t, pair.Complete())
}

func TestAggregator_ConcurrencyBounded(t *testing.T) {
	const size = 3
	pool := NewPool(size)
	defer pool.Close()

	var inFlight, maxInFlight atomic.Int64
	slow := quoteFunc(func(ctx context.Context, native string) (exchange.Quote, error) {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			seen := maxInFlight.Load()
			if cur <= seen || maxInFlight.CompareAndSwap(seen, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return fixedQuote(100, 100.1), nil
	})

	agg := NewAggregator(pool, slow, slow)
	symbols := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	agg.PollPairs(context.Background(), symbols, exchange.SymbolMapping{})

	assert.LessOrEqual(t, maxInFlight.Load(), int64(size))
}

func TestAggregator_PollSingle(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	agg := NewAggregator(pool, failing(), quoteFunc(func(ctx context.Context, native string) (exchange.Quote, error) {
		if native == "DEADUSDTM" {
			return exchange.Quote{}, errors.New("delisted")
		}
		return fixedQuote(10, 10.1), nil
	}))

	book := agg.PollSingle(context.Background(), []string{"XBTUSDTM", "ETHUSDTM", "DEADUSDTM"})
	assert.Len(t, book, 2)
	assert.Contains(t, book, "XBTUSDTM")
	assert.NotContains(t, book, "DEADUSDTM")
}

func TestPool_ReusedAcrossBatches(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	agg := NewAggregator(pool, constQuotes(100, 100.1), constQuotes(100, 100.1))
	for i := 0; i < 3; i++ {
		pairs := agg.PollPairs(context.Background(), []string{"AUSDT"}, exchange.SymbolMapping{})
		require.True(t, pairs["AUSDT"].Complete())
	}
}
