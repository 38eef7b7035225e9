package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Instrument is one exchange-native contract and its canonical identifier.
type Instrument struct {
	Native    string // exchange-native symbol, e.g. BTCUSDT / XBTUSDTM
	Canonical string // normalized cross-exchange identifier
}

// Quote is one instrument's best book on one exchange.
type Quote struct {
	Bid  decimal.Decimal
	Ask  decimal.Decimal
	Time time.Time
}

// Valid reports whether both sides of the book are positive. Quotes that fail
// this check are discarded at the client boundary, never stored.
func (q Quote) Valid() bool {
	return q.Bid.IsPositive() && q.Ask.IsPositive()
}

type SymbolService interface {
	// ActiveInstruments returns the tradable perpetual contracts currently listed.
	ActiveInstruments(ctx context.Context) ([]Instrument, error)
}

type QuoteService interface {
	// BookTicker returns the best bid/ask for one native symbol.
	// Any failure (transport, malformed payload, non-positive book) is an error;
	// callers treat errors as "no quote this tick".
	BookTicker(ctx context.Context, native string) (Quote, error)
}

type BatchQuoteService interface {
	// BookTickers returns the best bid/ask for every listed symbol in one call,
	// keyed by native symbol.
	BookTickers(ctx context.Context) (map[string]Quote, error)
}
