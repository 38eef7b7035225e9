package spread

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
)

// Epsilon suppresses noise around zero: spreads whose magnitude does not clear
// it are reported as absent, never as a zero sample.
const Epsilon = 1e-4

var hundred = decimal.NewFromInt(100)

// Sample is one signed spread observation, in percent.
type Sample struct {
	Value   float64
	TakenAt time.Time
}

// Calculate maps the two books to a signed spread percentage, or reports false
// when there is no signal. Given exchange A book (bidA, askA) and exchange B
// book (bidB, askB):
//
//	pos = (bidB - askA) / askA * 100   // long A, short B
//	neg = (askB - bidA) / bidA * 100   // long B, short A
//
// Only one side is ever reported per call; the sign indicates trade direction.
// Invalid books never produce Inf or NaN, they are simply absent. The sample
// is stamped with the fresher of the two quote times.
func Calculate(a, b exchange.Quote) (Sample, bool) {
	if !a.Valid() || !b.Valid() {
		return Sample{}, false
	}
	at := a.Time
	if b.Time.After(at) {
		at = b.Time
	}

	pos := b.Bid.Sub(a.Ask).Div(a.Ask).Mul(hundred).InexactFloat64()
	neg := b.Ask.Sub(a.Bid).Div(a.Bid).Mul(hundred).InexactFloat64()

	switch {
	case pos > Epsilon:
		return Sample{Value: pos, TakenAt: at}, true
	case neg < -Epsilon:
		return Sample{Value: neg, TakenAt: at}, true
	default:
		return Sample{}, false
	}
}
