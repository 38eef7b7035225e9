package binance

import (
	"testing"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBook(t *testing.T) {
	quote, ok := parseBook(&futures.BookTicker{
		Symbol:       "BTCUSDT",
		BidPrice: "65000.10",
		AskPrice: "65000.90",
	})
	require.True(t, ok)
	assert.Equal(t, "65000.1", quote.Bid.String())
	assert.Equal(t, "65000.9", quote.Ask.String())
}

func TestParseBook_Invalid(t *testing.T) {
	for _, ticker := range []*futures.BookTicker{
		{BidPrice: "0", AskPrice: "100"},
		{BidPrice: "100", AskPrice: "-1"},
		{BidPrice: "", AskPrice: "100"},
		{BidPrice: "abc", AskPrice: "100"},
	} {
		_, ok := parseBook(ticker)
		assert.False(t, ok)
	}
}
