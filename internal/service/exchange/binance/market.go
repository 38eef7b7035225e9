package binance

import (
	"context"
	"fmt"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/shopspring/decimal"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
)

var (
	_ exchange.QuoteService      = (*MarketService)(nil)
	_ exchange.BatchQuoteService = (*MarketService)(nil)
)

type MarketService struct {
	cli *futures.Client
}

func NewMarketService(cli *futures.Client) *MarketService {
	return &MarketService{cli: cli}
}

// BookTickers fetches the best book for every listed contract in one call,
// used by the full scan to avoid a request per symbol. Entries with a
// non-positive or unparsable side are dropped.
func (m *MarketService) BookTickers(ctx context.Context) (map[string]exchange.Quote, error) {
	tickers, err := m.cli.NewListBookTickersService().Do(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]exchange.Quote, len(tickers))
	for _, ticker := range tickers {
		quote, ok := parseBook(ticker)
		if !ok {
			continue
		}
		out[ticker.Symbol] = quote
	}
	return out, nil
}

func (m *MarketService) BookTicker(ctx context.Context, native string) (exchange.Quote, error) {
	tickers, err := m.cli.NewListBookTickersService().Symbol(native).Do(ctx)
	if err != nil {
		return exchange.Quote{}, err
	}
	if len(tickers) == 0 {
		return exchange.Quote{}, fmt.Errorf("no book ticker for %s", native)
	}
	quote, ok := parseBook(tickers[0])
	if !ok {
		return exchange.Quote{}, fmt.Errorf("invalid book for %s: bid=%q ask=%q",
			native, tickers[0].BidPrice, tickers[0].AskPrice)
	}
	return quote, nil
}

func parseBook(ticker *futures.BookTicker) (exchange.Quote, bool) {
	bid, err := decimal.NewFromString(ticker.BidPrice)
	if err != nil {
		return exchange.Quote{}, false
	}
	ask, err := decimal.NewFromString(ticker.AskPrice)
	if err != nil {
		return exchange.Quote{}, false
	}
	quote := exchange.Quote{Bid: bid, Ask: ask, Time: time.Now()}
	if !quote.Valid() {
		return exchange.Quote{}, false
	}
	return quote, true
}
