package kucoin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
	"github.com/KNICEX/spread-monitor/pkg/decimalx"
)

var _ exchange.QuoteService = (*MarketService)(nil)

type MarketService struct {
	cli *Client
}

func NewMarketService(cli *Client) *MarketService {
	return &MarketService{cli: cli}
}

// ticker carries prices as raw JSON because the API has served them both as
// numbers and as quoted strings, and older payloads use bid/ask field names.
type ticker struct {
	Symbol       string          `json:"symbol"`
	BestBidPrice json.RawMessage `json:"bestBidPrice"`
	BestAskPrice json.RawMessage `json:"bestAskPrice"`
	Bid          json.RawMessage `json:"bid"`
	Ask          json.RawMessage `json:"ask"`
}

type tickerResponse struct {
	envelope
	Data ticker `json:"data"`
}

func (svc *MarketService) BookTicker(ctx context.Context, native string) (exchange.Quote, error) {
	var resp tickerResponse
	path := "/api/v1/ticker?symbol=" + url.QueryEscape(native)
	if err := svc.cli.get(ctx, path, &resp); err != nil {
		return exchange.Quote{}, err
	}
	if !resp.ok() {
		return exchange.Quote{}, fmt.Errorf("kucoin ticker %s: code %s", native, resp.Code)
	}

	bid, ok := firstPrice(resp.Data.BestBidPrice, resp.Data.Bid)
	if !ok {
		return exchange.Quote{}, fmt.Errorf("kucoin ticker %s: no bid", native)
	}
	ask, ok := firstPrice(resp.Data.BestAskPrice, resp.Data.Ask)
	if !ok {
		return exchange.Quote{}, fmt.Errorf("kucoin ticker %s: no ask", native)
	}

	quote := exchange.Quote{Bid: bid, Ask: ask, Time: time.Now()}
	if !quote.Valid() {
		return exchange.Quote{}, fmt.Errorf("kucoin ticker %s: non-positive book %s/%s", native, bid, ask)
	}
	return quote, nil
}

func firstPrice(raws ...json.RawMessage) (decimal.Decimal, bool) {
	for _, raw := range raws {
		if len(raw) == 0 {
			continue
		}
		if price, ok := decimalx.FromJSONValue(raw); ok {
			return price, true
		}
	}
	return decimal.Decimal{}, false
}
