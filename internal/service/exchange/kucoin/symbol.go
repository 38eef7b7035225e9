package kucoin

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
)

var _ exchange.SymbolService = (*SymbolService)(nil)

type SymbolService struct {
	cli *Client
}

func NewSymbolService(cli *Client) *SymbolService {
	return &SymbolService{cli: cli}
}

type contract struct {
	Symbol string `json:"symbol"`
	Status string `json:"status"`
}

type contractsResponse struct {
	envelope
	Data []contract `json:"data"`
}

// ActiveInstruments lists futures contracts currently open for trading.
// Status matching is case-insensitive; the API has reported both "Open" and "open".
func (svc *SymbolService) ActiveInstruments(ctx context.Context) ([]exchange.Instrument, error) {
	var resp contractsResponse
	if err := svc.cli.get(ctx, "/api/v1/contracts/active", &resp); err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("kucoin contracts: code %s", resp.Code)
	}

	open := lo.Filter(resp.Data, func(item contract, _ int) bool {
		return strings.EqualFold(item.Status, "open")
	})
	return lo.Map(open, func(item contract, _ int) exchange.Instrument {
		return exchange.Instrument{
			Native:    item.Symbol,
			Canonical: exchange.Normalize(item.Symbol),
		}
	}), nil
}
