package binance

import (
	"context"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/samber/lo"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
)

var _ exchange.SymbolService = (*SymbolService)(nil)

type SymbolService struct {
	cli *futures.Client
}

func NewSymbolService(cli *futures.Client) *SymbolService {
	return &SymbolService{cli: cli}
}

// ActiveInstruments lists USDⓈ-M contracts filtered to trading perpetuals.
func (svc *SymbolService) ActiveInstruments(ctx context.Context) ([]exchange.Instrument, error) {
	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, err
	}

	tradable := lo.Filter(info.Symbols, func(item futures.Symbol, _ int) bool {
		return string(item.ContractType) == "PERPETUAL" && item.Status == "TRADING"
	})
	return lo.Map(tradable, func(item futures.Symbol, _ int) exchange.Instrument {
		return exchange.Instrument{
			Native:    item.Symbol,
			Canonical: exchange.Normalize(item.Symbol),
		}
	}), nil
}
