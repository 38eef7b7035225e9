package monitor

import (
	"context"
	"log/slog"
	"math"

	"github.com/samber/lo"

	"github.com/KNICEX/spread-monitor/internal/service/exchange"
	"github.com/KNICEX/spread-monitor/internal/service/spread"
)

// Scanner runs the full-scan pass: reconcile the two listings, snapshot every
// common symbol's books, log every spread, and shortlist the candidates whose
// spread magnitude clears the scan threshold.
type Scanner struct {
	reconciler *exchange.Reconciler
	batchA     exchange.BatchQuoteService
	agg        *Aggregator
	cfg        Config
}

func NewScanner(reconciler *exchange.Reconciler, batchA exchange.BatchQuoteService, agg *Aggregator, cfg Config) *Scanner {
	return &Scanner{
		reconciler: reconciler,
		batchA:     batchA,
		agg:        agg,
		cfg:        cfg.WithDefaults(),
	}
}

func (s *Scanner) FullScan(ctx context.Context) (ScanResult, error) {
	common, mapping, err := s.reconciler.Reconcile(ctx)
	if err != nil {
		return ScanResult{}, err
	}
	result := ScanResult{
		Mapping:    mapping,
		Candidates: make(map[string]*CandidateState),
	}
	if len(common) == 0 {
		slog.Info("no common symbols this cycle")
		return result, nil
	}

	bookA, err := s.batchA.BookTickers(ctx)
	if err != nil {
		return ScanResult{}, err
	}
	nativesB := lo.Map(common, func(symbol string, _ int) string {
		return mapping.NativeB(symbol)
	})
	bookB := s.agg.PollSingle(ctx, nativesB)

	for _, symbol := range common {
		quoteA, ok := bookA[mapping.NativeA(symbol)]
		if !ok {
			continue
		}
		quoteB, ok := bookB[mapping.NativeB(symbol)]
		if !ok {
			continue
		}

		sample, ok := spread.Calculate(quoteA, quoteB)
		if !ok {
			slog.Debug("scan", "symbol", symbol,
				"bidA", quoteA.Bid, "askA", quoteA.Ask,
				"bidB", quoteB.Bid, "askB", quoteB.Ask,
				"spread", "none")
			continue
		}
		slog.Info("scan", "symbol", symbol,
			"bidA", quoteA.Bid, "askA", quoteA.Ask,
			"bidB", quoteB.Bid, "askB", quoteB.Ask,
			"spread", sample.Value)

		// Inclusive boundary: a spread of exactly the threshold shortlists.
		if math.Abs(sample.Value) >= s.cfg.ScanThreshold {
			result.Candidates[symbol] = newCandidateState(
				mapping.NativeA(symbol), mapping.NativeB(symbol), sample)
		}
	}

	slog.Info("full scan done",
		"common", len(common),
		"shortlisted", len(result.Candidates),
		"symbols", lo.Keys(result.Candidates))
	return result, nil
}
