package monitor

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/KNICEX/spread-monitor/internal/entity"
	"github.com/KNICEX/spread-monitor/internal/repo"
	"github.com/KNICEX/spread-monitor/internal/service/notification"
	"github.com/KNICEX/spread-monitor/internal/service/spread"
)

// Scheduler drives one full cycle: full scan, shortlist, fixed-duration
// monitoring loop, report. The caller loops it forever; an empty shortlist
// short-circuits back to scanning after a brief pause.
type Scheduler struct {
	cfg     Config
	scanner *Scanner
	agg     *Aggregator
	tracker *Tracker

	notifier     notification.Service
	movementRepo repo.MovementRepo
	reportRepo   repo.ReportRepo
}

type Option func(s *Scheduler)

func WithNotifier(notifier notification.Service) Option {
	return func(s *Scheduler) {
		s.notifier = notifier
	}
}

func NewScheduler(scanner *Scanner, agg *Aggregator, tracker *Tracker,
	movementRepo repo.MovementRepo, reportRepo repo.ReportRepo, cfg Config, opts ...Option) *Scheduler {
	s := &Scheduler{
		cfg:          cfg.WithDefaults(),
		scanner:      scanner,
		agg:          agg,
		tracker:      tracker,
		notifier:     notification.NewConsoleService(),
		movementRepo: movementRepo,
		reportRepo:   reportRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunCycle executes one scan-monitor-report cycle and returns once the window
// has been reported, or early when nothing shortlists.
func (s *Scheduler) RunCycle(ctx context.Context) error {
	result, err := s.scanner.FullScan(ctx)
	if err != nil {
		return err
	}

	if len(result.Candidates) == 0 {
		sleepCtx(ctx, s.cfg.EmptyScanPause)
		return ctx.Err()
	}

	window := &MonitoringWindow{
		StartedAt:    time.Now(),
		Duration:     s.cfg.WindowDuration,
		TickInterval: s.cfg.TickInterval,
		Candidates:   result.Candidates,
	}
	s.monitor(ctx, window, result)
	return s.report(ctx, window)
}

// monitor runs ticks at the configured interval until the window's absolute
// end time. Cadence is enforced by measuring per-tick cost and sleeping the
// remainder, never past the window end.
func (s *Scheduler) monitor(ctx context.Context, w *MonitoringWindow, result ScanResult) {
	symbols := lo.Keys(w.Candidates)
	sort.Strings(symbols)
	end := w.StartedAt.Add(w.Duration)

	slog.Info("monitoring started",
		"candidates", len(symbols), "duration", w.Duration, "tick", w.TickInterval)

	for time.Now().Before(end) && ctx.Err() == nil {
		tickStart := time.Now()

		pairs := s.agg.PollPairs(ctx, symbols, result.Mapping)
		s.processTick(ctx, w, symbols, pairs)

		sleep := w.TickInterval - time.Since(tickStart)
		if sleep <= 0 {
			continue
		}
		if remaining := time.Until(end); sleep > remaining {
			return
		}
		sleepCtx(ctx, sleep)
	}
}

// processTick folds one barrier-complete snapshot into candidate state. All
// mutations happen here, after every fetch for the tick has resolved; a symbol
// with a missing side or no signal is left entirely unmutated.
func (s *Scheduler) processTick(ctx context.Context, w *MonitoringWindow, symbols []string, pairs map[string]QuotePair) {
	now := time.Now()
	for _, symbol := range symbols {
		pair := pairs[symbol]
		if !pair.Complete() {
			continue
		}
		sample, ok := spread.Calculate(pair.A, pair.B)
		if !ok {
			continue
		}

		c := w.Candidates[symbol]
		steps := s.tracker.Observe(c, sample)
		if steps == 0 {
			continue
		}

		slog.Info("movement", "symbol", symbol,
			"spread", sample.Value, "steps", steps,
			"reference", c.Reference, "total", c.Movements)
		if _, err := s.movementRepo.Create(ctx, entity.Movement{
			Symbol:    symbol,
			Spread:    sample.Value,
			Reference: c.Reference,
			Steps:     steps,
			CreatedAt: now,
		}); err != nil {
			slog.Error("failed to record movement", "symbol", symbol, "error", err)
		}
	}
}

// report renders the window summary, records it, and pushes it to the sink.
// Sink failures are logged, not retried past the sink's own budget.
func (s *Scheduler) report(ctx context.Context, w *MonitoringWindow) error {
	closedAt := time.Now()
	summary := RenderReport(w, closedAt)
	slog.Info("window closed", "report", summary)

	totalMovements := lo.SumBy(lo.Values(w.Candidates), func(c *CandidateState) int {
		return c.Movements
	})
	if _, err := s.reportRepo.Create(ctx, entity.WindowReport{
		StartedAt:  w.StartedAt,
		EndedAt:    closedAt,
		Candidates: len(w.Candidates),
		Movements:  totalMovements,
		Summary:    summary,
		CreatedAt:  closedAt,
	}); err != nil {
		slog.Error("failed to record window report", "error", err)
	}

	if err := s.notifier.SendText(ctx, summary); err != nil {
		slog.Error("failed to push window report", "error", err)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
