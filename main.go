package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KNICEX/spread-monitor/internal/repo"
	"github.com/KNICEX/spread-monitor/internal/schedule"
	"github.com/KNICEX/spread-monitor/internal/service/exchange"
	"github.com/KNICEX/spread-monitor/internal/service/exchange/binance"
	"github.com/KNICEX/spread-monitor/internal/service/exchange/kucoin"
	"github.com/KNICEX/spread-monitor/internal/service/monitor"
	"github.com/KNICEX/spread-monitor/ioc"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.dev.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	movementRepo := repo.NewMovementRepo(db)
	reportRepo := repo.NewReportRepo(db)

	bian := ioc.InitBinanceCli()
	kc := ioc.InitKucoinCli()
	notifier := ioc.InitNotifier()
	cfg := ioc.InitMonitorConfig()
	attempts, timeout := ioc.InitQuoteRetry()

	binanceMarket := binance.NewMarketService(bian)
	quoteA := exchange.NewRetryingQuoteService(binanceMarket, attempts, timeout)
	quoteB := exchange.NewRetryingQuoteService(kucoin.NewMarketService(kc), attempts, timeout)

	reconciler := exchange.NewReconciler(
		binance.NewSymbolService(bian),
		kucoin.NewSymbolService(kc),
	)

	policy, err := monitor.PolicyFromName(cfg.Policy, cfg.MovementStep)
	if err != nil {
		panic(err)
	}

	pool := monitor.NewPool(cfg.MaxConcurrency)
	defer pool.Close()

	agg := monitor.NewAggregator(pool, quoteA, quoteB)
	scanner := monitor.NewScanner(reconciler, binanceMarket, agg, cfg)
	scheduler := monitor.NewScheduler(
		scanner, agg, monitor.NewTracker(policy),
		movementRepo, reportRepo, cfg,
		monitor.WithNotifier(notifier),
	)
	task := monitor.NewSpreadMonitorTask(scheduler)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("spread monitor started",
		"scanThreshold", cfg.ScanThreshold, "movementStep", cfg.MovementStep)
	schedule.Forever(ctx, task)
}
