package ioc

import (
	"time"

	"github.com/spf13/viper"

	"github.com/KNICEX/spread-monitor/internal/service/monitor"
)

// InitMonitorConfig reads the monitor tuning once and hands it out as an
// immutable value; nothing downstream touches viper again.
func InitMonitorConfig() monitor.Config {
	type Config struct {
		ScanThreshold  float64 `mapstructure:"scan_threshold"`
		MovementStep   float64 `mapstructure:"movement_step"`
		WindowSeconds  int     `mapstructure:"window_seconds"`
		TickSeconds    int     `mapstructure:"tick_seconds"`
		MaxConcurrency int     `mapstructure:"max_concurrency"`
		Policy         string  `mapstructure:"policy"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("monitor", &cfg); err != nil {
		panic(err)
	}

	return monitor.Config{
		ScanThreshold:  cfg.ScanThreshold,
		MovementStep:   cfg.MovementStep,
		WindowDuration: time.Duration(cfg.WindowSeconds) * time.Second,
		TickInterval:   time.Duration(cfg.TickSeconds) * time.Second,
		MaxConcurrency: cfg.MaxConcurrency,
		Policy:         cfg.Policy,
	}.WithDefaults()
}

// InitQuoteRetry reads the quote-client retry budget.
func InitQuoteRetry() (attempts int, timeout time.Duration) {
	attempts = viper.GetInt("monitor.retry_attempts")
	if attempts == 0 {
		attempts = 2
	}
	seconds := viper.GetInt("monitor.quote_timeout_seconds")
	if seconds == 0 {
		seconds = 6
	}
	return attempts, time.Duration(seconds) * time.Second
}
