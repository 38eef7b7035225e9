package ioc

import (
	"time"

	"github.com/spf13/viper"

	"github.com/KNICEX/spread-monitor/internal/service/exchange/kucoin"
)

func InitKucoinCli() *kucoin.Client {
	type Config struct {
		BaseUrl        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("cex.kucoin", &cfg); err != nil {
		panic(err)
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = 6
	}

	return kucoin.NewClient(cfg.BaseUrl, time.Duration(cfg.TimeoutSeconds)*time.Second)
}
