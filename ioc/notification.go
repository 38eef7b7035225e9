package ioc

import (
	"github.com/spf13/viper"

	"github.com/KNICEX/spread-monitor/internal/service/notification"
	"github.com/KNICEX/spread-monitor/internal/service/notification/telegram"
)

// InitNotifier builds the configured notification sink, falling back to the
// console when Telegram is not configured.
func InitNotifier() notification.Service {
	type Config struct {
		Token   string   `mapstructure:"token"`
		ChatIds []string `mapstructure:"chat_ids"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("notify.telegram", &cfg); err != nil {
		panic(err)
	}

	if cfg.Token == "" || len(cfg.ChatIds) == 0 {
		return notification.NewConsoleService()
	}
	return telegram.NewService(cfg.Token, cfg.ChatIds)
}
