package poller

import (
	"log"

	"github.com/IT-Nick/quizgen/internal/infra/config"
	"gopkg.in/telebot.v4"
)

// NewPoller создаёт Poller в зависимости от режима бота.
func NewPoller(cfg *config.Config) telebot.Poller {
	if cfg.TelegramBot.Mode == "webhook" {
		if cfg.TelegramBot.WebhookURL == "" {
			log.Fatalf("В режиме webhook переменная WEBHOOK_URL должна быть задана")
		}
		return &telebot.Webhook{
			Listen: cfg.TelegramBot.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
		}
	}
	return &telebot.LongPoller{Timeout: cfg.TelegramBot.PollInterval}
}
