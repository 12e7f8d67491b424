package notify

import (
	"context"
	"os"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/store"
)

// FromConfig builds the dispatcher for the enabled notifiers
func FromConfig(ctx context.Context, cfg *store.Config) (*Dispatcher, error) {
	var notifiers []interfaces.Notifier

	if cfg.Notify.Telegram.Enabled {
		tg, err := NewTelegramFromEnv()
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, tg)
	}

	if ec := cfg.Notify.Email; ec.Enabled {
		from := ec.From
		if from == "" {
			from = os.Getenv("SMTP_USERNAME")
		}
		notifiers = append(notifiers, NewEmail(EmailConfig{
			Host: ec.Host,
			Port: ec.Port,
			User: os.Getenv("SMTP_USERNAME"),
			Pass: os.Getenv("SMTP_PASSWORD"),
			From: from,
			To:   ec.To,
		}))
	}

	logger.Info(ctx, "Notifiers configured", "count", len(notifiers), "only_on_sell", cfg.Notify.OnlyOnSell)
	return NewDispatcher(cfg.Notify.OnlyOnSell, notifiers...), nil
}
