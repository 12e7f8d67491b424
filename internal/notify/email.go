package notify

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/types"
)

// EmailConfig holds SMTP settings; credentials come from the environment
type EmailConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
	To   []string
}

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Email sends the report as a plain text mail
type Email struct {
	cfg    EmailConfig
	dialer mailDialer
}

var _ interfaces.Notifier = (*Email)(nil)

func NewEmail(cfg EmailConfig) *Email {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	dialer.Timeout = 10 * time.Second
	return &Email{cfg: cfg, dialer: dialer}
}

func (e *Email) Name() string { return "email" }

func (e *Email) Notify(ctx context.Context, res *types.Result, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.From)
	m.SetHeader("To", e.cfg.To...)
	m.SetHeader("Subject", Subject(res))
	m.SetBody("text/plain", body)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail via %s:%d: %w", e.cfg.Host, e.cfg.Port, err)
	}
	return nil
}
