package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	gomail "gopkg.in/mail.v2"

	"silver-advisor/internal/store"
	"silver-advisor/internal/types"
)

type recordingNotifier struct {
	name  string
	err   error
	calls int
}

func (r *recordingNotifier) Name() string { return r.name }

func (r *recordingNotifier) Notify(ctx context.Context, res *types.Result, body string) error {
	r.calls++
	return r.err
}

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

type fakeDialer struct {
	sent []*gomail.Message
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return nil
}

func sellResult() *types.Result {
	return &types.Result{
		Action: types.ActionSell,
		Reason: "USD rising strongly",
		Quote:  types.Quote{Symbol: "NSE:SILVERBEES"},
	}
}

func TestDispatchOnlyOnSell(t *testing.T) {
	n := &recordingNotifier{name: "rec"}
	d := NewDispatcher(true, n)
	ctx := context.Background()

	if err := d.Dispatch(ctx, &types.Result{Action: types.ActionHold}, "body"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n.calls != 0 {
		t.Errorf("Expected HOLD to be skipped, got %d calls", n.calls)
	}

	if err := d.Dispatch(ctx, sellResult(), "body"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n.calls != 1 {
		t.Errorf("Expected SELL to notify, got %d calls", n.calls)
	}
}

func TestDispatchCollectsFailures(t *testing.T) {
	boom := errors.New("smtp down")
	failing := &recordingNotifier{name: "email", err: boom}
	ok := &recordingNotifier{name: "telegram"}

	err := NewDispatcher(false, failing, ok).Dispatch(context.Background(), sellResult(), "body")
	if !errors.Is(err, boom) {
		t.Errorf("Expected joined error to wrap the failure, got %v", err)
	}
	if ok.calls != 1 {
		t.Error("Expected remaining notifiers to run after a failure")
	}
}

func TestTelegramNotify(t *testing.T) {
	sender := &fakeSender{}
	tg := &Telegram{bot: sender, chatID: 42}

	if err := tg.Notify(context.Background(), sellResult(), "FINAL ACTION: SELL"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("Expected one message, got %d", len(sender.sent))
	}
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("Expected MessageConfig, got %T", sender.sent[0])
	}
	if msg.ChatID != 42 || msg.Text != "FINAL ACTION: SELL" {
		t.Errorf("Unexpected message: chat=%d text=%q", msg.ChatID, msg.Text)
	}

	sender.err = errors.New("forbidden")
	if err := tg.Notify(context.Background(), sellResult(), "x"); err == nil {
		t.Error("Expected send failure to be returned")
	}
}

func TestEmailNotify(t *testing.T) {
	dialer := &fakeDialer{}
	e := &Email{
		cfg:    EmailConfig{Host: "smtp.example.com", Port: 587, From: "advisor@example.com", To: []string{"a@example.com", "b@example.com"}},
		dialer: dialer,
	}

	if err := e.Notify(context.Background(), sellResult(), "report"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(dialer.sent) != 1 {
		t.Fatalf("Expected one mail, got %d", len(dialer.sent))
	}
	m := dialer.sent[0]
	if got := m.GetHeader("Subject"); len(got) != 1 || got[0] != "NSE:SILVERBEES: SELL (USD rising strongly)" {
		t.Errorf("Unexpected subject: %v", got)
	}
	if got := m.GetHeader("To"); len(got) != 2 {
		t.Errorf("Expected two recipients, got %v", got)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := store.Default()
	d, err := FromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("Expected no notifiers by default, got %d", d.Len())
	}

	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	cfg.Notify.Telegram.Enabled = true
	if _, err := FromConfig(context.Background(), cfg); err == nil || !strings.Contains(err.Error(), "TELEGRAM_BOT_TOKEN") {
		t.Errorf("Expected missing token error, got %v", err)
	}

	cfg.Notify.Telegram.Enabled = false
	cfg.Notify.Email.Enabled = true
	cfg.Notify.Email.Host = "smtp.example.com"
	cfg.Notify.Email.To = []string{"a@example.com"}
	d, err = FromConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Len() != 1 {
		t.Errorf("Expected email notifier, got %d", d.Len())
	}
}
