package notify

import (
	"context"
	"errors"
	"fmt"

	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/types"
)

// Dispatcher fans a finished evaluation out to every configured notifier
type Dispatcher struct {
	notifiers  []interfaces.Notifier
	onlyOnSell bool
}

func NewDispatcher(onlyOnSell bool, notifiers ...interfaces.Notifier) *Dispatcher {
	return &Dispatcher{notifiers: notifiers, onlyOnSell: onlyOnSell}
}

// Len returns the number of notifiers
func (d *Dispatcher) Len() int {
	return len(d.notifiers)
}

// Dispatch sends body to every notifier. A failing notifier does not stop the
// others; all failures are returned together.
func (d *Dispatcher) Dispatch(ctx context.Context, res *types.Result, body string) error {
	if d.onlyOnSell && res.Action != types.ActionSell {
		logger.Debug(ctx, "Skipping notifications for non-sell result", "action", res.Action)
		return nil
	}

	var errs []error
	for _, n := range d.notifiers {
		if err := n.Notify(ctx, res, body); err != nil {
			logger.ErrorWithErr(ctx, "Notification failed", err, "notifier", n.Name())
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
			continue
		}
		logger.Info(ctx, "Notification sent", "notifier", n.Name(), "action", res.Action)
	}
	return errors.Join(errs...)
}

// Subject is the one-line summary used for e-mail subjects
func Subject(res *types.Result) string {
	symbol := res.Quote.Symbol
	if symbol == "" {
		symbol = "Silver ETF"
	}
	return fmt.Sprintf("%s: %s (%s)", symbol, res.Action, res.Reason)
}
