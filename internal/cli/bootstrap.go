package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"silver-advisor/internal/advisor"
	"silver-advisor/internal/advisor/advisorobs"
	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/news"
	"silver-advisor/internal/notify"
	"silver-advisor/internal/price"
	"silver-advisor/internal/price/priceobs"
	"silver-advisor/internal/report"
	"silver-advisor/internal/store"
)

// app is everything one evaluation cycle needs
type app struct {
	cfg      *store.Config
	advisor  interfaces.Advisor
	notifier *notify.Dispatcher
	out      io.Writer
	report   report.Options
}

// loadConfig reads the config file and applies the command line overrides
func loadConfig(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*store.Config, error) {
	cfg, err := store.LoadConfig(opts.configPath)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		logger.Info(ctx, "No config file found, using defaults", "path", opts.configPath)
		cfg, err = store.Default(), nil
	}
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", opts.configPath)
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("price") || flags.Changed("nav") {
		cfg.Price.Source = store.PriceSourceManual
		if flags.Changed("price") {
			cfg.Price.Price = opts.price
		}
		if flags.Changed("nav") {
			cfg.Price.NAV = opts.nav
		}
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// initializeAdvisor wires the providers into an advisor with observability
func initializeAdvisor(ctx context.Context, cfg *store.Config) (interfaces.Advisor, error) {
	quotes, candles, err := price.NewFromConfig(ctx, cfg, price.Params{
		APIKey:      os.Getenv("KITE_API_KEY"),
		AccessToken: os.Getenv("KITE_ACCESS_TOKEN"),
	})
	if err != nil {
		return nil, fmt.Errorf("price providers: %w", err)
	}

	headlines := news.NewService(news.ServiceConfigFromStore(cfg))

	adv := advisor.New(
		advisor.ConfigFromStore(cfg),
		headlines,
		priceobs.Wrap(quotes),
		priceobs.WrapCandles(candles),
	)
	return advisorobs.Wrap(adv), nil
}

func newApp(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := loadConfig(ctx, cmd, opts)
	if err != nil {
		return nil, err
	}

	adv, err := initializeAdvisor(ctx, cfg)
	if err != nil {
		return nil, err
	}

	dispatcher, err := notify.FromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("notifiers: %w", err)
	}

	return &app{
		cfg:      cfg,
		advisor:  adv,
		notifier: dispatcher,
		out:      cmd.OutOrStdout(),
		report:   report.Options{Format: cfg.Output.Format, Color: cfg.Output.Color},
	}, nil
}

// runCycle evaluates once, prints the report and sends notifications
func (a *app) runCycle(ctx context.Context, sendNotifications bool) error {
	res, err := a.advisor.Evaluate(ctx)
	if err != nil {
		return err
	}

	if err := report.Write(a.out, res, a.report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !sendNotifications {
		return nil
	}
	return a.notifier.Dispatch(ctx, res, report.Text(res))
}
