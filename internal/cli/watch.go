package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"silver-advisor/internal/logger"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var runNow bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Evaluate on the configured cron schedule and notify",
		Long: `watch runs one evaluation per tick of schedule.cron in
schedule.timezone, prints every report and sends it to the enabled
notifiers. A tick is skipped while the previous evaluation still runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			return a.watch(ctx, runNow)
		},
	}

	cmd.Flags().BoolVar(&runNow, "run-now", true, "evaluate once at startup before the first tick")
	return cmd
}

func (a *app) watch(ctx context.Context, runNow bool) error {
	loc, err := time.LoadLocation(a.cfg.Schedule.Timezone)
	if err != nil {
		return fmt.Errorf("invalid schedule.timezone %q: %w", a.cfg.Schedule.Timezone, err)
	}

	cl := cronLogger{ctx: ctx}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	job := func() {
		if err := a.runCycle(ctx, true); err != nil {
			logger.ErrorWithErr(ctx, "Evaluation cycle failed", err)
		}
	}

	if _, err := c.AddFunc(a.cfg.Schedule.Cron, job); err != nil {
		return fmt.Errorf("invalid schedule.cron %q: %w", a.cfg.Schedule.Cron, err)
	}

	logger.Info(ctx, "Watching", "cron", a.cfg.Schedule.Cron, "timezone", loc.String(), "notifiers", a.notifier.Len())
	if runNow {
		job()
	}

	c.Start()
	<-ctx.Done()

	logger.Info(ctx, "Shutting down, waiting for running evaluation")
	<-c.Stop().Done()
	return nil
}

// cronLogger routes cron's own messages through the structured logger
type cronLogger struct {
	ctx context.Context
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug(l.ctx, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.ErrorWithErr(l.ctx, "cron: "+msg, err, keysAndValues...)
}
