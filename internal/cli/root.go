package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"silver-advisor/internal/logger"
	"silver-advisor/internal/trace"
)

var version = "dev"

type rootOptions struct {
	configPath string
	price      float64
	nav        float64
	format     string
	color      bool
}

// NewRootCmd builds the advisor command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "silver-advisor",
		Short: "HOLD/SELL advisor for a silver ETF position",
		Long: `silver-advisor reads silver, US dollar and Indian policy headlines
together with the ETF's premium to NAV and prints a HOLD or SELL
recommendation with the rule that produced it.

It is a rule-based heuristic, not investment advice.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeSystem()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return trace.Shutdown(ctx)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "config.yaml", "config file (defaults are used when the default file is missing)")
	pf.Float64Var(&opts.price, "price", 0, "ETF trade price; switches to manual prices")
	pf.Float64Var(&opts.nav, "nav", 0, "ETF NAV; switches to manual prices")
	pf.StringVar(&opts.format, "format", "", "output format: text or json (overrides config)")
	pf.BoolVar(&opts.color, "color", false, "style the text report for a terminal")

	root.AddCommand(newCheckCmd(opts), newWatchCmd(opts), newVersionCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "silver-advisor %s\n", version)
		},
	}
}

// initializeSystem loads .env and sets up logging and tracing
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}
