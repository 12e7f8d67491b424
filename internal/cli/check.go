package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var sendNotifications bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate once and print the recommendation",
		Example: `  silver-advisor check --price 101.2 --nav 100.4
  silver-advisor check --config config.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := newApp(ctx, cmd, opts)
			if err != nil {
				return err
			}
			return a.runCycle(ctx, sendNotifications)
		},
	}

	cmd.Flags().BoolVar(&sendNotifications, "notify", false, "send the result to the configured notifiers")
	return cmd
}
