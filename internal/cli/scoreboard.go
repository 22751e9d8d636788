package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mcoot/guessr/internal/factory"
)

func newScoreboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scoreboard",
		Short: "Show wins per player, highest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				entries, err := app.ScoringService.Scoreboard(ctx)
				if err != nil {
					return err
				}

				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(entries)
				return nil
			})
		},
	}
}
