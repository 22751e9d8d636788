package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mcoot/guessr/internal/factory"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerListCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				player, err := app.PlayerService.Create(ctx, args[0])
				if err != nil {
					return err
				}

				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(player)
				return nil
			})
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				players, err := app.PlayerService.List(ctx)
				if err != nil {
					return err
				}

				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(players)
				return nil
			})
		},
	}
}
