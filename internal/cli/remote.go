package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/guessr/internal/api/response"
)

func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Query a running guessr server",
	}

	cmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GUESSR_SERVER)")

	cmd.AddCommand(newRemoteHealthCmd())
	cmd.AddCommand(newRemoteScoreboardCmd())
	cmd.AddCommand(newRemotePlayersCmd())
	cmd.AddCommand(newRemoteGamesCmd())

	return cmd
}

func newRemoteHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health

			if err := NewClient(cfg.ServerURL).Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newRemoteScoreboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scoreboard",
		Short: "Show the server's scoreboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Scoreboard

			if err := NewClient(cfg.ServerURL).Get(cmd.Context(), "/api/v1/scoreboard", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result.Entries)
			return nil
		},
	}
}

func newRemotePlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List the server's players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerList

			if err := NewClient(cfg.ServerURL).Get(cmd.Context(), "/api/v1/players", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newRemoteGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games <player-id>",
		Short: "Show one player's games on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("invalid player id %q", args[0])
			}

			var result response.PlayerGames
			if err := NewClient(cfg.ServerURL).Get(cmd.Context(), "/api/v1/players/"+args[0]+"/games", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
