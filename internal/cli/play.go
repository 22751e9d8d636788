package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/guessr/internal/console"
	"github.com/mcoot/guessr/internal/factory"
	"github.com/mcoot/guessr/internal/model"
)

func newNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number",
		Short: "Guess a number between 1 and 100",
	}

	cmd.AddCommand(newNumberNewCmd())
	cmd.AddCommand(newNumberResumeCmd())

	return cmd
}

func newNumberNewCmd() *cobra.Command {
	var playerName string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new number guessing game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				player, err := app.PlayerService.GetOrCreate(ctx, playerName)
				if err != nil {
					return err
				}
				game, err := app.GameController.StartNumberGame(ctx, player.ID)
				if err != nil {
					return err
				}

				_, err = newSession(cmd).PlayNumber(ctx, app.GameController, game)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&playerName, "player", "", "Player name, created if new (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newNumberResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Resume an unfinished number guessing game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				game, err := app.GameController.ResumeNumberGame(ctx, id)
				if err != nil {
					return err
				}

				_, err = newSession(cmd).PlayNumber(ctx, app.GameController, game)
				return err
			})
		},
	}
}

func newHangmanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hangman",
		Short: "Guess a word one letter at a time",
	}

	cmd.AddCommand(newHangmanNewCmd())
	cmd.AddCommand(newHangmanResumeCmd())

	return cmd
}

func newHangmanNewCmd() *cobra.Command {
	var playerName, word string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new hangman game",
		Long: `Start a new hangman game. Without --word the answer is picked from the
dictionary (--dictionary, then stored words, then the built-in list).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				player, err := app.PlayerService.GetOrCreate(ctx, playerName)
				if err != nil {
					return err
				}
				if word == "" {
					if err := app.LoadDictionary(ctx, cfg.Dictionary); err != nil {
						return err
					}
				}
				game, err := app.GameController.StartHangman(ctx, player.ID, word)
				if err != nil {
					return err
				}

				_, err = newSession(cmd).PlayHangman(ctx, app.GameController, game)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&playerName, "player", "", "Player name, created if new (required)")
	cmd.Flags().StringVar(&word, "word", "", "Answer to use instead of a dictionary word")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newHangmanResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Resume an unfinished hangman game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				game, err := app.GameController.ResumeHangman(ctx, id)
				if err != nil {
					return err
				}

				_, err = newSession(cmd).PlayHangman(ctx, app.GameController, game)
				return err
			})
		},
	}
}

func newSession(cmd *cobra.Command) *console.Session {
	return console.NewSession(console.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout()))
}

func parseGameID(arg string) (model.GameID, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid game id %q", arg)
	}
	return model.GameID(id), nil
}
