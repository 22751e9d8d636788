package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcoot/guessr/internal/factory"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/services/engine"
)

// Game kinds in listings
const (
	kindNumber  = "number"
	kindHangman = "hangman"
)

// GameSummary is one row of the games listing
type GameSummary struct {
	Kind     string         `json:"kind"`
	ID       model.GameID   `json:"id"`
	PlayerID model.PlayerID `json:"player_id"`
	Player   string         `json:"player"`
	Status   string         `json:"status"`
	Progress string         `json:"progress"`
}

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Game history commands",
	}

	cmd.AddCommand(newGamesListCmd())

	return cmd
}

func newGamesListCmd() *cobra.Command {
	var playerName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games, optionally for one player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *factory.App) error {
				summaries, err := listGames(ctx, app, playerName)
				if err != nil {
					return err
				}

				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(summaries)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&playerName, "player", "", "Only show games for this player")

	return cmd
}

func listGames(ctx context.Context, app *factory.App, playerName string) ([]GameSummary, error) {
	players, err := app.PlayerService.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[model.PlayerID]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	var playerID model.PlayerID
	if playerName != "" {
		p, err := app.PlayerService.GetByName(ctx, playerName)
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, fmt.Errorf("player %q: %w", playerName, err)
		}
		if err != nil {
			return nil, err
		}
		playerID = p.ID
	}

	numberGames, err := app.GameController.ListNumberGames(ctx, playerID)
	if err != nil {
		return nil, err
	}
	hangmen, err := app.GameController.ListHangmen(ctx, playerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]GameSummary, 0, len(numberGames)+len(hangmen))
	for _, g := range numberGames {
		progress := fmt.Sprintf("%d attempts", g.Attempts)
		summaries = append(summaries, GameSummary{
			Kind:     kindNumber,
			ID:       g.ID,
			PlayerID: g.PlayerID,
			Player:   names[g.PlayerID],
			Status:   gameStatus(g.Finished, g.Won()),
			Progress: progress,
		})
	}
	for _, g := range hangmen {
		summaries = append(summaries, GameSummary{
			Kind:     kindHangman,
			ID:       g.ID,
			PlayerID: g.PlayerID,
			Player:   names[g.PlayerID],
			Status:   gameStatus(g.Finished, g.Won()),
			Progress: fmt.Sprintf("%s (%d turns left)", engine.Masked(g), g.Turns),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].PlayerID < summaries[j].PlayerID
	})
	return summaries, nil
}

func gameStatus(finished, won bool) string {
	switch {
	case won:
		return "won"
	case finished:
		return "lost"
	default:
		return "in progress"
	}
}
