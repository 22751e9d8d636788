package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mcoot/guessr/internal/api/response"
	"github.com/mcoot/guessr/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.Player:
		fmt.Fprintf(o.w, "Player %d: %s\n", v.ID, v.Name)
	case []*model.Player:
		o.printPlayers(v)
	case []model.ScoreEntry:
		o.printScoreboard(v)
	case []GameSummary:
		o.printGames(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	case response.PlayerList:
		o.printRemotePlayers(v)
	case response.PlayerGames:
		o.printRemoteGames(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) table() *tabwriter.Writer {
	return tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
}

func (o *Output) printPlayers(players []*model.Player) {
	if len(players) == 0 {
		fmt.Fprintln(o.w, "No players yet.")
		return
	}
	tw := o.table()
	fmt.Fprintln(tw, "ID\tNAME")
	for _, p := range players {
		fmt.Fprintf(tw, "%d\t%s\n", p.ID, p.Name)
	}
	_ = tw.Flush()
}

func (o *Output) printScoreboard(entries []model.ScoreEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(o.w, "No players yet.")
		return
	}
	tw := o.table()
	fmt.Fprintln(tw, "RANK\tPLAYER\tSCORE\tNUMBER\tHANGMAN")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", i+1, e.Name, e.Score, e.NumberWins, e.HangmanWins)
	}
	_ = tw.Flush()
}

func (o *Output) printGames(games []GameSummary) {
	if len(games) == 0 {
		fmt.Fprintln(o.w, "No games yet.")
		return
	}
	tw := o.table()
	fmt.Fprintln(tw, "GAME\tID\tPLAYER\tSTATUS\tPROGRESS")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", g.Kind, g.ID, g.Player, g.Status, g.Progress)
	}
	_ = tw.Flush()
}

func (o *Output) printRemotePlayers(list response.PlayerList) {
	if len(list.Players) == 0 {
		fmt.Fprintln(o.w, "No players yet.")
		return
	}
	tw := o.table()
	fmt.Fprintln(tw, "ID\tNAME")
	for _, p := range list.Players {
		fmt.Fprintf(tw, "%d\t%s\n", p.ID, p.Name)
	}
	_ = tw.Flush()
}

func (o *Output) printRemoteGames(pg response.PlayerGames) {
	fmt.Fprintf(o.w, "Player %d: %s\n", pg.Player.ID, pg.Player.Name)
	tw := o.table()
	fmt.Fprintln(tw, "GAME\tID\tSTATUS\tPROGRESS")
	for _, g := range pg.NumberGames {
		fmt.Fprintf(tw, "number\t%d\t%s\t%d attempts\n", g.ID, gameStatus(g.Finished, g.Won), g.Attempts)
	}
	for _, g := range pg.HangmanGames {
		fmt.Fprintf(tw, "hangman\t%d\t%s\t%s (%d turns left)\n", g.ID, gameStatus(g.Finished, g.Won), g.Masked, g.Turns)
	}
	_ = tw.Flush()
}
