package scoring

import (
	"sort"

	"github.com/mcoot/guessr/internal/model"
)

// Scoreboard counts won games per player. Entries follow the order of
// players; games owned by unknown players are ignored.
func Scoreboard(players []*model.Player, games []model.Outcome) []model.ScoreEntry {
	entries := make([]model.ScoreEntry, len(players))
	index := make(map[model.PlayerID]int, len(players))
	for i, p := range players {
		entries[i] = model.ScoreEntry{PlayerID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	for _, g := range games {
		if !g.Won() {
			continue
		}
		i, ok := index[g.Owner()]
		if !ok {
			continue
		}
		entries[i].Score++
		switch g.(type) {
		case *model.NumberGuessingGame:
			entries[i].NumberWins++
		case *model.Hangman:
			entries[i].HangmanWins++
		}
	}

	return entries
}

// Sorted returns a copy of entries ordered by descending score.
// Ties keep their original order.
func Sorted(entries []model.ScoreEntry) []model.ScoreEntry {
	sorted := make([]model.ScoreEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

// ByName maps player name to score
func ByName(entries []model.ScoreEntry) map[string]int {
	scores := make(map[string]int, len(entries))
	for _, e := range entries {
		scores[e.Name] = e.Score
	}
	return scores
}
