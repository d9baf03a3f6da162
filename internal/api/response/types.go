package response

import (
	"wordleboard/internal/model"
)

// GuessTally represents glyph counts in API responses
type GuessTally struct {
	Black  int `json:"black"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// GameResult represents a scored submission in API responses
type GameResult struct {
	PuzzleNumber int        `json:"puzzle_number"`
	TriesUsed    int        `json:"tries_used"`
	Tally        GuessTally `json:"tally"`
	Score        int        `json:"score"`
	PlayerKey    string     `json:"player_key"`
}

// GameResultFromModel converts a model.GameResult to a response GameResult.
// The raw message is deliberately omitted from API responses.
func GameResultFromModel(r *model.GameResult) GameResult {
	return GameResult{
		PuzzleNumber: r.PuzzleNumber,
		TriesUsed:    r.TriesUsed,
		Tally: GuessTally{
			Black:  r.Tally.Black,
			Yellow: r.Tally.Yellow,
			Green:  r.Tally.Green,
		},
		Score:     r.Score,
		PlayerKey: string(r.PlayerKey),
	}
}

// LeaderboardEntry represents one ranked row in API responses
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	PlayerKey string `json:"player_key"`
	Score     int    `json:"score"`
}

// Leaderboard represents the standings for one puzzle in API responses
type Leaderboard struct {
	PuzzleNumber int                `json:"puzzle_number"`
	Entries      []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModel converts a model.Leaderboard, assigning 1-based ranks
// in stored (ascending score) order
func LeaderboardFromModel(b *model.Leaderboard) Leaderboard {
	entries := make([]LeaderboardEntry, len(b.Entries))
	for i, e := range b.Entries {
		entries[i] = LeaderboardEntry{
			Rank:      i + 1,
			PlayerKey: string(e.PlayerKey),
			Score:     e.Score,
		}
	}
	return Leaderboard{
		PuzzleNumber: b.PuzzleNumber,
		Entries:      entries,
	}
}

// SubmitScoreResponse is returned from the authenticated submission endpoint
type SubmitScoreResponse struct {
	Result      GameResult  `json:"result"`
	Leaderboard Leaderboard `json:"leaderboard"`
}
