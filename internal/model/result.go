package model

// PlayerKey is an opaque identifier for a submitting player. For webhook
// submissions it is derived from the sender's contact address; the raw
// address is never stored alongside a result.
type PlayerKey string

// GlyphClass is the closed set of recognized feedback glyphs in a guess row.
type GlyphClass int

const (
	// GlyphBlack marks a letter absent from the solution.
	GlyphBlack GlyphClass = iota
	// GlyphYellow marks a letter present but in the wrong position.
	GlyphYellow
	// GlyphGreen marks a letter in the correct position.
	GlyphGreen
)

// String returns the glyph class name
func (g GlyphClass) String() string {
	switch g {
	case GlyphBlack:
		return "black"
	case GlyphYellow:
		return "yellow"
	case GlyphGreen:
		return "green"
	default:
		return "unknown"
	}
}

// GuessTally counts feedback glyphs across all guess rows of a result
type GuessTally struct {
	Black  int `json:"black"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// Total returns the number of glyphs counted
func (t GuessTally) Total() int {
	return t.Black + t.Yellow + t.Green
}

// GameResult is a parsed and scored puzzle submission. Immutable once created.
// Invariant: Tally.Total() == TriesUsed * RowLength.
type GameResult struct {
	PuzzleNumber int        `json:"puzzle_number"`
	TriesUsed    int        `json:"tries_used"`
	Tally        GuessTally `json:"tally"`
	Score        int        `json:"score"`
	RawMessage   string     `json:"raw_message"`
	PlayerKey    PlayerKey  `json:"player_key"`
}

// LeaderboardEntry is one ranked row of a puzzle's leaderboard
type LeaderboardEntry struct {
	PlayerKey PlayerKey `json:"player_key"`
	Score     int       `json:"score"`
	Message   string    `json:"message,omitempty"`
}

// Leaderboard is the ranked standings for one puzzle instance, ascending by
// score (lower is better). One entry per PlayerKey; a resubmission replaces
// the player's prior entry.
type Leaderboard struct {
	PuzzleNumber int                `json:"puzzle_number"`
	Entries      []LeaderboardEntry `json:"entries"`
}
