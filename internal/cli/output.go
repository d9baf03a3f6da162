package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
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
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Leaderboard:
		o.printLeaderboard(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GuessTally response type (matches API)
type GuessTally struct {
	Black  int `json:"black"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// GameResult response type
type GameResult struct {
	PuzzleNumber int        `json:"puzzle_number"`
	TriesUsed    int        `json:"tries_used"`
	Tally        GuessTally `json:"tally"`
	Score        int        `json:"score"`
	PlayerKey    string     `json:"player_key"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	PlayerKey string `json:"player_key"`
	Score     int    `json:"score"`
}

// Leaderboard response type
type Leaderboard struct {
	PuzzleNumber int                `json:"puzzle_number"`
	Entries      []LeaderboardEntry `json:"entries"`
}

// SubmitResult response type
type SubmitResult struct {
	Result      GameResult  `json:"result"`
	Leaderboard Leaderboard `json:"leaderboard"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Printf("Wordle %d leaderboard (%d entries):\n", l.PuzzleNumber, len(l.Entries))
	for _, e := range l.Entries {
		fmt.Printf("  %d. %s - %d\n", e.Rank, e.PlayerKey, e.Score)
	}
}

func (o *Output) printSubmitResult(s SubmitResult) {
	r := s.Result
	fmt.Printf("Wordle %d: %d/6, score %d\n", r.PuzzleNumber, r.TriesUsed, r.Score)
	fmt.Printf("Tally: %d black, %d yellow, %d green\n", r.Tally.Black, r.Tally.Yellow, r.Tally.Green)
	fmt.Println()
	o.printLeaderboard(s.Leaderboard)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
