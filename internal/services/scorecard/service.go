package scorecard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"wordleboard/internal/model"
)

const (
	// RowLength is the number of feedback glyphs in a guess row
	RowLength = 5
	// MaxTries is the maximum number of guess rows in a scorecard
	MaxTries = 6
)

// headerPattern matches the scorecard header line, e.g. "Wordle 900 3/6"
var headerPattern = regexp.MustCompile(`^Wordle (\d+) (\d+)/(\d+)$`)

// numberPattern matches the first run of digits in a string
var numberPattern = regexp.MustCompile(`\d+`)

// Validate reports whether raw is a well-formed scorecard message
func Validate(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Parse turns a raw scorecard message into a GameResult. The result carries
// the puzzle number, the tries used, the glyph tally, and the original text;
// Score and PlayerKey are filled in by the caller.
//
// Rejection is total: a malformed header, a missing blank separator, a row
// count outside [1, MaxTries], or any row that is not exactly RowLength
// recognized glyphs fails the whole message. All errors wrap
// model.ErrInvalidScorecard.
func Parse(raw string) (*model.GameResult, error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(normalized, "\n"), "\n")

	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: expected header, separator and at least one guess row", model.ErrInvalidScorecard)
	}

	header := headerPattern.FindStringSubmatch(lines[0])
	if header == nil {
		return nil, fmt.Errorf("%w: malformed header %q", model.ErrInvalidScorecard, lines[0])
	}

	puzzleNumber, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: puzzle number out of range", model.ErrInvalidScorecard)
	}

	if lines[1] != "" {
		return nil, fmt.Errorf("%w: missing blank separator line", model.ErrInvalidScorecard)
	}

	rows := lines[2:]
	if len(rows) > MaxTries {
		return nil, fmt.Errorf("%w: %d guess rows exceeds maximum of %d", model.ErrInvalidScorecard, len(rows), MaxTries)
	}

	var tally model.GuessTally
	for i, row := range rows {
		rowTally, err := tallyRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", model.ErrInvalidScorecard, i+1, err)
		}
		tally.Black += rowTally.Black
		tally.Yellow += rowTally.Yellow
		tally.Green += rowTally.Green
	}

	return &model.GameResult{
		PuzzleNumber: puzzleNumber,
		TriesUsed:    len(rows),
		Tally:        tally,
		RawMessage:   raw,
	}, nil
}

// tallyRow counts the glyph classes in a single guess row. The row must be
// exactly RowLength recognized glyphs.
func tallyRow(row string) (model.GuessTally, error) {
	var tally model.GuessTally
	count := 0

	// Iterate grapheme clusters, not bytes or runes: the feedback glyphs
	// are extended pictographic characters and a single visual glyph must
	// never be split when counted.
	graphemes := uniseg.NewGraphemes(row)
	for graphemes.Next() {
		class, ok := ClassifyGlyph(graphemes.Str())
		if !ok {
			return model.GuessTally{}, fmt.Errorf("unrecognized glyph %q", graphemes.Str())
		}

		switch class {
		case model.GlyphBlack:
			tally.Black++
		case model.GlyphYellow:
			tally.Yellow++
		case model.GlyphGreen:
			tally.Green++
		}
		count++
	}

	if count != RowLength {
		return model.GuessTally{}, fmt.Errorf("expected %d glyphs, found %d", RowLength, count)
	}
	return tally, nil
}

// ClassifyGlyph maps a single grapheme cluster to its glyph class. A
// trailing variation selector (U+FE0F, emoji presentation) is tolerated.
func ClassifyGlyph(cluster string) (model.GlyphClass, bool) {
	switch strings.TrimSuffix(cluster, "\ufe0f") {
	case "\u2b1b": // ⬛
		return model.GlyphBlack, true
	case "\U0001F7E8": // 🟨
		return model.GlyphYellow, true
	case "\U0001F7E9": // 🟩
		return model.GlyphGreen, true
	default:
		return 0, false
	}
}

// ExtractPuzzleNumber returns the first integer found in a scorecard
// fragment, typically the header line
func ExtractPuzzleNumber(s string) (int, bool) {
	match := numberPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}
