package scorecard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"wordleboard/internal/model"
)

const (
	black  = "⬛"
	yellow = "\U0001F7E8"
	green  = "\U0001F7E9"
)

type ServiceSuite struct {
	suite.Suite
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

// Parse tests

func (s *ServiceSuite) TestParseValidThreeRowMessage() {
	raw := "Wordle 900 3/6\n\n" +
		black + black + yellow + green + black + "\n" +
		green + green + green + yellow + black + "\n" +
		green + green + green + green + green

	result, err := Parse(raw)
	s.Require().NoError(err)

	s.Equal(900, result.PuzzleNumber)
	s.Equal(3, result.TriesUsed)
	s.Equal(model.GuessTally{Black: 4, Yellow: 2, Green: 9}, result.Tally)
	s.Equal(raw, result.RawMessage)
}

func (s *ServiceSuite) TestParseTallySumsToTriesTimesRowLength() {
	raw := "Wordle 412 2/6\n\n" +
		yellow + yellow + black + black + black + "\n" +
		green + green + green + green + green

	result, err := Parse(raw)
	s.Require().NoError(err)
	s.Equal(result.TriesUsed*RowLength, result.Tally.Total())
}

func (s *ServiceSuite) TestParseSingleRowWin() {
	raw := "Wordle 1 1/6\n\n" + strings.Repeat(green, 5)

	result, err := Parse(raw)
	s.Require().NoError(err)
	s.Equal(1, result.TriesUsed)
	s.Equal(model.GuessTally{Green: 5}, result.Tally)
}

func (s *ServiceSuite) TestParseSixRowLoss() {
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = strings.Repeat(black, 5)
	}
	raw := "Wordle 250 6/6\n\n" + strings.Join(rows, "\n")

	result, err := Parse(raw)
	s.Require().NoError(err)
	s.Equal(6, result.TriesUsed)
	s.Equal(model.GuessTally{Black: 30}, result.Tally)
}

func (s *ServiceSuite) TestParseAcceptsCRLFLineEndings() {
	raw := "Wordle 900 1/6\r\n\r\n" + strings.Repeat(green, 5)

	result, err := Parse(raw)
	s.Require().NoError(err)
	s.Equal(900, result.PuzzleNumber)
}

func (s *ServiceSuite) TestParseAcceptsTrailingNewline() {
	raw := "Wordle 900 1/6\n\n" + strings.Repeat(green, 5) + "\n"

	_, err := Parse(raw)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestParseAcceptsVariationSelectorGlyphs() {
	// Some clients share the black square with an emoji presentation selector
	raw := "Wordle 77 1/6\n\n" +
		black + "\ufe0f" + black + green + green + green

	result, err := Parse(raw)
	s.Require().NoError(err)
	s.Equal(model.GuessTally{Black: 2, Green: 3}, result.Tally)
}

func (s *ServiceSuite) TestParseRejectsMalformedHeader() {
	raw := "Wordel 900 3/6\n\n" + strings.Repeat(green, 5)

	_, err := Parse(raw)
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsHeaderWithTrailingText() {
	raw := "Wordle 900 3/6 extra\n\n" + strings.Repeat(green, 5)

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsMissingSeparator() {
	raw := "Wordle 900 1/6\n" + strings.Repeat(green, 5)

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsEmptyMessage() {
	_, err := Parse("")
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsNoGuessRows() {
	_, err := Parse("Wordle 900 0/6\n\n")
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsSevenRows() {
	rows := make([]string, 7)
	for i := range rows {
		rows[i] = strings.Repeat(black, 5)
	}
	raw := "Wordle 900 7/6\n\n" + strings.Join(rows, "\n")

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsShortRow() {
	raw := "Wordle 900 1/6\n\n" + strings.Repeat(green, 4)

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsLongRow() {
	raw := "Wordle 900 1/6\n\n" + strings.Repeat(green, 6)

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsUnrecognizedGlyph() {
	raw := "Wordle 900 1/6\n\n" + strings.Repeat(green, 4) + "\U0001F7E6"

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsLetterRow() {
	raw := "Wordle 900 1/6\n\nABCDE"

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

func (s *ServiceSuite) TestParseRejectsOneBadRowAmongGood() {
	raw := "Wordle 900 3/6\n\n" +
		strings.Repeat(green, 5) + "\n" +
		strings.Repeat(green, 3) + "\n" +
		strings.Repeat(green, 5)

	_, err := Parse(raw)
	s.ErrorIs(err, model.ErrInvalidScorecard)
}

// Validate tests

func (s *ServiceSuite) TestValidateAcceptsWellFormedMessage() {
	s.True(Validate("Wordle 900 1/6\n\n" + strings.Repeat(green, 5)))
}

func (s *ServiceSuite) TestValidateRejectsGarbage() {
	s.False(Validate("hello there"))
}

// ClassifyGlyph tests

func (s *ServiceSuite) TestClassifyGlyphRecognizedClasses() {
	class, ok := ClassifyGlyph(black)
	s.True(ok)
	s.Equal(model.GlyphBlack, class)

	class, ok = ClassifyGlyph(yellow)
	s.True(ok)
	s.Equal(model.GlyphYellow, class)

	class, ok = ClassifyGlyph(green)
	s.True(ok)
	s.Equal(model.GlyphGreen, class)
}

func (s *ServiceSuite) TestClassifyGlyphStripsVariationSelector() {
	class, ok := ClassifyGlyph(black + "\ufe0f")
	s.True(ok)
	s.Equal(model.GlyphBlack, class)
}

func (s *ServiceSuite) TestClassifyGlyphRejectsUnknown() {
	_, ok := ClassifyGlyph("X")
	s.False(ok)
}

// ExtractPuzzleNumber tests

func (s *ServiceSuite) TestExtractPuzzleNumberFromHeader() {
	n, ok := ExtractPuzzleNumber("Wordle 900 3/6")
	s.True(ok)
	s.Equal(900, n)
}

func (s *ServiceSuite) TestExtractPuzzleNumberAbsent() {
	_, ok := ExtractPuzzleNumber("Wordle")
	s.False(ok)
}
