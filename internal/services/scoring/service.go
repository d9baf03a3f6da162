package scoring

import (
	"wordleboard/internal/model"
)

// Weights assigns a per-occurrence cost to each glyph class. Score polarity
// is a configuration choice, not a hidden literal: swap the weights value to
// change direction without touching parsing.
type Weights struct {
	Absent  int
	Present int
	Correct int
}

// DefaultWeights is the canonical scoring direction: lower is better. A
// correct placement is the cheapest outcome, an absent letter the most
// expensive.
var DefaultWeights = Weights{Absent: 3, Present: 2, Correct: 1}

// LegacyWeights is the inverted polarity used by an earlier scorer variant,
// where correct placements cost the most. Retained for comparison only.
var LegacyWeights = Weights{Absent: 1, Present: 2, Correct: 3}

// Service computes scores from glyph tallies
type Service struct {
	weights Weights
}

// New creates a new ScoringService with the given weights
func New(weights Weights) *Service {
	if weights == (Weights{}) {
		weights = DefaultWeights
	}
	return &Service{weights: weights}
}

// Score computes the deterministic score for a tally. Pure function: no
// side effects, total over any non-negative tally.
func (s *Service) Score(tally model.GuessTally) int {
	return tally.Black*s.weights.Absent +
		tally.Yellow*s.weights.Present +
		tally.Green*s.weights.Correct
}

// Weights returns the configured weights
func (s *Service) Weights() Weights {
	return s.weights
}
