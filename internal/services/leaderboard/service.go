package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"

	"wordleboard/internal/model"
	"wordleboard/internal/storage"
)

// Service maintains the ranked standings for each puzzle instance
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new leaderboard service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Update merges a scored entry into the puzzle's leaderboard and persists
// the re-ranked result. A missing leaderboard is a fresh puzzle and starts
// empty; any other read failure propagates so a transient store error can
// never silently replace history with a single-entry board.
//
// One entry per player: a resubmission replaces the player's prior entry
// rather than duplicating it. The read-modify-write cycle is not atomic;
// two simultaneous submissions to the same puzzle can race (see DESIGN.md).
func (s *Service) Update(ctx context.Context, puzzleNumber int, entry model.LeaderboardEntry) (*model.Leaderboard, error) {
	board, err := s.storage.GetLeaderboard(ctx, puzzleNumber)
	if err != nil {
		if !errors.Is(err, model.ErrLeaderboardNotFound) {
			return nil, fmt.Errorf("reading leaderboard for puzzle %d: %w", puzzleNumber, err)
		}
		board = &model.Leaderboard{PuzzleNumber: puzzleNumber}
	}

	entries := lo.Reject(board.Entries, func(e model.LeaderboardEntry, _ int) bool {
		return e.PlayerKey == entry.PlayerKey
	})
	entries = append(entries, entry)

	// Ascending by score: lower is better. Order among ties is irrelevant,
	// but a stable sort keeps reruns deterministic.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})

	updated := &model.Leaderboard{
		PuzzleNumber: puzzleNumber,
		Entries:      entries,
	}

	if err := s.storage.SaveLeaderboard(ctx, updated); err != nil {
		return nil, fmt.Errorf("saving leaderboard for puzzle %d: %w", puzzleNumber, err)
	}

	s.logger.Info("leaderboard updated",
		slog.Int("puzzle_number", puzzleNumber),
		slog.Int("entries", len(updated.Entries)),
	)
	return updated, nil
}

// Get returns the leaderboard for a puzzle. A puzzle nobody has submitted to
// yet is an empty board, not an error.
func (s *Service) Get(ctx context.Context, puzzleNumber int) (*model.Leaderboard, error) {
	board, err := s.storage.GetLeaderboard(ctx, puzzleNumber)
	if err != nil {
		if errors.Is(err, model.ErrLeaderboardNotFound) {
			return &model.Leaderboard{PuzzleNumber: puzzleNumber}, nil
		}
		return nil, fmt.Errorf("reading leaderboard for puzzle %d: %w", puzzleNumber, err)
	}
	return board, nil
}
