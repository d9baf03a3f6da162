package memory

import (
	"context"
	"sync"

	"wordleboard/internal/model"
	"wordleboard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	results      map[resultKey]*model.GameResult
	leaderboards map[int]*model.Leaderboard
	otpRecords   map[string]*model.OTPRecord
}

type resultKey struct {
	puzzleNumber int
	playerKey    model.PlayerKey
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results:      make(map[resultKey]*model.GameResult),
		leaderboards: make(map[int]*model.Leaderboard),
		otpRecords:   make(map[string]*model.OTPRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game result operations

func (s *Storage) SaveGameResult(ctx context.Context, result *model.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := resultKey{puzzleNumber: result.PuzzleNumber, playerKey: result.PlayerKey}
	s.results[key] = result
	return nil
}

func (s *Storage) GetGameResult(ctx context.Context, puzzleNumber int, playerKey model.PlayerKey) (*model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[resultKey{puzzleNumber: puzzleNumber, playerKey: playerKey}]
	if !ok {
		return nil, model.ErrResultNotFound
	}
	return result, nil
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(ctx context.Context, board *model.Leaderboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboards[board.PuzzleNumber] = board
	return nil
}

func (s *Storage) GetLeaderboard(ctx context.Context, puzzleNumber int) (*model.Leaderboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.leaderboards[puzzleNumber]
	if !ok {
		return nil, model.ErrLeaderboardNotFound
	}
	return board, nil
}

// OTP record operations
//
// Expiry is not enforced here; the OTP engine checks it on every read. The
// redis backend additionally purges records via native TTL.

func (s *Storage) SaveOTPRecord(ctx context.Context, record *model.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otpRecords[record.PlayerKeyHash] = record
	return nil
}

func (s *Storage) GetOTPRecord(ctx context.Context, playerKeyHash string) (*model.OTPRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.otpRecords[playerKeyHash]
	if !ok {
		return nil, model.ErrOTPNotFound
	}
	return record, nil
}

func (s *Storage) DeleteOTPRecord(ctx context.Context, playerKeyHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otpRecords, playerKeyHash)
	return nil
}
