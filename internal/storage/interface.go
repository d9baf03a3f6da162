package storage

import (
	"context"

	"wordleboard/internal/model"
)

// Storage defines the interface for data persistence.
//
// Get methods distinguish "no such record" (a typed model.Err*NotFound) from
// a failed read; callers rely on that distinction to avoid treating transient
// store errors as fresh state.
type Storage interface {
	// Game result operations
	SaveGameResult(ctx context.Context, result *model.GameResult) error
	GetGameResult(ctx context.Context, puzzleNumber int, playerKey model.PlayerKey) (*model.GameResult, error)

	// Leaderboard operations
	SaveLeaderboard(ctx context.Context, board *model.Leaderboard) error
	GetLeaderboard(ctx context.Context, puzzleNumber int) (*model.Leaderboard, error)

	// OTP record operations. Records carry an expiry; backends with native
	// TTL support purge them once it passes.
	SaveOTPRecord(ctx context.Context, record *model.OTPRecord) error
	GetOTPRecord(ctx context.Context, playerKeyHash string) (*model.OTPRecord, error)
	DeleteOTPRecord(ctx context.Context, playerKeyHash string) error
}
