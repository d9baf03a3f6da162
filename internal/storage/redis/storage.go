package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"wordleboard/internal/model"
	"wordleboard/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game result operations

func (s *Storage) SaveGameResult(ctx context.Context, result *model.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	key := resultKey(result.PuzzleNumber, result.PlayerKey)
	return s.client.Set(ctx, key, data, s.cfg.ResultTTL).Err()
}

func (s *Storage) GetGameResult(ctx context.Context, puzzleNumber int, playerKey model.PlayerKey) (*model.GameResult, error) {
	data, err := s.client.Get(ctx, resultKey(puzzleNumber, playerKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var result model.GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Leaderboard operations
//
// The leaderboard is stored as a single JSON blob per puzzle. Two concurrent
// updates to the same puzzle can race on the read-modify-write cycle; see
// DESIGN.md for the documented hazard.

func (s *Storage) SaveLeaderboard(ctx context.Context, board *model.Leaderboard) error {
	data, err := json.Marshal(board)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, leaderboardKey(board.PuzzleNumber), data, s.cfg.ResultTTL).Err()
}

func (s *Storage) GetLeaderboard(ctx context.Context, puzzleNumber int) (*model.Leaderboard, error) {
	data, err := s.client.Get(ctx, leaderboardKey(puzzleNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLeaderboardNotFound
		}
		return nil, err
	}

	var board model.Leaderboard
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// OTP record operations

func (s *Storage) SaveOTPRecord(ctx context.Context, record *model.OTPRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	// Let Redis purge the record at its expiry. The engine still checks
	// ExpiresAt on read, so a lagging TTL cannot extend a code's life.
	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return s.client.Del(ctx, otpKey(record.PlayerKeyHash)).Err()
	}

	return s.client.Set(ctx, otpKey(record.PlayerKeyHash), data, ttl).Err()
}

func (s *Storage) GetOTPRecord(ctx context.Context, playerKeyHash string) (*model.OTPRecord, error) {
	data, err := s.client.Get(ctx, otpKey(playerKeyHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrOTPNotFound
		}
		return nil, err
	}

	var record model.OTPRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) DeleteOTPRecord(ctx context.Context, playerKeyHash string) error {
	return s.client.Del(ctx, otpKey(playerKeyHash)).Err()
}
