package redis

import (
	"fmt"

	"wordleboard/internal/model"
)

// Key prefix for all puzzle-related data
const keyPrefix = "wordle"

// resultKey returns the Redis key for a single player's GameResult,
// mirroring the puzzle/{number}/{playerKey} object layout
func resultKey(puzzleNumber int, playerKey model.PlayerKey) string {
	return fmt.Sprintf("%s:puzzle:%d:%s", keyPrefix, puzzleNumber, playerKey)
}

// leaderboardKey returns the Redis key for a puzzle's aggregated leaderboard
func leaderboardKey(puzzleNumber int) string {
	return fmt.Sprintf("%s:puzzle:%d:leaderboard", keyPrefix, puzzleNumber)
}

// otpKey returns the Redis key for an OTP record
func otpKey(playerKeyHash string) string {
	return fmt.Sprintf("%s:otp:%s", keyPrefix, playerKeyHash)
}
