package model

import "errors"

// Common errors used across the application
var (
	// Scorecard errors
	ErrInvalidScorecard = errors.New("invalid scorecard message")

	// Result errors
	ErrResultNotFound = errors.New("game result not found")

	// Leaderboard errors
	ErrLeaderboardNotFound = errors.New("leaderboard not found")

	// OTP errors
	ErrOTPNotFound = errors.New("no active code for player")
)
