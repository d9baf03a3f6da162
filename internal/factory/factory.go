package factory

import (
	"errors"
	"io"
	"log/slog"

	"wordleboard/internal/dependencies/clock"
	"wordleboard/internal/dependencies/random"
	"wordleboard/internal/notify"
	"wordleboard/internal/secrets"
	"wordleboard/internal/services/authz"
	"wordleboard/internal/services/leaderboard"
	"wordleboard/internal/services/otp"
	"wordleboard/internal/services/scoring"
	"wordleboard/internal/storage"
	"wordleboard/internal/storage/memory"
	redisstorage "wordleboard/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components. Adapters are injected here
// and owned by the process entry point; no component holds a module-level
// client handle.
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock    clock.Clock
	Random   random.Random
	Notifier notify.Notifier
	Secrets  secrets.Source

	// Services
	ScoringService     *scoring.Service
	OTPService         *otp.Service
	LeaderboardService *leaderboard.Service
	Authorizer         *authz.TokenAuthorizer
	SignatureValidator *authz.SignatureValidator
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// OTPConfig holds OTP issuance settings (optional)
	OTPConfig otp.Config
	// HashPepper is the server-side salt for player key derivation
	HashPepper string
	// Weights selects the scoring polarity (zero value means DefaultWeights)
	Weights scoring.Weights
	// RelaySecret holds the message-relay provider credentials
	RelaySecret secrets.RelaySecret
	// CallbackBaseURL is the public URL webhook signatures are computed against
	CallbackBaseURL string
	// Notifier overrides the Twilio-backed notifier (used in tests)
	Notifier notify.Notifier
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	secretSource := secrets.NewStatic(cfg.RelaySecret)

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewTwilio(secretSource)
	}

	return newWithDependencies(store, clk, rnd, notifier, secretSource, cfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	notifier notify.Notifier,
	secretSource secrets.Source,
	cfg Config,
	logger *slog.Logger,
) *App {
	keys := otp.NewKeyDeriver(cfg.HashPepper)

	scoringService := scoring.New(cfg.Weights)
	otpService := otp.New(store, clk, rnd, notifier, secretSource, keys, cfg.OTPConfig, logger)
	leaderboardService := leaderboard.New(store, logger)
	authorizer := authz.NewTokenAuthorizer(otpService, logger)
	signatureValidator := authz.NewSignatureValidator(secretSource, cfg.CallbackBaseURL)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Notifier:           notifier,
		Secrets:            secretSource,
		ScoringService:     scoringService,
		OTPService:         otpService,
		LeaderboardService: leaderboardService,
		Authorizer:         authorizer,
		SignatureValidator: signatureValidator,
	}
}
