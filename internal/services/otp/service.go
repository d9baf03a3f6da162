package otp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wordleboard/internal/dependencies/clock"
	"wordleboard/internal/dependencies/random"
	"wordleboard/internal/model"
	"wordleboard/internal/notify"
	"wordleboard/internal/secrets"
	"wordleboard/internal/storage"
)

const (
	codeLength = 6
	digits     = "0123456789"
)

// Config holds configuration for the OTP service
type Config struct {
	// TTL is how long an issued code stays valid
	TTL time.Duration
}

// DefaultConfig returns default OTP configuration
func DefaultConfig() Config {
	return Config{
		TTL: 5 * time.Minute,
	}
}

// Service issues and verifies short-lived one-time codes. One active record
// exists per derived player key; a new issuance overwrites any prior code.
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	random   random.Random
	notifier notify.Notifier
	secrets  secrets.Source
	keys     *KeyDeriver
	cfg      Config
	logger   *slog.Logger
}

// New creates a new OTP service
func New(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	notifier notify.Notifier,
	secrets secrets.Source,
	keys *KeyDeriver,
	cfg Config,
	logger *slog.Logger,
) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Service{
		storage:  storage,
		clock:    clock,
		random:   random,
		notifier: notifier,
		secrets:  secrets,
		keys:     keys,
		cfg:      cfg,
		logger:   logger,
	}
}

// Keys returns the key deriver shared with other components that need the
// same address-to-player-key mapping
func (s *Service) Keys() *KeyDeriver {
	return s.keys
}

// Issue generates a fresh 6-digit code (leading zeros preserved), persists
// it keyed by the one-way hash of the contact address, and dispatches it to
// the player. Nothing sensitive is returned to the caller.
func (s *Service) Issue(ctx context.Context, contactAddress string) error {
	code := s.random.String(codeLength, digits)
	hash := s.keys.Derive(contactAddress)

	record := &model.OTPRecord{
		PlayerKeyHash: hash,
		Code:          code,
		ExpiresAt:     s.clock.Now().Add(s.cfg.TTL),
	}

	if err := s.storage.SaveOTPRecord(ctx, record); err != nil {
		return fmt.Errorf("storing code: %w", err)
	}

	secret, err := s.secrets.RelaySecret(ctx)
	if err != nil {
		return fmt.Errorf("fetching relay secret: %w", err)
	}

	if err := s.notifier.Send(ctx, contactAddress, secret.SenderNumber, "Your Wordle OTP is: "+code); err != nil {
		return fmt.Errorf("dispatching code: %w", err)
	}

	s.logger.Info("otp issued",
		slog.String("player_key_hash", hash),
		slog.Time("expires_at", record.ExpiresAt),
	)
	return nil
}

// Verify checks a submitted code against the stored record for the contact
// address. It fails closed: absent, expired, or mismatched codes all return
// false. A code remains valid until its natural expiry; verification does
// not consume it, because the token authorizer re-verifies on every request.
func (s *Service) Verify(ctx context.Context, contactAddress, submitted string) (bool, error) {
	hash := s.keys.Derive(contactAddress)

	record, err := s.storage.GetOTPRecord(ctx, hash)
	if err != nil {
		if errors.Is(err, model.ErrOTPNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("reading code: %w", err)
	}

	if record.Expired(s.clock.Now()) {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(record.Code), []byte(submitted)) == 1, nil
}
