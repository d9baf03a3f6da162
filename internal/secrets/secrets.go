package secrets

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the relay credentials were never provided
var ErrNotConfigured = errors.New("relay secret not configured")

// RelaySecret holds the message-relay provider credentials: the account
// identifier, the signing/auth token, and the provisioned sender address.
type RelaySecret struct {
	AccountSID   string
	AuthToken    string
	SenderNumber string
}

// Source supplies the relay secret. Implementations are consulted on every
// request rather than cached, so rotated credentials take effect without a
// restart.
type Source interface {
	RelaySecret(ctx context.Context) (RelaySecret, error)
}

// Static serves a fixed secret. The process entry point builds one from
// environment configuration; tests build one inline.
type Static struct {
	Secret RelaySecret
}

// NewStatic creates a Static source
func NewStatic(secret RelaySecret) *Static {
	return &Static{Secret: secret}
}

// RelaySecret returns the configured secret, or ErrNotConfigured if the
// auth token is missing
func (s *Static) RelaySecret(_ context.Context) (RelaySecret, error) {
	if s.Secret.AuthToken == "" {
		return RelaySecret{}, ErrNotConfigured
	}
	return s.Secret, nil
}

// Ensure Static implements the interface
var _ Source = (*Static)(nil)
