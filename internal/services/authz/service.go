package authz

import (
	"context"
	"log/slog"
	"strings"

	twilioclient "github.com/twilio/twilio-go/client"

	"wordleboard/internal/model"
	"wordleboard/internal/secrets"
	"wordleboard/internal/services/otp"
)

// Principal names used in authorization decisions
const (
	PrincipalAnonymous = "anonymous"
	PrincipalUser      = "user"
)

// TokenAuthorizer gates access to protected resources using opaque bearer
// tokens of the form "contactAddress:otpCode". A fresh decision is produced
// for every call; no session state is retained.
type TokenAuthorizer struct {
	otp    *otp.Service
	logger *slog.Logger
}

// NewTokenAuthorizer creates a new token authorizer
func NewTokenAuthorizer(otpService *otp.Service, logger *slog.Logger) *TokenAuthorizer {
	return &TokenAuthorizer{
		otp:    otpService,
		logger: logger,
	}
}

// Authorize evaluates a bearer token against the resource. Missing tokens
// deny as anonymous; malformed tokens, verification errors, and incorrect
// codes all produce the same Deny decision so a caller cannot distinguish
// why access was refused.
func (a *TokenAuthorizer) Authorize(ctx context.Context, token, resource string) model.AuthDecision {
	if token == "" {
		return model.AuthDecision{
			Principal: PrincipalAnonymous,
			Effect:    model.EffectDeny,
			Resource:  resource,
		}
	}

	deny := model.AuthDecision{
		Principal: PrincipalUser,
		Effect:    model.EffectDeny,
		Resource:  resource,
	}

	contactAddress, code, ok := strings.Cut(token, ":")
	if !ok {
		return deny
	}

	verified, err := a.otp.Verify(ctx, contactAddress, code)
	if err != nil {
		// Fail closed on store errors; the decision is indistinguishable
		// from an incorrect code.
		a.logger.Error("otp verification failed", slog.String("error", err.Error()))
		return deny
	}
	if !verified {
		return deny
	}

	return model.AuthDecision{
		Principal: PrincipalUser,
		Effect:    model.EffectAllow,
		Resource:  resource,
	}
}

// ContactAddress extracts the contact-address half of a bearer token. Only
// meaningful after Authorize allowed the token.
func ContactAddress(token string) string {
	contactAddress, _, _ := strings.Cut(token, ":")
	return contactAddress
}

// SignatureValidator checks that an inbound webhook request was genuinely
// signed by the relay provider. The expected signature is recomputed from
// the externally visible callback URL and the posted params using the
// provider's signing scheme.
type SignatureValidator struct {
	secrets secrets.Source
	baseURL string
}

// NewSignatureValidator creates a validator for the given public callback
// base URL (scheme and host as the provider sees them)
func NewSignatureValidator(secrets secrets.Source, callbackBaseURL string) *SignatureValidator {
	return &SignatureValidator{
		secrets: secrets,
		baseURL: strings.TrimSuffix(callbackBaseURL, "/"),
	}
}

// Validate reports whether the declared signature matches the request. Any
// mismatch rejects the whole request before further processing.
func (v *SignatureValidator) Validate(ctx context.Context, requestURI string, params map[string]string, signature string) (bool, error) {
	secret, err := v.secrets.RelaySecret(ctx)
	if err != nil {
		return false, err
	}

	validator := twilioclient.NewRequestValidator(secret.AuthToken)
	return validator.Validate(v.baseURL+requestURI, params, signature), nil
}
