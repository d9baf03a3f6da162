package middleware

import (
	"context"
	"net/http"

	"wordleboard/internal/api/apierr"
	"wordleboard/internal/services/authz"
)

type contextKey string

const (
	principalContextKey contextKey = "principal"
	contactContextKey   contextKey = "contact"
)

// TokenAuth creates authorization middleware that gates protected routes
// with "contactAddress:otpCode" bearer tokens in the Authorization header.
// The decision is re-evaluated on every call; denials are indistinguishable
// whether the token was missing, malformed, or incorrect.
func TokenAuth(authorizer *authz.TokenAuthorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")

			decision := authorizer.Authorize(r.Context(), token, r.URL.Path)
			if !decision.Allowed() {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, principalContextKey, decision.Principal)
			ctx = context.WithValue(ctx, contactContextKey, authz.ContactAddress(token))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal returns the authorized principal from the request context
func GetPrincipal(ctx context.Context) string {
	principal, _ := ctx.Value(principalContextKey).(string)
	return principal
}

// GetContactAddress returns the authenticated contact address from the
// request context
func GetContactAddress(ctx context.Context) string {
	contact, _ := ctx.Value(contactContextKey).(string)
	return contact
}

// MustGetContactAddress returns the authenticated contact address or panics
func MustGetContactAddress(ctx context.Context) string {
	contact := GetContactAddress(ctx)
	if contact == "" {
		panic("no contact address in context - auth middleware not applied?")
	}
	return contact
}
