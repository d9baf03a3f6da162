package middleware

import (
	"log/slog"
	"net/http"

	"wordleboard/internal/services/authz"
)

// SignatureHeader carries the relay provider's request signature
const SignatureHeader = "X-Twilio-Signature"

// Signature creates webhook middleware that rejects any request whose
// signature does not match the relay provider's signing of the callback URL
// and posted params. Rejections are written by onReject so the webhook
// surface controls its own response shape; nothing downstream runs.
func Signature(validator *authz.SignatureValidator, logger *slog.Logger, onReject http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				logger.Warn("webhook form parse failed", slog.String("error", err.Error()))
				onReject(w, r)
				return
			}

			params := make(map[string]string, len(r.PostForm))
			for key := range r.PostForm {
				params[key] = r.PostForm.Get(key)
			}

			valid, err := validator.Validate(r.Context(), r.URL.RequestURI(), params, r.Header.Get(SignatureHeader))
			if err != nil {
				logger.Error("signature validation errored", slog.String("error", err.Error()))
				onReject(w, r)
				return
			}
			if !valid {
				logger.Warn("webhook signature mismatch", slog.String("path", r.URL.Path))
				onReject(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
