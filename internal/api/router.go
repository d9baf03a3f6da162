package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"wordleboard/internal/api/handler"
	apimiddleware "wordleboard/internal/api/middleware"
	"wordleboard/internal/middleware"
	"wordleboard/internal/services/authz"
	"wordleboard/internal/services/leaderboard"
	"wordleboard/internal/services/otp"
	"wordleboard/internal/services/scoring"
	"wordleboard/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Storage            storage.Storage
	ScoringService     *scoring.Service
	OTPService         *otp.Service
	LeaderboardService *leaderboard.Service
	Authorizer         *authz.TokenAuthorizer
	SignatureValidator *authz.SignatureValidator
}

// NewRouter creates the HTTP router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	smsHandler := handler.NewSMSHandler(cfg.ScoringService, cfg.LeaderboardService, cfg.Storage, cfg.OTPService.Keys(), cfg.Logger)
	otpHandler := handler.NewOTPHandler(cfg.OTPService, cfg.Logger)
	scoresHandler := handler.NewScoresHandler(cfg.ScoringService, cfg.LeaderboardService, cfg.Storage, cfg.OTPService.Keys())

	// Common middleware
	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Webhook route: signature check runs before anything else, and a
	// rejected request answers exactly like any other webhook failure
	signatureMiddleware := apimiddleware.Signature(cfg.SignatureValidator, cfg.Logger, handler.RejectWebhook)
	r.Handle("/sms", signatureMiddleware(http.HandlerFunc(smsHandler.Receive))).Methods(http.MethodPost)

	// OTP routes: presence of the otp query param selects verification
	r.HandleFunc("/otp", otpHandler.Verify).Methods(http.MethodPost).Queries("otp", "{otp}")
	r.HandleFunc("/otp", otpHandler.Issue).Methods(http.MethodPost)

	// Scores routes (token-gated)
	scores := r.PathPrefix("/scores").Subrouter()
	scores.Use(apimiddleware.TokenAuth(cfg.Authorizer))
	scores.HandleFunc("/{puzzleNumber}", scoresHandler.Get).Methods(http.MethodGet)
	scores.HandleFunc("", scoresHandler.Submit).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
