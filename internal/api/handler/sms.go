package handler

import (
	"log/slog"
	"net/http"

	"wordleboard/internal/api/response"
	"wordleboard/internal/model"
	"wordleboard/internal/services/leaderboard"
	"wordleboard/internal/services/otp"
	"wordleboard/internal/services/scorecard"
	"wordleboard/internal/services/scoring"
	"wordleboard/internal/storage"
)

// Webhook response bodies. The relay provider echoes these back to the
// sender; failures are deliberately generic and carry no internal detail.
const (
	MsgScoreSaved  = "Wordle score saved successfully"
	MsgScoreFailed = "Error saving Wordle score"
)

// SMSHandler handles inbound scorecard submissions from the SMS webhook
type SMSHandler struct {
	scoring     *scoring.Service
	leaderboard *leaderboard.Service
	storage     storage.Storage
	keys        *otp.KeyDeriver
	logger      *slog.Logger
}

// NewSMSHandler creates a new SMS webhook handler
func NewSMSHandler(
	scoringService *scoring.Service,
	leaderboardService *leaderboard.Service,
	storage storage.Storage,
	keys *otp.KeyDeriver,
	logger *slog.Logger,
) *SMSHandler {
	return &SMSHandler{
		scoring:     scoringService,
		leaderboard: leaderboardService,
		storage:     storage,
		keys:        keys,
		logger:      logger,
	}
}

// Receive handles POST /sms. The signature middleware has already vouched
// for the request's origin. Per the webhook contract, every failure is a 500
// with a generic body.
func (h *SMSHandler) Receive(w http.ResponseWriter, r *http.Request) {
	from := r.PostFormValue("From")
	body := r.PostFormValue("Body")
	if from == "" || body == "" {
		h.logger.Warn("webhook missing From or Body")
		RejectWebhook(w, r)
		return
	}

	result, err := scorecard.Parse(body)
	if err != nil {
		h.logger.Warn("invalid scorecard", slog.String("error", err.Error()))
		RejectWebhook(w, r)
		return
	}

	result.PlayerKey = model.PlayerKey(h.keys.Derive(from))
	result.Score = h.scoring.Score(result.Tally)

	if err := h.storage.SaveGameResult(r.Context(), result); err != nil {
		h.logger.Error("saving game result", slog.String("error", err.Error()))
		RejectWebhook(w, r)
		return
	}

	entry := model.LeaderboardEntry{
		PlayerKey: result.PlayerKey,
		Score:     result.Score,
		Message:   body,
	}
	if _, err := h.leaderboard.Update(r.Context(), result.PuzzleNumber, entry); err != nil {
		h.logger.Error("updating leaderboard", slog.String("error", err.Error()))
		RejectWebhook(w, r)
		return
	}

	response.Text(w, http.StatusOK, MsgScoreSaved)
}

// RejectWebhook writes the generic webhook failure response. The signature
// middleware uses it too, so a forged request looks identical to any other
// failure.
func RejectWebhook(w http.ResponseWriter, _ *http.Request) {
	response.Text(w, http.StatusInternalServerError, MsgScoreFailed)
}
