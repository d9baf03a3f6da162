package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"wordleboard/internal/api/apierr"
	"wordleboard/internal/api/middleware"
	"wordleboard/internal/api/request"
	"wordleboard/internal/api/response"
	"wordleboard/internal/model"
	"wordleboard/internal/services/leaderboard"
	"wordleboard/internal/services/otp"
	"wordleboard/internal/services/scorecard"
	"wordleboard/internal/services/scoring"
	"wordleboard/internal/storage"
)

// ScoresHandler handles the authenticated scores endpoints
type ScoresHandler struct {
	scoring     *scoring.Service
	leaderboard *leaderboard.Service
	storage     storage.Storage
	keys        *otp.KeyDeriver
}

// NewScoresHandler creates a new scores handler
func NewScoresHandler(
	scoringService *scoring.Service,
	leaderboardService *leaderboard.Service,
	storage storage.Storage,
	keys *otp.KeyDeriver,
) *ScoresHandler {
	return &ScoresHandler{
		scoring:     scoringService,
		leaderboard: leaderboardService,
		storage:     storage,
		keys:        keys,
	}
}

// Get handles GET /scores/{puzzleNumber}
func (h *ScoresHandler) Get(w http.ResponseWriter, r *http.Request) {
	puzzleNumber, err := strconv.Atoi(mux.Vars(r)["puzzleNumber"])
	if err != nil || puzzleNumber < 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("puzzle number must be a non-negative integer"))
		return
	}

	board, err := h.leaderboard.Get(r.Context(), puzzleNumber)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(board))
}

// Submit handles POST /scores: the same parse/score/rank pipeline as the
// webhook, for players already holding a valid OTP token
func (h *ScoresHandler) Submit(w http.ResponseWriter, r *http.Request) {
	contactAddress := middleware.MustGetContactAddress(r.Context())

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Message == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("message is required"))
		return
	}

	result, err := scorecard.Parse(req.Message)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	result.PlayerKey = model.PlayerKey(h.keys.Derive(contactAddress))
	result.Score = h.scoring.Score(result.Tally)

	if err := h.storage.SaveGameResult(r.Context(), result); err != nil {
		apierr.WriteError(w, err)
		return
	}

	entry := model.LeaderboardEntry{
		PlayerKey: result.PlayerKey,
		Score:     result.Score,
		Message:   req.Message,
	}
	board, err := h.leaderboard.Update(r.Context(), result.PuzzleNumber, entry)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmitScoreResponse{
		Result:      response.GameResultFromModel(result),
		Leaderboard: response.LeaderboardFromModel(board),
	})
}
