package request

// SubmitScoreRequest is the request body for submitting a scorecard through
// the authenticated API instead of the SMS webhook
type SubmitScoreRequest struct {
	Message string `json:"message"`
}
