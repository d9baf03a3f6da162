package api

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"wordleboard/internal/factory"
	"wordleboard/internal/testutil"
)

const (
	testPhone    = "+15551234567"
	testBaseURL  = "http://localhost:8080"
	validMessage = "Wordle 900 3/6\n\n" +
		"⬛⬛\U0001F7E8\U0001F7E9⬛\n" +
		"\U0001F7E9\U0001F7E9\U0001F7E9\U0001F7E8⬛\n" +
		"\U0001F7E9\U0001F7E9\U0001F7E9\U0001F7E9\U0001F7E9"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	router http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.router = NewRouter(RouterConfig{
		Logger:             testutil.NopLogger(),
		Storage:            s.app.Storage,
		ScoringService:     s.app.ScoringService,
		OTPService:         s.app.OTPService,
		LeaderboardService: s.app.LeaderboardService,
		Authorizer:         s.app.Authorizer,
		SignatureValidator: s.app.SignatureValidator,
	})
}

func (s *APISuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// issueCode requests an OTP for testPhone with a predetermined code
func (s *APISuite) issueCode(code string) {
	s.app.MockRandom.QueueString(code)
	req := httptest.NewRequest(http.MethodPost, "/otp?phoneNumber="+url.QueryEscape(testPhone), nil)
	rec := s.do(req)
	s.Require().Equal(http.StatusOK, rec.Code)
}

// signWebhook computes the relay provider's signature for a form post
func (s *APISuite) signWebhook(requestURI string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	payload := testBaseURL + requestURI
	for _, k := range keys {
		payload += k + form.Get(k)
	}

	mac := hmac.New(sha1.New, []byte(factory.TestRelaySecret.AuthToken))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *APISuite) postWebhook(form url.Values, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/sms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Twilio-Signature", signature)
	return s.do(req)
}

// Health tests

func (s *APISuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

// OTP endpoint tests

func (s *APISuite) TestOTPIssueSendsCode() {
	s.app.MockRandom.QueueString("123456")

	req := httptest.NewRequest(http.MethodPost, "/otp?phoneNumber="+url.QueryEscape(testPhone), nil)
	rec := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("OTP sent successfully", rec.Body.String())

	sent := s.app.MockNotifier.LastSent()
	s.Require().NotNil(sent)
	s.Equal(testPhone, sent.To)
	s.Contains(sent.Body, "123456")
}

func (s *APISuite) TestOTPIssueMissingPhoneNumber() {
	req := httptest.NewRequest(http.MethodPost, "/otp", nil)
	rec := s.do(req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Missing phoneNumber query parameter", rec.Body.String())
}

func (s *APISuite) TestOTPVerifyCorrectCode() {
	s.issueCode("123456")

	req := httptest.NewRequest(http.MethodPost, "/otp?phoneNumber="+url.QueryEscape(testPhone)+"&otp=123456", nil)
	rec := s.do(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("OTP verified successfully", rec.Body.String())
}

func (s *APISuite) TestOTPVerifyWrongCode() {
	s.issueCode("123456")

	req := httptest.NewRequest(http.MethodPost, "/otp?phoneNumber="+url.QueryEscape(testPhone)+"&otp=654321", nil)
	rec := s.do(req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("Incorrect OTP", rec.Body.String())
}

func (s *APISuite) TestOTPVerifyUnknownPhone() {
	req := httptest.NewRequest(http.MethodPost, "/otp?phoneNumber=%2B15559999999&otp=123456", nil)
	rec := s.do(req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

// Scores endpoint tests

func (s *APISuite) TestScoresGetRequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/scores/900", nil)
	rec := s.do(req)

	s.Equal(http.StatusUnauthorized, rec.Code)

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errResp))
	s.Equal("UNAUTHORIZED", errResp.Error.Code)
}

func (s *APISuite) TestScoresGetRejectsBadToken() {
	s.issueCode("123456")

	req := httptest.NewRequest(http.MethodGet, "/scores/900", nil)
	req.Header.Set("Authorization", testPhone+":000000")
	rec := s.do(req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *APISuite) TestScoresGetEmptyBoard() {
	s.issueCode("123456")

	req := httptest.NewRequest(http.MethodGet, "/scores/900", nil)
	req.Header.Set("Authorization", testPhone+":123456")
	rec := s.do(req)

	s.Equal(http.StatusOK, rec.Code)

	var board struct {
		PuzzleNumber int   `json:"puzzle_number"`
		Entries      []any `json:"entries"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &board))
	s.Equal(900, board.PuzzleNumber)
	s.Empty(board.Entries)
}

func (s *APISuite) TestScoresGetRejectsNonNumericPuzzle() {
	s.issueCode("123456")

	req := httptest.NewRequest(http.MethodGet, "/scores/abc", nil)
	req.Header.Set("Authorization", testPhone+":123456")
	rec := s.do(req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestScoresSubmitAndReadBack() {
	s.issueCode("123456")

	body := strings.NewReader(`{"message":` + jsonString(validMessage) + `}`)
	req := httptest.NewRequest(http.MethodPost, "/scores", body)
	req.Header.Set("Authorization", testPhone+":123456")
	req.Header.Set("Content-Type", "application/json")
	rec := s.do(req)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var submitted struct {
		Result struct {
			PuzzleNumber int `json:"puzzle_number"`
			TriesUsed    int `json:"tries_used"`
			Score        int `json:"score"`
		} `json:"result"`
		Leaderboard struct {
			Entries []struct {
				Rank  int `json:"rank"`
				Score int `json:"score"`
			} `json:"entries"`
		} `json:"leaderboard"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &submitted))
	s.Equal(900, submitted.Result.PuzzleNumber)
	s.Equal(3, submitted.Result.TriesUsed)
	s.Equal(25, submitted.Result.Score) // 4*3 + 2*2 + 9*1
	s.Require().Len(submitted.Leaderboard.Entries, 1)
	s.Equal(1, submitted.Leaderboard.Entries[0].Rank)

	getReq := httptest.NewRequest(http.MethodGet, "/scores/900", nil)
	getReq.Header.Set("Authorization", testPhone+":123456")
	getRec := s.do(getReq)

	s.Equal(http.StatusOK, getRec.Code)
	s.Contains(getRec.Body.String(), `"rank":1`)
}

func (s *APISuite) TestScoresSubmitRejectsInvalidScorecard() {
	s.issueCode("123456")

	req := httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(`{"message":"not a scorecard"}`))
	req.Header.Set("Authorization", testPhone+":123456")
	req.Header.Set("Content-Type", "application/json")
	rec := s.do(req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "INVALID_SCORECARD")
}

func (s *APISuite) TestScoresSubmitRejectsEmptyMessage() {
	s.issueCode("123456")

	req := httptest.NewRequest(http.MethodPost, "/scores", strings.NewReader(`{"message":""}`))
	req.Header.Set("Authorization", testPhone+":123456")
	req.Header.Set("Content-Type", "application/json")
	rec := s.do(req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "INVALID_REQUEST")
}

// Webhook tests

func (s *APISuite) TestWebhookAcceptsSignedScorecard() {
	form := url.Values{}
	form.Set("From", testPhone)
	form.Set("Body", validMessage)

	rec := s.postWebhook(form, s.signWebhook("/sms", form))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Wordle score saved successfully", rec.Body.String())
}

func (s *APISuite) TestWebhookSubmissionAppearsOnLeaderboard() {
	form := url.Values{}
	form.Set("From", testPhone)
	form.Set("Body", validMessage)
	rec := s.postWebhook(form, s.signWebhook("/sms", form))
	s.Require().Equal(http.StatusOK, rec.Code)

	s.issueCode("123456")
	getReq := httptest.NewRequest(http.MethodGet, "/scores/900", nil)
	getReq.Header.Set("Authorization", testPhone+":123456")
	getRec := s.do(getReq)

	s.Equal(http.StatusOK, getRec.Code)
	s.Contains(getRec.Body.String(), `"score":25`)
}

func (s *APISuite) TestWebhookRejectsMissingSignature() {
	form := url.Values{}
	form.Set("From", testPhone)
	form.Set("Body", validMessage)

	rec := s.postWebhook(form, "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Error saving Wordle score", rec.Body.String())
}

func (s *APISuite) TestWebhookRejectsTamperedBody() {
	form := url.Values{}
	form.Set("From", testPhone)
	form.Set("Body", validMessage)
	signature := s.signWebhook("/sms", form)

	form.Set("Body", "Wordle 900 1/6\n\n\U0001F7E9\U0001F7E9\U0001F7E9\U0001F7E9\U0001F7E9")
	rec := s.postWebhook(form, signature)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Error saving Wordle score", rec.Body.String())
}

func (s *APISuite) TestWebhookRejectsInvalidScorecard() {
	form := url.Values{}
	form.Set("From", testPhone)
	form.Set("Body", "not a scorecard")

	rec := s.postWebhook(form, s.signWebhook("/sms", form))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Error saving Wordle score", rec.Body.String())
}

func (s *APISuite) TestWebhookRejectsMissingFrom() {
	form := url.Values{}
	form.Set("Body", validMessage)

	rec := s.postWebhook(form, s.signWebhook("/sms", form))

	s.Equal(http.StatusInternalServerError, rec.Code)
}

// jsonString JSON-encodes a string for embedding in a request body
func jsonString(v string) string {
	data, _ := json.Marshal(v)
	return string(data)
}
