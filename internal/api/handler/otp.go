package handler

import (
	"log/slog"
	"net/http"

	"wordleboard/internal/api/response"
	"wordleboard/internal/services/otp"
)

// OTPHandler handles code issuance and verification
type OTPHandler struct {
	otp    *otp.Service
	logger *slog.Logger
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(otpService *otp.Service, logger *slog.Logger) *OTPHandler {
	return &OTPHandler{
		otp:    otpService,
		logger: logger,
	}
}

// Issue handles POST /otp?phoneNumber=...
func (h *OTPHandler) Issue(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get("phoneNumber")
	if phoneNumber == "" {
		response.Text(w, http.StatusBadRequest, "Missing phoneNumber query parameter")
		return
	}

	if err := h.otp.Issue(r.Context(), phoneNumber); err != nil {
		h.logger.Error("otp issuance failed", slog.String("error", err.Error()))
		response.Text(w, http.StatusInternalServerError, "Error sending OTP")
		return
	}

	response.Text(w, http.StatusOK, "OTP sent successfully")
}

// Verify handles POST /otp?phoneNumber=...&otp=...
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get("phoneNumber")
	if phoneNumber == "" {
		response.Text(w, http.StatusBadRequest, "Missing phoneNumber query parameter")
		return
	}

	code := r.URL.Query().Get("otp")
	if code == "" {
		response.Text(w, http.StatusBadRequest, "Missing OTP query parameter")
		return
	}

	verified, err := h.otp.Verify(r.Context(), phoneNumber, code)
	if err != nil {
		h.logger.Error("otp verification failed", slog.String("error", err.Error()))
		response.Text(w, http.StatusInternalServerError, "Error verifying OTP")
		return
	}

	if !verified {
		response.Text(w, http.StatusUnauthorized, "Incorrect OTP")
		return
	}

	response.Text(w, http.StatusOK, "OTP verified successfully")
}
