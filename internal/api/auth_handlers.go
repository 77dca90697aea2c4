package api

import (
	"encoding/json"
	"net/http"

	"github.com/deveshkun/Rental-Fleet/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

func (h *AuthHandler) SendEmailOTP(w http.ResponseWriter, r *http.Request) {
	var req SendEmailOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SendEmailOTP(req.Email, req.Purpose); err != nil {
		writeServiceError(w, err, "Failed to send OTP")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "OTP sent"})
}

func (h *AuthHandler) SendSMSOTP(w http.ResponseWriter, r *http.Request) {
	var req SendSMSOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SendSMSOTP(req.Phone, req.Purpose); err != nil {
		writeServiceError(w, err, "Failed to send OTP")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "OTP sent"})
}

func (h *AuthHandler) VerifyEmailOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyEmailOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.service.VerifyEmailOTP(req.Email, req.OTP)
	if err != nil {
		writeServiceError(w, err, "Invalid OTP")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
