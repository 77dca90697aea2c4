package service

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/db"
	apperrors "github.com/deveshkun/Rental-Fleet/internal/errors"
	"github.com/deveshkun/Rental-Fleet/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpValidity = 5 * time.Minute

	ChannelEmail = "email"
	ChannelSMS   = "sms"

	PurposeLogin  = "login"
	PurposeSignup = "signup"
)

// OTPSender delivers one-time passwords over a concrete channel.
type OTPSender interface {
	SendOTPEmail(toEmail, code string) error
	SendOTPSMS(toPhone, code string) error
}

type AuthService interface {
	SendEmailOTP(email, purpose string) error
	SendSMSOTP(phone, purpose string) error
	VerifyEmailOTP(email, otp string) (string, error)
}

type authService struct {
	otps   repository.OTPRepository
	sender OTPSender
}

func NewAuthService(otps repository.OTPRepository, sender OTPSender) AuthService {
	return &authService{otps: otps, sender: sender}
}

func (s *authService) SendEmailOTP(email, purpose string) error {
	if email == "" {
		return apperrors.ErrBadRequest("Email is required")
	}
	code, err := s.issueOTP(email, ChannelEmail, purpose)
	if err != nil {
		return err
	}
	if err := s.sender.SendOTPEmail(email, code); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", email, err)
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

func (s *authService) SendSMSOTP(phone, purpose string) error {
	if phone == "" {
		return apperrors.ErrBadRequest("Phone is required")
	}
	code, err := s.issueOTP(phone, ChannelSMS, purpose)
	if err != nil {
		return err
	}
	if err := s.sender.SendOTPSMS(phone, code); err != nil {
		log.Printf("Failed to send OTP SMS to %s: %v", phone, err)
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

func (s *authService) issueOTP(identifier, channel, purpose string) (string, error) {
	if purpose != PurposeLogin && purpose != PurposeSignup {
		return "", apperrors.ErrBadRequest("Purpose must be login or signup")
	}

	code, err := generateOTPCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash OTP: %w", err)
	}

	now := time.Now().UTC()
	otp := &db.EmailOTP{
		Identifier: identifier,
		Channel:    channel,
		Purpose:    purpose,
		CodeHash:   string(hash),
		ExpiresAt:  now.Add(otpValidity),
		CreatedAt:  now,
	}
	if err := s.otps.Save(otp); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return code, nil
}

// VerifyEmailOTP checks the submitted code against the latest unexpired OTP
// for the address, trying both purposes since the client does not resend the
// purpose on verify. A match consumes the OTP and returns a signed session
// token.
func (s *authService) VerifyEmailOTP(email, otp string) (string, error) {
	if email == "" || otp == "" {
		return "", apperrors.ErrBadRequest("Email and OTP are required")
	}

	now := time.Now().UTC()
	var stored *db.EmailOTP
	for _, purpose := range []string{PurposeLogin, PurposeSignup} {
		candidate, err := s.otps.LatestActive(email, purpose, now)
		if err != nil {
			return "", err
		}
		if candidate != nil && (stored == nil || candidate.CreatedAt.After(stored.CreatedAt)) {
			stored = candidate
		}
	}
	if stored == nil {
		return "", apperrors.ErrUnauthorized("Invalid OTP")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(otp)); err != nil {
		return "", apperrors.ErrUnauthorized("Invalid OTP")
	}

	if err := s.otps.Delete(stored.ID); err != nil {
		log.Printf("Could not delete consumed OTP %d: %v", stored.ID, err)
	}

	return signSessionToken(email)
}

func signSessionToken(email string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour * 1).Unix(), // Token expires in 1 hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
