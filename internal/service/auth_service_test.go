package service

import (
	"testing"
	"time"

	"github.com/deveshkun/Rental-Fleet/internal/db"
	apperrors "github.com/deveshkun/Rental-Fleet/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeOTPRepo struct {
	otps   []*db.EmailOTP
	nextID int
}

func (f *fakeOTPRepo) Save(otp *db.EmailOTP) error {
	f.nextID++
	otp.ID = f.nextID
	stored := *otp
	f.otps = append(f.otps, &stored)
	return nil
}

func (f *fakeOTPRepo) LatestActive(identifier, purpose string, now time.Time) (*db.EmailOTP, error) {
	var latest *db.EmailOTP
	for _, otp := range f.otps {
		if otp.Identifier != identifier || otp.Purpose != purpose || !otp.ExpiresAt.After(now) {
			continue
		}
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) {
			latest = otp
		}
	}
	return latest, nil
}

func (f *fakeOTPRepo) Delete(id int) error {
	for i, otp := range f.otps {
		if otp.ID == id {
			f.otps = append(f.otps[:i], f.otps[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOTPSender struct {
	lastEmail string
	lastPhone string
	lastCode  string
	err       error
}

func (f *fakeOTPSender) SendOTPEmail(toEmail, code string) error {
	f.lastEmail = toEmail
	f.lastCode = code
	return f.err
}

func (f *fakeOTPSender) SendOTPSMS(toPhone, code string) error {
	f.lastPhone = toPhone
	f.lastCode = code
	return f.err
}

func TestAuthService_SendEmailOTP(t *testing.T) {
	repo := &fakeOTPRepo{}
	sender := &fakeOTPSender{}
	svc := NewAuthService(repo, sender)

	err := svc.SendEmailOTP("dev@example.com", PurposeSignup)
	require.NoError(t, err)

	require.Len(t, repo.otps, 1)
	stored := repo.otps[0]
	assert.Equal(t, "dev@example.com", stored.Identifier)
	assert.Equal(t, ChannelEmail, stored.Channel)
	assert.Len(t, sender.lastCode, 6)

	// The code is stored hashed, never in clear.
	assert.NotEqual(t, sender.lastCode, stored.CodeHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(sender.lastCode)))
	assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), stored.ExpiresAt, 5*time.Second)
}

func TestAuthService_SendEmailOTP_InvalidPurpose(t *testing.T) {
	svc := NewAuthService(&fakeOTPRepo{}, &fakeOTPSender{})

	err := svc.SendEmailOTP("dev@example.com", "reset")
	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Code)
}

func TestAuthService_SendEmailOTP_MissingEmail(t *testing.T) {
	svc := NewAuthService(&fakeOTPRepo{}, &fakeOTPSender{})

	err := svc.SendEmailOTP("", PurposeLogin)
	require.Error(t, err)
}

func TestAuthService_SendSMSOTP(t *testing.T) {
	repo := &fakeOTPRepo{}
	sender := &fakeOTPSender{}
	svc := NewAuthService(repo, sender)

	err := svc.SendSMSOTP("+919800000000", PurposeLogin)
	require.NoError(t, err)
	assert.Equal(t, "+919800000000", sender.lastPhone)
	require.Len(t, repo.otps, 1)
	assert.Equal(t, ChannelSMS, repo.otps[0].Channel)
}

func TestAuthService_VerifyEmailOTP(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeOTPRepo{}
	sender := &fakeOTPSender{}
	svc := NewAuthService(repo, sender)

	require.NoError(t, svc.SendEmailOTP("dev@example.com", PurposeLogin))

	tokenString, err := svc.VerifyEmailOTP("dev@example.com", sender.lastCode)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "dev@example.com", claims["email"])

	// The OTP is consumed: a second verify fails.
	_, err = svc.VerifyEmailOTP("dev@example.com", sender.lastCode)
	require.Error(t, err)
}

func TestAuthService_VerifyEmailOTP_WrongCode(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeOTPRepo{}
	sender := &fakeOTPSender{}
	svc := NewAuthService(repo, sender)

	require.NoError(t, svc.SendEmailOTP("dev@example.com", PurposeLogin))

	_, err := svc.VerifyEmailOTP("dev@example.com", "000000")
	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 401, httpErr.Code)
	assert.Equal(t, "Invalid OTP", httpErr.Message)
}

func TestAuthService_VerifyEmailOTP_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeOTPRepo{}
	sender := &fakeOTPSender{}
	svc := NewAuthService(repo, sender)

	require.NoError(t, svc.SendEmailOTP("dev@example.com", PurposeLogin))
	repo.otps[0].ExpiresAt = time.Now().UTC().Add(-time.Minute)

	_, err := svc.VerifyEmailOTP("dev@example.com", sender.lastCode)
	require.Error(t, err)
}
