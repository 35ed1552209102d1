package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var ErrMFANotEnrolled = errors.New("service: mfa enrollment not started")

// MFAService manages TOTP enrollment for back-office accounts. Enrollment
// is two-step: Enroll stores a fresh secret and returns the provisioning
// URI, Activate flips MFA on once the user proves they can produce a code.
type MFAService struct {
	Store  store.Store
	Issuer string
}

// Enroll generates a new TOTP secret for the user and returns the
// otpauth:// provisioning URI to render as a QR code. Re-enrolling
// replaces any previous, not-yet-activated secret.
func (s *MFAService) Enroll(ctx context.Context, userID string) (string, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading user: %w", err)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("generating totp secret: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return "", fmt.Errorf("storing totp secret: %w", err)
	}
	return key.URL(), nil
}

// Activate confirms the enrollment by validating a code against the stored
// secret, then enables MFA for the account.
func (s *MFAService) Activate(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading user: %w", err)
	}
	if user.MFASecret == nil || *user.MFASecret == "" {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidTOTP
	}
	return s.Store.Users().EnableMFA(ctx, userID)
}

// Deactivate turns MFA off and revokes all of the user's sessions so a
// stolen cookie cannot outlive the downgrade.
func (s *MFAService) Deactivate(ctx context.Context, userID string) error {
	if err := s.Store.Users().DisableMFA(ctx, userID); err != nil {
		return fmt.Errorf("disabling mfa: %w", err)
	}
	return s.Store.Sessions().RevokeSessionsForUser(ctx, userID, time.Now().UTC())
}
