package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/cryptox"
	"github.com/AnthonyMuncherz/barakahbot/pkg/idx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidCredentials = errors.New("service: invalid email or password")
	ErrEmailTaken         = errors.New("service: email already registered")
	ErrMFARequired        = errors.New("service: totp code required")
	ErrInvalidTOTP        = errors.New("service: invalid totp code")

	// ErrUnauthenticated covers every failed credential resolution:
	// missing/garbled token, unknown/expired/revoked session, deleted user.
	// The gate treats all of them identically (fail closed).
	ErrUnauthenticated = errors.New("service: unauthenticated")
)

// AccessLevel is the typed outcome of resolving a session credential.
type AccessLevel int

const (
	AccessUnauthenticated AccessLevel = iota
	AccessStandard
	AccessAdmin
)

// Access is the request-scoped view of the caller's identity. The identity
// store remains the source of truth; nothing here outlives the request.
type Access struct {
	Level     AccessLevel
	UserID    string
	SessionID string
	Role      string
}

// AuthService owns registration, login, logout and credential resolution.
// The session credential handed to clients is a signed token whose subject
// is a session row id; resolution re-checks that row on every request so
// revocation takes effect immediately.
type AuthService struct {
	Store      store.Store
	SigningKey []byte
	Issuer     string
	SessionTTL time.Duration
}

// Register creates a donor account. Emails are unique, case-insensitive.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("%w: malformed email", ErrInvalidCredentials)
	}
	if len(password) < 8 {
		return domain.User{}, fmt.Errorf("%w: password too short", ErrInvalidCredentials)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	role, err := s.Store.Roles().GetRoleByName(ctx, domain.RoleDonor)
	if err != nil {
		return domain.User{}, fmt.Errorf("loading donor role: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		RoleID:       role.ID,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// Login verifies the password (and TOTP code when the account has MFA
// enabled), opens a session and returns the signed credential for the
// session cookie.
func (s *AuthService) Login(ctx context.Context, email, password, totpCode string) (string, domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("loading user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", domain.User{}, ErrInvalidCredentials
	}

	if user.MFAEnabled != nil {
		if totpCode == "" {
			return "", domain.User{}, ErrMFARequired
		}
		if user.MFASecret == nil || !totp.Validate(totpCode, *user.MFASecret) {
			return "", domain.User{}, ErrInvalidTOTP
		}
	}

	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", domain.User{}, fmt.Errorf("creating session: %w", err)
	}

	token, err := s.signCredential(session)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("signing credential: %w", err)
	}
	return token, user, nil
}

// Logout revokes the session behind the credential. Unknown or already
// revoked sessions are not an error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Store.Sessions().RevokeSession(ctx, sessionID, time.Now().UTC())
}

// ResolveCredential turns a raw credential into a typed Access. Every
// failure path returns AccessUnauthenticated with ErrUnauthenticated; no
// resolution failure is ever fatal to the request.
func (s *AuthService) ResolveCredential(ctx context.Context, credential string) (Access, error) {
	unauthenticated := Access{Level: AccessUnauthenticated}

	sessionID, err := s.verifyCredential(credential)
	if err != nil {
		return unauthenticated, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	session, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		return unauthenticated, fmt.Errorf("%w: session lookup: %w", ErrUnauthenticated, err)
	}
	if !session.Active(time.Now().UTC()) {
		return unauthenticated, fmt.Errorf("%w: session expired or revoked", ErrUnauthenticated)
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		return unauthenticated, fmt.Errorf("%w: user lookup: %w", ErrUnauthenticated, err)
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, user.RoleID)
	if err != nil {
		return unauthenticated, fmt.Errorf("%w: role lookup: %w", ErrUnauthenticated, err)
	}

	level := AccessStandard
	if role.Name == domain.RoleAdmin {
		level = AccessAdmin
	}
	return Access{
		Level:     level,
		UserID:    user.ID,
		SessionID: session.ID,
		Role:      role.Name,
	}, nil
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 24 * time.Hour
}

func (s *AuthService) signCredential(session domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   session.ID,
		Issuer:    s.Issuer,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.SigningKey)
}

func (s *AuthService) verifyCredential(credential string) (string, error) {
	token, err := jwt.ParseWithClaims(credential, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return s.SigningKey, nil
		},
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("credential missing subject")
	}
	return claims.Subject, nil
}
