package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

type RegisterRequest struct {
	Email    string `json:"email" example:"donor@example.com"`
	Name     string `json:"name" example:"Aisha"`
	Password string `json:"password" example:"correct horse battery"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"donor@example.com"`
	Password string `json:"password" example:"correct horse battery"`
	TOTPCode string `json:"totp_code,omitempty" example:"123456"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthHandler owns registration, login and logout.
type AuthHandler struct {
	AuthService      *service.AuthService
	SessionMaxAgeSec int
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register a donor account
//	@Description	Creates a donor account. Emails are unique and case-insensitive.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"New account details"
//	@Success		201		{object}	UserResponse	"Created account"
//	@Failure		400		{object}	map[string]string	"Malformed email or weak password"
//	@Failure		409		{object}	map[string]string	"Email already registered"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	user, err := h.AuthService.Register(ctx, req.Email, req.Name, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "email_taken", "an account with this email already exists")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "email must be valid and password at least 8 characters")
		return
	case err != nil:
		log.Error("registration failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not create account")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Verifies credentials, opens a session and sets the session cookie.
//	@Description	Accounts with TOTP enabled must supply totp_code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	UserResponse	"Logged-in account"
//	@Failure		401		{object}	map[string]string	"Bad credentials or TOTP code"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	credential, user, err := h.AuthService.Login(ctx, req.Email, req.Password, req.TOTPCode)
	switch {
	case errors.Is(err, service.ErrMFARequired):
		httpx.WriteError(w, http.StatusUnauthorized, "totp_required", "this account requires a TOTP code")
		return
	case errors.Is(err, service.ErrInvalidTOTP):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_totp", "the TOTP code is incorrect")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect")
		return
	case err != nil:
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not log in")
		return
	}

	SetSessionCookie(w, credential, h.SessionMaxAgeSec)
	httpx.WriteJSON(w, http.StatusOK, UserResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Log out
//	@Description	Revokes the current session and clears the cookie. Idempotent.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"Session revoked"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sessionID := httpx.SessionIDFromCtx(ctx); sessionID != "" {
		if err := h.AuthService.Logout(ctx, sessionID); err != nil {
			slogx.FromContext(ctx).Warn("logout failed", "session_id", sessionID, "err", err)
		}
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
