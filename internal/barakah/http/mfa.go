package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

type TOTPEnrollResponse struct {
	// ProvisioningURI is the otpauth:// URL to render as a QR code.
	ProvisioningURI string `json:"provisioning_uri"`
}

type TOTPVerifyRequest struct {
	Code string `json:"code" example:"123456"`
}

// MFAHandler owns TOTP enrollment for back-office accounts.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /v1/mfa/totp/enroll
//
//	@Summary		Start TOTP enrollment
//	@Description	Generates a TOTP secret for the authenticated user and returns the provisioning URI.
//	@Description	MFA is not enforced until the code is verified.
//	@Tags			MFA
//	@Produce		json
//	@Success		200	{object}	TOTPEnrollResponse	"Provisioning URI"
//	@Failure		500	{object}	map[string]string	"Internal server error"
//	@Router			/v1/mfa/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uri, err := h.MFAService.Enroll(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		slogx.FromContext(ctx).Error("totp enrollment failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not start enrollment")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TOTPEnrollResponse{ProvisioningURI: uri})
}

// HandleVerify handles POST /v1/mfa/totp/verify
//
//	@Summary		Verify TOTP code and enable MFA
//	@Description	Confirms enrollment by validating a code from the authenticator app.
//	@Tags			MFA
//	@Accept			json
//	@Produce		json
//	@Param			request	body	TOTPVerifyRequest	true	"Code from authenticator app"
//	@Success		204		"MFA enabled"
//	@Failure		400		{object}	map[string]string	"No enrollment in progress"
//	@Failure		401		{object}	map[string]string	"Invalid code"
//	@Router			/v1/mfa/totp/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TOTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	err := h.MFAService.Activate(ctx, httpx.UserIDFromCtx(ctx), req.Code)
	switch {
	case errors.Is(err, service.ErrMFANotEnrolled):
		httpx.WriteError(w, http.StatusBadRequest, "not_enrolled", "start enrollment before verifying")
		return
	case errors.Is(err, service.ErrInvalidTOTP):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_totp", "the TOTP code is incorrect")
		return
	case err != nil:
		slogx.FromContext(ctx).Error("totp verification failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not verify code")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
