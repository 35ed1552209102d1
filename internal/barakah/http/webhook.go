package http

import (
	"io"
	"net/http"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/payments"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

// signatureHeader carries the provider's timestamped HMAC over the payload.
const signatureHeader = "Barakah-Signature"

const maxWebhookBody = 1 << 20

// WebhookHandler receives payment completion notifications. It sits outside
// the session gate; the HMAC signature is the only authentication.
type WebhookHandler struct {
	DonationService *service.DonationService
	Secret          string
}

// ServeHTTP handles POST /v1/webhooks/payments
//
//	@Summary		Payment webhook
//	@Description	Receives signed completion events from the payment provider. Deliveries are
//	@Description	at-least-once and unordered; completed events are applied idempotently per
//	@Description	payment reference.
//	@Tags			Webhooks
//	@Accept			json
//	@Param			Barakah-Signature	header	string	true	"t=<unix>,v1=<hex hmac-sha256>"
//	@Success		200	"Event accepted"
//	@Failure		400	{object}	map[string]string	"Bad signature or payload"
//	@Failure		500	{object}	map[string]string	"Event could not be applied; provider should retry"
//	@Router			/v1/webhooks/payments [post].
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "could not read body")
		return
	}

	if err := payments.VerifySignature(payload, r.Header.Get(signatureHeader), h.Secret, payments.DefaultSignatureTolerance, time.Now()); err != nil {
		log.Warn("webhook signature rejected", "err", err)
		httpx.WriteError(w, http.StatusBadRequest, "invalid_signature", "signature verification failed")
		return
	}

	event, err := payments.ParseEvent(payload)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed event payload")
		return
	}

	if event.Type != payments.EventCheckoutCompleted {
		// Unknown event types are acknowledged so the provider stops
		// redelivering them.
		log.Debug("ignoring webhook event", "type", event.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.DonationService.RecordCompleted(ctx, event.Data.Object); err != nil {
		log.Error("recording completed donation failed", "event_id", event.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "event not applied")
		return
	}

	w.WriteHeader(http.StatusOK)
}
