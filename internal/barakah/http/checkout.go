package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

type ZakatCheckoutRequest struct {
	// Amount in MYR cents.
	Amount int64 `json:"amount" example:"50000"`
}

type CampaignCheckoutRequest struct {
	CampaignID string `json:"campaign_id"`
	// Amount in MYR cents.
	Amount int64 `json:"amount" example:"2500"`
}

type CheckoutResponse struct {
	// URL is where the donor's browser goes to pay.
	URL string `json:"url"`
}

type DonationResponse struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	CampaignID *string `json:"campaign_id,omitempty"`
	Amount     int64   `json:"amount"` // MYR cents
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

// CheckoutHandler opens hosted checkout sessions for signed-in donors.
type CheckoutHandler struct {
	DonationService *service.DonationService
}

// HandleZakat handles POST /v1/zakat/checkout
//
//	@Summary		Pay Zakat
//	@Description	Opens a hosted checkout session for a direct Zakat payment and returns its URL.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ZakatCheckoutRequest	true	"Amount in MYR cents"
//	@Success		200		{object}	CheckoutResponse	"Checkout URL"
//	@Failure		400		{object}	map[string]string	"Amount below minimum"
//	@Failure		502		{object}	map[string]string	"Payment provider unavailable"
//	@Router			/v1/zakat/checkout [post].
func (h *CheckoutHandler) HandleZakat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ZakatCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	session, err := h.DonationService.StartZakatCheckout(ctx, httpx.UserIDFromCtx(ctx), req.Amount)
	if err != nil {
		writeCheckoutError(w, ctx, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, CheckoutResponse{URL: session.URL})
}

// HandleCampaign handles POST /v1/donations/checkout
//
//	@Summary		Donate to a campaign
//	@Description	Opens a hosted checkout session for a campaign contribution and returns its URL.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CampaignCheckoutRequest	true	"Campaign and amount in MYR cents"
//	@Success		200		{object}	CheckoutResponse	"Checkout URL"
//	@Failure		400		{object}	map[string]string	"Amount below minimum or campaign closed"
//	@Failure		404		{object}	map[string]string	"Unknown campaign"
//	@Failure		502		{object}	map[string]string	"Payment provider unavailable"
//	@Router			/v1/donations/checkout [post].
func (h *CheckoutHandler) HandleCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CampaignCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	session, err := h.DonationService.StartCampaignCheckout(ctx, httpx.UserIDFromCtx(ctx), req.CampaignID, req.Amount)
	if err != nil {
		writeCheckoutError(w, ctx, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, CheckoutResponse{URL: session.URL})
}

// HandleHistory handles GET /v1/donations
//
//	@Summary		List my donations
//	@Description	Returns the signed-in user's donations, newest first.
//	@Tags			Donations
//	@Produce		json
//	@Success		200	{array}		DonationResponse	"Donations"
//	@Failure		500	{object}	map[string]string	"Internal server error"
//	@Router			/v1/donations [get].
func (h *CheckoutHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donations, err := h.DonationService.History(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		slogx.FromContext(ctx).Error("listing donations failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not list donations")
		return
	}

	out := make([]DonationResponse, 0, len(donations))
	for _, d := range donations {
		out = append(out, DonationResponse{
			ID:         d.ID,
			Kind:       d.Kind,
			CampaignID: d.CampaignID,
			Amount:     d.Amount,
			Currency:   d.Currency,
			Status:     d.Status,
			CreatedAt:  d.CreatedAt.Format(time.RFC3339),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func writeCheckoutError(w http.ResponseWriter, ctx context.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDonationInvalid):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_amount", "amount is below the minimum donation")
	case errors.Is(err, service.ErrCampaignInactive):
		httpx.WriteError(w, http.StatusBadRequest, "campaign_closed", "this campaign is not accepting donations")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "no such campaign")
	default:
		slogx.FromContext(ctx).Error("checkout failed", "err", err)
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "payment provider is unavailable")
	}
}
