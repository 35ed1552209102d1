package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

type CampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	GoalAmount  int64  `json:"goal_amount"` // MYR cents
	Active      bool   `json:"active"`
}

// AdminCampaignsHandler owns campaign management. All routes sit behind the
// admin gate.
type AdminCampaignsHandler struct {
	CampaignService *service.CampaignService
}

// HandleCreate handles POST /v1/admin/campaigns
//
//	@Summary		Create a campaign
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CampaignRequest	true	"Campaign details"
//	@Success		201		{object}	CampaignResponse	"Created campaign"
//	@Failure		400		{object}	map[string]string	"Missing title, bad goal or unknown category"
//	@Router			/v1/admin/campaigns [post].
func (h *AdminCampaignsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	campaign, err := h.CampaignService.Create(ctx, req.Title, req.Description, req.CategoryID, req.GoalAmount)
	if errors.Is(err, service.ErrCampaignInvalid) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_campaign", err.Error())
		return
	}
	if err != nil {
		slogx.FromContext(ctx).Error("creating campaign failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not create campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCampaignResponse(campaign))
}

// HandleUpdate handles PUT /v1/admin/campaigns/{id}
//
//	@Summary		Update a campaign
//	@Description	Replaces the mutable fields. The collected total is never writable.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Campaign id"
//	@Param			request	body		CampaignRequest	true	"New campaign details"
//	@Success		200		{object}	CampaignResponse	"Updated campaign"
//	@Failure		400		{object}	map[string]string	"Invalid fields"
//	@Failure		404		{object}	map[string]string	"Unknown campaign"
//	@Router			/v1/admin/campaigns/{id} [put].
func (h *AdminCampaignsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	campaign, err := h.CampaignService.Update(ctx, r.PathValue("id"),
		req.Title, req.Description, req.CategoryID, req.GoalAmount, req.Active)
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "no such campaign")
		return
	case errors.Is(err, service.ErrCampaignInvalid):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_campaign", err.Error())
		return
	case err != nil:
		slogx.FromContext(ctx).Error("updating campaign failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not update campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

// HandleDelete handles DELETE /v1/admin/campaigns/{id}
//
//	@Summary		Delete a campaign
//	@Description	Campaigns that have already collected funds cannot be deleted; deactivate them instead.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Campaign id"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	map[string]string	"Unknown campaign"
//	@Failure		409	{object}	map[string]string	"Campaign has collected funds"
//	@Router			/v1/admin/campaigns/{id} [delete].
func (h *AdminCampaignsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.CampaignService.Delete(ctx, r.PathValue("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "no such campaign")
		return
	case errors.Is(err, service.ErrCampaignHasFunds):
		httpx.WriteError(w, http.StatusConflict, "campaign_has_funds",
			"deactivate campaigns that have collected funds instead of deleting them")
		return
	case err != nil:
		slogx.FromContext(ctx).Error("deleting campaign failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not delete campaign")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
