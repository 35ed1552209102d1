package http

import (
	"errors"
	"net/http"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/domain"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

type CampaignResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	GoalAmount  int64  `json:"goal_amount"` // MYR cents
	Collected   int64  `json:"collected"`   // MYR cents
	Active      bool   `json:"active"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toCampaignResponse(c domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		CategoryID:  c.CategoryID,
		GoalAmount:  c.GoalAmount,
		Collected:   c.Collected,
		Active:      c.Active,
	}
}

// CampaignsHandler serves the public campaign catalogue.
type CampaignsHandler struct {
	CampaignService *service.CampaignService
}

// HandleList handles GET /v1/campaigns
//
//	@Summary		List campaigns
//	@Description	Returns active campaigns. Pass all=true to include closed ones.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			all	query		bool	false	"Include inactive campaigns"
//	@Success		200	{array}		CampaignResponse	"Campaigns"
//	@Failure		500	{object}	map[string]string	"Internal server error"
//	@Router			/v1/campaigns [get].
func (h *CampaignsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly := r.URL.Query().Get("all") != "true"
	campaigns, err := h.CampaignService.List(ctx, activeOnly)
	if err != nil {
		slogx.FromContext(ctx).Error("listing campaigns failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not list campaigns")
		return
	}

	out := make([]CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /v1/campaigns/{id}
//
//	@Summary		Get one campaign
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		string	true	"Campaign id"
//	@Success		200	{object}	CampaignResponse	"Campaign"
//	@Failure		404	{object}	map[string]string	"Unknown campaign"
//	@Router			/v1/campaigns/{id} [get].
func (h *CampaignsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaign, err := h.CampaignService.Get(ctx, r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "no such campaign")
		return
	}
	if err != nil {
		slogx.FromContext(ctx).Error("loading campaign failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not load campaign")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

// HandleCategories handles GET /v1/categories
//
//	@Summary		List campaign categories
//	@Tags			Campaigns
//	@Produce		json
//	@Success		200	{array}		CategoryResponse	"Categories"
//	@Failure		500	{object}	map[string]string	"Internal server error"
//	@Router			/v1/categories [get].
func (h *CampaignsHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.CampaignService.ListCategories(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("listing categories failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not list categories")
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
