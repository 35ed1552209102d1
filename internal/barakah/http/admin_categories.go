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

type CategoryRequest struct {
	Name        string `json:"name" example:"Education"`
	Description string `json:"description"`
}

// AdminCategoriesHandler owns category management.
type AdminCategoriesHandler struct {
	CampaignService *service.CampaignService
}

// HandleCreate handles POST /v1/admin/categories
//
//	@Summary		Create a category
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Category details"
//	@Success		201		{object}	CategoryResponse	"Created category"
//	@Failure		400		{object}	map[string]string	"Missing name"
//	@Router			/v1/admin/categories [post].
func (h *AdminCategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	category, err := h.CampaignService.CreateCategory(ctx, req.Name, req.Description)
	if errors.Is(err, service.ErrCampaignInvalid) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_category", "name is required")
		return
	}
	if err != nil {
		slogx.FromContext(ctx).Error("creating category failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not create category")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	})
}

// HandleDelete handles DELETE /v1/admin/categories/{id}
//
//	@Summary		Delete a category
//	@Description	Fails while campaigns still reference the category.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Category id"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	map[string]string	"Unknown category"
//	@Failure		409	{object}	map[string]string	"Category still in use"
//	@Router			/v1/admin/categories/{id} [delete].
func (h *AdminCategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.CampaignService.DeleteCategory(ctx, r.PathValue("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "no such category")
		return
	case errors.Is(err, store.ErrInUse):
		httpx.WriteError(w, http.StatusConflict, "category_in_use", "campaigns still reference this category")
		return
	case err != nil:
		slogx.FromContext(ctx).Error("deleting category failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
