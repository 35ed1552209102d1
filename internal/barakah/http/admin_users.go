package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/store"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

type AdminUserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	MFAEnabled bool   `json:"mfa_enabled"`
	CreatedAt  string `json:"created_at"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" example:"admin"`
}

// AdminUsersHandler owns back-office user management.
type AdminUsersHandler struct {
	Store store.Store
}

// HandleList handles GET /v1/admin/users
//
//	@Summary		List users
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		AdminUserResponse	"Users, newest first"
//	@Failure		500	{object}	map[string]string	"Internal server error"
//	@Router			/v1/admin/users [get].
func (h *AdminUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.Store.Users().ListUsers(ctx)
	if err != nil {
		log.Error("listing users failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not list users")
		return
	}

	roles, err := h.Store.Roles().ListAll(ctx)
	if err != nil {
		log.Error("listing roles failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not list users")
		return
	}
	roleNames := make(map[string]string, len(roles))
	for _, role := range roles {
		roleNames[role.ID] = role.Name
	}

	out := make([]AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, AdminUserResponse{
			ID:         u.ID,
			Email:      u.Email,
			Name:       u.Name,
			Role:       roleNames[u.RoleID],
			MFAEnabled: u.MFAEnabled != nil,
			CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleChangeRole handles PUT /v1/admin/users/{id}/role
//
//	@Summary		Change a user's role
//	@Description	Assigns the named role and revokes the user's sessions so the change
//	@Description	takes effect on their next sign-in.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string				true	"User id"
//	@Param			request	body	ChangeRoleRequest	true	"Role name"
//	@Success		204		"Role changed"
//	@Failure		400		{object}	map[string]string	"Unknown role"
//	@Failure		404		{object}	map[string]string	"Unknown user"
//	@Router			/v1/admin/users/{id}/role [put].
func (h *AdminUsersHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("id")

	var req ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	role, err := h.Store.Roles().GetRoleByName(ctx, req.Role)
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown_role", "no such role")
		return
	}
	if err != nil {
		slogx.FromContext(ctx).Error("loading role failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not change role")
		return
	}

	if err := h.Store.Users().UpdateUserRole(ctx, userID, role.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "no such user")
			return
		}
		slogx.FromContext(ctx).Error("changing role failed", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not change role")
		return
	}

	// Privilege changes must not ride on existing sessions.
	if err := h.Store.Sessions().RevokeSessionsForUser(ctx, userID, time.Now().UTC()); err != nil {
		slogx.FromContext(ctx).Warn("revoking sessions after role change failed", "user_id", userID, "err", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/admin/users/{id}
//
//	@Summary		Delete a user
//	@Description	Admins cannot delete their own account.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"User id"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	map[string]string	"Attempted self-deletion"
//	@Failure		404	{object}	map[string]string	"Unknown user"
//	@Failure		409	{object}	map[string]string	"User has recorded donations"
//	@Router			/v1/admin/users/{id} [delete].
func (h *AdminUsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("id")

	if userID == httpx.UserIDFromCtx(ctx) {
		httpx.WriteError(w, http.StatusBadRequest, "self_delete", "you cannot delete your own account")
		return
	}

	if err := h.Store.Sessions().RevokeSessionsForUser(ctx, userID, time.Now().UTC()); err != nil {
		slogx.FromContext(ctx).Warn("revoking sessions before deletion failed", "user_id", userID, "err", err)
	}

	if err := h.Store.Users().DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "no such user")
			return
		}
		if errors.Is(err, store.ErrInUse) {
			httpx.WriteError(w, http.StatusConflict, "user_has_donations",
				"accounts with recorded donations cannot be deleted")
			return
		}
		slogx.FromContext(ctx).Error("deleting user failed", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "could not delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
