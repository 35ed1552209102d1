package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/chatbot"
	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/service"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
	"github.com/AnthonyMuncherz/barakahbot/pkg/slogx"
)

type ChatRequest struct {
	// History is the prior conversation, oldest first. The client owns it;
	// the server keeps no chat state.
	History []chatbot.Turn `json:"history,omitempty"`
	Message string         `json:"message" example:"How is nisab determined?"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler fronts the Zakat assistant.
type ChatHandler struct {
	ChatService *service.ChatService
}

// ServeHTTP handles POST /v1/chat
//
//	@Summary		Ask the Zakat assistant
//	@Description	Sends the conversation to the assistant and returns one reply. Upstream
//	@Description	failures surface as a visible error, never a silent retry.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChatRequest	true	"Conversation history and new message"
//	@Success		200		{object}	ChatResponse	"Assistant reply"
//	@Failure		400		{object}	map[string]string	"Empty message"
//	@Failure		502		{object}	map[string]string	"Assistant unavailable"
//	@Router			/v1/chat [post].
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	reply, err := h.ChatService.Reply(ctx, req.History, req.Message)
	if errors.Is(err, service.ErrChatEmpty) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "message must not be empty")
		return
	}
	if err != nil {
		slogx.FromContext(ctx).Error("chat completion failed", "err", err)
		httpx.WriteError(w, http.StatusBadGateway, "upstream_error", "the assistant is unavailable right now")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}
