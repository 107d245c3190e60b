package handler

import (
	"errors"
	"net/http"

	"github.com/Rrens/kopiloka/internal/api/middleware"
	"github.com/Rrens/kopiloka/internal/api/response"
	"github.com/Rrens/kopiloka/internal/domain"
	"github.com/Rrens/kopiloka/internal/service"
	"github.com/rs/zerolog/log"
)

// statusClientClosedRequest is reported when the client leaves before the reply
const statusClientClosedRequest = 499

// ChatHandler handles the assistant chat
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// History returns the conversation
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	conv, err := h.chatService.History(r.Context(), sessionID)
	if err != nil {
		chatError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"messages":    conv.Turns,
		"suggestions": conv.Suggestions(),
		"pending":     h.chatService.Pending(sessionID),
	})
}

// Send posts a message and waits for the assistant's reply
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input domain.ChatInput
	if !decodeAndValidate(w, r, &input) {
		return
	}
	sessionID, _ := middleware.GetSessionID(r.Context())

	exchange, err := h.chatService.Send(r.Context(), sessionID, input.Message)
	if err != nil {
		chatError(w, err)
		return
	}
	response.OK(w, exchange)
}

// Reset clears the conversation
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	conv, err := h.chatService.Reset(r.Context(), sessionID)
	if err != nil {
		chatError(w, err)
		return
	}
	response.OK(w, map[string]any{"messages": conv.Turns})
}

// Suggestions returns the suggested questions
func (h *ChatHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.GetSessionID(r.Context())

	suggestions, err := h.chatService.Suggestions(r.Context(), sessionID)
	if err != nil {
		chatError(w, err)
		return
	}
	response.OK(w, suggestions)
}

func chatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		response.BadRequest(w, err.Error())
	case errors.Is(err, service.ErrReplyPending):
		response.Conflict(w, err.Error())
	case service.IsReplyDropped(err):
		response.Error(w, statusClientClosedRequest, "reply cancelled")
	default:
		log.Error().Err(err).Msg("chat operation failed")
		response.InternalError(w, "chat operation failed")
	}
}
