// README: Assistant chat handler (quota-guarded message processing).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripdesk/internal/modules/conversation"
	"tripdesk/internal/modules/usage"
	"tripdesk/internal/service"
)

// MessageProcessor is the assistant entry point the handler calls.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, in service.Input) service.Envelope
}

// QuotaService gates each completion-backed turn on the user's allowance.
type QuotaService interface {
	UseRequest(ctx context.Context, uid string) error
}

// TurnSaver persists dialogue turns after a reply is produced.
type TurnSaver interface {
	SaveTurn(ctx context.Context, rec conversation.Record) error
}

type AssistantHandler struct {
	assistant MessageProcessor
	quota     QuotaService
	turns     TurnSaver
	log       *zap.Logger
}

func NewAssistantHandler(assistant MessageProcessor, quota QuotaService, turns TurnSaver, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, quota: quota, turns: turns, log: log}
}

type chatReq struct {
	UID              string `json:"uid"`
	Message          string `json:"message"`
	ConversationID   string `json:"conversationId"`
	Timezone         string `json:"timezone"`
	TimezoneOverride string `json:"timezoneOverride"`
}

// Chat handles POST /api/assistant/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	req.Message = strings.TrimSpace(req.Message)
	if req.UID == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing uid or message")
		return
	}
	if !isValidID(req.UID) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = req.UID
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	if err := h.quota.UseRequest(ctx, req.UID); err != nil {
		if errors.Is(err, usage.ErrQuotaExhausted) {
			writeError(c, http.StatusTooManyRequests, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	env := h.assistant.ProcessMessage(ctx, service.Input{
		Message:          req.Message,
		ConversationID:   req.ConversationID,
		UserID:           req.UID,
		FrontendTimezone: req.Timezone,
		TimezoneOverride: req.TimezoneOverride,
	})

	h.persistTurns(ctx, req, env)
	writeJSON(c, http.StatusOK, env)
}

// persistTurns records the exchange for future context windows. Persistence
// failures are logged and swallowed: the reply already exists.
func (h *AssistantHandler) persistTurns(ctx context.Context, req chatReq, env service.Envelope) {
	records := []conversation.Record{
		{
			ConversationID: req.ConversationID,
			Role:           conversation.RoleUser,
			TurnType:       conversation.TypeMessage,
			Content:        req.Message,
		},
		{
			ConversationID: req.ConversationID,
			Role:           conversation.RoleAssistant,
			TurnType:       turnTypeFor(env.Type),
			Content:        env.Message,
		},
	}
	for _, rec := range records {
		if err := h.turns.SaveTurn(ctx, rec); err != nil {
			h.log.Warn("turn persistence failed",
				zap.String("conversation_id", rec.ConversationID), zap.Error(err))
			return
		}
	}
}

// turnTypeFor keeps error replies out of future context windows.
func turnTypeFor(t service.EnvelopeType) string {
	if t == service.TypeError {
		return conversation.TypeError
	}
	return conversation.TypeMessage
}
