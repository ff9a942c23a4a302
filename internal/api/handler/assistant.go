package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vitaplan/vitaplan/internal/api/models"
	"github.com/vitaplan/vitaplan/internal/api/response"
	"github.com/vitaplan/vitaplan/internal/assistant"
)

// MaxAssistantMessageLen bounds assistant messages to keep keyword
// matching cheap.
const MaxAssistantMessageLen = 500

// AssistantHandler handles the canned-reply assistant endpoint.
type AssistantHandler struct {
	responder *assistant.Responder
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(responder *assistant.Responder) *AssistantHandler {
	return &AssistantHandler{responder: responder}
}

// Message handles POST /v1/assistant/messages.
func (h *AssistantHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req models.AssistantMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "message", Message: "is required"},
		})
		return
	}
	if len(msg) > MaxAssistantMessageLen {
		response.BadRequest(w, r, "validation failed", []models.FieldError{
			{Field: "message", Message: "must be at most 500 characters"},
		})
		return
	}

	response.JSON(w, r, http.StatusOK, models.AssistantMessageResponse{
		Reply: h.responder.Reply(msg),
	})
}
