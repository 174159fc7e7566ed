package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/brquant/screener/internal/assistant"
	"github.com/brquant/screener/pkg/logger"
)

// AssistantHandler exposes the Q&A assistant over the current result set.
type AssistantHandler struct {
	assistant *assistant.Assistant
	screens   *ScreenHandler
	validate  *validator.Validate
	logger    *logger.Logger
}

// NewAssistantHandler creates a new assistant handler. assistant may be nil
// when the feature is disabled by config.
func NewAssistantHandler(ai *assistant.Assistant, screens *ScreenHandler, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: ai,
		screens:   screens,
		validate:  validator.New(),
		logger:    log,
	}
}

// AskRequest is the body of POST /api/assistant/ask.
type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// Ask answers one question about the currently processed table.
// POST /api/assistant/ask
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if h.assistant == nil {
		writeError(w, http.StatusServiceUnavailable, "assistant is disabled")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	table := h.screens.Snapshot()
	if table == nil {
		writeError(w, http.StatusNotFound, "no sheet processed yet")
		return
	}

	answer, err := h.assistant.Ask(r.Context(), req.Question, table)
	if err != nil {
		if errors.Is(err, assistant.ErrBusy) {
			writeError(w, http.StatusConflict, "a question is already being answered")
			return
		}
		h.logger.WithError(err).Error("Assistant request failed")
		writeError(w, http.StatusInternalServerError, "assistant request failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
