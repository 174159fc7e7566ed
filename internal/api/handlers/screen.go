package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/brquant/screener/internal/schema"
	"github.com/brquant/screener/internal/screener"
	"github.com/brquant/screener/pkg/logger"
)

// ScreenHandler processes pasted sheets and holds the current result set.
// The held table is replaced atomically per process call; readers always
// see either the previous complete result or the new one.
type ScreenHandler struct {
	service  *screener.Service
	validate *validator.Validate
	logger   *logger.Logger

	mu      sync.RWMutex
	current *schema.Table
}

// NewScreenHandler creates a new screen handler
func NewScreenHandler(service *screener.Service, log *logger.Logger) *ScreenHandler {
	return &ScreenHandler{
		service:  service,
		validate: validator.New(),
		logger:   log,
	}
}

// ProcessRequest is the body of POST /api/screen.
type ProcessRequest struct {
	Text string `json:"text" validate:"required"`
	Mode string `json:"mode" validate:"required,oneof=standard neto"`
}

// Process runs the pipeline over the pasted text and replaces the current
// result set.
// POST /api/screen
func (h *ScreenHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "text and mode (standard|neto) are required")
		return
	}

	table, err := h.service.Process(req.Text, schema.Mode(req.Mode))
	if err != nil {
		if errors.Is(err, schema.ErrMalformedInput) {
			// Prior state stays untouched.
			writeError(w, http.StatusUnprocessableEntity,
				"Não foi possível ler os dados. Confira o formato da tabela colada.")
			return
		}
		h.logger.WithError(err).Error("Processing failed")
		writeError(w, http.StatusInternalServerError, "processing failed")
		return
	}

	h.mu.Lock()
	h.current = table
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, table)
}

// Current returns the held result set.
// GET /api/screen
func (h *ScreenHandler) Current(w http.ResponseWriter, r *http.Request) {
	table := h.Snapshot()
	if table == nil {
		writeError(w, http.StatusNotFound, "no sheet processed yet")
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// Export returns the current table in the tab-separated wire format.
// GET /api/screen/export
func (h *ScreenHandler) Export(w http.ResponseWriter, r *http.Request) {
	table := h.Snapshot()
	if table == nil {
		writeError(w, http.StatusNotFound, "no sheet processed yet")
		return
	}

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="screener.tsv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(screener.ExportTSV(table)))
}

// Snapshot returns the currently held table, or nil.
func (h *ScreenHandler) Snapshot() *schema.Table {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
