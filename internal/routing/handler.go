package routing

import (
	"encoding/json"
	"net/http"

	"github.com/harborhealth/scheduling-agent/pkg/logging"
)

// Handler exposes the router over HTTP for triage tooling: classify one
// message, classify a batch, and inspect the decision stats.
type Handler struct {
	router *Router
	stats  *Stats
	logger *logging.Logger
}

// NewHandler creates a routing handler.
func NewHandler(router *Router, stats *Stats, logger *logging.Logger) *Handler {
	if router == nil {
		panic("routing: router cannot be nil")
	}
	if stats == nil {
		panic("routing: stats cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{router: router, stats: stats, logger: logger}
}

// Route handles POST /route.
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message       string   `json:"message"`
		RecentHistory []string `json:"recent_history,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.router.RouteWithFallback(r.Context(), req.Message, req.RecentHistory))
}

// RouteBatch handles POST /route/batch.
func (h *Handler) RouteBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []string `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		http.Error(w, "messages are required", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"decisions": h.router.RouteBatch(r.Context(), req.Messages),
	})
}

// Stats handles GET /route/stats.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.stats.Snapshot())
}

// ResetStats handles DELETE /route/stats.
func (h *Handler) ResetStats(w http.ResponseWriter, _ *http.Request) {
	h.stats.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
