package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ptomes1987/regiojet-delays/internal/regiojet"
)

// RouteFinder defines the interface for route delay queries.
type RouteFinder interface {
	CheckDelays(ctx context.Context, fromID, toID int64, threshold int) ([]regiojet.RouteSummary, error)
}

// ErrorResponse is the JSON envelope returned when the upstream query fails.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DelayHandler handles HTTP requests for live delay data.
type DelayHandler struct {
	finder      RouteFinder
	defaultFrom int64
	defaultTo   int64
}

// NewDelayHandler creates a handler that queries the given finder, using the
// given station pair when the request does not name one.
func NewDelayHandler(finder RouteFinder, defaultFrom, defaultTo int64) *DelayHandler {
	return &DelayHandler{
		finder:      finder,
		defaultFrom: defaultFrom,
		defaultTo:   defaultTo,
	}
}

// GetDelays handles GET /api/delays
// Query params: from, to (station IDs, optional), threshold (minutes, optional).
// Unparsable values fall back to the defaults; station IDs themselves are
// validated only by the upstream service.
func (h *DelayHandler) GetDelays(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	from := queryInt64(r, "from", h.defaultFrom)
	to := queryInt64(r, "to", h.defaultTo)
	threshold := queryInt(r, "threshold", 0)

	routes, err := h.finder.CheckDelays(ctx, from, to, threshold)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	if routes == nil {
		routes = []regiojet.RouteSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(routes)
}

func queryInt64(r *http.Request, key string, fallback int64) int64 {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
