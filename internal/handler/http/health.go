package http

import (
	"net/http"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// health reports liveness and whether the database answers a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.healthChecker == nil {
		h.writeJSON(w, r, healthResponse{Status: "UP", Database: "UNKNOWN"}, http.StatusOK)
		return
	}

	if err := h.healthChecker.Ping(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		h.writeJSON(w, r, healthResponse{Status: "DOWN", Database: "DOWN"}, http.StatusServiceUnavailable)
		return
	}
	h.writeJSON(w, r, healthResponse{Status: "UP", Database: "UP"}, http.StatusOK)
}
