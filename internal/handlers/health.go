package handlers

import (
	"net/http"
)

// ReadinessChecker reports whether the geo index has been built.
type ReadinessChecker interface {
	GeoIndexReady() bool
}

// HealthResponse reports liveness and geo index state
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
	// example: ready
	GeoIndex string `json:"geo_index"`
}

// NewHealthHandler returns a liveness handler. It always answers 200; the geo
// index state is informational since nearby search degrades while it builds.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := "building"
		if checker.GeoIndexReady() {
			state = "ready"
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", GeoIndex: state})
	}
}
