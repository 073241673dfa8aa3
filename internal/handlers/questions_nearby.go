package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/askaround/internal/models"
)

// NearbyFinder defines the interface that the service must implement.
type NearbyFinder interface {
	FindNearby(ctx context.Context, query models.NearbyQuery) ([]models.Question, error)
}

// NewNearbyQuestionsHandler returns an HTTP handler for the radius search.
// @Summary Questions near a point
// @Description Lists questions within radius meters of the point, nearest first, each with its distance.
// @Tags questions
// @Produce json
// @Param latitude query number true "Latitude" example(20.0)
// @Param longitude query number true "Longitude" example(10.0)
// @Param radius query number false "Radius in meters" default(3000)
// @Param max_distance query number false "Alias of radius"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} models.Question
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Router /questions [get]
func NewNearbyQuestionsHandler(svc NearbyFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, msg := parseNearbyQuery(r.URL.Query())
		if msg != "" {
			writeMessage(w, http.StatusBadRequest, msg)
			return
		}

		questions, err := svc.FindNearby(r.Context(), query)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, questions)
	}
}

func parseNearbyQuery(values url.Values) (models.NearbyQuery, string) {
	var q models.NearbyQuery

	lat, ok, err := floatParam(values, "latitude")
	if err != nil || !ok {
		return q, "latitude is required and must be a number"
	}
	lon, ok, err := floatParam(values, "longitude")
	if err != nil || !ok {
		return q, "longitude is required and must be a number"
	}
	q.Latitude, q.Longitude = lat, lon

	name := "radius"
	if values.Get(name) == "" {
		name = "max_distance"
	}
	radius, ok, err := floatParam(values, name)
	if err != nil {
		return q, name + " must be a number"
	}
	if ok {
		q.Radius = &radius
	}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return q, "limit must be an integer"
		}
		q.Limit = &limit
	}

	return q, ""
}

func floatParam(values url.Values, name string) (float64, bool, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
