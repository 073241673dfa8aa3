package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/questions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/questions/{id}", "404"))

	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/questions/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/questions/{id}", "404"))
	assert.Equal(t, 3.0, after-before)
}

func TestInstrumentHandler_SkipsMetricsPath(t *testing.T) {
	called := false
	h := InstrumentHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "200"))

	assert.True(t, called)
	assert.Equal(t, before, after)
}

func TestRecorders(t *testing.T) {
	okBefore := testutil.ToFloat64(nearbySearches.WithLabelValues("ok"))
	degradedBefore := testutil.ToFloat64(nearbySearches.WithLabelValues("degraded"))
	RecordNearbySearch(false)
	RecordNearbySearch(true)
	RecordNearbySearch(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(nearbySearches.WithLabelValues("ok"))-okBefore)
	assert.Equal(t, 2.0, testutil.ToFloat64(nearbySearches.WithLabelValues("degraded"))-degradedBefore)

	RecordGeoIndexRebuild(42, true)
	assert.Equal(t, 42.0, testutil.ToFloat64(geoIndexSize))
	RecordGeoIndexRebuild(0, false)
	assert.Equal(t, 42.0, testutil.ToFloat64(geoIndexSize), "failed rebuild keeps the last size")

	evBefore := testutil.ToFloat64(domainEvents.WithLabelValues("answer.created", "true"))
	RecordEvent("answer.created", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(domainEvents.WithLabelValues("answer.created", "true"))-evBefore)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordNearbySearch(false)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "askaround_questions_nearby_searches_total"))
}
