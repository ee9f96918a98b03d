package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentUsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/travaux/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := Instrument(mux)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /api/travaux/{id}", "404"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/travaux/abc", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/travaux/def", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "GET /api/travaux/{id}", "404"))

	require.Equal(t, 2.0, after-before)
	require.Zero(t, testutil.ToFloat64(httpInFlight))
}

func TestSyncDocumentsIgnoresZero(t *testing.T) {
	before := testutil.ToFloat64(syncDocuments.WithLabelValues("travaux", OutcomeSkipped))
	SyncDocuments("travaux", OutcomeSkipped, 0)
	SyncDocuments("travaux", OutcomeSkipped, 3)
	require.Equal(t, 3.0, testutil.ToFloat64(syncDocuments.WithLabelValues("travaux", OutcomeSkipped))-before)
}

func TestInitIsIdempotent(t *testing.T) {
	require.NotPanics(t, func() {
		Init("test")
		Init("test")
	})
	require.Equal(t, 1.0, testutil.ToFloat64(buildInfo.WithLabelValues("test")))
}
