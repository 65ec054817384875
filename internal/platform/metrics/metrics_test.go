package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.ObserveAction("add_weight", "inserted")
	m.ObserveAction("add_weight", "inserted")
	m.ObserveAction("add_weight", "duplicate_ignored")
	m.ObservePersistFailure("pet_weights")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.actions.WithLabelValues("add_weight", "inserted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("add_weight", "duplicate_ignored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.persistFailure.WithLabelValues("pet_weights")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAction("x", "y")
		m.ObservePersistFailure("k")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveAction("add_pet", "pet_added")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `petcare_store_actions_total{action="add_pet",outcome="pet_added"} 1`)
}
