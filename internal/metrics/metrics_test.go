package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New(nil)

	m.Record("product", "create")
	m.Record("product", "create")
	m.Record("order", "delete")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.lifecycleEvents.WithLabelValues("product", "create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lifecycleEvents.WithLabelValues("order", "delete")))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New(nil)

	m.ObserveRequest(http.MethodGet, "/products", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/products", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/products", "200")))
	n, err := testutil.GatherAndCount(m.Registry(), "store_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_SharedRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()

	//同じregistryに2回登録しても既存のものを使う
	a := New(registry)
	b := New(registry)
	a.Record("order", "restore")

	assert.Equal(t, 1.0, testutil.ToFloat64(b.lifecycleEvents.WithLabelValues("order", "restore")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(nil)
	m.Record("order", "update")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `store_lifecycle_events_total{action="update",entity="order"} 1`)
}
