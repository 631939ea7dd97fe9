package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storeapi/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *logtest.Hook) {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	e := echo.New()
	e.Use(RequestID())
	e.Use(RequestLogger(log.NewEntry(logger)))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/bad", func(c echo.Context) error { return c.NoContent(http.StatusBadRequest) })
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })
	return e, hook
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRequestLogger_Levels(t *testing.T) {
	cases := []struct {
		path  string
		level log.Level
	}{
		{"/ok", log.InfoLevel},
		{"/bad", log.DebugLevel},
		{"/boom", log.ErrorLevel},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			e, hook := newTestEcho(t)
			rec := serve(e, tc.path)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tc.level, entry.Level)
			assert.Equal(t, rec.Code, entry.Data["status"])
			assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), entry.Data["request_id"])
		})
	}
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestMetrics_Routes(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/products/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, "/products/1")
	serve(e, "/products/2")

	//パラメータではなくルートで集計
	n, err := testutil.GatherAndCount(m.Registry(), "store_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_KeepsErrorForRequestLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	m := metrics.New(prometheus.NewRegistry())

	e := echo.New()
	e.Use(RequestLogger(log.NewEntry(logger)))
	e.Use(Metrics(m))
	e.GET("/boom", func(c echo.Context) error { return errors.New("db down") })

	rec := serve(e, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.ErrorLevel, entry.Level)
	if assert.Contains(t, entry.Data, log.ErrorKey) {
		assert.EqualError(t, entry.Data[log.ErrorKey].(error), "db down")
	}

	//レスポンスは1回だけ書かれ、500で集計される
	expected := `
# HELP store_http_requests_total Total number of HTTP requests
# TYPE store_http_requests_total counter
store_http_requests_total{method="GET",route="/boom",status="500"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "store_http_requests_total"))
}
