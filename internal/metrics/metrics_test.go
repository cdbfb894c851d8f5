package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewHTTPMetrics()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	count := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/jobs", "200"))
	assert.Equal(t, float64(1), count)
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewHTTPMetrics()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/metrics", m.Handler())
	r.GET("/api/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pathstarter_http_requests_total")
}
