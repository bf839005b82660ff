package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, target := range []string{"/api/orders/1", "/api/orders/2", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `marketplace_http_requests_total{method="GET",path="/api/orders/:id",status="200"} 2`)
	assert.Contains(t, body, `marketplace_http_requests_total{method="GET",path="/boom",status="418"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestWorkflowCounters(t *testing.T) {
	m := metrics.New()

	m.OrderPlaced(metrics.OutcomeSuccess)
	m.OrderPlaced(metrics.OutcomeRejected)
	m.OrderPlaced(metrics.OutcomeRejected)
	m.OrderTransitioned("confirmed", metrics.OutcomeSuccess)
	m.NotificationPushed(false)
	m.NotificationPushed(true)
	m.ConnectionOpened()
	m.ConnectionOpened()
	m.ConnectionClosed()

	expected := `
# HELP marketplace_orders_placed_total Order placement attempts by outcome.
# TYPE marketplace_orders_placed_total counter
marketplace_orders_placed_total{outcome="rejected"} 2
marketplace_orders_placed_total{outcome="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "marketplace_orders_placed_total"))

	count, err := testutil.GatherAndCount(m.Registry(), "marketplace_notifications_pushed_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "marketplace_ws_connections" {
			assert.InDelta(t, 1.0, f.GetMetric()[0].GetGauge().GetValue(), 0.0001)
			return
		}
	}
	t.Fatal("ws connections gauge not gathered")
}
