// Package metrics holds the Prometheus collectors of the service: HTTP traffic,
// order workflow outcomes and live WebSocket connections.
//
// Wiring:
//
//	m := metrics.New()
//	e.Use(m.Middleware())
//	e.GET("/metrics", echo.WrapHandler(m.Handler()))
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Outcome labels for the order counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestInFlight prometheus.Gauge

	ordersPlaced      *prometheus.CounterVec
	orderTransitions  *prometheus.CounterVec
	notificationsSent *prometheus.CounterVec
	wsConnections     prometheus.Gauge
}

// New builds a private registry with the Go and process collectors and every
// service metric registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		requestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		ordersPlaced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orders",
				Name:      "placed_total",
				Help:      "Order placement attempts by outcome.",
			},
			[]string{"outcome"},
		),
		orderTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orders",
				Name:      "status_transitions_total",
				Help:      "Order status change attempts by requested status and outcome.",
			},
			[]string{"status", "outcome"},
		),
		notificationsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "notifications",
				Name:      "pushed_total",
				Help:      "Notification events pushed to WebSocket clients.",
			},
			[]string{"result"},
		),
		wsConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "connections",
			Help:      "Open WebSocket connections on this instance.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.requestInFlight,
		m.ordersPlaced,
		m.orderTransitions,
		m.notificationsSent,
		m.wsConnections,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in text and OpenMetrics formats.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Middleware records duration, count and in-flight requests. The path label is the
// route template (/api/orders/:id), never the raw URL.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.requestInFlight.Inc()
			defer m.requestInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			var he *echo.HTTPError
			if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			code := strconv.Itoa(status)
			m.requestDuration.WithLabelValues(c.Request().Method, path, code).Observe(time.Since(start).Seconds())
			m.requestTotal.WithLabelValues(c.Request().Method, path, code).Inc()
			return err
		}
	}
}

func (m *Metrics) OrderPlaced(outcome string) {
	m.ordersPlaced.WithLabelValues(outcome).Inc()
}

func (m *Metrics) OrderTransitioned(status, outcome string) {
	m.orderTransitions.WithLabelValues(status, outcome).Inc()
}

// NotificationPushed counts a relayed event; dropped is true when no buffer had room.
func (m *Metrics) NotificationPushed(dropped bool) {
	result := "delivered"
	if dropped {
		result = "dropped"
	}
	m.notificationsSent.WithLabelValues(result).Inc()
}

func (m *Metrics) ConnectionOpened() {
	m.wsConnections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	m.wsConnections.Dec()
}
