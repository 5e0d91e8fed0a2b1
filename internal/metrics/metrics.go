package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tvusm_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tvusm_bookings_created_total",
		Help: "Bookings successfully created.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tvusm_booking_conflicts_total",
		Help: "Booking requests rejected because the slot was taken.",
	})

	PaymentsInitiated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tvusm_payments_initiated_total",
		Help: "Payments handed off to the gateway.",
	})
)

// Middleware records request latency per route. Registered before the
// router groups so every handler is covered.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
