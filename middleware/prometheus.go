package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsPath 抓取接口本身不计入统计
	MetricsPath = "/metrics"
	// UnmatchedRoute 未命中路由的请求统一记在这个标签下
	UnmatchedRoute = "unmatched"
)

var (
	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "naturenet",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API requests by method, route template and status code",
		},
		[]string{"method", "route", "status"},
	)

	apiLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "naturenet",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API latency by method and route template",
			Buckets:   []float64{0.005, 0.02, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	apiInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "naturenet",
			Subsystem: "api",
			Name:      "requests_in_flight",
			Help:      "API requests currently being served",
		},
	)
)

func init() {
	prometheus.MustRegister(apiRequests, apiLatency, apiInFlight)
}

// route 取路由模板, /api/note/7 记为 /api/note/:id
func route(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return UnmatchedRoute
}

func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == MetricsPath {
			c.Next()
			return
		}

		apiInFlight.Inc()
		start := time.Now()
		defer func() {
			apiInFlight.Dec()
			r := route(c)
			apiRequests.WithLabelValues(c.Request.Method, r, strconv.Itoa(c.Writer.Status())).Inc()
			apiLatency.WithLabelValues(c.Request.Method, r).Observe(time.Since(start).Seconds())
		}()

		c.Next()
	}
}
