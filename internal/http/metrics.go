// Package http contiene el server HTTP y su instrumentación.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/dropDatabas3/finanzas/internal/http/middlewares"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requests HTTP procesados.",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de los requests HTTP.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Requests HTTP en curso.",
		},
	)
)

// RegisterMetrics registra los colectores y devuelve el handler de /metrics.
// pool puede ser nil (driver memory): en ese caso no se exportan stats de DB.
func RegisterMetrics(pool *pgxpool.Pool) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequestsTotal,
		httpRequestDuration,
		httpInflight,
	)
	if pool != nil {
		reg.MustRegister(newPoolCollector(pool))
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// WithMetrics instrumenta cada request con contador, histograma e in-flight.
func WithMetrics() mw.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpInflight.Inc()
			defer httpInflight.Dec()

			rec := &metricsRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
			httpRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

type metricsRecorder struct {
	http.ResponseWriter
	status int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// ====== Stats del pool de Postgres ======

type poolCollector struct {
	pool *pgxpool.Pool

	acquired *prometheus.Desc
	idle     *prometheus.Desc
	total    *prometheus.Desc
	max      *prometheus.Desc
}

func newPoolCollector(pool *pgxpool.Pool) *poolCollector {
	return &poolCollector{
		pool:     pool,
		acquired: prometheus.NewDesc("pgxpool_acquired_conns", "Conexiones en uso.", nil, nil),
		idle:     prometheus.NewDesc("pgxpool_idle_conns", "Conexiones ociosas.", nil, nil),
		total:    prometheus.NewDesc("pgxpool_total_conns", "Conexiones abiertas.", nil, nil),
		max:      prometheus.NewDesc("pgxpool_max_conns", "Límite de conexiones.", nil, nil),
	}
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(st.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(st.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(st.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(st.MaxConns()))
}
