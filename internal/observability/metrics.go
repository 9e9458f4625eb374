package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	connectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "craftctl",
			Subsystem: "server",
			Name:      "connections_total",
			Help:      "Total accepted connections.",
		},
	)
	activeConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "craftctl",
			Subsystem: "server",
			Name:      "active_connections",
			Help:      "Connections currently being served.",
		},
	)
	framesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "craftctl",
			Subsystem: "server",
			Name:      "frames_total",
			Help:      "Complete frames dispatched to the state machine.",
		},
		[]string{"phase"},
	)
	protocolErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "craftctl",
			Subsystem: "server",
			Name:      "protocol_errors_total",
			Help:      "Connections terminated by a protocol or transport error.",
		},
	)
	bytesReadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "craftctl",
			Subsystem: "server",
			Name:      "bytes_read_total",
			Help:      "Raw bytes read from client sockets.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "craftctl",
			Subsystem: "admin",
			Name:      "requests_total",
			Help:      "Total admin HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "craftctl",
			Subsystem: "admin",
			Name:      "request_duration_seconds",
			Help:      "Admin HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			connectionsTotal,
			activeConnections,
			framesTotal,
			protocolErrorsTotal,
			bytesReadTotal,
			httpRequests,
			httpDuration,
		)
	})
}

func RecordConnectionOpened() {
	RegisterMetrics()
	connectionsTotal.Inc()
	activeConnections.Inc()
}

func RecordConnectionClosed() {
	RegisterMetrics()
	activeConnections.Dec()
}

func RecordFrame(phase string) {
	RegisterMetrics()
	framesTotal.WithLabelValues(phase).Inc()
}

func RecordProtocolError() {
	RegisterMetrics()
	protocolErrorsTotal.Inc()
}

func RecordBytesRead(n int) {
	RegisterMetrics()
	bytesReadTotal.Add(float64(n))
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
