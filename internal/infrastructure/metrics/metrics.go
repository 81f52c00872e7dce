// Package metrics provides Prometheus metrics for the chat demo service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request latency. Stream requests include the
	// full scripted delay.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "sessions_started_total",
			Help:      "Total number of sessions handed out",
		},
	)

	// StreamsTotal counts stream requests by selected conversation.
	StreamsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "streams_total",
			Help:      "Total number of scripted streams started",
		},
		[]string{"conversation"},
	)

	StreamRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "stream_records_total",
			Help:      "Total number of records written to streams",
		},
		[]string{"class"},
	)

	StreamsAbortedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "streams_aborted_total",
			Help:      "Total number of streams that ended before their last record",
		},
		[]string{"reason"},
	)

	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "active_streams",
			Help:      "Number of streams currently being written",
		},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "uploads_total",
			Help:      "Total file uploads",
		},
		[]string{"content_type", "status"},
	)

	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded",
		},
		[]string{"content_type"},
	)

	FileDeletesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jan",
			Subsystem: "chat_demo",
			Name:      "file_deletes_total",
			Help:      "Total file delete requests",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordSession records a session hand-out
func RecordSession() {
	SessionsStarted.Inc()
}

// RecordStreamStart records the conversation chosen for a stream
func RecordStreamStart(conversation string) {
	StreamsTotal.WithLabelValues(conversation).Inc()
	ActiveStreams.Inc()
}

// RecordStreamEnd marks a stream as finished
func RecordStreamEnd() {
	ActiveStreams.Dec()
}

// RecordStreamRecord records one written record
func RecordStreamRecord(class string) {
	StreamRecordsTotal.WithLabelValues(class).Inc()
}

// RecordStreamAbort records a stream ending early
func RecordStreamAbort(reason string) {
	StreamsAbortedTotal.WithLabelValues(reason).Inc()
}

// RecordUpload records a file upload
func RecordUpload(contentType, status string, bytes int64) {
	UploadsTotal.WithLabelValues(contentType, status).Inc()
	if status == "success" {
		UploadBytesTotal.WithLabelValues(contentType).Add(float64(bytes))
	}
}

// RecordFileDelete records a file delete request
func RecordFileDelete() {
	FileDeletesTotal.Inc()
}
