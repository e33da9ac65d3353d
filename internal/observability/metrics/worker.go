package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insightlab/insightsort/internal/core/domain"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	documentsTotal   *prometheus.CounterVec
	documentDuration *prometheus.HistogramVec
	topicTotal       *prometheus.CounterVec
	inFlight         prometheus.Gauge
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	documentsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insightsort",
			Subsystem: "worker",
			Name:      "documents_total",
			Help:      "Documents processed by terminal status.",
		},
		[]string{"service", "status"},
	)
	documentDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "insightsort",
			Subsystem: "worker",
			Name:      "document_duration_seconds",
			Help:      "Per-document processing duration by terminal status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	topicTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insightsort",
			Subsystem: "worker",
			Name:      "topic_total",
			Help:      "Successfully classified documents by topic.",
		},
		[]string{"service", "topic"},
	)
	inFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "insightsort",
			Subsystem: "worker",
			Name:      "documents_in_flight",
			Help:      "Documents currently being processed.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(documentsTotal, documentDuration, topicTotal, inFlight)

	return &WorkerMetrics{
		registry:         registry,
		documentsTotal:   documentsTotal,
		documentDuration: documentDuration,
		topicTotal:       topicTotal,
		inFlight:         inFlight,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartDocument() {
	m.inFlight.Inc()
}

func (m *WorkerMetrics) FinishDocument(service string, result domain.FileResult) {
	m.inFlight.Dec()

	status := "success"
	if !result.Succeeded() {
		status = "error"
	}
	m.documentsTotal.WithLabelValues(service, status).Inc()
	m.documentDuration.WithLabelValues(service, status).Observe(result.Elapsed.Seconds())
	if result.Succeeded() {
		m.topicTotal.WithLabelValues(service, string(result.Result.Topic)).Inc()
	}
}
