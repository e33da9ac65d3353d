// Package httpadapter exposes the reporting surface over the metadata store
// and the delete-organized flow. Reads are eventually consistent with any
// batch still in flight.
package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/insightlab/insightsort/internal/core/domain"
	"github.com/insightlab/insightsort/internal/core/ports"
)

type Router struct {
	reports ports.ReportReader
	deleter ports.OrganizedDeleter
	logger  *slog.Logger
}

func NewRouter(reports ports.ReportReader, deleter ports.OrganizedDeleter, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{reports: reports, deleter: deleter, logger: logger}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/topics", rt.topicCounts)
	mux.HandleFunc("/v1/reports", rt.reportsByTopic)
	mux.HandleFunc("/v1/organized", rt.deleteOrganized)
	return rt.loggingMiddleware(mux)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) topicCounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	counts, err := rt.reports.TopicCounts(r.Context())
	if err != nil {
		rt.logger.Error("topic counts failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
		return
	}

	type topicCount struct {
		Topic string `json:"topic"`
		Count int64  `json:"count"`
	}
	out := make([]topicCount, 0, len(counts))
	for _, tc := range counts {
		out = append(out, topicCount{Topic: string(tc.Topic), Count: tc.Count})
	}
	writeJSON(w, http.StatusOK, map[string]any{"topics": out})
}

func (rt *Router) reportsByTopic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	topic := r.URL.Query().Get("topic")
	if topic == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameter 'topic' is required"})
		return
	}

	records, err := rt.reports.RecordsByTopic(r.Context(), domain.Topic(topic))
	if err != nil {
		rt.logger.Error("records by topic failed", "topic", topic, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
		return
	}

	type record struct {
		ID          int64     `json:"id"`
		Filename    string    `json:"filename"`
		Topic       string    `json:"topic"`
		Keywords    []string  `json:"keywords"`
		Summary     string    `json:"summary"`
		ProcessedAt time.Time `json:"processed_at"`
	}
	out := make([]record, 0, len(records))
	for _, rec := range records {
		out = append(out, record{
			ID:          rec.ID,
			Filename:    rec.Filename,
			Topic:       string(rec.Topic),
			Keywords:    rec.Keywords,
			Summary:     rec.Summary,
			ProcessedAt: rec.ProcessedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": out})
}

func (rt *Router) deleteOrganized(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query parameter 'path' is required"})
		return
	}

	if err := rt.deleter.Delete(r.Context(), path); err != nil {
		rt.logger.Error("delete organized failed", "path", path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": path})
}

func (rt *Router) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		rt.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
