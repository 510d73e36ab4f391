package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"IntelFeed/internal/domain"
)

// Collector produces one response envelope per invocation.
type Collector interface {
	Collect(ctx context.Context) domain.Envelope
}

// errorEnvelope is returned only for failures outside the pipelines' own
// fault containment.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Handler is the HTTP boundary of the aggregator.
type Handler struct {
	collector Collector
	logger    *slog.Logger
}

// New builds the boundary around a collector.
func New(collector Collector, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{collector: collector, logger: logger}
}

// Routes exposes the single feed endpoint.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/feeds", h.handleFeeds)
	return mux
}

func (h *Handler) handleFeeds(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodGet:
	default:
		w.Header().Set("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger := h.logger.With("request_id", uuid.NewString())

	envelope := h.collector.Collect(r.Context())
	body, err := json.Marshal(envelope)
	if err != nil {
		logger.Error("marshal envelope", "error", err)
		writeError(w, "failed to assemble feed response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		logger.Warn("write response", "error", err)
		return
	}

	logger.Info("feeds served",
		"nis2", len(envelope.Data.NIS2),
		"threat", len(envelope.Data.Threat),
		"cve", len(envelope.Data.CVE),
		"epss", len(envelope.Data.EPSS),
	)
}

func writeError(w http.ResponseWriter, message string) {
	body, _ := json.Marshal(errorEnvelope{Success: false, Error: message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(body)
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}
