// Package server exposes brace expansion over HTTP:
//
//	GET /expand?pattern=...&limit=N   JSON expansion result
//	GET /metrics                      Prometheus metrics
//	GET /healthz                      liveness
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/braces/brace"
	"github.com/katalvlaran/braces/expander"
	"github.com/katalvlaran/braces/metrics"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// Server routes HTTP requests to an Expander.
type Server struct {
	exp *expander.Expander
	log *slog.Logger
	mux *http.ServeMux
}

type expandResponse struct {
	RequestID string `json:"request_id"`
	*expander.Result
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// New builds the handler tree. m may be nil, in which case /metrics is not served.
func New(exp *expander.Expander, log *slog.Logger, m *metrics.Collector) *Server {
	s := &Server{exp: exp, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /expand", s.handleExpand)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	if m != nil {
		s.mux.Handle("GET /metrics", m.Handler())
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set(RequestIDHeader, id)
	log := s.log.With("request_id", id)

	q := r.URL.Query()
	if !q.Has("pattern") {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{id, "missing pattern parameter"})
		return
	}

	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{id, "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	res, err := s.exp.Expand(r.Context(), q.Get("pattern"), limit)
	switch {
	case err == nil:
		log.Info("expand", "pattern", res.Pattern, "count", res.Count, "truncated", res.Truncated)
		s.writeJSON(w, http.StatusOK, expandResponse{id, res})
	case errors.Is(err, brace.ErrMalformedPattern):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{id, err.Error()})
	case errors.Is(err, expander.ErrTooLarge):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{id, err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn("expand aborted", "error", err)
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{id, err.Error()})
	default:
		log.Error("expand failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{id, err.Error()})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to write response", "error", err)
	}
}
