package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/reelscout/internal/domain"
	logpkg "github.com/kailas-cloud/reelscout/internal/logger"
	healthuc "github.com/kailas-cloud/reelscout/internal/usecase/health"
)

// maxBodyBytes bounds the query request body.
const maxBodyBytes = 64 << 10

// Pipeline executes criteria queries.
type Pipeline interface {
	Execute(ctx context.Context, criteria []domain.Criteria, limit int) ([]domain.Record, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the query pipeline over HTTP.
type Server struct {
	pipeline      Pipeline
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(pipeline Pipeline, health HealthChecker, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		pipeline: pipeline,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidCriteria, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests, ErrorCodeRateLimited),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusBadGateway, ErrorCodeCatalogUnavailable),
		sentinelHandler(domain.ErrUpstream, http.StatusBadGateway, ErrorCodeUpstreamError),
		canceledHandler,
	}
	return s
}

// Register mounts the API routes on r.
func (s *Server) Register(r chi.Router) {
	r.Post("/v1/query", s.Query)
	r.Get("/v1/meta", s.Meta)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// Query handles POST /v1/query.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Limit < 0 {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "limit must not be negative")
		return
	}

	records, err := s.pipeline.Execute(r.Context(), req.criteria(), req.Limit)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, QueryResponse{Items: records, Count: len(records)})
}

// Meta handles GET /v1/meta.
func (s *Server) Meta(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MetaResponse{
		Class:      domain.OntologyClass,
		Subclass:   domain.OntologySubclass,
		Attributes: domain.OntologyAttributes(),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidCriteria,
		domain.ErrRateLimited,
		domain.ErrCatalogUnavailable,
		domain.ErrUpstream,
		context.Canceled,
		context.DeadlineExceeded,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// canceledHandler maps client disconnects and server-side deadlines.
func canceledHandler(w http.ResponseWriter, err error, msg string) bool {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, ErrorCodeRequestCanceled, msg)
	case errors.Is(err, context.Canceled):
		// 499 is what nginx logs for a client that went away.
		writeError(w, 499, ErrorCodeRequestCanceled, msg)
	default:
		return false
	}
	return true
}

func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logpkg.FromContextOr(ctx, s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
