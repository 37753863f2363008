package chi

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/reelscout/internal/metrics"
)

// RouterConfig holds the optional inbound middleware settings.
type RouterConfig struct {
	APIKeys []string
	// Limiter is nil when inbound throttling is disabled.
	Limiter *RateLimiter
}

// NewRouter builds the chi router with the full middleware chain and API routes.
func NewRouter(s *Server, logger *zap.Logger, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEventMiddleware(logger))
	r.Use(BearerAuthMiddleware(cfg.APIKeys))
	if cfg.Limiter != nil {
		r.Use(cfg.Limiter.Middleware)
	}
	r.Use(metrics.Middleware())
	s.Register(r)
	return r
}
