package reelscout

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client

	capacity int
	window   time.Duration

	redisAddr     string
	redisPassword string
	redisKey      string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithAPIKey sets the provider credential. Required.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithBaseURL overrides the provider API root (default https://api.themoviedb.org/3/).
func WithBaseURL(u string) Option {
	return optionFunc(func(c *clientConfig) {
		c.baseURL = u
	})
}

// WithImageBaseURL overrides the poster URL prefix (default http://image.tmdb.org/t/p/w780).
func WithImageBaseURL(u string) Option {
	return optionFunc(func(c *clientConfig) {
		c.imageBaseURL = u
	})
}

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithRateLimit sets the gate budget: at most capacity gated calls per window.
// Defaults: 30 per 11s.
func WithRateLimit(capacity int, window time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.capacity = capacity
		c.window = window
	})
}

// WithRedisWindow keeps the gate window in Redis so that every client sharing key
// shares one budget. An empty key uses the default.
func WithRedisWindow(addr, password, key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.redisAddr = addr
		c.redisPassword = password
		c.redisKey = key
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK, provider and gate metrics on the given registerer.
// Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
