package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/reelscout/internal/domain"
	"github.com/kailas-cloud/reelscout/internal/metrics"
)

// DefaultBaseURL is the public TMDB v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3/"

const defaultTimeout = 15 * time.Second

// Endpoint labels used in errors, logs and metrics.
const (
	EndpointGenres        = "genre_list"
	EndpointSearchPerson  = "search_person"
	EndpointDiscover      = "discover"
	EndpointCredits       = "credits"
	EndpointDetail        = "detail"
	EndpointConfiguration = "configuration"
)

// maxErrorBody bounds how much of a failed response is read for diagnostics.
const maxErrorBody = 4 << 10

// Config holds the provider client settings.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to a TMDB-compatible metadata provider. It does not retry.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewClient creates a provider client. BaseURL defaults to DefaultBaseURL.
func NewClient(cfg *Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:    httpClient,
		baseURL: base,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// Genres fetches the movie genre catalog in provider order.
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	var res genreListResponse
	if err := c.get(ctx, EndpointGenres, "genre/movie/list", nil, &res); err != nil {
		return nil, err
	}
	return toGenres(res.Genres), nil
}

// SearchPerson returns the ids of people matching name, best match first.
func (c *Client) SearchPerson(ctx context.Context, name string) ([]int64, error) {
	var res personSearchResponse
	q := url.Values{"query": {name}}
	if err := c.get(ctx, EndpointSearchPerson, "search/person", q, &res); err != nil {
		return nil, err
	}
	ids := make([]int64, len(res.Results))
	for i, p := range res.Results {
		ids[i] = p.ID
	}
	return ids, nil
}

// Discover runs a discovery query and returns the first result page in provider order.
func (c *Client) Discover(ctx context.Context, dq domain.DiscoverQuery) ([]domain.ListingSummary, error) {
	q := url.Values{}
	for k, v := range dq.Params() {
		q.Set(k, v)
	}
	var res discoverResponse
	if err := c.get(ctx, EndpointDiscover, "discover/movie", q, &res); err != nil {
		return nil, err
	}
	return res.toDomain(), nil
}

// Credits fetches cast and crew of a movie.
func (c *Client) Credits(ctx context.Context, movieID int64) (domain.Credits, error) {
	var res creditsResponse
	path := "movie/" + strconv.FormatInt(movieID, 10) + "/credits"
	if err := c.get(ctx, EndpointCredits, path, nil, &res); err != nil {
		return domain.Credits{}, err
	}
	return res.toDomain(), nil
}

// Detail fetches movie metadata.
func (c *Client) Detail(ctx context.Context, movieID int64) (domain.MovieDetail, error) {
	var res movieDetailResponse
	path := "movie/" + strconv.FormatInt(movieID, 10)
	if err := c.get(ctx, EndpointDetail, path, nil, &res); err != nil {
		return domain.MovieDetail{}, err
	}
	return res.toDomain(), nil
}

// HealthCheck verifies credential and reachability via the configuration endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	var res json.RawMessage
	if err := c.get(ctx, EndpointConfiguration, "configuration", nil, &res); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	u := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("tmdb %s: build request: %v: %w", endpoint, err, domain.ErrUpstream)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("tmdb %s: %w", endpoint, ctxErr)
		}
		return fmt.Errorf("tmdb %s: %v: %w", endpoint, err, domain.ErrUpstream)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		serr := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		var body statusBody
		if raw, rerr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); rerr == nil && json.Unmarshal(raw, &body) == nil {
			serr.Message = body.StatusMessage
		}
		c.logger.Warn("provider request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", serr.Message),
		)
		return serr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return fmt.Errorf("tmdb %s: decode response: %v: %w", endpoint, err, domain.ErrUpstream)
	}

	metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "success").Inc()
	return nil
}
