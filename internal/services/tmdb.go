package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movierec/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout     = 30 * time.Second
	maxRetries         = 3
	retryDelay         = 2 * time.Second
	userAgent          = "movierec/1.0"
	maxResponseSize    = 5 * 1024 * 1024
	searchCachePrefix  = "tmdb:search:"
	detailsCachePrefix = "tmdb:details:"
	creditsCachePrefix = "tmdb:credits:"
	searchCacheTTL     = 4 * time.Hour
	detailsCacheTTL    = 24 * time.Hour
)

// TMDBClient talks to the TMDB v3 API with request pacing, bounded retries
// and a Redis cache in front of every endpoint.
type TMDBClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logrus.Logger
	redis      *redis.Client
}

type TMDBConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RequestsPerSecond throttles outbound calls; TMDB allows ~50/s but
	// seeding runs are happier well under that.
	RequestsPerSecond float64
	Logger            *logrus.Logger
	Redis             *redis.Client
}

func NewTMDBClient(config *TMDBConfig) *TMDBClient {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = 4
	}

	return &TMDBClient{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
		logger:  config.Logger,
		redis:   config.Redis,
	}
}

// Search queries TMDB for movies matching query.
func (c *TMDBClient) Search(ctx context.Context, query string) (*models.TMDBSearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	c.logger.WithField("query", query).Info("Searching TMDB...")

	var result models.TMDBSearchResponse
	cacheKey := searchCachePrefix + query
	if c.readCache(ctx, cacheKey, &result) {
		return &result, nil
	}

	params := url.Values{}
	params.Set("query", query)
	endpoint := fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode())

	body, err := c.makeRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return &models.TMDBSearchResponse{}, nil
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	c.writeCache(ctx, cacheKey, &result, searchCacheTTL)
	return &result, nil
}

// Details fetches movie attributes for a TMDB id. A provider 404 returns
// (nil, nil): the caller degrades to "no attributes".
func (c *TMDBClient) Details(ctx context.Context, tmdbID int64) (*models.TMDBMovieDetails, error) {
	var details models.TMDBMovieDetails
	cacheKey := fmt.Sprintf("%s%d", detailsCachePrefix, tmdbID)
	if c.readCache(ctx, cacheKey, &details) {
		return &details, nil
	}

	body, err := c.makeRequest(ctx, fmt.Sprintf("%s/movie/%d", c.baseURL, tmdbID))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to decode movie details: %w", err)
	}

	c.writeCache(ctx, cacheKey, &details, detailsCacheTTL)
	return &details, nil
}

// Credits fetches the cast/crew list for a TMDB id. A provider 404 returns
// (nil, nil).
func (c *TMDBClient) Credits(ctx context.Context, tmdbID int64) (*models.TMDBCredits, error) {
	var credits models.TMDBCredits
	cacheKey := fmt.Sprintf("%s%d", creditsCachePrefix, tmdbID)
	if c.readCache(ctx, cacheKey, &credits) {
		return &credits, nil
	}

	body, err := c.makeRequest(ctx, fmt.Sprintf("%s/movie/%d/credits", c.baseURL, tmdbID))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	if err := json.Unmarshal(body, &credits); err != nil {
		return nil, fmt.Errorf("failed to decode movie credits: %w", err)
	}

	c.writeCache(ctx, cacheKey, &credits, detailsCacheTTL)
	return &credits, nil
}

// TopRated fetches one page of TMDB's top-rated listing.
func (c *TMDBClient) TopRated(ctx context.Context, page int) (*models.TMDBSearchResponse, error) {
	if page < 1 {
		page = 1
	}

	body, err := c.makeRequest(ctx, fmt.Sprintf("%s/movie/top_rated?page=%d", c.baseURL, page))
	if err != nil {
		return nil, err
	}
	if body == nil {
		return &models.TMDBSearchResponse{}, nil
	}

	var result models.TMDBSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode top rated response: %w", err)
	}
	return &result, nil
}

func (c *TMDBClient) readCache(ctx context.Context, key string, dst any) bool {
	if c.redis == nil {
		return false
	}

	cached, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("Failed to read from Redis")
		}
		return false
	}

	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		c.logger.WithError(err).Warn("Failed to unmarshal cached TMDB response")
		return false
	}

	c.logger.WithField("key", key).Debug("TMDB cache hit")
	return true
}

func (c *TMDBClient) writeCache(ctx context.Context, key string, src any, ttl time.Duration) {
	if c.redis == nil {
		return
	}

	payload, err := json.Marshal(src)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to marshal TMDB response for caching")
		return
	}
	if err := c.redis.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Failed to write TMDB response to cache")
	}
}

// makeRequest GETs endpoint with the API key attached, retrying transient
// failures. A 404 returns (nil, nil) so callers can treat it as "not found"
// rather than a transport error.
func (c *TMDBClient) makeRequest(ctx context.Context, endpoint string) ([]byte, error) {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	endpoint = endpoint + sep + "api_key=" + url.QueryEscape(c.apiKey)

	var rErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			rErr = fmt.Errorf("failed to make HTTP request: %w", err)
			c.retryLogger(attempt, endpoint, err)
			c.waitForRetry(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusNotFound {
			resp.Body.Close()
			c.logger.WithField("url", endpoint).Info("TMDB resource not found")
			return nil, nil
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			rErr = fmt.Errorf("API returned status code %d", resp.StatusCode)
			c.retryLogger(attempt, endpoint, rErr)
			c.waitForRetry(ctx, attempt)
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
		resp.Body.Close()
		if err != nil {
			rErr = fmt.Errorf("failed to read response body: %w", err)
			c.retryLogger(attempt, endpoint, err)
			c.waitForRetry(ctx, attempt)
			continue
		}
		if len(body) > maxResponseSize {
			return nil, fmt.Errorf("response too large: exceeded %d bytes", maxResponseSize)
		}

		c.logger.WithFields(logrus.Fields{
			"url":           endpoint,
			"attempt":       attempt,
			"status":        resp.StatusCode,
			"response_size": len(body),
		}).Debug("API request successful")

		return body, nil
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", maxRetries, rErr)
}

func (c *TMDBClient) retryLogger(attempt int, url string, err error) {
	c.logger.WithFields(logrus.Fields{
		"attempt": attempt + 1,
		"url":     url,
		"error":   err.Error(),
	}).Warn("API request failed, retrying...")
}

func (c *TMDBClient) waitForRetry(ctx context.Context, attempt int) {
	if attempt >= maxRetries-1 {
		return
	}
	delay := time.Duration(attempt+1) * retryDelay
	c.logger.WithField("delay", delay).Debug("waiting before retry")
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}
