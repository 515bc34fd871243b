package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"reelnote/internal/logging"
	"reelnote/internal/services"
)

const (
	defaultBaseURL      = "https://api.themoviedb.org/3"
	defaultImageBaseURL = "https://image.tmdb.org/t/p/original"
	defaultMaxAttempts  = 3
	maxBackoff          = 10 * time.Second
)

var (
	// ErrInvalidMediaType is returned for media types other than movie or tv.
	ErrInvalidMediaType = errors.New("invalid media type")
	// ErrNoPoster is returned when the details payload carries no poster path.
	ErrNoPoster = errors.New("poster not available")
)

// HTTPDoer is the subset of http.Client the TMDB client depends on.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the TMDB v3 API. Transient transport failures and 5xx
// responses retry with exponential backoff; 4xx responses fail immediately.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   HTTPDoer
	logger       *slog.Logger
	maxAttempts  int
	sleep        func(time.Duration)

	mu         sync.RWMutex
	genreCache map[string]map[int]string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithImageBaseURL overrides the image base URL.
func WithImageBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.imageBaseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithRetryAttempts overrides how many times a retryable request is tried.
func WithRetryAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.maxAttempts = attempts
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "tmdb")
		}
	}
}

// New creates a TMDB client.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "tmdb", "new", "api key required", nil)
	}
	client := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logging.NewNop(),
		maxAttempts:  defaultMaxAttempts,
		sleep:        time.Sleep,
		genreCache:   make(map[string]map[int]string),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchResult is a single multi-search match.
type SearchResult struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// DisplayTitle returns the movie title or the TV show name.
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Year extracts the four-digit year from the release or first air date.
func (r SearchResult) Year() string {
	source := r.ReleaseDate
	if r.MediaType == "tv" {
		source = r.FirstAirDate
	}
	if source == "" {
		return "Unknown"
	}
	if len(source) >= 4 {
		return source[:4]
	}
	return source
}

// SearchMulti runs a multi-search and returns up to limit movie and TV
// matches. Results without a poster, and media types other than movie or tv,
// are dropped. Adult titles are excluded at the API level.
func (c *Client) SearchMulti(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var response struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.getJSON(ctx, "/search/multi", params, &response); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, limit)
	for _, item := range response.Results {
		if len(results) >= limit {
			break
		}
		if item.MediaType != "movie" && item.MediaType != "tv" {
			continue
		}
		if item.PosterPath == "" {
			continue
		}
		results = append(results, item)
	}
	c.logger.Debug("multi search",
		logging.String("query", query),
		logging.Int("results", len(results)))
	return results, nil
}

// Details is the raw TMDB details payload. Typed accessors live in the
// content package, which consumes the full document.
type Details map[string]any

// Details fetches the movie or TV details document. The full flag appends
// external IDs, keywords, and (for TV) content ratings to the response.
func (c *Client) Details(ctx context.Context, mediaType string, id int, full bool) (Details, error) {
	params := url.Values{}
	var endpoint string
	switch mediaType {
	case "movie":
		endpoint = fmt.Sprintf("/movie/%d", id)
		if full {
			params.Set("append_to_response", "external_ids,keywords")
		}
	case "tv":
		endpoint = fmt.Sprintf("/tv/%d", id)
		if full {
			params.Set("append_to_response", "external_ids,keywords,content_ratings")
		}
	default:
		return nil, ErrInvalidMediaType
	}

	var details Details
	if err := c.getJSON(ctx, endpoint, params, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// PosterURL extracts the poster image URL from a details payload.
func (c *Client) PosterURL(details Details) (string, error) {
	posterPath, _ := details["poster_path"].(string)
	if posterPath == "" {
		return "", ErrNoPoster
	}
	return c.ImageURL(posterPath), nil
}

// ImageURL builds a full image URL from a TMDB poster path.
func (c *Client) ImageURL(posterPath string) string {
	return c.imageBaseURL + posterPath
}

// DownloadImage fetches raw image bytes, retrying like API requests.
func (c *Client) DownloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	var data []byte
	err := c.withRetry(ctx, "download image", func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &statusError{code: resp.StatusCode}
		}
		data, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return nil, services.Wrap(classify(err), "tmdb", "download image", imageURL, err)
	}
	return data, nil
}

// classify maps a failed request to its sentinel: missing resources are
// not-found, everything else is transient.
func classify(err error) error {
	var status *statusError
	if errors.As(err, &status) && status.code == http.StatusNotFound {
		return services.ErrNotFound
	}
	return services.ErrTransient
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, target any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	requestURL := c.baseURL + endpoint + "?" + params.Encode()

	err := c.withRetry(ctx, endpoint, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(body))}
		}
		return json.NewDecoder(resp.Body).Decode(target)
	})
	if err != nil {
		return services.Wrap(classify(err), "tmdb", strings.TrimPrefix(endpoint, "/"), "request failed", err)
	}
	return nil
}

func (c *Client) withRetry(ctx context.Context, operation string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == c.maxAttempts {
			return err
		}
		delay := backoffDelay(attempt)
		c.logger.Debug("retrying request",
			logging.String("operation", operation),
			logging.Int("attempt", attempt),
			logging.Duration("delay", delay),
			logging.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		c.sleep(delay)
	}
	return lastErr
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("unexpected status %d", e.code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

// isRetryable treats transport failures and server errors as transient.
// Client errors (bad key, missing resource) never retry.
func isRetryable(err error) bool {
	var status *statusError
	if errors.As(err, &status) {
		return status.code >= 500
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func backoffDelay(attempt int) time.Duration {
	delay := time.Duration(1<<uint(attempt-1)) * time.Second
	if delay > maxBackoff {
		return maxBackoff
	}
	return delay
}
