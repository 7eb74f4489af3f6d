package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okatsune/mania/internal/domain"
)

const (
	// DefaultBaseURL is the public Jikan v4 endpoint.
	DefaultBaseURL = "https://api.jikan.moe/v4"

	defaultTimeout = 10 * time.Second
	userAgent      = "Mania/1.0"
)

// Ranking filters for TopAnime. An empty filter ranks by score.
const (
	FilterAiring       = "airing"
	FilterUpcoming     = "upcoming"
	FilterByPopularity = "bypopularity"
)

// Client is a read-only Jikan API client. All requests share one base
// URL and a fixed timeout; the client performs no retry or backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Jikan client. An empty baseURL selects the public
// endpoint; a zero timeout selects the default 10s.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// get performs a GET request and returns the raw response body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("jikan request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("jikan request failed", "url", reqURL, "error", err)
		return nil, domain.ErrCatalogUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrItemNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("jikan request error", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// getList fetches and decodes a paginated listing.
func (c *Client) getList(ctx context.Context, path string, query url.Values) (*ListResponse, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

// TopAnime returns ranked anime, optionally narrowed by a named filter
// (FilterAiring, FilterByPopularity, ...). Empty filter ranks by score.
func (c *Client) TopAnime(ctx context.Context, filter string, page, limit int) (*ListResponse, error) {
	q := pageQuery(page, limit)
	if filter != "" {
		q.Set("filter", filter)
	}
	return c.getList(ctx, "/top/anime", q)
}

// SeasonUpcoming returns the upcoming season's titles.
func (c *Client) SeasonUpcoming(ctx context.Context, page, limit int) (*ListResponse, error) {
	return c.getList(ctx, "/seasons/upcoming", pageQuery(page, limit))
}

// SearchAnime runs a free-text query.
func (c *Client) SearchAnime(ctx context.Context, query string, page, limit int) (*ListResponse, error) {
	q := pageQuery(page, limit)
	q.Set("q", query)
	return c.getList(ctx, "/anime", q)
}

// AnimeByID fetches a single title.
func (c *Client) AnimeByID(ctx context.Context, id int) (*AnimeResponse, error) {
	body, err := c.get(ctx, fmt.Sprintf("/anime/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var resp AnimeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}

// AnimeCharacters fetches a title's character listing.
func (c *Client) AnimeCharacters(ctx context.Context, id int) (*CharactersResponse, error) {
	body, err := c.get(ctx, fmt.Sprintf("/anime/%d/characters", id), nil)
	if err != nil {
		return nil, err
	}
	var resp CharactersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}

// AnimeRecommendations fetches titles similar to the given one.
func (c *Client) AnimeRecommendations(ctx context.Context, id int) (*RecommendationsResponse, error) {
	body, err := c.get(ctx, fmt.Sprintf("/anime/%d/recommendations", id), nil)
	if err != nil {
		return nil, err
	}
	var resp RecommendationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}

// GenresAnime fetches the genre catalog.
func (c *Client) GenresAnime(ctx context.Context) (*GenresResponse, error) {
	body, err := c.get(ctx, "/genres/anime", nil)
	if err != nil {
		return nil, err
	}
	var resp GenresResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}
