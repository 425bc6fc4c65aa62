// Package catalog implements the client for the external content catalog
// service: title discovery, similarity, trending and popularity lookups.
// The client makes one attempt per call and returns wrapped errors; failure
// isolation is the caller's concern.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/reelscope/pkg/domain"
)

// Client talks to the catalog service over HTTP
type Client struct {
	endpoint   string
	apiKey     string
	language   string
	httpClient *http.Client
	sanitizer  *bluemonday.Policy

	genreMu sync.RWMutex
	genres  map[int64]string
}

// Params holds catalog client parameters
type Params struct {
	Endpoint string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// New creates a catalog client
func New(p Params) *Client {
	if p.Timeout == 0 {
		p.Timeout = 10 * time.Second
	}
	if p.Language == "" {
		p.Language = "en-US"
	}
	return &Client{
		endpoint:   strings.TrimRight(p.Endpoint, "/"),
		apiKey:     p.APIKey,
		language:   p.Language,
		httpClient: &http.Client{Timeout: p.Timeout},
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// SearchByGenre returns titles of the given type restricted to one genre
func (c *Client) SearchByGenre(ctx context.Context, contentType domain.ContentType, genreID int64, sortBy string, page int) ([]domain.CatalogItem, error) {
	query := url.Values{
		"with_genres":    []string{strconv.FormatInt(genreID, 10)},
		"sort_by":        []string{sortBy},
		"page":           []string{strconv.Itoa(page)},
		"vote_count.gte": []string{"100"}, // skip obscure titles with a handful of votes
	}
	resp, err := c.getList(ctx, "/discover/"+mediaPath(contentType), query)
	if err != nil {
		return nil, fmt.Errorf("search by genre %d: %w", genreID, err)
	}
	return c.toItems(resp.Results, contentType), nil
}

// Similar returns titles similar to the given one
func (c *Client) Similar(ctx context.Context, contentID int64, contentType domain.ContentType) ([]domain.CatalogItem, error) {
	path := fmt.Sprintf("/%s/%d/similar", mediaPath(contentType), contentID)
	resp, err := c.getList(ctx, path, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("similar to %s %d: %w", contentType, contentID, err)
	}
	return c.toItems(resp.Results, contentType), nil
}

// Trending returns the catalog's current trending titles across both types.
// Items carry popularity and their own media type.
func (c *Client) Trending(ctx context.Context, window string) ([]domain.CatalogItem, error) {
	if window != WindowDay && window != WindowWeek {
		window = WindowDay
	}
	resp, err := c.getList(ctx, "/trending/all/"+window, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("trending %s: %w", window, err)
	}
	return c.toItems(resp.Results, ""), nil
}

// Popular returns the catalog's popular titles of the given type
func (c *Client) Popular(ctx context.Context, contentType domain.ContentType, page int) ([]domain.CatalogItem, error) {
	query := url.Values{"page": []string{strconv.Itoa(page)}}
	resp, err := c.getList(ctx, "/"+mediaPath(contentType)+"/popular", query)
	if err != nil {
		return nil, fmt.Errorf("popular %s: %w", contentType, err)
	}
	return c.toItems(resp.Results, contentType), nil
}

// AccountRecommendations returns the catalog's own account-linked
// recommendations. An empty session means no account linkage, which is not an
// error - the result is simply empty.
func (c *Client) AccountRecommendations(ctx context.Context, contentType domain.ContentType, session string) ([]domain.CatalogItem, error) {
	if session == "" {
		return nil, nil
	}
	query := url.Values{"session_id": []string{session}}
	resp, err := c.getList(ctx, "/account/recommendations/"+mediaPath(contentType), query)
	if err != nil {
		return nil, fmt.Errorf("account recommendations %s: %w", contentType, err)
	}
	return c.toItems(resp.Results, contentType), nil
}

// GenreName resolves a genre id to its display name, fetching and caching the
// catalog's genre list on first use. Unknown ids render as "genre <id>".
func (c *Client) GenreName(ctx context.Context, genreID int64) string {
	c.genreMu.RLock()
	genres := c.genres
	c.genreMu.RUnlock()

	if genres == nil {
		fetched, err := c.fetchGenres(ctx)
		if err != nil {
			return fmt.Sprintf("genre %d", genreID)
		}
		genres = fetched
	}

	if name, ok := genres[genreID]; ok {
		return name
	}
	return fmt.Sprintf("genre %d", genreID)
}

// fetchGenres loads the genre list and caches it
func (c *Client) fetchGenres(ctx context.Context) (map[int64]string, error) {
	reqURL := c.buildURL("/genres", url.Values{})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create genres request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch genres: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch genres: unexpected status %d", resp.StatusCode)
	}

	var parsed genreListResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}

	genres := make(map[int64]string, len(parsed.Genres))
	for _, g := range parsed.Genres {
		genres[g.ID] = g.Name
	}

	c.genreMu.Lock()
	c.genres = genres
	c.genreMu.Unlock()

	return genres, nil
}

// getList performs a GET request and decodes the standard paged envelope
func (c *Client) getList(ctx context.Context, path string, query url.Values) (*listResponse, error) {
	reqURL := c.buildURL(path, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed listResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &parsed, nil
}

// buildURL assembles the request URL with common query parameters
func (c *Client) buildURL(path string, query url.Values) string {
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}
	query.Set("language", c.language)
	return c.endpoint + path + "?" + query.Encode()
}

// toItems converts catalog JSON items to domain items. The fallback type is
// used when the endpoint doesn't tag items with a media type of their own.
func (c *Client) toItems(results []itemJSON, fallback domain.ContentType) []domain.CatalogItem {
	items := make([]domain.CatalogItem, 0, len(results))
	for _, r := range results {
		item := domain.CatalogItem{
			ID:          r.ID,
			Title:       r.Title,
			Overview:    c.cleanText(r.Overview),
			GenreIDs:    r.GenreIDs,
			Rating:      r.VoteAverage,
			Popularity:  r.Popularity,
			PosterPath:  r.PosterPath,
			ReleaseDate: r.ReleaseDate,
		}

		switch {
		case r.MediaType != "":
			item.Type = mediaType(r.MediaType)
		case fallback != "":
			item.Type = fallback
		case r.Title == "" && r.Name != "":
			item.Type = domain.ContentSeries
		default:
			item.Type = domain.ContentMovie
		}

		// series use name/first_air_date instead of title/release_date
		if item.Title == "" {
			item.Title = r.Name
		}
		if item.ReleaseDate == "" {
			item.ReleaseDate = r.FirstAirDate
		}

		items = append(items, item)
	}
	return items
}

// cleanText strips markup the catalog occasionally leaks into overview text
func (c *Client) cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(s)))
}
