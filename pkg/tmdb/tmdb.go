// Package tmdb is a hand-rolled client for the four TMDB v3 operations the
// discovery flow needs: genre list, person search, movie discovery and movie
// details. Responses are decoded into typed records at this boundary so
// callers never probe raw JSON.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	mhttp "github.com/cinescope/cinescope/pkg/http"
)

const (
	// ReleaseDateFormat is the date layout used by TMDB release date filters.
	ReleaseDateFormat = "2006-01-02"

	// DefaultTimeout bounds every outbound call. Exceeding it surfaces as a
	// plain transport error.
	DefaultTimeout = 15 * time.Second

	defaultSort = "popularity.desc"
)

// ClientInterface is the TMDB surface consumed by the discovery layer.
type ClientInterface interface {
	MovieGenres(ctx context.Context) (*GenreList, error)
	SearchPerson(ctx context.Context, query string) (*PersonSearchResponse, error)
	DiscoverMovies(ctx context.Context, params url.Values, page int) (*DiscoverResponse, error)
	MovieDetails(ctx context.Context, id int) (*MovieDetail, error)
}

// Client talks to the TMDB v3 API using bearer token auth.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    mhttp.HTTPClient
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http client used for requests.
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.http = client
	}
}

// New creates a TMDB client for the given base URL and v4 read access token.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tmdb base url: %w", err)
	}

	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MovieGenres fetches the movie genre taxonomy.
func (c *Client) MovieGenres(ctx context.Context) (*GenreList, error) {
	out := new(GenreList)
	if err := c.get(ctx, "/genre/movie/list", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchPerson resolves a free-text name against the person catalog. Adult
// results are always excluded.
func (c *Client) SearchPerson(ctx context.Context, query string) (*PersonSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	out := new(PersonSearchResponse)
	if err := c.get(ctx, "/search/person", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DiscoverMovies fetches one page of the discover endpoint with the supplied
// filter parameters. include_adult and language are forced, and the sort key
// defaults to popularity descending when the caller did not choose one.
func (c *Client) DiscoverMovies(ctx context.Context, params url.Values, page int) (*DiscoverResponse, error) {
	merged := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			merged.Add(k, v)
		}
	}
	merged.Set("page", strconv.Itoa(page))
	merged.Set("include_adult", "false")
	merged.Set("language", "en-US")
	if merged.Get("sort_by") == "" {
		merged.Set("sort_by", defaultSort)
	}

	out := new(DiscoverResponse)
	if err := c.get(ctx, "/discover/movie", merged, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MovieDetails fetches a movie by id with credits appended.
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetail, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("append_to_response", "credits")

	out := new(MovieDetail)
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, target any) error {
	u := *c.baseURL
	u.Path, _ = url.JoinPath(u.Path, path)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request failed: %w", err)
	}
	defer res.Body.Close()

	return parseResponse(res, target)
}

func parseResponse(res *http.Response, target any) error {
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected tmdb status: %s", res.Status)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read tmdb response: %w", err)
	}

	if err := json.Unmarshal(b, target); err != nil {
		return fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return nil
}
