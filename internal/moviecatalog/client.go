// Package moviecatalog resolves movie summaries from the external movie service.
package moviecatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/metinatakli/cinema-service/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultTimeout         = 2 * time.Second
	DefaultMaxTries        = 3
	DefaultInitialInterval = 100 * time.Millisecond

	maxBodyBytes = 1 << 20
)

type Options struct {
	BaseURL string
	// Timeout bounds every attempt separately.
	Timeout         time.Duration
	MaxTries        uint
	InitialInterval time.Duration
	Transport       http.RoundTripper
}

// HTTPCatalog calls GET {BaseURL}/movies/{id}. Server errors and transport
// failures are retried with exponential backoff. A 404 is final.
type HTTPCatalog struct {
	baseURL         string
	client          *http.Client
	timeout         time.Duration
	maxTries        uint
	initialInterval time.Duration
}

type movieResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Duration  *int    `json:"duration"`
	PosterUrl *string `json:"posterUrl"`
}

func NewHTTPCatalog(opts Options) (*HTTPCatalog, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid movie catalog base url %q", opts.BaseURL)
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxTries == 0 {
		opts.MaxTries = DefaultMaxTries
	}
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = DefaultInitialInterval
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}

	return &HTTPCatalog{
		baseURL:         strings.TrimRight(base.String(), "/"),
		client:          &http.Client{Transport: otelhttp.NewTransport(opts.Transport)},
		timeout:         opts.Timeout,
		maxTries:        opts.MaxTries,
		initialInterval: opts.InitialInterval,
	}, nil
}

func (c *HTTPCatalog) GetSummary(ctx context.Context, movieID string) (domain.MovieSummary, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval

	movie, err := backoff.Retry(ctx, func() (domain.MovieSummary, error) {
		return c.fetch(ctx, movieID)
	}, backoff.WithBackOff(bo), backoff.WithMaxTries(c.maxTries))
	if err != nil {
		if !errors.Is(err, domain.ErrMovieNotFound) {
			err = fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
		return domain.MovieSummary{}, &domain.CatalogError{MovieID: movieID, Err: err}
	}

	return movie, nil
}

func (c *HTTPCatalog) fetch(ctx context.Context, movieID string) (domain.MovieSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/movies/" + url.PathEscape(movieID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.MovieSummary{}, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.MovieSummary{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.MovieSummary{}, backoff.Permanent(domain.ErrMovieNotFound)
	case resp.StatusCode >= http.StatusInternalServerError, resp.StatusCode == http.StatusTooManyRequests:
		return domain.MovieSummary{}, fmt.Errorf("movie service responded %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return domain.MovieSummary{}, backoff.Permanent(fmt.Errorf("movie service responded %d", resp.StatusCode))
	}

	var body movieResponse
	err = json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body)
	if err != nil {
		return domain.MovieSummary{}, backoff.Permanent(fmt.Errorf("decode movie %s: %w", movieID, err))
	}

	if body.ID == "" {
		body.ID = movieID
	}

	return domain.MovieSummary{
		ID:        body.ID,
		Title:     body.Title,
		Duration:  body.Duration,
		PosterUrl: body.PosterUrl,
	}, nil
}
