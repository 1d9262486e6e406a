package github

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rios0rios0/relcheck/domain"
)

// userAgent identifies relcheck to the GitHub API on every request.
const userAgent = "relcheck"

// Fetcher implements domain.Fetcher against the GitHub REST API.
type Fetcher struct {
	client *http.Client
}

// New creates a new GitHub fetcher with the given request timeout.
func New(timeout time.Duration) domain.Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs a single GET request and returns the raw response body.
// The body is returned for every status code: GitHub reports API-level
// failures (not found, rate limit) as JSON carrying a "message" field, and
// the evaluator is the one that understands that convention. There is no
// retry and no backoff; redirects follow the transport's defaults.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.NetworkError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{URL: url, Err: err}
	}

	return body, nil
}
