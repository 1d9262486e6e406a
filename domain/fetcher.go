package domain

import "context"

// Fetcher retrieves the raw release-metadata document behind a URL.
// Implementations perform exactly one attempt, block until the transport
// succeeds or fails, and surface transport failures as *NetworkError.
// The response body is returned for every status code: API-level failures
// are reported inside the body and classified by the evaluator, not here.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
