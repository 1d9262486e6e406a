// Package testdoubles provides hand-crafted test doubles (spies, stubs,
// dummies) for domain interfaces. No mock frameworks.
package testdoubles

import (
	"context"

	"github.com/rios0rios0/relcheck/domain"
)

// StubFetcher implements domain.Fetcher as a configurable spy.
// Configure Body or Err for the response, then inspect RequestedURLs to
// verify which endpoints were hit.
type StubFetcher struct {
	Body []byte
	Err  error

	// spy: URLs that were requested
	RequestedURLs []string
}

var _ domain.Fetcher = (*StubFetcher)(nil)

func (f *StubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.RequestedURLs = append(f.RequestedURLs, url)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Body, nil
}
