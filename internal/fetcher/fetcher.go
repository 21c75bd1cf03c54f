// Package fetcher downloads raw bytes from HTTP sources.
package fetcher

import (
	"context"
)

// Fetcher defines the interface for downloading remote data.
type Fetcher interface {
	// Fetch performs a single blocking GET and returns the response body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
