package scraped

import "context"

// HostLimiter paces requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
