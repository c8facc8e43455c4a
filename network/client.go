// Package network provides a pre-configured HTTP client shared by all external service calls.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// Scheme requests are tiny JSON exchanges, so the pool is kept small and the
// timeouts short; per-call deadlines are layered on top via context.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with conservative pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}
