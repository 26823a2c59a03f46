package bountyboard

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// DefaultBaseURL is the production bounty board endpoint.
const DefaultBaseURL = "https://bounty.owockibot.xyz"

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 1 * time.Second
)

// Client is the bounty board API client.
//
// Create one with [NewClient]. The zero configuration targets the production
// service with three attempts per operation and one second of base backoff.
type Client struct {
	baseURL       string
	walletAddress string
	maxRetries    int
	retryDelay    time.Duration
	timeout       time.Duration
	userAgent     string

	// sleep waits out the backoff between retry attempts. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error

	// mu serializes creation and teardown of the owned connection pool,
	// not individual requests.
	mu       sync.Mutex
	external *http.Client // caller-supplied, never torn down by Close
	owned    *http.Client // lazily created when no external client is set
}

// NewClient creates a new bounty board client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		timeout:    defaultTimeout,
		userAgent:  "bounty-hunter-go/" + Version,
		sleep:      sleepContext,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// transport returns the HTTP client to issue requests with, creating the
// owned connection pool on first use or after a Close.
func (c *Client) transport() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.external != nil {
		return c.external
	}
	if c.owned == nil {
		c.owned = &http.Client{}
	}
	return c.owned
}

// Close releases the connection pool owned by the client. It is safe to call
// multiple times and from concurrent goroutines; in-flight requests keep
// their connections until they finish. A closed client remains usable: the
// next operation creates a fresh pool.
//
// A client supplied via [WithHTTPClient] is owned by the caller and is left
// untouched.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.owned != nil {
		c.owned.CloseIdleConnections()
		c.owned = nil
	}
	return nil
}

// resolveAddress picks the explicit wallet address when given, falling back
// to the client default.
func (c *Client) resolveAddress(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.walletAddress != "" {
		return c.walletAddress, nil
	}
	return "", &ValidationError{Field: "address", Message: "wallet address is required"}
}
