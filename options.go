package bountyboard

import (
	"net/http"
	"strings"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Trailing slashes are stripped.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithWalletAddress sets the default wallet address attached to claim and
// submit calls when the caller does not pass one explicitly.
func WithWalletAddress(address string) Option {
	return func(c *Client) {
		c.walletAddress = address
	}
}

// WithRetries sets the total number of attempts per operation, including the
// first one. Values below 1 are ignored.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 1 {
			c.maxRetries = n
		}
	}
}

// WithRetryDelay sets the base backoff unit between retry attempts. The
// wait before attempt n+1 is n times this delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client. The caller keeps ownership:
// [Client.Close] will not release it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.external = httpClient
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
