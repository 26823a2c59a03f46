package bountyboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-openapi/swag"
)

// maxErrorBodySize limits how much of an error response body is read. 4KB is
// plenty for the service's error envelopes while capping what a misbehaving
// server can make us buffer.
const maxErrorBodySize = 4096

// errorEnvelope is the body shape of any 4xx/5xx response. claimedBy and
// claimedAt are only present on the already-claimed conflict.
type errorEnvelope struct {
	Error     string `json:"error"`
	ClaimedBy string `json:"claimedBy"`
	ClaimedAt int64  `json:"claimedAt"`
}

// do performs one logical API call with retry, decoding a successful JSON
// response into out when out is non-nil.
//
// Only transient failures are retried: 5xx responses and transport faults,
// with a linear backoff of retryDelay * attempt between tries. 4xx responses
// and the already-claimed conflict fail immediately.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var payload []byte
	if body != nil {
		b, err := swag.WriteJSON(body)
		if err != nil {
			return newError("REQUEST_FAILED", "failed to encode request body", 0, err)
		}
		payload = b
	}

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		data, retryable, err := c.attempt(ctx, method, url, payload)
		if err == nil {
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(data, out); err != nil {
				return newError("INVALID_RESPONSE", "failed to decode response", 0, err)
			}
			return nil
		}

		if retryable && attempt < c.maxRetries {
			if serr := c.sleep(ctx, c.retryDelay*time.Duration(attempt)); serr != nil {
				return newError("REQUEST_FAILED", "request aborted during backoff", 0, serr)
			}
			continue
		}
		return err
	}

	// Unreachable with maxRetries >= 1; kept so a broken configuration
	// still surfaces a sane error.
	return newError("RETRIES_EXHAUSTED", fmt.Sprintf("giving up after %d attempts", c.maxRetries), 0, nil)
}

// attempt issues a single HTTP request and reads the full response body.
// The second return value reports whether the failure is worth retrying.
func (c *Client) attempt(ctx context.Context, method, url string, payload []byte) (json.RawMessage, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, body)
	if err != nil {
		return nil, false, newError("REQUEST_FAILED", "failed to create request", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.transport().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// The caller's context is gone; retrying is pointless.
			return nil, false, newError("REQUEST_FAILED", "request cancelled", 0, ctx.Err())
		}
		return nil, true, newError("REQUEST_FAILED", "request failed", 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode >= 500, c.apiError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, newError("REQUEST_FAILED", "failed to read response body", 0, err)
	}
	return data, false, nil
}

// apiError turns a 4xx/5xx response into the matching typed error. A 409
// whose error text mentions "claimed" is the distinguished already-claimed
// conflict.
func (c *Client) apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var envelope errorEnvelope
	if err := swag.ReadJSON(raw, &envelope); err != nil {
		envelope = errorEnvelope{Error: strings.TrimSpace(string(raw))}
	}

	if resp.StatusCode == http.StatusConflict && strings.Contains(strings.ToLower(envelope.Error), "claimed") {
		claimedBy := envelope.ClaimedBy
		if claimedBy == "" {
			claimedBy = "unknown"
		}
		return &AlreadyClaimedError{
			ClaimedBy: claimedBy,
			ClaimedAt: millisToTime(envelope.ClaimedAt),
		}
	}

	message := envelope.Error
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	return newError("API_ERROR", fmt.Sprintf("API error %d: %s", resp.StatusCode, message), resp.StatusCode, nil)
}

// sleepContext waits for d or until ctx is cancelled, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
