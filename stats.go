package bountyboard

import (
	"context"
	"net/http"
)

// Stats fetches platform-wide bounty statistics.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var w statsWire
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &w); err != nil {
		return nil, err
	}
	return statsFromWire(&w), nil
}
