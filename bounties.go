package bountyboard

import (
	"context"
	"net/http"
	"net/url"
)

// ListOptions filters a bounty listing. The zero value (or a nil pointer)
// keeps everything.
//
// Filtering happens client-side after fetching the full collection: Status
// must match exactly, and Tags keeps a bounty when ANY of the given tags
// appears in its tag list. Server order is preserved.
type ListOptions struct {
	// Status keeps only bounties in this lifecycle state.
	Status Status

	// Tags keeps bounties carrying at least one of these tags.
	Tags []string
}

// ListBounties fetches all bounties, optionally filtered.
//
// Example:
//
//	bounties, err := client.ListBounties(ctx, &bountyboard.ListOptions{
//	    Status: bountyboard.StatusOpen,
//	    Tags:   []string{"go", "sdk"},
//	})
func (c *Client) ListBounties(ctx context.Context, opts *ListOptions) ([]Bounty, error) {
	var wires []bountyWire
	if err := c.do(ctx, http.MethodGet, "/bounties", nil, &wires); err != nil {
		return nil, err
	}

	bounties := make([]Bounty, 0, len(wires))
	for i := range wires {
		b, err := bountyFromWire(&wires[i])
		if err != nil {
			return nil, err
		}
		bounties = append(bounties, *b)
	}

	if opts == nil {
		return bounties, nil
	}
	return filterBounties(bounties, opts), nil
}

// GetBounty fetches a single bounty by its identifier.
func (c *Client) GetBounty(ctx context.Context, id string) (*Bounty, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "bounty id is required"}
	}

	var w bountyWire
	if err := c.do(ctx, http.MethodGet, "/bounties/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, err
	}
	return bountyFromWire(&w)
}

// Discover lists the open bounties, optionally narrowed to those carrying
// at least one of the given tags. It is shorthand for [Client.ListBounties]
// with [StatusOpen].
func (c *Client) Discover(ctx context.Context, tags ...string) ([]Bounty, error) {
	return c.ListBounties(ctx, &ListOptions{Status: StatusOpen, Tags: tags})
}

func filterBounties(bounties []Bounty, opts *ListOptions) []Bounty {
	filtered := make([]Bounty, 0, len(bounties))
	for _, b := range bounties {
		if opts.Status != "" && b.Status != opts.Status {
			continue
		}
		if len(opts.Tags) > 0 && !hasAnyTag(&b, opts.Tags) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

func hasAnyTag(b *Bounty, tags []string) bool {
	for _, t := range tags {
		if b.HasTag(t) {
			return true
		}
	}
	return false
}
