package bountyboard

import (
	"context"
	"net/http"
	"net/url"
)

// ClaimRequest identifies the bounty to claim and, optionally, the wallet
// claiming it.
type ClaimRequest struct {
	// BountyID is the bounty to claim. Required.
	BountyID string

	// Address is the claiming wallet. When empty, the client's default
	// wallet address is used; with neither set the claim fails before any
	// network call.
	Address string
}

type claimBody struct {
	Address string `json:"address"`
}

type claimResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	ClaimedAt int64  `json:"claimedAt"`
	ClaimedBy string `json:"claimedBy"`
}

// Claim reserves a bounty for a wallet address.
//
// Claims are exclusive and first-come: when another wallet already holds
// the bounty, the call fails with [AlreadyClaimedError] naming the holder,
// and is not retried.
//
// Example:
//
//	result, err := client.Claim(ctx, &bountyboard.ClaimRequest{BountyID: "42"})
//	if err != nil {
//	    var claimed *bountyboard.AlreadyClaimedError
//	    if errors.As(err, &claimed) {
//	        log.Printf("taken by %s at %s", claimed.ClaimedBy, claimed.ClaimedAt)
//	    }
//	    return err
//	}
//	fmt.Printf("claimed, status now %s\n", result.Status)
func (c *Client) Claim(ctx context.Context, req *ClaimRequest) (*ClaimResult, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Message: "request is required"}
	}
	if req.BountyID == "" {
		return nil, &ValidationError{Field: "bountyID", Message: "bounty id is required"}
	}
	address, err := c.resolveAddress(req.Address)
	if err != nil {
		return nil, err
	}

	var resp claimResponse
	path := "/bounties/" + url.PathEscape(req.BountyID) + "/claim"
	if err := c.do(ctx, http.MethodPost, path, claimBody{Address: address}, &resp); err != nil {
		return nil, err
	}

	return &ClaimResult{
		ID:        resp.ID,
		Status:    statusFromWire(resp.Status),
		ClaimedAt: millisToTime(resp.ClaimedAt),
		ClaimedBy: resp.ClaimedBy,
	}, nil
}
