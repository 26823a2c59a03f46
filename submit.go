package bountyboard

import (
	"context"
	"net/http"
	"net/url"
)

// SubmitRequest describes the work to hand in against a claimed bounty.
type SubmitRequest struct {
	// BountyID is the bounty the work answers. Required.
	BountyID string

	// Submission is the free-text description of the work done. Required.
	Submission string

	// Proof is an optional reference backing the submission, typically a
	// URL. When empty, no proof field is sent at all.
	Proof string

	// Address is the submitting wallet. When empty, the client's default
	// wallet address is used; with neither set the call fails before any
	// network traffic.
	Address string
}

type submitBody struct {
	Address    string `json:"address"`
	Submission string `json:"submission"`
	Proof      string `json:"proof,omitempty"`
}

// Submit hands in work for a bounty.
//
// The server responds with the updated bounty; the result carries the id of
// the submission just created.
//
// Example:
//
//	result, err := client.Submit(ctx, &bountyboard.SubmitRequest{
//	    BountyID:   "42",
//	    Submission: "Implemented the parser, all tests green.",
//	    Proof:      "https://github.com/you/fix/pull/7",
//	})
func (c *Client) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Message: "request is required"}
	}
	if req.BountyID == "" {
		return nil, &ValidationError{Field: "bountyID", Message: "bounty id is required"}
	}
	if req.Submission == "" {
		return nil, &ValidationError{Field: "submission", Message: "submission content is required"}
	}
	address, err := c.resolveAddress(req.Address)
	if err != nil {
		return nil, err
	}

	var w bountyWire
	path := "/bounties/" + url.PathEscape(req.BountyID) + "/submit"
	body := submitBody{Address: address, Submission: req.Submission, Proof: req.Proof}
	if err := c.do(ctx, http.MethodPost, path, body, &w); err != nil {
		return nil, err
	}

	if len(w.Submissions) == 0 {
		return nil, newError("INVALID_RESPONSE", "submit response carries no submissions", 0, nil)
	}
	last := w.Submissions[len(w.Submissions)-1]

	return &SubmitResult{
		ID:           w.ID,
		Status:       statusFromWire(w.Status),
		SubmissionID: last.ID,
	}, nil
}
