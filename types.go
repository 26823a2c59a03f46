package bountyboard

import "time"

// Status is the lifecycle state of a bounty.
//
// The server may introduce new states; unrecognized values are passed
// through untouched, and a bounty whose status is absent from the response
// reports [StatusUnknown].
type Status string

// Bounty lifecycle states.
const (
	// StatusOpen means the bounty is unclaimed and up for grabs.
	StatusOpen Status = "open"

	// StatusClaimed means a wallet holds an exclusive claim on the bounty.
	StatusClaimed Status = "claimed"

	// StatusSubmitted means work has been handed in and awaits review.
	StatusSubmitted Status = "submitted"

	// StatusCompleted means the bounty was accepted and paid out.
	StatusCompleted Status = "completed"

	// StatusUnknown is substituted when the server omits the status field.
	StatusUnknown Status = "unknown"
)

// Bounty is a task posted on the bounty board.
//
// Use [Client.ListBounties], [Client.Discover], or [Client.GetBounty] to
// fetch bounties:
//
//	bounty, err := client.GetBounty(ctx, "42")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if bounty.IsOpen() {
//	    fmt.Printf("%s pays %s\n", bounty.Title, bounty.RewardFormatted)
//	}
type Bounty struct {
	// ID is the bounty's primary identifier, used in API paths.
	ID string

	// UUID is a secondary globally unique identifier.
	UUID string

	// Title is the short human-readable name of the task.
	Title string

	// Description explains what the bounty asks for.
	Description string

	// Reward is the reward amount in whole tokens.
	Reward int64

	// RewardFormatted is the server's display string for the reward.
	// Example: "100 USDC".
	RewardFormatted string

	// Status is the bounty's lifecycle state.
	Status Status

	// Creator identifies who posted the bounty.
	Creator string

	// Deadline is when the bounty expires, nil when it has none.
	Deadline *time.Time

	// Tags categorize the bounty, in server order.
	Tags []string

	// Requirements lists what a submission must include, in server order.
	Requirements []string

	// Submissions holds the work handed in so far, in server order.
	// The last element is the most recent submission.
	Submissions []Submission

	// ClaimedBy is the wallet address holding the claim, empty when
	// unclaimed.
	ClaimedBy string

	// ClaimedAt is when the bounty was claimed, nil when unclaimed.
	ClaimedAt *time.Time

	// CompletedAt is when the bounty was completed, nil until then.
	CompletedAt *time.Time

	// Payment describes the payout of a completed bounty, nil until one
	// has been processed.
	Payment *Payment
}

// IsOpen returns true if the bounty is unclaimed and can be claimed.
func (b *Bounty) IsOpen() bool {
	return b.Status == StatusOpen
}

// IsCompleted returns true if the bounty has been accepted and paid out.
func (b *Bounty) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// HasTag returns true if the bounty carries the given tag.
func (b *Bounty) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Submission is a piece of work offered against a claimed bounty.
type Submission struct {
	// ID identifies the submission.
	ID string

	// Content is the free-text description of the work done.
	Content string

	// Proof is an optional reference backing the submission, typically a
	// URL. Empty when no proof was supplied.
	Proof string

	// SubmittedAt is when the work was handed in.
	SubmittedAt time.Time
}

// Payment describes the on-chain payout of a completed bounty.
//
// It is only present when the server reports a payment with a non-empty
// chain; a pending or unpaid bounty has no Payment.
type Payment struct {
	// Chain is the network the payout settled on. The service pays on
	// "base" by default.
	Chain string

	// Token is the payout token symbol, "USDC" when unreported.
	Token string

	// TxHash is the settlement transaction hash.
	TxHash string

	// GrossReward is the reward before fees, in whole tokens.
	GrossReward int64

	// NetReward is what the claimant received after fees.
	NetReward int64

	// Fee is the amount withheld, in whole tokens.
	Fee int64

	// FeePercent is the server's display string for the fee rate, "0%"
	// when unreported.
	FeePercent string

	// ProcessedAt is when the payout was processed. When the server omits
	// it, the time the response was parsed is substituted.
	ProcessedAt time.Time
}

// Stats summarizes platform-wide bounty activity.
//
// Use [Client.Stats] to fetch the current numbers:
//
//	stats, err := client.Stats(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d open of %d total, %s paid out\n",
//	    stats.OpenBounties, stats.TotalBounties, stats.TotalPayoutsFormatted)
type Stats struct {
	// TotalBounties is the number of bounties ever posted.
	TotalBounties int64

	// OpenBounties is the number of currently claimable bounties.
	OpenBounties int64

	// ClaimedBounties is the number of bounties currently claimed.
	ClaimedBounties int64

	// CompletedBounties is the number of bounties paid out.
	CompletedBounties int64

	// TotalPayouts is the sum of all payouts, in whole tokens.
	TotalPayouts int64

	// TotalPayoutsFormatted is the server's display string for
	// TotalPayouts. Example: "1250 USDC". Defaults to "0 USDC".
	TotalPayoutsFormatted string
}

// ClaimResult echoes the server's response to a successful claim.
type ClaimResult struct {
	// ID is the claimed bounty's identifier.
	ID string

	// Status is the bounty's state after the claim, normally
	// [StatusClaimed].
	Status Status

	// ClaimedAt is when the server registered the claim.
	ClaimedAt time.Time

	// ClaimedBy is the wallet address now holding the claim.
	ClaimedBy string
}

// SubmitResult echoes the server's response to a successful work submission.
type SubmitResult struct {
	// ID is the bounty's identifier.
	ID string

	// Status is the bounty's state after the submission, normally
	// [StatusSubmitted].
	Status Status

	// SubmissionID identifies the newly created submission.
	SubmissionID string
}
