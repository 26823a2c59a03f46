// Package bountyboard provides a Go SDK for the owockibot Bounty Board API.
//
// The bounty board is a task marketplace: bounties carry a USDC reward and a
// lifecycle (open, claimed, submitted, completed). This SDK lets agents and
// tools discover open bounties, claim them for a wallet address, submit work,
// and read platform statistics.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/openfredbot/bounty-hunter
//
// # Quick Start
//
// Create a client and discover open bounties:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    bountyboard "github.com/openfredbot/bounty-hunter"
//	)
//
//	func main() {
//	    client := bountyboard.NewClient(
//	        bountyboard.WithWalletAddress("0xYourWallet"),
//	    )
//	    defer client.Close()
//
//	    bounties, err := client.Discover(context.Background())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, b := range bounties {
//	        fmt.Printf("%s: %s\n", b.Title, b.RewardFormatted)
//	    }
//	}
//
// # Client Configuration
//
// Every knob is optional; the zero configuration talks to the production
// service. Use functional options to override:
//
//	client := bountyboard.NewClient(
//	    bountyboard.WithBaseURL("http://localhost:3000"),
//	    bountyboard.WithWalletAddress("0xYourWallet"),
//	    bountyboard.WithRetries(5),
//	    bountyboard.WithRetryDelay(500*time.Millisecond),
//	)
//
// # Retries
//
// Each operation is attempted up to the configured number of times. Only
// transient failures are retried: 5xx responses and transport faults, with a
// linear backoff of retryDelay, 2*retryDelay, and so on between attempts.
// Client errors (4xx), the already-claimed conflict, and caller-side
// validation failures are surfaced immediately.
//
// # Error Handling
//
// The SDK provides typed errors for the three failure classes:
//
//	result, err := client.Claim(ctx, &bountyboard.ClaimRequest{BountyID: id})
//	if err != nil {
//	    var claimed *bountyboard.AlreadyClaimedError
//	    var invalid *bountyboard.ValidationError
//	    var apiErr *bountyboard.Error
//	    switch {
//	    case errors.As(err, &claimed):
//	        // Someone else holds the bounty; claimed.ClaimedBy says who.
//	    case errors.As(err, &invalid):
//	        // A precondition failed before any network call.
//	    case errors.As(err, &apiErr):
//	        // HTTP-level failure; apiErr.Status carries the status code.
//	    }
//	}
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. Requests
// share one connection pool; [Client.Close] releases it, and the next call
// on a closed client transparently creates a fresh one.
//
// # API Version Compatibility
//
// This SDK targets bounty board API v1. Use [IsCompatible] to check a
// server-reported version against the supported range.
package bountyboard
