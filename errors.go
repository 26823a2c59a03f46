package bountyboard

import (
	"fmt"
	"time"
)

// Error represents a bounty board API error: a non-recoverable HTTP failure,
// retry exhaustion on a transient fault, or a malformed response.
type Error struct {
	Code    string
	Message string
	Status  int
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bountyboard: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("bountyboard: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code, message string, status int, cause error) *Error {
	return &Error{Code: code, Message: message, Status: status, Cause: cause}
}

// AlreadyClaimedError is returned when claiming a bounty another wallet
// already holds. The request is never retried: repeating it cannot change
// the outcome.
type AlreadyClaimedError struct {
	// ClaimedBy is the wallet address holding the claim, or "unknown" when
	// the server does not report one.
	ClaimedBy string

	// ClaimedAt is when the claim was made.
	ClaimedAt time.Time
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("bountyboard: bounty already claimed by %s", e.ClaimedBy)
}

// ValidationError reports a caller-side precondition violated before any
// network call was made, or a structurally malformed value in a server
// response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bountyboard: invalid %s: %s", e.Field, e.Message)
}
