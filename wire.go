package bountyboard

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// Wire-level shapes as the service sends them: camelCase field names and
// epoch-millisecond timestamps. payment.processedAt is the one ISO-8601
// field; deadline may arrive in either encoding.

type bountyWire struct {
	ID              string           `json:"id"`
	UUID            string           `json:"uuid"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Reward          json.RawMessage  `json:"reward"`
	RewardFormatted string           `json:"rewardFormatted"`
	Status          string           `json:"status"`
	Creator         string           `json:"creator"`
	Deadline        json.RawMessage  `json:"deadline"`
	Tags            []string         `json:"tags"`
	Requirements    []string         `json:"requirements"`
	Submissions     []submissionWire `json:"submissions"`
	ClaimedBy       string           `json:"claimedBy"`
	ClaimedAt       int64            `json:"claimedAt"`
	CompletedAt     int64            `json:"completedAt"`
	Payment         *paymentWire     `json:"payment"`
}

type submissionWire struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	Proof       string `json:"proof"`
	SubmittedAt int64  `json:"submittedAt"`
}

type paymentWire struct {
	Chain       string `json:"chain"`
	Token       string `json:"token"`
	TxHash      string `json:"txHash"`
	GrossReward int64  `json:"grossReward"`
	NetReward   int64  `json:"netReward"`
	Fee         int64  `json:"fee"`
	FeePercent  string `json:"feePercent"`
	ProcessedAt string `json:"processedAt"`
}

type statsWire struct {
	TotalBounties         int64  `json:"totalBounties"`
	OpenBounties          int64  `json:"openBounties"`
	ClaimedBounties       int64  `json:"claimedBounties"`
	CompletedBounties     int64  `json:"completedBounties"`
	TotalPayouts          int64  `json:"totalPayouts"`
	TotalPayoutsFormatted string `json:"totalPayoutsFormatted"`
}

func bountyFromWire(w *bountyWire) (*Bounty, error) {
	reward, err := parseReward(w.Reward)
	if err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(w.Deadline)
	if err != nil {
		return nil, err
	}

	payment, err := paymentFromWire(w.Payment)
	if err != nil {
		return nil, err
	}

	var submissions []Submission
	for _, s := range w.Submissions {
		submissions = append(submissions, Submission{
			ID:          s.ID,
			Content:     s.Content,
			Proof:       s.Proof,
			SubmittedAt: millisToTime(s.SubmittedAt),
		})
	}

	rewardFormatted := w.RewardFormatted
	if rewardFormatted == "" {
		rewardFormatted = "0 USDC"
	}

	return &Bounty{
		ID:              w.ID,
		UUID:            w.UUID,
		Title:           w.Title,
		Description:     w.Description,
		Reward:          reward,
		RewardFormatted: rewardFormatted,
		Status:          statusFromWire(w.Status),
		Creator:         w.Creator,
		Deadline:        deadline,
		Tags:            w.Tags,
		Requirements:    w.Requirements,
		Submissions:     submissions,
		ClaimedBy:       w.ClaimedBy,
		ClaimedAt:       optionalMillis(w.ClaimedAt),
		CompletedAt:     optionalMillis(w.CompletedAt),
		Payment:         payment,
	}, nil
}

// paymentFromWire builds a Payment, or nil when the source object is absent
// or carries no chain (the server sends an empty payment stub on unpaid
// bounties).
func paymentFromWire(w *paymentWire) (*Payment, error) {
	if w == nil || w.Chain == "" {
		return nil, nil
	}

	token := w.Token
	if token == "" {
		token = "USDC"
	}
	feePercent := w.FeePercent
	if feePercent == "" {
		feePercent = "0%"
	}

	processedAt := time.Now().UTC()
	if w.ProcessedAt != "" {
		t, err := parseISOTime(w.ProcessedAt)
		if err != nil {
			return nil, &ValidationError{Field: "payment.processedAt", Message: fmt.Sprintf("invalid timestamp %q", w.ProcessedAt)}
		}
		processedAt = t
	}

	return &Payment{
		Chain:       w.Chain,
		Token:       token,
		TxHash:      w.TxHash,
		GrossReward: w.GrossReward,
		NetReward:   w.NetReward,
		Fee:         w.Fee,
		FeePercent:  feePercent,
		ProcessedAt: processedAt,
	}, nil
}

func statsFromWire(w *statsWire) *Stats {
	formatted := w.TotalPayoutsFormatted
	if formatted == "" {
		formatted = "0 USDC"
	}
	return &Stats{
		TotalBounties:         w.TotalBounties,
		OpenBounties:          w.OpenBounties,
		ClaimedBounties:       w.ClaimedBounties,
		CompletedBounties:     w.CompletedBounties,
		TotalPayouts:          w.TotalPayouts,
		TotalPayoutsFormatted: formatted,
	}
}

func statusFromWire(s string) Status {
	if s == "" {
		return StatusUnknown
	}
	return Status(s)
}

// parseReward accepts the reward as a JSON number or a numeric string,
// truncating fractional amounts the way the service formats them.
func parseReward(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, &ValidationError{Field: "reward", Message: fmt.Sprintf("unsupported reward value %s", raw)}
		}
		n = json.Number(s)
	}

	f, err := n.Float64()
	if err != nil {
		return 0, &ValidationError{Field: "reward", Message: fmt.Sprintf("invalid reward %q", n)}
	}
	return int64(f), nil
}

// parseDeadline handles both deadline encodings: epoch milliseconds and
// ISO-8601 strings. Absent, null, zero, and empty deadlines all mean "none".
func parseDeadline(raw json.RawMessage) (*time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		if ms == 0 {
			return nil, nil
		}
		t := millisToTime(ms)
		return &t, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &ValidationError{Field: "deadline", Message: fmt.Sprintf("unsupported deadline value %s", raw)}
	}
	if s == "" {
		return nil, nil
	}
	t, err := parseISOTime(s)
	if err != nil {
		return nil, &ValidationError{Field: "deadline", Message: fmt.Sprintf("invalid timestamp %q", s)}
	}
	return &t, nil
}

func parseISOTime(s string) (time.Time, error) {
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Time(dt).UTC(), nil
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// optionalMillis maps the service's "absent or zero" timestamp convention
// to a nil pointer.
func optionalMillis(ms int64) *time.Time {
	if ms == 0 {
		return nil
	}
	t := millisToTime(ms)
	return &t
}
