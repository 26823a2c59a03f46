package bountyboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBountyJSON(t *testing.T, raw string) (*Bounty, error) {
	t.Helper()
	var w bountyWire
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	return bountyFromWire(&w)
}

// TestBountyFromWire_Full verifies a fully populated bounty maps field by
// field, including nested submissions and payment.
func TestBountyFromWire_Full(t *testing.T) {
	raw := `{
		"id": "42",
		"uuid": "9f7d07b4-1111-4d2c-9f3e-7a5f0c7c0001",
		"title": "Fix the parser",
		"description": "It chokes on unicode.",
		"reward": 100,
		"rewardFormatted": "100 USDC",
		"status": "completed",
		"creator": "owocki",
		"deadline": 1700000000000,
		"tags": ["go", "parser"],
		"requirements": ["tests pass", "PR linked"],
		"submissions": [
			{"id": "s1", "content": "first try", "submittedAt": 1699000000000},
			{"id": "s2", "content": "done", "proof": "https://x", "submittedAt": 1699500000000}
		],
		"claimedBy": "0xABC",
		"claimedAt": 1698000000000,
		"completedAt": 1699900000000,
		"payment": {
			"chain": "base",
			"token": "USDC",
			"txHash": "0xdeadbeef",
			"grossReward": 100,
			"netReward": 95,
			"fee": 5,
			"feePercent": "5%",
			"processedAt": "2023-11-14T10:00:00.000Z"
		}
	}`

	b, err := decodeBountyJSON(t, raw)
	require.NoError(t, err)

	assert.Equal(t, "42", b.ID)
	assert.Equal(t, "9f7d07b4-1111-4d2c-9f3e-7a5f0c7c0001", b.UUID)
	assert.Equal(t, int64(100), b.Reward)
	assert.Equal(t, "100 USDC", b.RewardFormatted)
	assert.Equal(t, StatusCompleted, b.Status)
	assert.True(t, b.IsCompleted())

	require.NotNil(t, b.Deadline)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), *b.Deadline)

	require.Len(t, b.Submissions, 2)
	assert.Equal(t, "s1", b.Submissions[0].ID)
	assert.Empty(t, b.Submissions[0].Proof)
	assert.Equal(t, "s2", b.Submissions[1].ID)
	assert.Equal(t, "https://x", b.Submissions[1].Proof)
	assert.Equal(t, time.UnixMilli(1699500000000).UTC(), b.Submissions[1].SubmittedAt)

	assert.Equal(t, "0xABC", b.ClaimedBy)
	require.NotNil(t, b.ClaimedAt)
	assert.Equal(t, time.UnixMilli(1698000000000).UTC(), *b.ClaimedAt)
	require.NotNil(t, b.CompletedAt)

	require.NotNil(t, b.Payment)
	assert.Equal(t, "base", b.Payment.Chain)
	assert.Equal(t, "0xdeadbeef", b.Payment.TxHash)
	assert.Equal(t, int64(95), b.Payment.NetReward)
	assert.Equal(t, "5%", b.Payment.FeePercent)
	assert.True(t, b.Payment.ProcessedAt.Equal(time.Date(2023, 11, 14, 10, 0, 0, 0, time.UTC)))
}

// TestBountyFromWire_Defaults verifies the documented defaults for a
// response with everything optional missing.
func TestBountyFromWire_Defaults(t *testing.T) {
	b, err := decodeBountyJSON(t, `{"id": "7"}`)
	require.NoError(t, err)

	assert.Equal(t, "7", b.ID)
	assert.Zero(t, b.Reward)
	assert.Equal(t, "0 USDC", b.RewardFormatted)
	assert.Equal(t, StatusUnknown, b.Status)
	assert.Nil(t, b.Deadline)
	assert.Empty(t, b.Tags)
	assert.Empty(t, b.Submissions)
	assert.Empty(t, b.ClaimedBy)
	assert.Nil(t, b.ClaimedAt)
	assert.Nil(t, b.CompletedAt)
	assert.Nil(t, b.Payment)
}

// TestBountyFromWire_UnrecognizedStatus verifies new server states pass
// through untouched; only an absent status maps to unknown.
func TestBountyFromWire_UnrecognizedStatus(t *testing.T) {
	b, err := decodeBountyJSON(t, `{"id": "7", "status": "escalated"}`)
	require.NoError(t, err)
	assert.Equal(t, Status("escalated"), b.Status)
}

// TestBountyFromWire_PaymentWithoutChain verifies an empty payment stub
// produces no Payment at all.
func TestBountyFromWire_PaymentWithoutChain(t *testing.T) {
	b, err := decodeBountyJSON(t, `{"id": "7", "payment": {"txHash": "0x1", "grossReward": 10}}`)
	require.NoError(t, err)
	assert.Nil(t, b.Payment)
}

// TestBountyFromWire_PaymentDefaults verifies token/feePercent defaults and
// that a missing processedAt substitutes the current time.
func TestBountyFromWire_PaymentDefaults(t *testing.T) {
	before := time.Now().UTC()
	b, err := decodeBountyJSON(t, `{"id": "7", "payment": {"chain": "base"}}`)
	require.NoError(t, err)

	require.NotNil(t, b.Payment)
	assert.Equal(t, "USDC", b.Payment.Token)
	assert.Equal(t, "0%", b.Payment.FeePercent)
	assert.False(t, b.Payment.ProcessedAt.Before(before))
}

// TestParseDeadline_BothEncodings verifies the same instant decodes equal
// regardless of encoding.
func TestParseDeadline_BothEncodings(t *testing.T) {
	asMillis, err := parseDeadline(json.RawMessage(`1700000000000`))
	require.NoError(t, err)
	require.NotNil(t, asMillis)

	asISO, err := parseDeadline(json.RawMessage(`"2023-11-14T22:13:20Z"`))
	require.NoError(t, err)
	require.NotNil(t, asISO)

	assert.True(t, asMillis.Equal(*asISO), "epoch-millis and ISO forms of the same instant must match")
}

func TestParseDeadline_Absent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing", ""},
		{"null", `null`},
		{"zero", `0`},
		{"empty string", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := parseDeadline(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Nil(t, d)
		})
	}
}

func TestParseDeadline_Malformed(t *testing.T) {
	for _, raw := range []string{`"next tuesday"`, `{"at": 1}`, `true`} {
		_, err := parseDeadline(json.RawMessage(raw))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "deadline %s should be rejected", raw)
		assert.Equal(t, "deadline", verr.Field)
	}
}

func TestParseReward(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"integer", `100`, 100},
		{"float truncates", `99.9`, 99},
		{"numeric string", `"250"`, 250},
		{"missing", ``, 0},
		{"null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReward(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReward_Malformed(t *testing.T) {
	for _, raw := range []string{`"lots"`, `[1]`, `true`} {
		_, err := parseReward(json.RawMessage(raw))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "reward %s should be rejected", raw)
		assert.Equal(t, "reward", verr.Field)
	}
}

// TestBountyFromWire_MalformedProcessedAt verifies a garbage payment
// timestamp is rejected as a validation failure.
func TestBountyFromWire_MalformedProcessedAt(t *testing.T) {
	_, err := decodeBountyJSON(t, `{"id": "7", "payment": {"chain": "base", "processedAt": "yesterday"}}`)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "payment.processedAt", verr.Field)
}

func TestStatsFromWire_Defaults(t *testing.T) {
	s := statsFromWire(&statsWire{})

	assert.Zero(t, s.TotalBounties)
	assert.Zero(t, s.TotalPayouts)
	assert.Equal(t, "0 USDC", s.TotalPayoutsFormatted)
}
