package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLevelLow},
		{29, RiskLevelLow},
		{30, RiskLevelMedium},
		{59, RiskLevelMedium},
		{60, RiskLevelHigh},
		{79, RiskLevelHigh},
		{80, RiskLevelCritical},
		{100, RiskLevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestLevelForScore_Monotonic(t *testing.T) {
	prev := LevelForScore(0)
	for score := 1; score <= MaxRiskScore; score++ {
		cur := LevelForScore(score)
		assert.True(t, cur.AtLeast(prev), "level dropped at score %d", score)
		prev = cur
	}
}

func TestAlertStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to AlertStatus
		want     bool
	}{
		{AlertStatusPending, AlertStatusReviewed, true},
		{AlertStatusPending, AlertStatusCleared, true},
		{AlertStatusPending, AlertStatusConfirmedFraud, true},
		{AlertStatusReviewed, AlertStatusCleared, true},
		{AlertStatusReviewed, AlertStatusConfirmedFraud, true},
		{AlertStatusReviewed, AlertStatusPending, false},
		{AlertStatusCleared, AlertStatusPending, false},
		{AlertStatusConfirmedFraud, AlertStatusCleared, false},
		{AlertStatusPending, AlertStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAlertStatus_Valid(t *testing.T) {
	assert.True(t, AlertStatusReviewed.Valid())
	assert.False(t, AlertStatus("escalated").Valid())
	assert.True(t, AlertStatusCleared.IsTerminal())
	assert.False(t, AlertStatusReviewed.IsTerminal())
}

func TestNewFraudAlert(t *testing.T) {
	now := time.Now().UTC()
	a := &RiskAssessment{
		UserID:      testUserID,
		RiskScore:   85,
		RiskLevel:   RiskLevelCritical,
		RiskFactors: []RiskFactor{{Code: "high_velocity", Points: 30}},
		EvaluatedAt: now,
	}

	alert := NewFraudAlert(a)

	assert.NotEqual(t, uuid.Nil, alert.ID)
	assert.Equal(t, AlertStatusPending, alert.Status)
	assert.Equal(t, 85, alert.RiskScore)
	assert.Equal(t, now, alert.CreatedAt)
	assert.Len(t, alert.RiskFactors, 1)
}

func TestParseCorrelationToken(t *testing.T) {
	uid := testUserID.String()

	tests := []struct {
		name  string
		token string
		want  Intent
	}{
		{"recharge", "wallet_recharge:" + uid, RechargeIntent{UserID: testUserID}},
		{"subscription", "subscription:" + uid + ":pro-monthly", SubscriptionIntent{UserID: testUserID, PlanID: "pro-monthly"}},
		{"checkout", "checkout:" + uid + ":ORD-7", CheckoutIntent{UserID: testUserID, OrderID: "ORD-7"}},
		{"plan id may contain colons", "subscription:" + uid + ":tier:gold", SubscriptionIntent{UserID: testUserID, PlanID: "tier:gold"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCorrelationToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, testUserID, got.User())
			assert.Equal(t, tt.token, got.Token())
		})
	}
}

func TestParseCorrelationToken_Unresolvable(t *testing.T) {
	uid := testUserID.String()
	tokens := []string{
		"",
		"wallet_recharge",
		"wallet_recharge:not-a-uuid",
		"wallet_recharge:" + uuid.Nil.String(),
		"wallet_recharge:" + uid + ":extra",
		"subscription:" + uid,
		"subscription:" + uid + ":",
		"checkout:" + uid,
		"gift_card:" + uid,
	}

	for _, token := range tokens {
		_, err := ParseCorrelationToken(token)
		assert.ErrorIs(t, err, ErrUnresolvableToken, "token %q", token)
	}
}

func TestWalletTransaction_Helpers(t *testing.T) {
	debit := &WalletTransaction{DeltaCents: -500}
	credit := &WalletTransaction{DeltaCents: 700}

	assert.True(t, debit.IsDebit())
	assert.Equal(t, int64(500), debit.AbsCents())
	assert.False(t, credit.IsDebit())
	assert.Equal(t, int64(700), credit.AbsCents())
}

func TestTransactionReason_Valid(t *testing.T) {
	assert.True(t, ReasonAdminAdjustment.Valid())
	assert.True(t, ReasonWithdrawal.Valid())
	assert.False(t, TransactionReason("gift").Valid())
}

func TestNewWithdrawalStats(t *testing.T) {
	s := NewWithdrawalStats(3000, 10000)
	assert.Equal(t, int64(7000), s.RemainingCents)
	assert.False(t, s.Exceeded)

	s = NewWithdrawalStats(12000, 10000)
	assert.Equal(t, int64(0), s.RemainingCents)
	assert.True(t, s.Exceeded)
}

func TestDailyUsage_Approaching(t *testing.T) {
	limits := TransactionLimits{DailyTransactionLimit: 10, DailyAmountLimitCents: 10000}

	assert.False(t, DailyUsage{Count: 7, AmountCents: 7999}.Approaching(limits))
	assert.True(t, DailyUsage{Count: 8, AmountCents: 0}.Approaching(limits))
	assert.True(t, DailyUsage{Count: 0, AmountCents: 8000}.Approaching(limits))
}

func TestLimitCheck_Remaining(t *testing.T) {
	c := LimitCheck{
		CurrentCount:  3,
		CurrentAmount: 12000,
		Limits:        TransactionLimits{DailyTransactionLimit: 10, DailyAmountLimitCents: 10000},
	}
	assert.Equal(t, int64(7), c.RemainingCount())
	assert.Equal(t, int64(0), c.RemainingAmount())
}

func TestStartOfUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2025, 3, 2, 3, 30, 0, 0, loc) // 2025-03-01 20:30 UTC
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), StartOfUTCDay(in))
}

func TestBuildWebhookDedupKey(t *testing.T) {
	assert.Equal(t, "stripe:cs_test_123", BuildWebhookDedupKey(ProviderStripe, "cs_test_123"))
	e := ProcessedWebhookEvent{Provider: ProviderPayPal, GatewayRef: "CAP-1"}
	assert.Equal(t, "paypal:CAP-1", e.DedupKey())
}

func TestWebhookRequest_HeaderIsCaseInsensitive(t *testing.T) {
	req := WebhookRequest{Headers: map[string]string{"Paypal-Transmission-Id": "tx-1"}}

	assert.Equal(t, "tx-1", req.Header("PAYPAL-TRANSMISSION-ID"))
	assert.Equal(t, "tx-1", req.Header("paypal-transmission-id"))
	assert.Empty(t, req.Header("Stripe-Signature"))
}
