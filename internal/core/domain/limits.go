package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default daily caps applied when a user has no override.
const (
	DefaultDailyTransactionLimit int64 = 10
	DefaultDailyAmountLimitCents int64 = 50_000_000

	// ApproachingLimitRatio is the usage share that triggers a warning.
	ApproachingLimitRatio = 0.8
)

// TransactionLimits caps a user's daily activity. Only administrators write them.
type TransactionLimits struct {
	UserID                uuid.UUID  `json:"user_id"`
	DailyTransactionLimit int64      `json:"daily_transaction_limit"`
	DailyAmountLimitCents int64      `json:"daily_amount_limit_cents"`
	IsDefault             bool       `json:"is_default"`
	UpdatedBy             *uuid.UUID `json:"updated_by,omitempty"`
	UpdatedAt             time.Time  `json:"updated_at,omitempty"`
}

// DailyUsage is a user's activity since the start of the current UTC day.
type DailyUsage struct {
	Count       int64 `json:"count"`
	AmountCents int64 `json:"amount_cents"`
}

// Approaching reports whether either cap is at least 80% consumed.
func (u DailyUsage) Approaching(l TransactionLimits) bool {
	if l.DailyTransactionLimit > 0 && float64(u.Count) >= ApproachingLimitRatio*float64(l.DailyTransactionLimit) {
		return true
	}
	if l.DailyAmountLimitCents > 0 && float64(u.AmountCents) >= ApproachingLimitRatio*float64(l.DailyAmountLimitCents) {
		return true
	}
	return false
}

// LimitCheck is the guard's verdict for one prospective transaction.
type LimitCheck struct {
	Allowed       bool              `json:"allowed"`
	Reason        string            `json:"reason,omitempty"`
	CurrentCount  int64             `json:"current_count"`
	CurrentAmount int64             `json:"current_amount_cents"`
	Limits        TransactionLimits `json:"limits"`
	Degraded      bool              `json:"degraded,omitempty"`
}

// RemainingCount is the number of transactions still allowed today.
func (c LimitCheck) RemainingCount() int64 {
	return nonNegative(c.Limits.DailyTransactionLimit - c.CurrentCount)
}

// RemainingAmount is the spend still allowed today.
func (c LimitCheck) RemainingAmount() int64 {
	return nonNegative(c.Limits.DailyAmountLimitCents - c.CurrentAmount)
}

// StartOfUTCDay truncates t to midnight UTC.
func StartOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
