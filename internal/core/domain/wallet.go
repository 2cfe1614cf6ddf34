package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's spendable balance in minor units. The balance is only
// authoritative inside the ledger store; everything else sees a snapshot.
type Wallet struct {
	UserID       uuid.UUID `json:"user_id"`
	BalanceCents int64     `json:"balance_cents"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionReason classifies why a balance changed.
type TransactionReason string

const (
	ReasonPurchase        TransactionReason = "purchase"
	ReasonRecharge        TransactionReason = "recharge"
	ReasonWithdrawal      TransactionReason = "withdrawal"
	ReasonCommission      TransactionReason = "commission"
	ReasonAdminAdjustment TransactionReason = "admin_adjustment"
	ReasonRefund          TransactionReason = "refund"
)

// Valid reports whether r is one of the known reasons.
func (r TransactionReason) Valid() bool {
	switch r {
	case ReasonPurchase, ReasonRecharge, ReasonWithdrawal, ReasonCommission, ReasonAdminAdjustment, ReasonRefund:
		return true
	}
	return false
}

// Meta keys with a meaning to the ledger.
const (
	MetaExternalReference = "externalReference"
	MetaGateway           = "gateway"
	MetaCurrency          = "currency"
)

// WalletTransaction is an immutable ledger entry. Negative deltas are debits.
// The sum of a user's deltas always equals the wallet balance.
type WalletTransaction struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	DeltaCents int64             `json:"delta_cents"`
	Reason     TransactionReason `json:"reason"`
	Meta       map[string]any    `json:"meta,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// IsDebit returns true for negative deltas.
func (t *WalletTransaction) IsDebit() bool {
	return t.DeltaCents < 0
}

// AbsCents returns the absolute amount moved.
func (t *WalletTransaction) AbsCents() int64 {
	if t.DeltaCents < 0 {
		return -t.DeltaCents
	}
	return t.DeltaCents
}

// MutationResult is returned by every balance-changing ledger operation.
type MutationResult struct {
	TransactionID   uuid.UUID `json:"transaction_id"`
	NewBalance      int64     `json:"new_balance"`
	PreviousBalance int64     `json:"previous_balance"`
}

// RechargeRequest describes an externally settled credit.
type RechargeRequest struct {
	UserID      uuid.UUID
	AmountCents int64
	Gateway     Provider
	GatewayRef  string
	Currency    string
	EventID     string
	EventType   string
	Meta        map[string]any
}

// RechargeResult reports whether the recharge had already been applied.
type RechargeResult struct {
	AlreadyProcessed bool            `json:"already_processed"`
	Mutation         *MutationResult `json:"mutation,omitempty"`
}

// WithdrawalStats summarises rolling 24h withdrawals against a cap.
type WithdrawalStats struct {
	TotalCents     int64 `json:"total_cents"`
	LimitCents     int64 `json:"limit_cents"`
	RemainingCents int64 `json:"remaining_cents"`
	Exceeded       bool  `json:"exceeded"`
}

// NewWithdrawalStats derives remaining headroom from a total and a cap.
func NewWithdrawalStats(totalCents, limitCents int64) WithdrawalStats {
	remaining := limitCents - totalCents
	if remaining < 0 {
		remaining = 0
	}
	return WithdrawalStats{
		TotalCents:     totalCents,
		LimitCents:     limitCents,
		RemainingCents: remaining,
		Exceeded:       totalCents >= limitCents,
	}
}
