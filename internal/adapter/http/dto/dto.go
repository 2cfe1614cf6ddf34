package dto

import "walletguard/internal/core/domain"

// SpendRequest is the request body for a user-initiated debit.
type SpendRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Reason      string `json:"reason" binding:"omitempty,oneof=purchase withdrawal commission"`
	Reference   string `json:"reference,omitempty" binding:"omitempty,max=100,safe_id"`
}

// FraudCheckRequest asks for an on-demand risk evaluation.
type FraudCheckRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// FraudCheckResponse is the risk assessment plus the review decision under
// the name admin tooling reads.
type FraudCheckResponse struct {
	*domain.RiskAssessment
	FlaggedForReview bool `json:"flagged_for_review"`
}

// NewFraudCheckResponse wraps an assessment for the fraud check endpoint.
func NewFraudCheckResponse(a *domain.RiskAssessment) FraudCheckResponse {
	return FraudCheckResponse{RiskAssessment: a, FlaggedForReview: a.ShouldFlagForReview}
}

// AlertStatusRequest moves a fraud alert through review.
type AlertStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed cleared confirmed_fraud"`
}

// LimitsRequest overrides a user's daily caps.
type LimitsRequest struct {
	DailyTransactionLimit int64 `json:"daily_transaction_limit" binding:"required,gt=0"`
	DailyAmountLimitCents int64 `json:"daily_amount_limit_cents" binding:"required,gt=0"`
}

// AdjustRequest is an administrator balance correction.
type AdjustRequest struct {
	DeltaCents int64  `json:"delta_cents" binding:"required,ne=0"`
	Note       string `json:"note" binding:"required,max=500"`
}

// TransactionListResponse wraps a page of ledger entries.
type TransactionListResponse struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
	Limit int         `json:"limit"`
}

// BreakerResetResponse reports a manual breaker reset.
type BreakerResetResponse struct {
	Name  string `json:"name"`
	State string `json:"state"`
}
