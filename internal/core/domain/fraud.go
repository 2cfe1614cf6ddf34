package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel buckets a 0-100 risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// Score boundaries. Each level starts at its threshold.
const (
	MediumRiskThreshold   = 30
	HighRiskThreshold     = 60
	CriticalRiskThreshold = 80
	MaxRiskScore          = 100
)

// LevelForScore maps a score onto a level. Monotonic in score.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= CriticalRiskThreshold:
		return RiskLevelCritical
	case score >= HighRiskThreshold:
		return RiskLevelHigh
	case score >= MediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

func (l RiskLevel) rank() int {
	switch l {
	case RiskLevelMedium:
		return 1
	case RiskLevelHigh:
		return 2
	case RiskLevelCritical:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether l is as severe as other.
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.rank() >= other.rank()
}

// Severity of a single contributing factor.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RiskFactor is one signal that contributed to a score.
type RiskFactor struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Points      int      `json:"points"`
	AlwaysFlag  bool     `json:"always_flag,omitempty"`
}

// RiskStats is the activity snapshot a score was computed from.
type RiskStats struct {
	TransactionsLastHour int     `json:"transactions_last_hour"`
	TransactionsLast24h  int     `json:"transactions_last_24h"`
	DebitCents24h        int64   `json:"debit_cents_24h"`
	CreditCents24h       int64   `json:"credit_cents_24h"`
	WithdrawalCents24h   int64   `json:"withdrawal_cents_24h"`
	LargestDebitCents    int64   `json:"largest_debit_cents"`
	Recharges24h         int     `json:"recharges_24h"`
	RapidCashOuts        int     `json:"rapid_cash_outs"`
	WalletAgeHours       float64 `json:"wallet_age_hours"`
	CurrentBalanceCents  int64   `json:"current_balance_cents"`
}

// RiskAssessment is the result of one fraud evaluation.
type RiskAssessment struct {
	UserID              uuid.UUID    `json:"user_id"`
	RiskScore           int          `json:"risk_score"`
	RiskLevel           RiskLevel    `json:"risk_level"`
	RiskFactors         []RiskFactor `json:"risk_factors"`
	ShouldFlagForReview bool         `json:"should_flag_for_review"`
	Stats               RiskStats    `json:"stats"`
	AlertID             *uuid.UUID   `json:"alert_id,omitempty"`
	EvaluatedAt         time.Time    `json:"evaluated_at"`
}

// AlertStatus is the review state of a fraud alert.
type AlertStatus string

const (
	AlertStatusPending        AlertStatus = "pending"
	AlertStatusReviewed       AlertStatus = "reviewed"
	AlertStatusCleared        AlertStatus = "cleared"
	AlertStatusConfirmedFraud AlertStatus = "confirmed_fraud"
)

var alertTransitions = map[AlertStatus][]AlertStatus{
	AlertStatusPending:  {AlertStatusReviewed, AlertStatusCleared, AlertStatusConfirmedFraud},
	AlertStatusReviewed: {AlertStatusCleared, AlertStatusConfirmedFraud},
}

// Valid reports whether s is a known status.
func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusPending, AlertStatusReviewed, AlertStatusCleared, AlertStatusConfirmedFraud:
		return true
	}
	return false
}

// IsTerminal returns true once an alert has been resolved.
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusCleared || s == AlertStatusConfirmedFraud
}

// CanTransitionTo reports whether an administrator may move s to next.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	for _, allowed := range alertTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// FraudAlert is persisted for every flagged evaluation and never deleted.
type FraudAlert struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	RiskScore   int          `json:"risk_score"`
	RiskLevel   RiskLevel    `json:"risk_level"`
	RiskFactors []RiskFactor `json:"risk_factors"`
	Stats       RiskStats    `json:"stats"`
	Status      AlertStatus  `json:"status"`
	ReviewedBy  *uuid.UUID   `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time   `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// NewFraudAlert builds a pending alert from a flagged assessment.
func NewFraudAlert(a *RiskAssessment) *FraudAlert {
	return &FraudAlert{
		ID:          uuid.New(),
		UserID:      a.UserID,
		RiskScore:   a.RiskScore,
		RiskLevel:   a.RiskLevel,
		RiskFactors: a.RiskFactors,
		Stats:       a.Stats,
		Status:      AlertStatusPending,
		CreatedAt:   a.EvaluatedAt,
	}
}
