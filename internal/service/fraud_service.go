package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultAlertPageSize = 50
	maxAlertPageSize     = 200

	rapidCashOutWindow = time.Hour
	newWalletAge       = 24 * time.Hour
)

// FraudRules are the thresholds behind each risk factor. Amounts are cents.
type FraudRules struct {
	HighVelocityCount     int
	ElevatedVelocityCount int
	LargeDebitVolumeCents int64
	VeryLargeDebitCents   int64
	ManyRechargesCount    int
	NewWalletMinTxCount   int
	WithdrawalRatio       float64
}

// DefaultFraudRules returns the production thresholds.
func DefaultFraudRules() FraudRules {
	return FraudRules{
		HighVelocityCount:     10,
		ElevatedVelocityCount: 5,
		LargeDebitVolumeCents: 100_000,
		VeryLargeDebitCents:   50_000,
		ManyRechargesCount:    5,
		NewWalletMinTxCount:   3,
		WithdrawalRatio:       0.8,
	}
}

func (r FraudRules) withDefaults() FraudRules {
	d := DefaultFraudRules()
	if r.HighVelocityCount <= 0 {
		r.HighVelocityCount = d.HighVelocityCount
	}
	if r.ElevatedVelocityCount <= 0 {
		r.ElevatedVelocityCount = d.ElevatedVelocityCount
	}
	if r.LargeDebitVolumeCents <= 0 {
		r.LargeDebitVolumeCents = d.LargeDebitVolumeCents
	}
	if r.VeryLargeDebitCents <= 0 {
		r.VeryLargeDebitCents = d.VeryLargeDebitCents
	}
	if r.ManyRechargesCount <= 0 {
		r.ManyRechargesCount = d.ManyRechargesCount
	}
	if r.NewWalletMinTxCount <= 0 {
		r.NewWalletMinTxCount = d.NewWalletMinTxCount
	}
	if r.WithdrawalRatio <= 0 {
		r.WithdrawalRatio = d.WithdrawalRatio
	}
	return r
}

// FraudService implements ports.FraudEngine.
type FraudService struct {
	reader     ports.WalletReader
	alerts     ports.FraudAlertRepository
	dispatcher ports.AlertDispatcher
	audit      ports.AuditService
	rules      FraudRules
	log        zerolog.Logger
	now        func() time.Time
}

// NewFraudService creates a new FraudService.
func NewFraudService(
	reader ports.WalletReader,
	alerts ports.FraudAlertRepository,
	dispatcher ports.AlertDispatcher,
	audit ports.AuditService,
	rules FraudRules,
	log zerolog.Logger,
) *FraudService {
	return &FraudService{
		reader:     reader,
		alerts:     alerts,
		dispatcher: dispatcher,
		audit:      audit,
		rules:      rules.withDefaults(),
		log:        log,
		now:        time.Now,
	}
}

// Evaluate scores the last 24h of wallet activity. It only reads the wallet;
// a flagged result is persisted as an alert through the dispatcher.
func (s *FraudService) Evaluate(ctx context.Context, userID uuid.UUID) (*domain.RiskAssessment, error) {
	now := s.now().UTC()

	wallet, err := s.reader.GetWallet(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load wallet: %w", err))
	}
	txs, err := s.reader.ListTransactionsSince(ctx, userID, now.Add(-24*time.Hour))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load recent transactions: %w", err))
	}

	stats := computeRiskStats(wallet, txs, now)
	factors := s.rules.factors(stats)

	score := 0
	alwaysFlag := false
	for _, f := range factors {
		score += f.Points
		alwaysFlag = alwaysFlag || f.AlwaysFlag
	}
	if score > domain.MaxRiskScore {
		score = domain.MaxRiskScore
	}

	level := domain.LevelForScore(score)
	assessment := &domain.RiskAssessment{
		UserID:              userID,
		RiskScore:           score,
		RiskLevel:           level,
		RiskFactors:         factors,
		ShouldFlagForReview: alwaysFlag || level.AtLeast(domain.RiskLevelHigh),
		Stats:               stats,
		EvaluatedAt:         now,
	}

	if assessment.ShouldFlagForReview {
		alert := domain.NewFraudAlert(assessment)
		if err := s.dispatcher.Dispatch(ctx, alert); err != nil {
			s.log.Error().Err(err).
				Str("user_id", userID.String()).
				Int("risk_score", score).
				Msg("fraud alert dispatch failed")
		} else {
			assessment.AlertID = &alert.ID
		}
		s.log.Warn().
			Str("user_id", userID.String()).
			Int("risk_score", score).
			Str("risk_level", string(level)).
			Int("factors", len(factors)).
			Msg("user flagged for fraud review")
	}

	return assessment, nil
}

// UpdateAlertStatus moves an alert along the review state machine.
func (s *FraudService) UpdateAlertStatus(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, reviewerID uuid.UUID) (*domain.FraudAlert, error) {
	if !status.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown alert status %q", status))
	}

	alert, err := s.alerts.GetByID(ctx, alertID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get alert: %w", err))
	}
	if alert == nil {
		return nil, apperror.ErrNotFound("Fraud alert")
	}
	if !alert.Status.CanTransitionTo(status) {
		return nil, apperror.ErrInvalidAlertTransition(string(alert.Status), string(status))
	}

	reviewedAt := s.now().UTC()
	if err := s.alerts.UpdateStatus(ctx, alertID, status, reviewerID, reviewedAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update alert status: %w", err))
	}

	details, _ := json.Marshal(map[string]string{"from": string(alert.Status), "to": string(status)})
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &reviewerID,
		Action:       domain.AuditActionAlertStatus,
		ResourceType: "fraud_alert",
		ResourceID:   alertID.String(),
		Details:      string(details),
		CreatedAt:    reviewedAt,
	})

	alert.Status = status
	alert.ReviewedBy = &reviewerID
	alert.ReviewedAt = &reviewedAt
	return alert, nil
}

// ListAlerts returns alerts newest first.
func (s *FraudService) ListAlerts(ctx context.Context, params ports.AlertListParams) ([]domain.FraudAlert, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown alert status %q", *params.Status))
	}
	if params.Limit <= 0 {
		params.Limit = defaultAlertPageSize
	}
	if params.Limit > maxAlertPageSize {
		params.Limit = maxAlertPageSize
	}

	alerts, err := s.alerts.List(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list alerts: %w", err))
	}
	if alerts == nil {
		alerts = []domain.FraudAlert{}
	}
	return alerts, nil
}

func computeRiskStats(wallet *domain.Wallet, txs []domain.WalletTransaction, now time.Time) domain.RiskStats {
	var stats domain.RiskStats
	hourAgo := now.Add(-time.Hour)

	var recharges []time.Time
	for _, tx := range txs {
		if tx.Reason == domain.ReasonRecharge {
			recharges = append(recharges, tx.CreatedAt)
		}
	}

	for _, tx := range txs {
		stats.TransactionsLast24h++
		if !tx.CreatedAt.Before(hourAgo) {
			stats.TransactionsLastHour++
		}

		if tx.IsDebit() {
			amt := tx.AbsCents()
			stats.DebitCents24h += amt
			if amt > stats.LargestDebitCents {
				stats.LargestDebitCents = amt
			}
		} else {
			stats.CreditCents24h += tx.DeltaCents
		}

		switch tx.Reason {
		case domain.ReasonRecharge:
			stats.Recharges24h++
		case domain.ReasonWithdrawal:
			stats.WithdrawalCents24h += tx.AbsCents()
			if followsRecharge(tx.CreatedAt, recharges) {
				stats.RapidCashOuts++
			}
		}
	}

	if wallet != nil {
		stats.CurrentBalanceCents = wallet.BalanceCents
		stats.WalletAgeHours = now.Sub(wallet.CreatedAt).Hours()
	}
	return stats
}

// followsRecharge reports whether a recharge landed within the hour before at.
func followsRecharge(at time.Time, recharges []time.Time) bool {
	for _, r := range recharges {
		if !r.After(at) && at.Sub(r) <= rapidCashOutWindow {
			return true
		}
	}
	return false
}

func (r FraudRules) factors(st domain.RiskStats) []domain.RiskFactor {
	factors := []domain.RiskFactor{}

	switch {
	case st.TransactionsLastHour >= r.HighVelocityCount:
		factors = append(factors, domain.RiskFactor{
			Code:        "high_velocity",
			Description: fmt.Sprintf("%d transactions in the last hour", st.TransactionsLastHour),
			Severity:    domain.SeverityHigh,
			Points:      30,
			AlwaysFlag:  true,
		})
	case st.TransactionsLastHour >= r.ElevatedVelocityCount:
		factors = append(factors, domain.RiskFactor{
			Code:        "elevated_velocity",
			Description: fmt.Sprintf("%d transactions in the last hour", st.TransactionsLastHour),
			Severity:    domain.SeverityMedium,
			Points:      15,
		})
	}

	if st.DebitCents24h >= r.LargeDebitVolumeCents {
		factors = append(factors, domain.RiskFactor{
			Code:        "large_debit_volume",
			Description: fmt.Sprintf("%d cents debited in 24h", st.DebitCents24h),
			Severity:    domain.SeverityMedium,
			Points:      20,
		})
	}

	if st.LargestDebitCents >= r.VeryLargeDebitCents {
		factors = append(factors, domain.RiskFactor{
			Code:        "very_large_debit",
			Description: fmt.Sprintf("single debit of %d cents", st.LargestDebitCents),
			Severity:    domain.SeverityHigh,
			Points:      20,
		})
	}

	if st.RapidCashOuts > 0 {
		factors = append(factors, domain.RiskFactor{
			Code:        "rapid_cash_out",
			Description: "withdrawal within one hour of a recharge",
			Severity:    domain.SeverityHigh,
			Points:      25,
			AlwaysFlag:  true,
		})
	}

	if st.CreditCents24h > 0 && float64(st.WithdrawalCents24h) >= r.WithdrawalRatio*float64(st.CreditCents24h) {
		factors = append(factors, domain.RiskFactor{
			Code:        "withdrawal_ratio",
			Description: fmt.Sprintf("withdrew %d of %d cents credited in 24h", st.WithdrawalCents24h, st.CreditCents24h),
			Severity:    domain.SeverityMedium,
			Points:      15,
		})
	}

	if st.Recharges24h >= r.ManyRechargesCount {
		factors = append(factors, domain.RiskFactor{
			Code:        "many_recharges",
			Description: fmt.Sprintf("%d recharges in 24h", st.Recharges24h),
			Severity:    domain.SeverityLow,
			Points:      10,
		})
	}

	if st.WalletAgeHours > 0 && st.WalletAgeHours < newWalletAge.Hours() && st.TransactionsLast24h >= r.NewWalletMinTxCount {
		factors = append(factors, domain.RiskFactor{
			Code:        "new_wallet_activity",
			Description: fmt.Sprintf("wallet %.1fh old with %d transactions", st.WalletAgeHours, st.TransactionsLast24h),
			Severity:    domain.SeverityLow,
			Points:      10,
		})
	}

	return factors
}
