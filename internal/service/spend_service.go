package service

import (
	"context"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"

	"github.com/rs/zerolog"
)

// SpendFlow implements ports.SpendService: limits gate, checked debit, then
// an advisory fraud evaluation that never undoes the debit.
type SpendFlow struct {
	limits ports.LimitsGuard
	ledger ports.WalletLedger
	fraud  ports.FraudEngine
	log    zerolog.Logger
}

// NewSpendFlow creates a new SpendFlow.
func NewSpendFlow(limits ports.LimitsGuard, ledger ports.WalletLedger, fraud ports.FraudEngine, log zerolog.Logger) *SpendFlow {
	return &SpendFlow{limits: limits, ledger: ledger, fraud: fraud, log: log}
}

// Spend debits the user's wallet if today's limits allow it.
func (s *SpendFlow) Spend(ctx context.Context, req ports.SpendRequest) (*ports.SpendResult, error) {
	if req.AmountCents <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Reason == "" {
		req.Reason = domain.ReasonPurchase
	}

	check, err := s.limits.CheckAllowed(ctx, req.UserID, req.AmountCents)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, apperror.ErrLimitExceeded(check.Reason, check.RemainingCount(), check.RemainingAmount())
	}

	var meta map[string]any
	if req.Reference != "" {
		meta = map[string]any{"reference": req.Reference}
	}

	mutation, err := s.ledger.DebitWithCheck(ctx, req.UserID, req.AmountCents, req.Reason, meta)
	if err != nil {
		return nil, err
	}

	if _, err := s.fraud.Evaluate(ctx, req.UserID); err != nil {
		s.log.Error().Err(err).Str("user_id", req.UserID.String()).Msg("post-debit fraud evaluation failed")
	}

	approaching, err := s.limits.IsApproachingLimit(ctx, req.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", req.UserID.String()).Msg("approaching-limit check failed")
	}

	res := &ports.SpendResult{
		Mutation:         mutation,
		ApproachingLimit: approaching,
	}
	if !check.Degraded {
		after := *check
		after.CurrentCount++
		after.CurrentAmount += req.AmountCents
		res.RemainingCount = after.RemainingCount()
		res.RemainingAmount = after.RemainingAmount()
	}
	return res, nil
}
