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

// LimitsSettings are the global defaults and the degraded-mode policy.
type LimitsSettings struct {
	DailyTransactionLimit int64
	DailyAmountLimitCents int64
	// FailClosed rejects transactions when usage cannot be computed.
	FailClosed bool
}

// LimitsService implements ports.LimitsGuard.
type LimitsService struct {
	repo     ports.LimitsRepository
	reader   ports.WalletReader
	settings LimitsSettings
	audit    ports.AuditService
	log      zerolog.Logger
	now      func() time.Time
}

// NewLimitsService creates a new LimitsService. Zero defaults fall back to
// 10 transactions and 50,000,000 cents per UTC day.
func NewLimitsService(
	repo ports.LimitsRepository,
	reader ports.WalletReader,
	settings LimitsSettings,
	audit ports.AuditService,
	log zerolog.Logger,
) *LimitsService {
	if settings.DailyTransactionLimit <= 0 {
		settings.DailyTransactionLimit = domain.DefaultDailyTransactionLimit
	}
	if settings.DailyAmountLimitCents <= 0 {
		settings.DailyAmountLimitCents = domain.DefaultDailyAmountLimitCents
	}
	return &LimitsService{
		repo:     repo,
		reader:   reader,
		settings: settings,
		audit:    audit,
		log:      log,
		now:      time.Now,
	}
}

// CheckAllowed evaluates one prospective transaction against today's usage.
func (s *LimitsService) CheckAllowed(ctx context.Context, userID uuid.UUID, amountCents int64) (*domain.LimitCheck, error) {
	if amountCents <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	limits, usage, err := s.load(ctx, userID)
	if err != nil {
		if s.settings.FailClosed {
			s.log.Error().Err(err).
				Str("user_id", userID.String()).
				Msg("limit check unavailable, rejecting transaction (fail-closed)")
			return nil, apperror.ErrDependencyUnavailable("limits", err)
		}
		s.log.Error().Err(err).
			Str("user_id", userID.String()).
			Int64("amount_cents", amountCents).
			Msg("limit check unavailable, allowing transaction (fail-open)")
		return &domain.LimitCheck{Allowed: true, Limits: limits, Degraded: true}, nil
	}

	check := &domain.LimitCheck{
		Allowed:       true,
		CurrentCount:  usage.Count,
		CurrentAmount: usage.AmountCents,
		Limits:        limits,
	}

	switch {
	case usage.Count >= limits.DailyTransactionLimit:
		check.Allowed = false
		check.Reason = fmt.Sprintf("Daily transaction limit of %d reached", limits.DailyTransactionLimit)
	case amountCents > limits.DailyAmountLimitCents-usage.AmountCents:
		check.Allowed = false
		check.Reason = fmt.Sprintf("Daily amount limit exceeded, %d cents remaining", check.RemainingAmount())
	}

	if !check.Allowed {
		s.log.Info().
			Str("user_id", userID.String()).
			Int64("amount_cents", amountCents).
			Int64("current_count", usage.Count).
			Int64("current_amount", usage.AmountCents).
			Str("reason", check.Reason).
			Msg("transaction blocked by daily limits")
	}
	return check, nil
}

// IsApproachingLimit reports usage of at least 80% of either cap.
func (s *LimitsService) IsApproachingLimit(ctx context.Context, userID uuid.UUID) (bool, error) {
	limits, usage, err := s.load(ctx, userID)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	return usage.Approaching(limits), nil
}

// GetLimits returns the user's override, or the defaults.
func (s *LimitsService) GetLimits(ctx context.Context, userID uuid.UUID) (*domain.TransactionLimits, error) {
	l, err := s.effectiveLimits(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return &l, nil
}

// SetLimits stores an administrator override.
func (s *LimitsService) SetLimits(ctx context.Context, limits *domain.TransactionLimits) error {
	if limits.UserID == uuid.Nil {
		return apperror.Validation("user_id is required")
	}
	if limits.DailyTransactionLimit <= 0 || limits.DailyAmountLimitCents <= 0 {
		return apperror.Validation("limits must be positive")
	}
	limits.IsDefault = false
	limits.UpdatedAt = s.now().UTC()

	if err := s.repo.Upsert(ctx, limits); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert limits: %w", err))
	}

	details, _ := json.Marshal(limits)
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      limits.UpdatedBy,
		Action:       domain.AuditActionLimitsUpdated,
		ResourceType: "transaction_limits",
		ResourceID:   limits.UserID.String(),
		Details:      string(details),
		CreatedAt:    limits.UpdatedAt,
	})
	return nil
}

// ResetLimits drops the override so the defaults apply again.
func (s *LimitsService) ResetLimits(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete limits: %w", err))
	}
	return nil
}

func (s *LimitsService) defaults(userID uuid.UUID) domain.TransactionLimits {
	return domain.TransactionLimits{
		UserID:                userID,
		DailyTransactionLimit: s.settings.DailyTransactionLimit,
		DailyAmountLimitCents: s.settings.DailyAmountLimitCents,
		IsDefault:             true,
	}
}

func (s *LimitsService) effectiveLimits(ctx context.Context, userID uuid.UUID) (domain.TransactionLimits, error) {
	l, err := s.repo.Get(ctx, userID)
	if err != nil {
		return s.defaults(userID), fmt.Errorf("load limits: %w", err)
	}
	if l == nil {
		return s.defaults(userID), nil
	}
	return *l, nil
}

// load returns the effective limits even when usage fails, so degraded
// checks can still report them.
func (s *LimitsService) load(ctx context.Context, userID uuid.UUID) (domain.TransactionLimits, domain.DailyUsage, error) {
	limits, err := s.effectiveLimits(ctx, userID)
	if err != nil {
		return limits, domain.DailyUsage{}, err
	}
	usage, err := s.reader.UsageSince(ctx, userID, domain.StartOfUTCDay(s.now()))
	if err != nil {
		return limits, domain.DailyUsage{}, fmt.Errorf("load daily usage: %w", err)
	}
	return limits, usage, nil
}
