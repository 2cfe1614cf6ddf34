package postgres

import (
	"context"
	"errors"
	"fmt"

	"walletguard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LimitsRepo implements ports.LimitsRepository.
type LimitsRepo struct {
	pool Pool
}

// NewLimitsRepo creates a new LimitsRepo.
func NewLimitsRepo(pool Pool) *LimitsRepo {
	return &LimitsRepo{pool: pool}
}

// Get returns the user's override, or nil when none is stored.
func (r *LimitsRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.TransactionLimits, error) {
	query := `SELECT user_id, daily_transaction_limit, daily_amount_limit_cents, updated_by, updated_at
		FROM transaction_limits WHERE user_id = $1`

	l := &domain.TransactionLimits{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&l.UserID, &l.DailyTransactionLimit, &l.DailyAmountLimitCents, &l.UpdatedBy, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction limits: %w", err)
	}
	return l, nil
}

// Upsert stores or replaces the override.
func (r *LimitsRepo) Upsert(ctx context.Context, l *domain.TransactionLimits) error {
	query := `INSERT INTO transaction_limits (user_id, daily_transaction_limit, daily_amount_limit_cents, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			daily_transaction_limit = EXCLUDED.daily_transaction_limit,
			daily_amount_limit_cents = EXCLUDED.daily_amount_limit_cents,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		l.UserID, l.DailyTransactionLimit, l.DailyAmountLimitCents, l.UpdatedBy, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert transaction limits: %w", err)
	}
	return nil
}

// Delete removes the override. Deleting a missing row is not an error.
func (r *LimitsRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM transaction_limits WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete transaction limits: %w", err)
	}
	return nil
}
