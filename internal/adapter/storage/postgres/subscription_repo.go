package postgres

import (
	"context"
	"fmt"

	"walletguard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
	tx   *Transactor
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool, tx: NewTransactor(pool)}
}

// ActivateOnce writes the dedup row and the active subscription together.
func (r *SubscriptionRepo) ActivateOnce(ctx context.Context, sub *domain.Subscription, event domain.ProcessedWebhookEvent) (bool, error) {
	applied := false
	err := r.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		inserted, err := markProcessed(ctx, tx, event)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}

		query := `INSERT INTO subscriptions (id, user_id, plan_id, provider, gateway_ref, status, activated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, plan_id) DO UPDATE SET
				provider = EXCLUDED.provider,
				gateway_ref = EXCLUDED.gateway_ref,
				status = EXCLUDED.status,
				activated_at = EXCLUDED.activated_at`
		_, err = tx.Exec(ctx, query,
			sub.ID, sub.UserID, sub.PlanID, string(sub.Provider), sub.GatewayRef, string(sub.Status), sub.ActivatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert subscription: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// ListByUser returns the user's subscriptions, most recently activated first.
func (r *SubscriptionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	query := `SELECT id, user_id, plan_id, provider, gateway_ref, status, activated_at
		FROM subscriptions WHERE user_id = $1 ORDER BY activated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var (
			sub              domain.Subscription
			provider, status string
		)
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.PlanID, &provider, &sub.GatewayRef, &status, &sub.ActivatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		sub.Provider = domain.Provider(provider)
		sub.Status = domain.SubscriptionStatus(status)
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return subs, nil
}
