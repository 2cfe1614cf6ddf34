package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"walletguard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletReader. Reads never lock.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// GetWallet fetches a wallet snapshot. Returns nil when the user has none.
func (r *WalletRepo) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	return getWallet(ctx, r.pool, userID)
}

// ListTransactions returns up to limit entries, newest first.
func (r *WalletRepo) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WalletTransaction, error) {
	query := `SELECT id, user_id, delta_cents, reason, meta, created_at
		FROM wallet_transactions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	return scanTransactions(rows)
}

// ListTransactionsSince returns every entry created at or after since, newest first.
func (r *WalletRepo) ListTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.WalletTransaction, error) {
	query := `SELECT id, user_id, delta_cents, reason, meta, created_at
		FROM wallet_transactions WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions since: %w", err)
	}
	return scanTransactions(rows)
}

// SumWithdrawalsSince totals withdrawal debits as a positive amount.
func (r *WalletRepo) SumWithdrawalsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(-delta_cents), 0)::BIGINT FROM wallet_transactions
		WHERE user_id = $1 AND reason = $2 AND created_at >= $3`

	var total int64
	if err := r.pool.QueryRow(ctx, query, userID, string(domain.ReasonWithdrawal), since).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum withdrawals: %w", err)
	}
	return total, nil
}

// UsageSince counts every ledger entry, credits included, and sums their
// absolute amounts.
func (r *WalletRepo) UsageSince(ctx context.Context, userID uuid.UUID, since time.Time) (domain.DailyUsage, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(ABS(delta_cents)), 0)::BIGINT FROM wallet_transactions
		WHERE user_id = $1 AND created_at >= $2`

	var u domain.DailyUsage
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&u.Count, &u.AmountCents); err != nil {
		return domain.DailyUsage{}, fmt.Errorf("compute daily usage: %w", err)
	}
	return u, nil
}

// querier is satisfied by both Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getWallet(ctx context.Context, db querier, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT user_id, balance_cents, created_at, updated_at FROM wallets WHERE user_id = $1`

	w := &domain.Wallet{}
	err := db.QueryRow(ctx, query, userID).Scan(&w.UserID, &w.BalanceCents, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

func scanTransactions(rows pgx.Rows) ([]domain.WalletTransaction, error) {
	defer rows.Close()

	var txs []domain.WalletTransaction
	for rows.Next() {
		var (
			t      domain.WalletTransaction
			reason string
			meta   []byte
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.DeltaCents, &reason, &meta, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet transaction: %w", err)
		}
		t.Reason = domain.TransactionReason(reason)
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &t.Meta); err != nil {
				return nil, fmt.Errorf("decode transaction meta: %w", err)
			}
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet transactions: %w", err)
	}
	return txs, nil
}
