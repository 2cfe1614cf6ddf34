package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"walletguard/internal/core/domain"
	"walletguard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// LedgerStore implements ports.LedgerStore and ports.ProcessedEventStore.
// Every mutation locks the wallet row with SELECT ... FOR UPDATE.
type LedgerStore struct {
	pool Pool
	tx   *Transactor
}

// NewLedgerStore creates a new LedgerStore.
func NewLedgerStore(pool Pool) *LedgerStore {
	return &LedgerStore{pool: pool, tx: NewTransactor(pool)}
}

// EnsureWallet inserts a zero-balance wallet unless one exists.
func (s *LedgerStore) EnsureWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `INSERT INTO wallets (user_id, balance_cents, created_at, updated_at)
		VALUES ($1, 0, NOW(), NOW()) ON CONFLICT (user_id) DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, userID); err != nil {
		return nil, fmt.Errorf("insert wallet: %w", err)
	}

	w, err := getWallet(ctx, s.pool, userID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("wallet %s missing after insert", userID)
	}
	return w, nil
}

// AddTransaction applies a signed delta and appends the ledger entry.
func (s *LedgerStore) AddTransaction(ctx context.Context, userID uuid.UUID, deltaCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	var res *domain.MutationResult
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		res, err = applyDelta(ctx, tx, userID, deltaCents, reason, meta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DebitWithCheck lowers the balance by amountCents unless it would go negative.
func (s *LedgerStore) DebitWithCheck(ctx context.Context, userID uuid.UUID, amountCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	if amountCents <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.AddTransaction(ctx, userID, -amountCents, reason, meta)
}

// RecordRecharge inserts the dedup row and credits the wallet in one
// transaction. A conflicting dedup row means the recharge already landed.
func (s *LedgerStore) RecordRecharge(ctx context.Context, req domain.RechargeRequest) (*domain.RechargeResult, error) {
	result := &domain.RechargeResult{}
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		userID := req.UserID
		inserted, err := markProcessed(ctx, tx, domain.ProcessedWebhookEvent{
			Provider:   req.Gateway,
			GatewayRef: req.GatewayRef,
			EventID:    req.EventID,
			EventType:  req.EventType,
			UserID:     &userID,
		})
		if err != nil {
			return err
		}
		if !inserted {
			result.AlreadyProcessed = true
			return nil
		}

		result.Mutation, err = applyDelta(ctx, tx, req.UserID, req.AmountCents, domain.ReasonRecharge, req.Meta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// IsProcessed checks the dedup table.
func (s *LedgerStore) IsProcessed(ctx context.Context, provider domain.Provider, gatewayRef string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM processed_webhook_events WHERE provider = $1 AND gateway_ref = $2)`

	var exists bool
	if err := s.pool.QueryRow(ctx, query, string(provider), gatewayRef).Scan(&exists); err != nil {
		return false, fmt.Errorf("check processed event: %w", err)
	}
	return exists, nil
}

// MarkProcessed records an event that moves no funds.
func (s *LedgerStore) MarkProcessed(ctx context.Context, event domain.ProcessedWebhookEvent) (bool, error) {
	return markProcessed(ctx, s.pool, event)
}

// execer is satisfied by both Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func markProcessed(ctx context.Context, db execer, event domain.ProcessedWebhookEvent) (bool, error) {
	query := `INSERT INTO processed_webhook_events (provider, gateway_ref, event_id, event_type, user_id, processed_at)
		VALUES ($1, $2, $3, $4, $5, NOW()) ON CONFLICT (provider, gateway_ref) DO NOTHING`

	tag, err := db.Exec(ctx, query, string(event.Provider), event.GatewayRef, event.EventID, event.EventType, event.UserID)
	if err != nil {
		return false, fmt.Errorf("insert processed event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func applyDelta(ctx context.Context, tx pgx.Tx, userID uuid.UUID, deltaCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	var previous int64
	err := tx.QueryRow(ctx, `SELECT balance_cents FROM wallets WHERE user_id = $1 FOR UPDATE`, userID).Scan(&previous)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrWalletNotFound()
		}
		return nil, fmt.Errorf("lock wallet: %w", err)
	}

	if deltaCents > 0 && previous > math.MaxInt64-deltaCents {
		return nil, apperror.ErrBalanceOverflow()
	}
	next := previous + deltaCents
	if next < 0 {
		return nil, apperror.ErrInsufficientBalance()
	}

	if _, err := tx.Exec(ctx, `UPDATE wallets SET balance_cents = $1, updated_at = NOW() WHERE user_id = $2`, next, userID); err != nil {
		return nil, fmt.Errorf("update wallet balance: %w", err)
	}

	metaJSON, err := encodeMeta(meta)
	if err != nil {
		return nil, err
	}
	txID := uuid.New()
	query := `INSERT INTO wallet_transactions (id, user_id, delta_cents, reason, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`
	if _, err := tx.Exec(ctx, query, txID, userID, deltaCents, string(reason), metaJSON); err != nil {
		return nil, fmt.Errorf("insert wallet transaction: %w", err)
	}

	return &domain.MutationResult{
		TransactionID:   txID,
		NewBalance:      next,
		PreviousBalance: previous,
	}, nil
}

func encodeMeta(meta map[string]any) ([]byte, error) {
	if len(meta) == 0 {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode transaction meta: %w", err)
	}
	return b, nil
}
