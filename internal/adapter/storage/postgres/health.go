package postgres

import (
	"context"
	"errors"
	"fmt"
)

// ErrSchemaMissing means the database answers but migrations never ran.
var ErrSchemaMissing = errors.New("ledger schema missing, run `walletguard migrate`")

// HealthCheck probes the ledger database. Reachable but unmigrated counts
// as unhealthy: every wallet operation would fail on the first query.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var migrated bool
	err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.wallets') IS NOT NULL`).Scan(&migrated)
	if err != nil {
		return fmt.Errorf("postgres unreachable: %w", err)
	}
	if !migrated {
		return ErrSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }
