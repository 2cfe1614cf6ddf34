package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const fraudAlertColumns = `id, user_id, risk_score, risk_level, risk_factors, stats, status, reviewed_by, reviewed_at, created_at`

// FraudAlertRepo implements ports.FraudAlertRepository.
type FraudAlertRepo struct {
	pool Pool
}

// NewFraudAlertRepo creates a new FraudAlertRepo.
func NewFraudAlertRepo(pool Pool) *FraudAlertRepo {
	return &FraudAlertRepo{pool: pool}
}

// Create inserts a new alert.
func (r *FraudAlertRepo) Create(ctx context.Context, a *domain.FraudAlert) error {
	factors, err := json.Marshal(a.RiskFactors)
	if err != nil {
		return fmt.Errorf("encode risk factors: %w", err)
	}
	stats, err := json.Marshal(a.Stats)
	if err != nil {
		return fmt.Errorf("encode risk stats: %w", err)
	}

	query := `INSERT INTO fraud_alerts (` + fraudAlertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.pool.Exec(ctx, query,
		a.ID, a.UserID, a.RiskScore, string(a.RiskLevel), factors, stats,
		string(a.Status), a.ReviewedBy, a.ReviewedAt, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fraud alert: %w", err)
	}
	return nil
}

// GetByID fetches an alert. Returns nil when it does not exist.
func (r *FraudAlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FraudAlert, error) {
	query := `SELECT ` + fraudAlertColumns + ` FROM fraud_alerts WHERE id = $1`

	a, err := scanFraudAlert(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fraud alert: %w", err)
	}
	return a, nil
}

// UpdateStatus records a review decision.
func (r *FraudAlertRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AlertStatus, reviewerID uuid.UUID, reviewedAt time.Time) error {
	query := `UPDATE fraud_alerts SET status = $1, reviewed_by = $2, reviewed_at = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, string(status), reviewerID, reviewedAt, id)
	if err != nil {
		return fmt.Errorf("update fraud alert status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fraud alert not found: %s", id)
	}
	return nil
}

// List returns alerts newest first, optionally filtered by status and user.
func (r *FraudAlertRepo) List(ctx context.Context, params ports.AlertListParams) ([]domain.FraudAlert, error) {
	var (
		where []string
		args  []any
	)
	if params.Status != nil {
		args = append(args, string(*params.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.UserID != nil {
		args = append(args, *params.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := `SELECT ` + fraudAlertColumns + ` FROM fraud_alerts`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, params.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fraud alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.FraudAlert
	for rows.Next() {
		a, err := scanFraudAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fraud alert: %w", err)
		}
		alerts = append(alerts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fraud alerts: %w", err)
	}
	return alerts, nil
}

func scanFraudAlert(row pgx.Row) (*domain.FraudAlert, error) {
	var (
		a              domain.FraudAlert
		level, status  string
		factors, stats []byte
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.RiskScore, &level, &factors, &stats,
		&status, &a.ReviewedBy, &a.ReviewedAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.RiskLevel = domain.RiskLevel(level)
	a.Status = domain.AlertStatus(status)
	if err := json.Unmarshal(factors, &a.RiskFactors); err != nil {
		return nil, fmt.Errorf("decode risk factors: %w", err)
	}
	if err := json.Unmarshal(stats, &a.Stats); err != nil {
		return nil, fmt.Errorf("decode risk stats: %w", err)
	}
	return &a, nil
}
