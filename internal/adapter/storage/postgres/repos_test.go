package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitsRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLimitsRepo(mock)
	userID := uuid.New()
	adminID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM transaction_limits WHERE user_id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "daily_transaction_limit", "daily_amount_limit_cents", "updated_by", "updated_at"}).
			AddRow(userID, int64(2), int64(10_000), &adminID, now))

	l, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, int64(2), l.DailyTransactionLimit)
	assert.Equal(t, int64(10_000), l.DailyAmountLimitCents)
	assert.Equal(t, adminID, *l.UpdatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitsRepo_Get_NoOverride(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLimitsRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transaction_limits WHERE user_id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "daily_transaction_limit", "daily_amount_limit_cents", "updated_by", "updated_at"}))

	l, err := repo.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, l)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitsRepo_UpsertAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLimitsRepo(mock)
	userID := uuid.New()
	adminID := uuid.New()
	l := &domain.TransactionLimits{
		UserID:                userID,
		DailyTransactionLimit: 5,
		DailyAmountLimitCents: 25_000,
		UpdatedBy:             &adminID,
		UpdatedAt:             time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO transaction_limits .+ ON CONFLICT \\(user_id\\) DO UPDATE").
		WithArgs(userID, int64(5), int64(25_000), &adminID, l.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM transaction_limits WHERE user_id").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Upsert(context.Background(), l))
	require.NoError(t, repo.Delete(context.Background(), userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newTestAlert() *domain.FraudAlert {
	return &domain.FraudAlert{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		RiskScore: 60,
		RiskLevel: domain.RiskLevelHigh,
		RiskFactors: []domain.RiskFactor{
			{Code: "rapid_cash_out", Severity: domain.SeverityHigh, Points: 25, AlwaysFlag: true},
		},
		Stats:     domain.RiskStats{TransactionsLast24h: 4, RapidCashOuts: 1},
		Status:    domain.AlertStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

func alertRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "risk_score", "risk_level", "risk_factors", "stats",
		"status", "reviewed_by", "reviewed_at", "created_at",
	})
}

func addAlertRow(rows *pgxmock.Rows, a *domain.FraudAlert) *pgxmock.Rows {
	factors, _ := json.Marshal(a.RiskFactors)
	stats, _ := json.Marshal(a.Stats)
	return rows.AddRow(a.ID, a.UserID, a.RiskScore, string(a.RiskLevel), factors, stats,
		string(a.Status), a.ReviewedBy, a.ReviewedAt, a.CreatedAt)
}

func TestFraudAlertRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudAlertRepo(mock)
	a := newTestAlert()

	mock.ExpectExec("INSERT INTO fraud_alerts").
		WithArgs(a.ID, a.UserID, 60, "high", pgxmock.AnyArg(), pgxmock.AnyArg(),
			"pending", a.ReviewedBy, a.ReviewedAt, a.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudAlertRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudAlertRepo(mock)
	a := newTestAlert()

	mock.ExpectQuery("SELECT .+ FROM fraud_alerts WHERE id").
		WithArgs(a.ID).
		WillReturnRows(addAlertRow(alertRows(), a))

	got, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RiskLevelHigh, got.RiskLevel)
	assert.Equal(t, domain.AlertStatusPending, got.Status)
	require.Len(t, got.RiskFactors, 1)
	assert.Equal(t, "rapid_cash_out", got.RiskFactors[0].Code)
	assert.Equal(t, 1, got.Stats.RapidCashOuts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudAlertRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudAlertRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM fraud_alerts WHERE id").
		WithArgs(id).
		WillReturnRows(alertRows())

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudAlertRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudAlertRepo(mock)
	id := uuid.New()
	reviewer := uuid.New()
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE fraud_alerts SET status").
		WithArgs("reviewed", reviewer, at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE fraud_alerts SET status").
		WithArgs("cleared", reviewer, at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.AlertStatusReviewed, reviewer, at))
	err = repo.UpdateStatus(context.Background(), id, domain.AlertStatusCleared, reviewer, at)
	assert.ErrorContains(t, err, "fraud alert not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudAlertRepo_List_Filters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudAlertRepo(mock)
	a := newTestAlert()
	status := domain.AlertStatusPending

	mock.ExpectQuery("FROM fraud_alerts WHERE status = \\$1 AND user_id = \\$2 ORDER BY created_at DESC LIMIT \\$3").
		WithArgs("pending", a.UserID, 25).
		WillReturnRows(addAlertRow(alertRows(), a))

	alerts, err := repo.List(context.Background(), ports.AlertListParams{Status: &status, UserID: &a.UserID, Limit: 25})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, a.ID, alerts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFraudAlertRepo_List_Unfiltered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFraudAlertRepo(mock)

	mock.ExpectQuery("FROM fraud_alerts ORDER BY created_at DESC LIMIT \\$1").
		WithArgs(50).
		WillReturnRows(alertRows())

	alerts, err := repo.List(context.Background(), ports.AlertListParams{Limit: 50})
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepo_ListActiveAdmins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdminRepo(mock)
	id1, id2 := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT id, email, name FROM users").
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name"}).
			AddRow(id1, "ops@example.com", "Ops").
			AddRow(id2, "risk@example.com", "Risk"))

	admins, err := repo.ListActiveAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "ops@example.com", admins[0].Email)
	assert.Equal(t, id2, admins[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_ActivateOnce(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	userID := uuid.New()
	sub := &domain.Subscription{
		ID:          uuid.New(),
		UserID:      userID,
		PlanID:      "pro",
		Provider:    domain.ProviderPayPal,
		GatewayRef:  "I-SUB123",
		Status:      domain.SubscriptionStatusActive,
		ActivatedAt: time.Now().UTC(),
	}
	event := domain.ProcessedWebhookEvent{
		Provider:   domain.ProviderPayPal,
		GatewayRef: "I-SUB123",
		EventID:    "WH-1",
		EventType:  "BILLING.SUBSCRIPTION.ACTIVATED",
		UserID:     &userID,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO processed_webhook_events").
		WithArgs("paypal", "I-SUB123", "WH-1", "BILLING.SUBSCRIPTION.ACTIVATED", &userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO subscriptions .+ ON CONFLICT \\(user_id, plan_id\\) DO UPDATE").
		WithArgs(sub.ID, userID, "pro", "paypal", "I-SUB123", "active", sub.ActivatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	applied, err := repo.ActivateOnce(context.Background(), sub, event)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_ActivateOnce_Redelivery(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO processed_webhook_events").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	applied, err := repo.ActivateOnce(context.Background(),
		&domain.Subscription{ID: uuid.New(), UserID: userID, PlanID: "pro"},
		domain.ProcessedWebhookEvent{Provider: domain.ProviderPayPal, GatewayRef: "I-SUB123", UserID: &userID})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM subscriptions WHERE user_id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "plan_id", "provider", "gateway_ref", "status", "activated_at"}).
			AddRow(uuid.New(), userID, "pro", "stripe", "cs_1", "active", time.Now()))

	subs, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, domain.ProviderStripe, subs[0].Provider)
	assert.Equal(t, domain.SubscriptionStatusActive, subs[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	actor := uuid.New()
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &actor,
		Action:       domain.AuditActionLimitsUpdated,
		ResourceType: "transaction_limits",
		ResourceID:   uuid.NewString(),
		Details:      `{"daily_transaction_limit":5}`,
		IPAddress:    "203.0.113.9",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, &actor, "LIMITS_UPDATED", "transaction_limits",
			entry.ResourceID, entry.Details, "203.0.113.9", entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}
