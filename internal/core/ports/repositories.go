package ports

import (
	"context"
	"time"

	"walletguard/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// LedgerStore performs balance mutations. Every method is one atomic unit:
// the balance read, the balance write and the transaction append are never
// interleaved with another mutation on the same wallet.
type LedgerStore interface {
	// EnsureWallet creates a zero-balance wallet if none exists. Concurrent
	// callers never produce duplicates.
	EnsureWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	// AddTransaction applies a signed delta. A delta that would take the
	// balance below zero fails with apperror.ErrInsufficientBalance.
	AddTransaction(ctx context.Context, userID uuid.UUID, deltaCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error)
	// DebitWithCheck fails with ErrInsufficientBalance or ErrWalletNotFound.
	DebitWithCheck(ctx context.Context, userID uuid.UUID, amountCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error)
	// RecordRecharge records the (gateway, gatewayRef) dedup row and credits
	// the wallet in the same unit. A repeated key reports AlreadyProcessed.
	RecordRecharge(ctx context.Context, req domain.RechargeRequest) (*domain.RechargeResult, error)
}

// WalletReader serves non-locking reads. Results may trail in-flight writes.
type WalletReader interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WalletTransaction, error)
	ListTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.WalletTransaction, error)
	SumWithdrawalsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
	UsageSince(ctx context.Context, userID uuid.UUID, since time.Time) (domain.DailyUsage, error)
}

// ProcessedEventStore tracks provider events that have been applied.
type ProcessedEventStore interface {
	IsProcessed(ctx context.Context, provider domain.Provider, gatewayRef string) (bool, error)
	// MarkProcessed inserts the dedup row and reports false when it already existed.
	MarkProcessed(ctx context.Context, event domain.ProcessedWebhookEvent) (bool, error)
}

// SubscriptionRepository persists subscription state.
type SubscriptionRepository interface {
	// ActivateOnce upserts an active subscription and the dedup row for event
	// in one unit. It reports false when event was already processed.
	ActivateOnce(ctx context.Context, sub *domain.Subscription, event domain.ProcessedWebhookEvent) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
}

// LimitsRepository stores per-user limit overrides. Get returns nil when absent.
type LimitsRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.TransactionLimits, error)
	Upsert(ctx context.Context, limits *domain.TransactionLimits) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// FraudAlertRepository persists fraud alerts. Alerts are never deleted.
type FraudAlertRepository interface {
	Create(ctx context.Context, alert *domain.FraudAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FraudAlert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AlertStatus, reviewerID uuid.UUID, reviewedAt time.Time) error
	List(ctx context.Context, params AlertListParams) ([]domain.FraudAlert, error)
}

// AlertListParams filters alert listings.
type AlertListParams struct {
	Status *domain.AlertStatus
	UserID *uuid.UUID
	Limit  int
}

// AdminDirectory resolves alert recipients.
type AdminDirectory interface {
	ListActiveAdmins(ctx context.Context) ([]domain.AdminRecipient, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
