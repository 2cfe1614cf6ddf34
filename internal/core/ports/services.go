package ports

import (
	"context"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/pkg/circuitbreaker"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// SignatureService signs outbound alert webhooks with a timestamped HMAC.
type SignatureService interface {
	Sign(secretKey string, payload []byte, at time.Time) string
	Verify(secretKey string, payload []byte, header string, now time.Time, tolerance time.Duration) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   domain.Role
}

// IsAdmin reports whether the token carries the administrator role.
func (c *TokenClaims) IsAdmin() bool {
	return c != nil && c.Role == domain.RoleAdmin
}

// RateLimitStore is a fixed-window counter.
type RateLimitStore interface {
	// Allow increments the counter for key and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

// WebhookDedupCache is the Redis fast path in front of ProcessedEventStore.
type WebhookDedupCache interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string, ttl time.Duration) error
}

// Mailer delivers plain-text email.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// AlertPublisher streams alerts to downstream consumers.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert *domain.FraudAlert) error
}

// ProviderVerifier authenticates and normalises one provider's notifications.
type ProviderVerifier interface {
	Provider() domain.Provider
	// Configured reports whether credentials needed for verification exist.
	Configured() bool
	// Active reports whether the integration is administratively enabled.
	Active() bool
	// Verify returns apperror.Validation for malformed bodies,
	// apperror.ErrSignatureInvalid for forged ones and
	// apperror.ErrDependencyUnavailable when the provider cannot be reached.
	Verify(ctx context.Context, req domain.WebhookRequest) (*domain.ProviderEvent, error)
}

// BreakerRegistry exposes circuit breakers for observability and overrides.
type BreakerRegistry interface {
	Get(name string) *circuitbreaker.Breaker
	Reset(name string) bool
	Snapshot() []circuitbreaker.Metrics
}

// --- Service Ports (Business Logic) ---

// WalletLedger owns per-user balances and transaction history.
type WalletLedger interface {
	EnsureWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, amountCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error)
	DebitWithCheck(ctx context.Context, userID uuid.UUID, amountCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error)
	RecordRecharge(ctx context.Context, req domain.RechargeRequest) (*domain.RechargeResult, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WalletTransaction, error)
	GetWithdrawalStats(ctx context.Context, userID uuid.UUID, dailyLimitCents int64) (*domain.WithdrawalStats, error)
	Adjust(ctx context.Context, req AdjustmentRequest) (*domain.MutationResult, error)
}

// AdjustmentRequest is an administrator correction. Negative deltas are checked debits.
type AdjustmentRequest struct {
	UserID     uuid.UUID
	DeltaCents int64
	AdminID    uuid.UUID
	Note       string
}

// LimitsGuard gates transactions on daily caps.
type LimitsGuard interface {
	CheckAllowed(ctx context.Context, userID uuid.UUID, amountCents int64) (*domain.LimitCheck, error)
	IsApproachingLimit(ctx context.Context, userID uuid.UUID) (bool, error)
	GetLimits(ctx context.Context, userID uuid.UUID) (*domain.TransactionLimits, error)
	SetLimits(ctx context.Context, limits *domain.TransactionLimits) error
	ResetLimits(ctx context.Context, userID uuid.UUID) error
}

// FraudEngine scores recent wallet activity.
type FraudEngine interface {
	// Evaluate never mutates the wallet. Flagged assessments persist an alert.
	Evaluate(ctx context.Context, userID uuid.UUID) (*domain.RiskAssessment, error)
	UpdateAlertStatus(ctx context.Context, alertID uuid.UUID, status domain.AlertStatus, reviewerID uuid.UUID) (*domain.FraudAlert, error)
	ListAlerts(ctx context.Context, params AlertListParams) ([]domain.FraudAlert, error)
}

// AlertDispatcher persists an alert and notifies administrators by severity.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, alert *domain.FraudAlert) error
}

// SubscriptionLifecycle confirms subscriptions paid through a provider.
type SubscriptionLifecycle interface {
	Activate(ctx context.Context, intent domain.SubscriptionIntent, event *domain.ProviderEvent) (alreadyProcessed bool, err error)
}

// WebhookReconciler turns provider notifications into ledger mutations once.
type WebhookReconciler interface {
	Reconcile(ctx context.Context, req domain.WebhookRequest) (*domain.WebhookResult, error)
}

// SpendService runs the user spend flow: limits gate, debit, fraud evaluation.
type SpendService interface {
	Spend(ctx context.Context, req SpendRequest) (*SpendResult, error)
}

// SpendRequest holds validated input for a user-initiated debit.
type SpendRequest struct {
	UserID      uuid.UUID
	AmountCents int64
	Reason      domain.TransactionReason
	Reference   string
}

// SpendResult is returned to the caller after a successful debit.
type SpendResult struct {
	Mutation         *domain.MutationResult `json:"mutation"`
	ApproachingLimit bool                   `json:"approaching_limit"`
	RemainingCount   int64                  `json:"remaining_count"`
	RemainingAmount  int64                  `json:"remaining_amount_cents"`
}

// AuditService records security and administrative events.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
