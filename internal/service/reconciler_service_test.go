package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/internal/core/ports/mocks"
	"walletguard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerTestDeps struct {
	svc           *ReconcilerService
	stripe        *mocks.MockProviderVerifier
	ledger        *mocks.MockWalletLedger
	subscriptions *mocks.MockSubscriptionLifecycle
	events        *mocks.MockProcessedEventStore
	cache         *mocks.MockWebhookDedupCache
	limiter       *mocks.MockRateLimitStore
	fraud         *mocks.MockFraudEngine
	audit         *mocks.MockAuditService
	now           time.Time
}

// setupReconciler wires a stripe verifier with the given flags. The rate
// limiter allows every request unless a test overrides it.
func setupReconciler(t *testing.T, configured, active bool) *reconcilerTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconcilerTestDeps{
		stripe:        mocks.NewMockProviderVerifier(ctrl),
		ledger:        mocks.NewMockWalletLedger(ctrl),
		subscriptions: mocks.NewMockSubscriptionLifecycle(ctrl),
		events:        mocks.NewMockProcessedEventStore(ctrl),
		cache:         mocks.NewMockWebhookDedupCache(ctrl),
		limiter:       mocks.NewMockRateLimitStore(ctrl),
		fraud:         mocks.NewMockFraudEngine(ctrl),
		audit:         mocks.NewMockAuditService(ctrl),
		now:           time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
	d.stripe.EXPECT().Provider().Return(domain.ProviderStripe).AnyTimes()
	d.stripe.EXPECT().Configured().Return(configured).AnyTimes()
	d.stripe.EXPECT().Active().Return(active).AnyTimes()

	d.svc = NewReconcilerService(
		[]ports.ProviderVerifier{d.stripe},
		d.ledger, d.subscriptions, d.events, d.cache, d.limiter, d.fraud, d.audit,
		DefaultReconcilerSettings(), zerolog.Nop(),
	)
	d.svc.now = fixedNow(d.now)
	return d
}

func (d *reconcilerTestDeps) allowRate() {
	d.limiter.EXPECT().Allow(gomock.Any(), "webhook:stripe:198.51.100.7", int64(100), time.Minute).Return(true, int64(1), nil)
}

func (d *reconcilerTestDeps) expectFresh(ref string) {
	key := domain.BuildWebhookDedupKey(domain.ProviderStripe, ref)
	d.cache.EXPECT().Seen(gomock.Any(), key).Return(false, nil)
	d.events.EXPECT().IsProcessed(gomock.Any(), domain.ProviderStripe, ref).Return(false, nil)
}

func stripeRequest() domain.WebhookRequest {
	return domain.WebhookRequest{
		Provider: domain.ProviderStripe,
		Body:     []byte(`{"id":"evt_1"}`),
		Headers:  map[string]string{"Stripe-Signature": "t=1,v1=abc"},
		SourceIP: "198.51.100.7",
	}
}

func stripeEvent(token string, createdAt time.Time) *domain.ProviderEvent {
	return &domain.ProviderEvent{
		Provider:         domain.ProviderStripe,
		EventID:          "evt_1",
		EventType:        "checkout.session.completed",
		CreatedAt:        createdAt,
		Supported:        true,
		CorrelationToken: token,
		GatewayRef:       "cs_test_1",
		AmountCents:      2_500,
		Currency:         "eur",
	}
}

func TestReconciler_Recharge_Applied(t *testing.T) {
	d := setupReconciler(t, true, true)
	userID := uuid.New()
	req := stripeRequest()

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), req).Return(stripeEvent("wallet_recharge:"+userID.String(), d.now.Add(-time.Minute)), nil)
	d.expectFresh("cs_test_1")
	d.ledger.EXPECT().RecordRecharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r domain.RechargeRequest) (*domain.RechargeResult, error) {
			assert.Equal(t, userID, r.UserID)
			assert.Equal(t, int64(2_500), r.AmountCents)
			assert.Equal(t, domain.ProviderStripe, r.Gateway)
			assert.Equal(t, "cs_test_1", r.GatewayRef)
			assert.Equal(t, "eur", r.Currency)
			return &domain.RechargeResult{Mutation: &domain.MutationResult{NewBalance: 2_500}}, nil
		},
	)
	d.fraud.EXPECT().Evaluate(gomock.Any(), userID).Return(&domain.RiskAssessment{}, nil)
	d.cache.EXPECT().Remember(gomock.Any(), "stripe:cs_test_1", 24*time.Hour).Return(nil)

	res, err := d.svc.Reconcile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, res.Outcome)
	assert.False(t, res.AlreadyProcessed)
}

func TestReconciler_Recharge_FraudFailureStillApplies(t *testing.T) {
	d := setupReconciler(t, true, true)
	userID := uuid.New()

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("wallet_recharge:"+userID.String(), d.now), nil)
	d.expectFresh("cs_test_1")
	d.ledger.EXPECT().RecordRecharge(gomock.Any(), gomock.Any()).Return(&domain.RechargeResult{Mutation: &domain.MutationResult{}}, nil)
	d.fraud.EXPECT().Evaluate(gomock.Any(), userID).Return(nil, errors.New("reader down"))
	d.cache.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, res.Outcome)
}

func TestReconciler_DuplicateFromCache(t *testing.T) {
	d := setupReconciler(t, true, true)

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("wallet_recharge:"+uuid.NewString(), d.now), nil)
	d.cache.EXPECT().Seen(gomock.Any(), "stripe:cs_test_1").Return(true, nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
	assert.True(t, res.AlreadyProcessed)
}

func TestReconciler_DuplicateFromStore(t *testing.T) {
	d := setupReconciler(t, true, true)

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("wallet_recharge:"+uuid.NewString(), d.now), nil)
	d.cache.EXPECT().Seen(gomock.Any(), "stripe:cs_test_1").Return(false, errors.New("redis down"))
	d.events.EXPECT().IsProcessed(gomock.Any(), domain.ProviderStripe, "cs_test_1").Return(true, nil)
	d.cache.EXPECT().Remember(gomock.Any(), "stripe:cs_test_1", gomock.Any()).Return(nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
	assert.True(t, res.AlreadyProcessed)
}

func TestReconciler_DuplicateCaughtInsideLedger(t *testing.T) {
	d := setupReconciler(t, true, true)

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("wallet_recharge:"+uuid.NewString(), d.now), nil)
	d.expectFresh("cs_test_1")
	d.ledger.EXPECT().RecordRecharge(gomock.Any(), gomock.Any()).Return(&domain.RechargeResult{AlreadyProcessed: true}, nil)
	d.cache.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, res.Outcome)
}

func TestReconciler_StaleEventRejected(t *testing.T) {
	d := setupReconciler(t, true, true)

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("wallet_recharge:"+uuid.NewString(), d.now.Add(-301*time.Second)), nil)
	d.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionReplayDetected, entry.Action)
		assert.Equal(t, "198.51.100.7", entry.IPAddress)
	})

	_, err := d.svc.Reconcile(context.Background(), stripeRequest())
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SEC_003", appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestReconciler_EdgeOfFreshnessWindowAccepted(t *testing.T) {
	d := setupReconciler(t, true, true)

	d.allowRate()
	ev := stripeEvent("wallet_recharge:"+uuid.NewString(), d.now.Add(-300*time.Second))
	ev.Supported = false
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(ev, nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnsupportedEvent, res.Outcome)
}

func TestReconciler_InvalidSignatureOnInactiveProvider(t *testing.T) {
	d := setupReconciler(t, true, false)

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrSignatureInvalid())
	d.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionSignatureInvalid, entry.Action)
	})

	_, err := d.svc.Reconcile(context.Background(), stripeRequest())
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestReconciler_InactiveProviderAcknowledges(t *testing.T) {
	d := setupReconciler(t, true, false)

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("wallet_recharge:"+uuid.NewString(), d.now), nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnored, res.Outcome)
}

func TestReconciler_NotConfigured(t *testing.T) {
	d := setupReconciler(t, false, true)
	d.allowRate()

	_, err := d.svc.Reconcile(context.Background(), stripeRequest())
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SYS_003", appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
}

func TestReconciler_MalformedBody(t *testing.T) {
	d := setupReconciler(t, true, true)
	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil, apperror.Validation("malformed event payload"))

	_, err := d.svc.Reconcile(context.Background(), stripeRequest())
	assert.Equal(t, "VAL_001", apperror.CodeOf(err))
}

func TestReconciler_UnresolvableTokenIgnored(t *testing.T) {
	d := setupReconciler(t, true, true)
	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("gift_card:"+uuid.NewString(), d.now), nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnored, res.Outcome)
}

func TestReconciler_RateLimited(t *testing.T) {
	d := setupReconciler(t, true, true)
	d.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, int64(101), nil)

	_, err := d.svc.Reconcile(context.Background(), stripeRequest())
	assert.True(t, errors.Is(err, apperror.ErrRateLimitExceeded()))
}

func TestReconciler_RateLimiterDownFailsOpen(t *testing.T) {
	d := setupReconciler(t, true, true)
	d.limiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, int64(0), errors.New("redis down"))
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("bogus", d.now), nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnored, res.Outcome)
}

func TestReconciler_UnknownProvider(t *testing.T) {
	d := setupReconciler(t, true, true)
	d.limiter.EXPECT().Allow(gomock.Any(), "webhook:square:198.51.100.7", gomock.Any(), gomock.Any()).Return(true, int64(1), nil)

	req := stripeRequest()
	req.Provider = domain.Provider("square")
	_, err := d.svc.Reconcile(context.Background(), req)
	assert.Equal(t, "NF_001", apperror.CodeOf(err))
}

func TestReconciler_Subscription(t *testing.T) {
	d := setupReconciler(t, true, true)
	userID := uuid.New()

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("subscription:"+userID.String()+":pro", d.now), nil)
	d.expectFresh("cs_test_1")
	d.subscriptions.EXPECT().Activate(gomock.Any(), domain.SubscriptionIntent{UserID: userID, PlanID: "pro"}, gomock.Any()).Return(false, nil)
	d.cache.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, res.Outcome)
}

func TestReconciler_Checkout(t *testing.T) {
	d := setupReconciler(t, true, true)
	userID := uuid.New()

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("checkout:"+userID.String()+":order-9", d.now), nil)
	d.expectFresh("cs_test_1")
	d.events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.ProcessedWebhookEvent) (bool, error) {
			assert.Equal(t, &userID, e.UserID)
			assert.Equal(t, "evt_1", e.EventID)
			return true, nil
		},
	)
	d.cache.EXPECT().Remember(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := d.svc.Reconcile(context.Background(), stripeRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeApplied, res.Outcome)
}

func TestReconciler_ProcessingFailureIsRetryable(t *testing.T) {
	d := setupReconciler(t, true, true)

	d.allowRate()
	d.stripe.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(stripeEvent("wallet_recharge:"+uuid.NewString(), d.now), nil)
	d.expectFresh("cs_test_1")
	d.ledger.EXPECT().RecordRecharge(gomock.Any(), gomock.Any()).Return(nil, errors.New("serialization failure"))

	_, err := d.svc.Reconcile(context.Background(), stripeRequest())
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SYS_002", appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
}
