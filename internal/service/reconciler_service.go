package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"
	"walletguard/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReconcilerSettings tune the webhook pipeline.
type ReconcilerSettings struct {
	FreshnessWindow time.Duration
	RateLimit       int64
	RateWindow      time.Duration
	DedupTTL        time.Duration
}

// DefaultReconcilerSettings returns the production values.
func DefaultReconcilerSettings() ReconcilerSettings {
	return ReconcilerSettings{
		FreshnessWindow: 300 * time.Second,
		RateLimit:       100,
		RateWindow:      time.Minute,
		DedupTTL:        24 * time.Hour,
	}
}

// ReconcilerService implements ports.WebhookReconciler.
type ReconcilerService struct {
	verifiers     map[domain.Provider]ports.ProviderVerifier
	ledger        ports.WalletLedger
	subscriptions ports.SubscriptionLifecycle
	events        ports.ProcessedEventStore
	cache         ports.WebhookDedupCache
	limiter       ports.RateLimitStore
	fraud         ports.FraudEngine
	audit         ports.AuditService
	settings      ReconcilerSettings
	log           zerolog.Logger
	now           func() time.Time
}

// NewReconcilerService creates a new ReconcilerService. cache, limiter and
// fraud may be nil.
func NewReconcilerService(
	verifiers []ports.ProviderVerifier,
	ledger ports.WalletLedger,
	subscriptions ports.SubscriptionLifecycle,
	events ports.ProcessedEventStore,
	cache ports.WebhookDedupCache,
	limiter ports.RateLimitStore,
	fraud ports.FraudEngine,
	audit ports.AuditService,
	settings ReconcilerSettings,
	log zerolog.Logger,
) *ReconcilerService {
	byProvider := make(map[domain.Provider]ports.ProviderVerifier, len(verifiers))
	for _, v := range verifiers {
		byProvider[v.Provider()] = v
	}
	d := DefaultReconcilerSettings()
	if settings.FreshnessWindow <= 0 {
		settings.FreshnessWindow = d.FreshnessWindow
	}
	if settings.RateWindow <= 0 {
		settings.RateWindow = d.RateWindow
	}
	if settings.DedupTTL <= 0 {
		settings.DedupTTL = d.DedupTTL
	}
	return &ReconcilerService{
		verifiers:     byProvider,
		ledger:        ledger,
		subscriptions: subscriptions,
		events:        events,
		cache:         cache,
		limiter:       limiter,
		fraud:         fraud,
		audit:         audit,
		settings:      settings,
		log:           logger.Component(log, "reconciler"),
		now:           time.Now,
	}
}

// Reconcile runs one notification through rate limiting, verification,
// freshness, allow-listing, intent resolution, dedup and application.
// A nil error always means "acknowledge with 200".
func (s *ReconcilerService) Reconcile(ctx context.Context, req domain.WebhookRequest) (*domain.WebhookResult, error) {
	log := s.log.With().Str("provider", string(req.Provider)).Str("source_ip", req.SourceIP).Logger()

	if err := s.rateLimit(ctx, req); err != nil {
		log.Warn().Msg("webhook rate limited")
		return nil, err
	}

	verifier, ok := s.verifiers[req.Provider]
	if !ok {
		return nil, apperror.ErrNotFound(fmt.Sprintf("Provider %s", req.Provider))
	}
	if !verifier.Configured() {
		log.Error().Msg("webhook received for a provider without verification credentials")
		return nil, apperror.ErrProviderNotConfigured(string(req.Provider))
	}

	event, err := verifier.Verify(ctx, req)
	if err != nil {
		return nil, s.rejectVerification(ctx, req, err)
	}
	log = log.With().Str("event_id", event.EventID).Str("event_type", event.EventType).Logger()

	if age := s.now().Sub(event.CreatedAt); age > s.settings.FreshnessWindow || age < -s.settings.FreshnessWindow {
		s.securityEvent(ctx, req, domain.AuditActionReplayDetected, map[string]any{
			"event_id":    event.EventID,
			"age_seconds": int64(age.Seconds()),
		})
		return nil, apperror.ErrReplayDetected()
	}

	if !verifier.Active() {
		log.Info().Msg("provider inactive, event acknowledged without processing")
		return &domain.WebhookResult{Outcome: domain.OutcomeIgnored}, nil
	}
	if !event.Supported {
		log.Debug().Msg("event type not handled")
		return &domain.WebhookResult{Outcome: domain.OutcomeUnsupportedEvent}, nil
	}

	intent, err := domain.ParseCorrelationToken(event.CorrelationToken)
	if err != nil {
		log.Warn().Str("token", event.CorrelationToken).Msg("correlation token unresolvable, ignoring event")
		return &domain.WebhookResult{Outcome: domain.OutcomeIgnored}, nil
	}
	if event.GatewayRef == "" {
		log.Warn().Msg("event carries no gateway reference, ignoring")
		return &domain.WebhookResult{Outcome: domain.OutcomeIgnored}, nil
	}

	dedupKey := domain.BuildWebhookDedupKey(event.Provider, event.GatewayRef)
	if s.seen(ctx, dedupKey, event) {
		log.Info().Str("gateway_ref", event.GatewayRef).Msg("event already processed")
		return &domain.WebhookResult{Outcome: domain.OutcomeDuplicate, AlreadyProcessed: true}, nil
	}

	alreadyProcessed, err := s.apply(ctx, intent, event)
	if err != nil {
		log.Error().Err(err).
			Str("gateway_ref", event.GatewayRef).
			Str("intent", string(intent.Kind())).
			Msg("webhook processing failed, provider will retry")
		return nil, apperror.ErrTransientFailure(err)
	}

	s.remember(ctx, dedupKey)
	if alreadyProcessed {
		return &domain.WebhookResult{Outcome: domain.OutcomeDuplicate, AlreadyProcessed: true}, nil
	}

	log.Info().
		Str("gateway_ref", event.GatewayRef).
		Str("intent", string(intent.Kind())).
		Str("user_id", intent.User().String()).
		Msg("webhook applied")
	return &domain.WebhookResult{Outcome: domain.OutcomeApplied}, nil
}

func (s *ReconcilerService) apply(ctx context.Context, intent domain.Intent, event *domain.ProviderEvent) (bool, error) {
	processed := domain.ProcessedWebhookEvent{
		Provider:    event.Provider,
		GatewayRef:  event.GatewayRef,
		EventID:     event.EventID,
		EventType:   event.EventType,
		ProcessedAt: s.now().UTC(),
	}

	switch in := intent.(type) {
	case domain.RechargeIntent:
		if event.AmountCents <= 0 {
			return false, fmt.Errorf("recharge event %s has no positive amount", event.EventID)
		}
		res, err := s.ledger.RecordRecharge(ctx, domain.RechargeRequest{
			UserID:      in.UserID,
			AmountCents: event.AmountCents,
			Gateway:     event.Provider,
			GatewayRef:  event.GatewayRef,
			Currency:    event.Currency,
			EventID:     event.EventID,
			EventType:   event.EventType,
			Meta:        map[string]any{"eventId": event.EventID},
		})
		if err != nil {
			return false, err
		}
		if !res.AlreadyProcessed {
			s.evaluate(ctx, in.UserID)
		}
		return res.AlreadyProcessed, nil

	case domain.SubscriptionIntent:
		return s.subscriptions.Activate(ctx, in, event)

	case domain.CheckoutIntent:
		userID := in.UserID
		processed.UserID = &userID
		inserted, err := s.events.MarkProcessed(ctx, processed)
		if err != nil {
			return false, err
		}
		return !inserted, nil

	default:
		return false, fmt.Errorf("unhandled intent %T", intent)
	}
}

func (s *ReconcilerService) rateLimit(ctx context.Context, req domain.WebhookRequest) error {
	if s.limiter == nil || s.settings.RateLimit <= 0 {
		return nil
	}
	key := fmt.Sprintf("webhook:%s:%s", req.Provider, req.SourceIP)
	allowed, _, err := s.limiter.Allow(ctx, key, s.settings.RateLimit, s.settings.RateWindow)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("webhook rate limiter unavailable, allowing request")
		return nil
	}
	if !allowed {
		return apperror.ErrRateLimitExceeded()
	}
	return nil
}

// seen checks the Redis fast path, then the durable dedup table.
func (s *ReconcilerService) seen(ctx context.Context, key string, event *domain.ProviderEvent) bool {
	if s.cache != nil {
		hit, err := s.cache.Seen(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("dedup cache check failed, falling through to DB")
		}
		if hit {
			return true
		}
	}

	processed, err := s.events.IsProcessed(ctx, event.Provider, event.GatewayRef)
	if err != nil {
		// The storage layer enforces dedup again inside the mutation.
		s.log.Warn().Err(err).Str("key", key).Msg("dedup lookup failed, continuing to guarded apply")
		return false
	}
	if processed {
		s.remember(ctx, key)
	}
	return processed
}

func (s *ReconcilerService) remember(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Remember(ctx, key, s.settings.DedupTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache processed event")
	}
}

func (s *ReconcilerService) evaluate(ctx context.Context, userID uuid.UUID) {
	if s.fraud == nil {
		return
	}
	if _, err := s.fraud.Evaluate(ctx, userID); err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Msg("post-recharge fraud evaluation failed")
	}
}

func (s *ReconcilerService) rejectVerification(ctx context.Context, req domain.WebhookRequest, err error) error {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return apperror.InternalError(err)
	}

	switch {
	case errors.Is(err, apperror.ErrSignatureInvalid()):
		s.securityEvent(ctx, req, domain.AuditActionSignatureInvalid, nil)
	case errors.Is(err, apperror.ErrReplayDetected()):
		s.securityEvent(ctx, req, domain.AuditActionReplayDetected, nil)
	case appErr.Code == "DEP_001":
		s.log.Error().Err(err).Str("provider", string(req.Provider)).Msg("provider verification unavailable")
	}
	return err
}

func (s *ReconcilerService) securityEvent(ctx context.Context, req domain.WebhookRequest, action domain.AuditAction, details map[string]any) {
	logger.Security(s.log).
		Str("provider", string(req.Provider)).
		Str("source_ip", req.SourceIP).
		Str("action", string(action)).
		Msg("webhook rejected")

	var detailJSON string
	if details != nil {
		b, _ := json.Marshal(details)
		detailJSON = string(b)
	}
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		Action:       action,
		ResourceType: "webhook",
		ResourceID:   string(req.Provider),
		Details:      detailJSON,
		IPAddress:    req.SourceIP,
		CreatedAt:    s.now().UTC(),
	})
}
