package service

import (
	"context"
	"fmt"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SubscriptionService implements ports.SubscriptionLifecycle.
type SubscriptionService struct {
	repo ports.SubscriptionRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(repo ports.SubscriptionRepository, log zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{repo: repo, log: log, now: time.Now}
}

// Activate marks the plan active. The activation and its dedup row are
// written together, so a redelivered event reports alreadyProcessed.
func (s *SubscriptionService) Activate(ctx context.Context, intent domain.SubscriptionIntent, event *domain.ProviderEvent) (bool, error) {
	if intent.PlanID == "" {
		return false, apperror.Validation("plan id is required")
	}

	now := s.now().UTC()
	userID := intent.UserID
	sub := &domain.Subscription{
		ID:          uuid.New(),
		UserID:      userID,
		PlanID:      intent.PlanID,
		Provider:    event.Provider,
		GatewayRef:  event.GatewayRef,
		Status:      domain.SubscriptionStatusActive,
		ActivatedAt: now,
	}

	applied, err := s.repo.ActivateOnce(ctx, sub, domain.ProcessedWebhookEvent{
		Provider:    event.Provider,
		GatewayRef:  event.GatewayRef,
		EventID:     event.EventID,
		EventType:   event.EventType,
		UserID:      &userID,
		ProcessedAt: now,
	})
	if err != nil {
		return false, fmt.Errorf("activate subscription: %w", err)
	}

	if applied {
		s.log.Info().
			Str("user_id", userID.String()).
			Str("plan_id", intent.PlanID).
			Str("provider", string(event.Provider)).
			Msg("subscription activated")
	}
	return !applied, nil
}
