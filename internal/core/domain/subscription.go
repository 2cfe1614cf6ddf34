package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus of a user's plan.
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// Subscription is activated by a confirmed provider payment.
type Subscription struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	PlanID      string             `json:"plan_id"`
	Provider    Provider           `json:"provider"`
	GatewayRef  string             `json:"gateway_ref"`
	Status      SubscriptionStatus `json:"status"`
	ActivatedAt time.Time          `json:"activated_at"`
}
