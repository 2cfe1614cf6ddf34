package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionSignatureInvalid AuditAction = "WEBHOOK_SIGNATURE_INVALID"
	AuditActionReplayDetected   AuditAction = "WEBHOOK_REPLAY_DETECTED"
	AuditActionAlertStatus      AuditAction = "ALERT_STATUS_CHANGED"
	AuditActionLimitsUpdated    AuditAction = "LIMITS_UPDATED"
	AuditActionLimitsReset      AuditAction = "LIMITS_RESET"
	AuditActionWalletAdjusted   AuditAction = "WALLET_ADJUSTED"
	AuditActionBreakerReset     AuditAction = "BREAKER_RESET"
	AuditActionFraudCheck       AuditAction = "FRAUD_CHECK_REQUESTED"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
