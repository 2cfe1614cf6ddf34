package domain

import (
	"net/textproto"
	"time"

	"github.com/google/uuid"
)

// Provider identifies a payment provider that sends notifications.
type Provider string

const (
	ProviderStripe Provider = "stripe"
	ProviderPayPal Provider = "paypal"
)

// WebhookOutcome is the terminal state of one inbound notification.
type WebhookOutcome string

const (
	OutcomeRateLimited      WebhookOutcome = "rate_limited"
	OutcomeMalformed        WebhookOutcome = "malformed"
	OutcomeSignatureInvalid WebhookOutcome = "signature_invalid"
	OutcomeTooOld           WebhookOutcome = "too_old"
	OutcomeDuplicate        WebhookOutcome = "duplicate"
	OutcomeUnsupportedEvent WebhookOutcome = "unsupported_event"
	OutcomeIgnored          WebhookOutcome = "ignored"
	OutcomeApplied          WebhookOutcome = "applied"
	OutcomeProcessingFailed WebhookOutcome = "processing_failed"
)

// WebhookRequest is a raw inbound notification as received over HTTP.
// Header keys are stored in canonical MIME form.
type WebhookRequest struct {
	Provider Provider
	Body     []byte
	Headers  map[string]string
	SourceIP string
}

// Header returns a header value, matching name case-insensitively.
func (r WebhookRequest) Header(name string) string {
	return r.Headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// ProviderEvent is a verified notification normalised across providers.
type ProviderEvent struct {
	Provider         Provider
	EventID          string
	EventType        string
	CreatedAt        time.Time
	Supported        bool
	CorrelationToken string
	GatewayRef       string
	AmountCents      int64
	Currency         string
}

// WebhookResult is returned to the HTTP layer for 200 responses.
type WebhookResult struct {
	Outcome          WebhookOutcome `json:"outcome"`
	AlreadyProcessed bool           `json:"already_processed"`
}

// ProcessedWebhookEvent marks a (provider, gateway reference) pair as applied.
type ProcessedWebhookEvent struct {
	Provider    Provider   `json:"provider"`
	GatewayRef  string     `json:"gateway_ref"`
	EventID     string     `json:"event_id"`
	EventType   string     `json:"event_type"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	ProcessedAt time.Time  `json:"processed_at"`
}

// DedupKey is the cache key for a processed event.
func (e ProcessedWebhookEvent) DedupKey() string {
	return BuildWebhookDedupKey(e.Provider, e.GatewayRef)
}

// BuildWebhookDedupKey constructs the standard dedup key format.
func BuildWebhookDedupKey(provider Provider, gatewayRef string) string {
	return string(provider) + ":" + gatewayRef
}
