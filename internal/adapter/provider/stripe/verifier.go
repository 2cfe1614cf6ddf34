// Package stripe verifies Stripe webhook deliveries.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/pkg/apperror"

	stripego "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/webhook"
)

// SignatureHeader is the header Stripe signs deliveries with.
const SignatureHeader = "Stripe-Signature"

const (
	EventCheckoutCompleted           = "checkout.session.completed"
	EventCheckoutAsyncPaymentSucceed = "checkout.session.async_payment_succeeded"
)

var supportedEvents = map[string]bool{
	EventCheckoutCompleted:           true,
	EventCheckoutAsyncPaymentSucceed: true,
}

// Config holds the verifier's credentials.
type Config struct {
	WebhookSecret string
	Active        bool
	// Tolerance bounds the signed timestamp age.
	Tolerance time.Duration
}

// Verifier implements ports.ProviderVerifier for Stripe.
type Verifier struct {
	cfg Config
}

// NewVerifier creates a Stripe verifier.
func NewVerifier(cfg Config) *Verifier {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = webhook.DefaultTolerance
	}
	return &Verifier{cfg: cfg}
}

func (v *Verifier) Provider() domain.Provider { return domain.ProviderStripe }
func (v *Verifier) Configured() bool         { return v.cfg.WebhookSecret != "" }
func (v *Verifier) Active() bool             { return v.cfg.Active }

// Verify checks the Stripe-Signature header and normalises checkout events.
func (v *Verifier) Verify(_ context.Context, req domain.WebhookRequest) (*domain.ProviderEvent, error) {
	var event stripego.Event
	if err := json.Unmarshal(req.Body, &event); err != nil || event.ID == "" || event.Type == "" {
		return nil, apperror.Validation("malformed Stripe event payload")
	}

	// Authenticate before judging freshness so a forged old header is
	// reported as a bad signature rather than a replay.
	sig := req.Header(SignatureHeader)
	if err := webhook.ValidatePayloadIgnoringTolerance(req.Body, sig, v.cfg.WebhookSecret); err != nil {
		return nil, apperror.ErrSignatureInvalid()
	}
	if err := webhook.ValidatePayloadWithTolerance(req.Body, sig, v.cfg.WebhookSecret, v.cfg.Tolerance); err != nil {
		if errors.Is(err, webhook.ErrTooOld) {
			return nil, apperror.ErrReplayDetected()
		}
		return nil, apperror.ErrSignatureInvalid()
	}

	out := &domain.ProviderEvent{
		Provider:  domain.ProviderStripe,
		EventID:   event.ID,
		EventType: event.Type,
		CreatedAt: time.Unix(event.Created, 0).UTC(),
		Supported: supportedEvents[event.Type],
	}
	if !out.Supported {
		return out, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, apperror.Validation("Stripe event carries no data object")
	}
	var session stripego.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, apperror.Validation(fmt.Sprintf("malformed checkout session: %v", err))
	}

	out.CorrelationToken = session.ClientReferenceID
	out.GatewayRef = session.ID
	out.AmountCents = session.AmountTotal
	out.Currency = strings.ToUpper(string(session.Currency))
	return out, nil
}
