// Package paypal verifies PayPal webhook deliveries through the
// verify-webhook-signature API.
package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/pkg/apperror"
	"walletguard/pkg/circuitbreaker"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Transmission headers PayPal attaches to every delivery.
const (
	HeaderTransmissionID   = "PAYPAL-TRANSMISSION-ID"
	HeaderTransmissionTime = "PAYPAL-TRANSMISSION-TIME"
	HeaderTransmissionSig  = "PAYPAL-TRANSMISSION-SIG"
	HeaderCertURL          = "PAYPAL-CERT-URL"
	HeaderAuthAlgo         = "PAYPAL-AUTH-ALGO"
)

const (
	EventCaptureCompleted      = "PAYMENT.CAPTURE.COMPLETED"
	EventSubscriptionActivated = "BILLING.SUBSCRIPTION.ACTIVATED"

	defaultTimeout = 15 * time.Second
	defaultBaseURL = "https://api-m.sandbox.paypal.com"
)

// Config holds the verifier's credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	WebhookID    string
	BaseURL      string
	Timeout      time.Duration
	Active       bool
}

// Verifier implements ports.ProviderVerifier for PayPal.
type Verifier struct {
	cfg Config
	api *client
	log zerolog.Logger
}

// NewVerifier creates a PayPal verifier. breaker should be the registry's
// "paypal" breaker.
func NewVerifier(cfg Config, httpClient HTTPClient, breaker *circuitbreaker.Breaker, log zerolog.Logger) *Verifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Verifier{
		cfg: cfg,
		api: &client{
			baseURL:      cfg.BaseURL,
			clientID:     cfg.ClientID,
			clientSecret: cfg.ClientSecret,
			timeout:      cfg.Timeout,
			http:         httpClient,
			breaker:      breaker,
			now:          time.Now,
		},
		log: log,
	}
}

func (v *Verifier) Provider() domain.Provider { return domain.ProviderPayPal }

func (v *Verifier) Configured() bool {
	return v.cfg.ClientID != "" && v.cfg.ClientSecret != "" && v.cfg.WebhookID != ""
}

func (v *Verifier) Active() bool { return v.cfg.Active }

type webhookEvent struct {
	ID         string          `json:"id"`
	EventType  string          `json:"event_type"`
	CreateTime time.Time       `json:"create_time"`
	Resource   json.RawMessage `json:"resource"`
}

type eventResource struct {
	ID       string `json:"id"`
	CustomID string `json:"custom_id"`
	Amount   *struct {
		Value        string `json:"value"`
		CurrencyCode string `json:"currency_code"`
	} `json:"amount"`
}

type verifyRequest struct {
	AuthAlgo         string          `json:"auth_algo"`
	CertURL          string          `json:"cert_url"`
	TransmissionID   string          `json:"transmission_id"`
	TransmissionSig  string          `json:"transmission_sig"`
	TransmissionTime string          `json:"transmission_time"`
	WebhookID        string          `json:"webhook_id"`
	WebhookEvent     json.RawMessage `json:"webhook_event"`
}

type verifyResponse struct {
	VerificationStatus string `json:"verification_status"`
}

// Verify parses the body, asks PayPal to verify the transmission and
// normalises capture and subscription events.
func (v *Verifier) Verify(ctx context.Context, req domain.WebhookRequest) (*domain.ProviderEvent, error) {
	var event webhookEvent
	if err := json.Unmarshal(req.Body, &event); err != nil || event.ID == "" || event.EventType == "" {
		return nil, apperror.Validation("malformed PayPal event payload")
	}

	vr := verifyRequest{
		AuthAlgo:         req.Header(HeaderAuthAlgo),
		CertURL:          req.Header(HeaderCertURL),
		TransmissionID:   req.Header(HeaderTransmissionID),
		TransmissionSig:  req.Header(HeaderTransmissionSig),
		TransmissionTime: req.Header(HeaderTransmissionTime),
		WebhookID:        v.cfg.WebhookID,
		WebhookEvent:     json.RawMessage(req.Body),
	}
	if vr.AuthAlgo == "" || vr.CertURL == "" || vr.TransmissionID == "" || vr.TransmissionSig == "" || vr.TransmissionTime == "" {
		return nil, apperror.ErrSignatureInvalid()
	}

	// One deadline covers the token exchange and the verification call.
	ctx, cancel := context.WithTimeout(ctx, v.cfg.Timeout)
	defer cancel()

	var res verifyResponse
	if err := v.api.postJSON(ctx, "verify webhook signature", "/v1/notifications/verify-webhook-signature", vr, &res); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.status == http.StatusBadRequest {
			// PayPal rejects unverifiable transmissions outright.
			return nil, apperror.ErrSignatureInvalid()
		}
		if errors.Is(err, circuitbreaker.ErrOpen) {
			v.log.Warn().Msg("paypal breaker open, verification skipped")
		}
		return nil, apperror.ErrDependencyUnavailable("paypal", err)
	}
	if res.VerificationStatus != "SUCCESS" {
		return nil, apperror.ErrSignatureInvalid()
	}

	return normalise(event)
}

func normalise(event webhookEvent) (*domain.ProviderEvent, error) {
	out := &domain.ProviderEvent{
		Provider:  domain.ProviderPayPal,
		EventID:   event.ID,
		EventType: event.EventType,
		CreatedAt: event.CreateTime.UTC(),
	}
	switch event.EventType {
	case EventCaptureCompleted, EventSubscriptionActivated:
		out.Supported = true
	default:
		return out, nil
	}

	var res eventResource
	if len(event.Resource) == 0 {
		return nil, apperror.Validation("PayPal event carries no resource")
	}
	if err := json.Unmarshal(event.Resource, &res); err != nil {
		return nil, apperror.Validation(fmt.Sprintf("malformed PayPal resource: %v", err))
	}
	out.CorrelationToken = res.CustomID
	out.GatewayRef = res.ID

	if res.Amount != nil {
		cents, err := toCents(res.Amount.Value)
		if err != nil {
			return nil, apperror.Validation(err.Error())
		}
		out.AmountCents = cents
		out.Currency = strings.ToUpper(res.Amount.CurrencyCode)
	}
	return out, nil
}

// toCents converts a decimal amount string such as "25.00" to minor units.
func toCents(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", value)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", value)
	}
	return cents.IntPart(), nil
}
