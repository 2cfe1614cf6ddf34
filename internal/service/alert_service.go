package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"
	"walletguard/pkg/circuitbreaker"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AlertSignatureHeader carries "t=<unix>,v1=<hex HMAC-SHA256>" for the webhook body.
const AlertSignatureHeader = "X-Alert-Signature"

const defaultAlertWebhookTimeout = 10 * time.Second

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AlertSettings configures the external alert webhook.
type AlertSettings struct {
	WebhookURL     string
	WebhookSecret  string
	WebhookTimeout time.Duration
}

// AlertWebhookPayload is the JSON body posted for critical alerts.
type AlertWebhookPayload struct {
	Event     string             `json:"event"`
	Alert     *domain.FraudAlert `json:"alert"`
	Timestamp int64              `json:"timestamp"`
}

// AlertService implements ports.AlertDispatcher. Persistence is synchronous;
// email, webhook and stream fan-out run in the background and never fail
// the caller.
type AlertService struct {
	repo       ports.FraudAlertRepository
	admins     ports.AdminDirectory
	mailer     ports.Mailer
	publisher  ports.AlertPublisher
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	breaker    *circuitbreaker.Breaker
	settings   AlertSettings
	log        zerolog.Logger

	wg sync.WaitGroup
}

// NewAlertService creates a new AlertService. publisher may be nil.
func NewAlertService(
	repo ports.FraudAlertRepository,
	admins ports.AdminDirectory,
	mailer ports.Mailer,
	publisher ports.AlertPublisher,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	breaker *circuitbreaker.Breaker,
	settings AlertSettings,
	log zerolog.Logger,
) *AlertService {
	if settings.WebhookTimeout <= 0 {
		settings.WebhookTimeout = defaultAlertWebhookTimeout
	}
	return &AlertService{
		repo:       repo,
		admins:     admins,
		mailer:     mailer,
		publisher:  publisher,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		breaker:    breaker,
		settings:   settings,
		log:        log,
	}
}

// Dispatch persists the alert, emails administrators for high and critical
// alerts and posts the signed webhook for critical ones.
func (s *AlertService) Dispatch(ctx context.Context, alert *domain.FraudAlert) error {
	if err := s.repo.Create(ctx, alert); err != nil {
		return apperror.InternalError(fmt.Errorf("persist fraud alert: %w", err))
	}

	if alert.RiskLevel.AtLeast(domain.RiskLevelHigh) {
		s.background(func() { s.emailAdmins(alert) })
	}
	if alert.RiskLevel == domain.RiskLevelCritical && s.settings.WebhookURL != "" {
		s.background(func() { s.postWebhook(alert) })
	}
	if s.publisher != nil {
		s.background(func() {
			pubCtx, cancel := context.WithTimeout(context.Background(), s.settings.WebhookTimeout)
			defer cancel()
			if err := s.publisher.PublishAlert(pubCtx, alert); err != nil {
				s.log.Warn().Err(err).Str("alert_id", alert.ID.String()).Msg("alert: publish failed")
			}
		})
	}
	return nil
}

// Wait blocks until background deliveries finish. Used on shutdown.
func (s *AlertService) Wait() {
	s.wg.Wait()
}

func (s *AlertService) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

func (s *AlertService) emailAdmins(alert *domain.FraudAlert) {
	ctx, cancel := context.WithTimeout(context.Background(), s.settings.WebhookTimeout)
	defer cancel()

	admins, err := s.admins.ListActiveAdmins(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("alert_id", alert.ID.String()).Msg("alert: failed to load administrators")
		return
	}
	if len(admins) == 0 {
		s.log.Warn().Str("alert_id", alert.ID.String()).Msg("alert: no active administrators to notify")
		return
	}

	to := make([]string, 0, len(admins))
	for _, a := range admins {
		if a.Email != "" {
			to = append(to, a.Email)
		}
	}

	subject, body := renderAlertEmail(alert)
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		s.log.Error().Err(err).Str("alert_id", alert.ID.String()).Int("recipients", len(to)).Msg("alert: email delivery failed")
		return
	}
	s.log.Info().Str("alert_id", alert.ID.String()).Int("recipients", len(to)).Msg("alert: administrators notified")
}

func (s *AlertService) postWebhook(alert *domain.FraudAlert) {
	sentAt := time.Now()
	body, err := json.Marshal(AlertWebhookPayload{
		Event:     "fraud.alert.critical",
		Alert:     alert,
		Timestamp: sentAt.Unix(),
	})
	if err != nil {
		s.log.Error().Err(err).Str("alert_id", alert.ID.String()).Msg("alert: failed to marshal webhook payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.settings.WebhookTimeout)
	defer cancel()

	err = s.breaker.Execute(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.settings.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(AlertSignatureHeader, s.sigSvc.Sign(s.settings.WebhookSecret, body, sentAt))

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("alert webhook returned status %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		s.log.Warn().Err(err).Str("alert_id", alert.ID.String()).Msg("alert: webhook delivery failed")
		return
	}
	s.log.Info().Str("alert_id", alert.ID.String()).Msg("alert: webhook delivered")
}

func renderAlertEmail(alert *domain.FraudAlert) (string, string) {
	subject := fmt.Sprintf("[walletguard] %s fraud alert for user %s",
		strings.ToUpper(string(alert.RiskLevel)), alert.UserID)

	var b strings.Builder
	b.WriteString("A wallet was flagged for fraud review.\n\n")
	fmt.Fprintf(&b, "Alert:      %s\n", alert.ID)
	fmt.Fprintf(&b, "User:       %s\n", alert.UserID)
	fmt.Fprintf(&b, "Risk score: %d (%s)\n", alert.RiskScore, alert.RiskLevel)
	fmt.Fprintf(&b, "Raised at:  %s\n\n", alert.CreatedAt.UTC().Format(time.RFC3339))

	b.WriteString("Risk factors:\n")
	for _, f := range alert.RiskFactors {
		fmt.Fprintf(&b, "  - [%s] %s: %s (+%d)\n", f.Severity, f.Code, f.Description, f.Points)
	}

	st := alert.Stats
	b.WriteString("\nActivity (last 24h):\n")
	fmt.Fprintf(&b, "  transactions: %d (%d in the last hour)\n", st.TransactionsLast24h, st.TransactionsLastHour)
	fmt.Fprintf(&b, "  debited:      %s\n", formatCents(st.DebitCents24h))
	fmt.Fprintf(&b, "  credited:     %s\n", formatCents(st.CreditCents24h))
	fmt.Fprintf(&b, "  withdrawn:    %s\n", formatCents(st.WithdrawalCents24h))
	fmt.Fprintf(&b, "  balance:      %s\n", formatCents(st.CurrentBalanceCents))
	return subject, b.String()
}

// formatCents renders minor units as a two-decimal amount.
func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
