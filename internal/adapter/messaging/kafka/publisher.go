// Package kafka streams fraud alerts to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"walletguard/internal/core/domain"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// RetryConfig bounds publish retries.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// AlertEvent is the message value published for every alert.
type AlertEvent struct {
	Type  string             `json:"type"`
	Alert *domain.FraudAlert `json:"alert"`
}

// AlertPublisher implements ports.AlertPublisher.
type AlertPublisher struct {
	writer messageWriter
	retry  RetryConfig
	log    zerolog.Logger
}

// NewAlertPublisher creates a publisher writing to topic on brokers.
func NewAlertPublisher(brokers []string, topic string, retry RetryConfig, log zerolog.Logger) *AlertPublisher {
	return newAlertPublisher(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		AllowAutoTopicCreation: true,
	}, retry, log)
}

func newAlertPublisher(w messageWriter, retry RetryConfig, log zerolog.Logger) *AlertPublisher {
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = 3
	}
	if retry.BaseDelay <= 0 {
		retry.BaseDelay = 100 * time.Millisecond
	}
	if retry.MaxDelay <= 0 {
		retry.MaxDelay = 2 * time.Second
	}
	return &AlertPublisher{writer: w, retry: retry, log: log}
}

// PublishAlert writes the alert keyed by user id, so one user's alerts stay
// ordered within a partition.
func (p *AlertPublisher) PublishAlert(ctx context.Context, alert *domain.FraudAlert) error {
	value, err := json.Marshal(AlertEvent{Type: "fraud.alert." + string(alert.RiskLevel), Alert: alert})
	if err != nil {
		return fmt.Errorf("marshal alert event: %w", err)
	}
	msg := kafkago.Message{
		Key:   []byte(alert.UserID.String()),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "alert_id", Value: []byte(alert.ID.String())},
		},
	}

	var lastErr error
	for attempt := 0; attempt < p.retry.MaxAttempts; attempt++ {
		if lastErr = p.writer.WriteMessages(ctx, msg); lastErr == nil {
			return nil
		}
		if attempt == p.retry.MaxAttempts-1 {
			break
		}

		delay := p.backoff(attempt)
		p.log.Warn().Err(lastErr).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Str("alert_id", alert.ID.String()).
			Msg("kafka publish failed, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("publish alert: %w", ctx.Err())
		}
	}
	return fmt.Errorf("publish alert after %d attempts: %w", p.retry.MaxAttempts, lastErr)
}

func (p *AlertPublisher) backoff(attempt int) time.Duration {
	delay := p.retry.BaseDelay << attempt
	if delay > p.retry.MaxDelay || delay <= 0 {
		delay = p.retry.MaxDelay
	}
	return delay
}

// Close flushes pending writes.
func (p *AlertPublisher) Close() error {
	return p.writer.Close()
}
