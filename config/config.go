package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Fraud    FraudConfig    `mapstructure:"fraud"`
	Breaker  BreakerConfig  `mapstructure:"breaker"`
	Webhooks WebhooksConfig `mapstructure:"webhooks"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	PayPal   PayPalConfig   `mapstructure:"paypal"`
	Alerts   AlertsConfig   `mapstructure:"alerts"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// OpTimeout bounds dial, read and write so a stalled Redis cannot hold
	// up rate limiting, which fails open.
	OpTimeout time.Duration `mapstructure:"op_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StorageConfig selects the ledger backend: "postgres" or "memory".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// LimitsConfig holds the default daily caps applied to users without an override.
type LimitsConfig struct {
	DailyTransactionCount int64  `mapstructure:"daily_transaction_count"`
	DailyAmountCents      int64  `mapstructure:"daily_amount_cents"`
	DailyWithdrawalCents  int64  `mapstructure:"daily_withdrawal_cents"`
	FailMode              string `mapstructure:"fail_mode"` // open, closed
}

// FailClosed reports whether usage lookup failures should reject the transaction.
func (l LimitsConfig) FailClosed() bool {
	return strings.EqualFold(l.FailMode, "closed")
}

type FraudConfig struct {
	// Amounts below are in cents.
	LargeDebitVolumeCents int64   `mapstructure:"large_debit_volume_cents"`
	VeryLargeDebitCents   int64   `mapstructure:"very_large_debit_cents"`
	HighVelocityCount     int     `mapstructure:"high_velocity_count"`
	ElevatedVelocityCount int     `mapstructure:"elevated_velocity_count"`
	ManyRechargesCount    int     `mapstructure:"many_recharges_count"`
	NewWalletMinTxCount   int     `mapstructure:"new_wallet_min_tx_count"`
	WithdrawalRatio       float64 `mapstructure:"withdrawal_ratio"`
}

type BreakerConfig struct {
	FailureThreshold int           `mapstructure:"failure_threshold"`
	SuccessThreshold int           `mapstructure:"success_threshold"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

type WebhooksConfig struct {
	FreshnessWindow time.Duration `mapstructure:"freshness_window"`
	RateLimit       int64         `mapstructure:"rate_limit"`
	RateWindow      time.Duration `mapstructure:"rate_window"`
	DedupTTL        time.Duration `mapstructure:"dedup_ttl"`
}

type StripeConfig struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
	Active        bool   `mapstructure:"active"`
}

// Configured reports whether Stripe events can be verified.
func (s StripeConfig) Configured() bool {
	return s.WebhookSecret != ""
}

type PayPalConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	WebhookID    string        `mapstructure:"webhook_id"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Active       bool          `mapstructure:"active"`
}

// Configured reports whether PayPal events can be verified.
func (p PayPalConfig) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != "" && p.WebhookID != ""
}

type AlertsConfig struct {
	WebhookURL     string        `mapstructure:"webhook_url"`
	WebhookSecret  string        `mapstructure:"webhook_secret"`
	WebhookTimeout time.Duration `mapstructure:"webhook_timeout"`
	EmailFrom      string        `mapstructure:"email_from"`
	SMTP           SMTPConfig    `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Addr returns the SMTP address string.
func (s SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type KafkaConfig struct {
	Brokers    []string `mapstructure:"brokers"`
	AlertTopic string   `mapstructure:"alert_topic"`
}

// Enabled reports whether alert events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.AlertTopic != ""
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WG_ (walletguard).
// Nested keys use underscore: WG_DATABASE_HOST, WG_PAYPAL_CLIENT_ID, etc.
// A .env file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// WG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the services cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage.driver must be postgres or memory, got %q", c.Storage.Driver)
	}
	switch strings.ToLower(c.Limits.FailMode) {
	case "open", "closed":
	default:
		return fmt.Errorf("limits.fail_mode must be open or closed, got %q", c.Limits.FailMode)
	}
	if c.Limits.DailyTransactionCount <= 0 || c.Limits.DailyAmountCents <= 0 {
		return fmt.Errorf("limits must be positive")
	}
	if c.Webhooks.FreshnessWindow <= 0 {
		return fmt.Errorf("webhooks.freshness_window must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "walletguard")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.op_timeout", "250ms")

	v.SetDefault("storage.driver", "postgres")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "walletguard")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("limits.daily_transaction_count", 10)
	v.SetDefault("limits.daily_amount_cents", 50_000_000)
	v.SetDefault("limits.daily_withdrawal_cents", 10_000_000)
	v.SetDefault("limits.fail_mode", "open")

	v.SetDefault("fraud.large_debit_volume_cents", 100_000)
	v.SetDefault("fraud.very_large_debit_cents", 50_000)
	v.SetDefault("fraud.high_velocity_count", 10)
	v.SetDefault("fraud.elevated_velocity_count", 5)
	v.SetDefault("fraud.many_recharges_count", 5)
	v.SetDefault("fraud.new_wallet_min_tx_count", 3)
	v.SetDefault("fraud.withdrawal_ratio", 0.8)

	v.SetDefault("breaker.failure_threshold", 5)
	v.SetDefault("breaker.success_threshold", 2)
	v.SetDefault("breaker.timeout", "60s")

	v.SetDefault("webhooks.freshness_window", "300s")
	v.SetDefault("webhooks.rate_limit", 100)
	v.SetDefault("webhooks.rate_window", "1m")
	v.SetDefault("webhooks.dedup_ttl", "24h")

	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("stripe.active", true)

	v.SetDefault("paypal.client_id", "")
	v.SetDefault("paypal.client_secret", "")
	v.SetDefault("paypal.webhook_id", "")
	v.SetDefault("paypal.base_url", "https://api-m.paypal.com")
	v.SetDefault("paypal.timeout", "15s")
	v.SetDefault("paypal.active", true)

	v.SetDefault("alerts.webhook_url", "")
	v.SetDefault("alerts.webhook_secret", "")
	v.SetDefault("alerts.webhook_timeout", "10s")
	v.SetDefault("alerts.email_from", "alerts@walletguard.local")
	v.SetDefault("alerts.smtp.host", "")
	v.SetDefault("alerts.smtp.port", 587)
	v.SetDefault("alerts.smtp.username", "")
	v.SetDefault("alerts.smtp.password", "")

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.alert_topic", "fraud.alerts")
}
