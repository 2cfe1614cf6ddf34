package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"walletguard/config"
	httpHandler "walletguard/internal/adapter/http/handler"
	"walletguard/internal/adapter/messaging/kafka"
	"walletguard/internal/adapter/notify/email"
	"walletguard/internal/adapter/provider/paypal"
	"walletguard/internal/adapter/provider/stripe"
	"walletguard/internal/adapter/storage/memory"
	pgStorage "walletguard/internal/adapter/storage/postgres"
	redisStorage "walletguard/internal/adapter/storage/redis"
	"walletguard/internal/core/ports"
	"walletguard/internal/service"
	"walletguard/pkg/circuitbreaker"
	"walletguard/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var withoutRedis bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and webhook receiver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, log, withoutRedis)
		},
	}
	cmd.Flags().BoolVar(&withoutRedis, "no-redis", false, "run without Redis (no rate limiting or dedup cache)")
	return cmd
}

// stores groups the persistence ports for one storage driver.
type stores struct {
	ledger        ports.LedgerStore
	reader        ports.WalletReader
	events        ports.ProcessedEventStore
	subscriptions ports.SubscriptionRepository
	limits        ports.LimitsRepository
	alerts        ports.FraudAlertRepository
	admins        ports.AdminDirectory
	audit         ports.AuditRepository
	health        []ports.HealthChecker
	close         func()
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	if cfg.Storage.Driver == "memory" {
		log.Warn().Msg("using in-memory storage, balances are lost on restart")
		m := memory.NewStore()
		return &stores{
			ledger:        m,
			reader:        m,
			events:        m,
			subscriptions: m,
			limits:        m,
			alerts:        m,
			admins:        m,
			audit:         m.AuditRepository(),
			close:         func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	ledger := pgStorage.NewLedgerStore(pool)
	return &stores{
		ledger:        ledger,
		reader:        pgStorage.NewWalletRepo(pool),
		events:        ledger,
		subscriptions: pgStorage.NewSubscriptionRepo(pool),
		limits:        pgStorage.NewLimitsRepo(pool),
		alerts:        pgStorage.NewFraudAlertRepo(pool),
		admins:        pgStorage.NewAdminRepo(pool),
		audit:         pgStorage.NewAuditRepository(pool),
		health:        []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
		close:         pool.Close,
	}, nil
}

func runServe(ctx context.Context, cfg *config.Config, log zerolog.Logger, withoutRedis bool) error {
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is not set")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("starting walletguard")

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	var (
		rateLimitStore ports.RateLimitStore
		dedupCache     ports.WebhookDedupCache
	)
	healthCheckers := st.health
	if !withoutRedis {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		dedupCache = redisStorage.NewDedupCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	breakerLog := logger.Component(log, "circuit_breaker")
	breakers := circuitbreaker.NewRegistry(circuitbreaker.Settings{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		SuccessThreshold: cfg.Breaker.SuccessThreshold,
		Timeout:          cfg.Breaker.Timeout,
	}, circuitbreaker.WithStateChange(func(name string, from, to circuitbreaker.State) {
		breakerLog.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
	}))

	auditSvc := service.NewAuditService(st.audit, logger.Component(log, "audit"))
	defer auditSvc.Close()
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	var publisher ports.AlertPublisher
	if cfg.Kafka.Enabled() {
		p := kafka.NewAlertPublisher(cfg.Kafka.Brokers, cfg.Kafka.AlertTopic, kafka.RetryConfig{}, logger.Component(log, "kafka"))
		defer p.Close()
		publisher = p
	}

	mailer := email.NewMailer(email.Config{
		Host:     cfg.Alerts.SMTP.Host,
		Port:     cfg.Alerts.SMTP.Port,
		Username: cfg.Alerts.SMTP.Username,
		Password: cfg.Alerts.SMTP.Password,
		From:     cfg.Alerts.EmailFrom,
	})
	alertSvc := service.NewAlertService(
		st.alerts, st.admins, mailer, publisher, sigSvc,
		&http.Client{Timeout: cfg.Alerts.WebhookTimeout},
		breakers.Get("alert-webhook"),
		service.AlertSettings{
			WebhookURL:     cfg.Alerts.WebhookURL,
			WebhookSecret:  cfg.Alerts.WebhookSecret,
			WebhookTimeout: cfg.Alerts.WebhookTimeout,
		},
		logger.Component(log, "alerts"),
	)
	defer alertSvc.Wait()

	walletSvc := service.NewWalletService(st.ledger, st.reader, auditSvc, logger.Component(log, "wallet"))
	limitsSvc := service.NewLimitsService(st.limits, st.reader, service.LimitsSettings{
		DailyTransactionLimit: cfg.Limits.DailyTransactionCount,
		DailyAmountLimitCents: cfg.Limits.DailyAmountCents,
		FailClosed:            cfg.Limits.FailClosed(),
	}, auditSvc, logger.Component(log, "limits"))
	fraudSvc := service.NewFraudService(st.reader, st.alerts, alertSvc, auditSvc, fraudRules(cfg.Fraud), logger.Component(log, "fraud"))
	spendSvc := service.NewSpendFlow(limitsSvc, walletSvc, fraudSvc, logger.Component(log, "spend"))
	subscriptionSvc := service.NewSubscriptionService(st.subscriptions, logger.Component(log, "subscriptions"))

	verifiers := []ports.ProviderVerifier{
		stripe.NewVerifier(stripe.Config{
			WebhookSecret: cfg.Stripe.WebhookSecret,
			Active:        cfg.Stripe.Active,
			Tolerance:     cfg.Webhooks.FreshnessWindow,
		}),
		paypal.NewVerifier(paypal.Config{
			ClientID:     cfg.PayPal.ClientID,
			ClientSecret: cfg.PayPal.ClientSecret,
			WebhookID:    cfg.PayPal.WebhookID,
			BaseURL:      cfg.PayPal.BaseURL,
			Timeout:      cfg.PayPal.Timeout,
			Active:       cfg.PayPal.Active,
		}, &http.Client{Timeout: cfg.PayPal.Timeout}, breakers.Get("paypal"), logger.Component(log, "paypal")),
	}
	for _, v := range verifiers {
		if !v.Configured() {
			log.Warn().Str("provider", string(v.Provider())).Msg("provider credentials missing, its webhooks will be rejected")
		}
	}

	reconciler := service.NewReconcilerService(
		verifiers, walletSvc, subscriptionSvc, st.events, dedupCache, rateLimitStore, fraudSvc, auditSvc,
		service.ReconcilerSettings{
			FreshnessWindow: cfg.Webhooks.FreshnessWindow,
			RateLimit:       cfg.Webhooks.RateLimit,
			RateWindow:      cfg.Webhooks.RateWindow,
			DedupTTL:        cfg.Webhooks.DedupTTL,
		},
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:               walletSvc,
		Limits:               limitsSvc,
		Fraud:                fraudSvc,
		Spend:                spendSvc,
		Reconciler:           reconciler,
		Breakers:             breakers,
		TokenSvc:             tokenSvc,
		RateLimitStore:       rateLimitStore,
		AuditSvc:             auditSvc,
		HealthCheckers:       healthCheckers,
		DailyWithdrawalCents: cfg.Limits.DailyWithdrawalCents,
		MaxBodyBytes:         cfg.Server.MaxBodyBytes,
		Mode:                 cfg.Server.Mode,
		Logger:               log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-quit:
	}
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited, draining alert deliveries")
	return nil
}

// fraudRules maps every configured threshold onto the engine's rules.
func fraudRules(cfg config.FraudConfig) service.FraudRules {
	return service.FraudRules{
		HighVelocityCount:     cfg.HighVelocityCount,
		ElevatedVelocityCount: cfg.ElevatedVelocityCount,
		LargeDebitVolumeCents: cfg.LargeDebitVolumeCents,
		VeryLargeDebitCents:   cfg.VeryLargeDebitCents,
		ManyRechargesCount:    cfg.ManyRechargesCount,
		NewWalletMinTxCount:   cfg.NewWalletMinTxCount,
		WithdrawalRatio:       cfg.WithdrawalRatio,
	}
}
