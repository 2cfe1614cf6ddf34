package handler

import (
	"walletguard/internal/adapter/http/middleware"
	"walletguard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.WalletLedger
	Limits         ports.LimitsGuard
	Fraud          ports.FraudEngine
	Spend          ports.SpendService
	Reconciler     ports.WebhookReconciler
	Breakers       ports.BreakerRegistry
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	AuditSvc       ports.AuditService   // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker

	DailyWithdrawalCents int64
	MaxBodyBytes         int64
	Mode                 string
	Logger               zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode == "" {
		deps.Mode = gin.ReleaseMode
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = 1 << 20
	}
	gin.SetMode(deps.Mode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Provider notifications (signature-authenticated) ---
	webhookHandler := NewWebhookHandler(deps.Reconciler)
	v1.POST("/webhooks/:provider", webhookHandler.Receive)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	// --- User wallet ---
	walletHandler := NewWalletHandler(deps.Ledger, deps.Limits, deps.Spend, deps.DailyWithdrawalCents)
	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("wallet_read"), walletHandler.GetBalance)
		wallet.GET("/transactions", rl("wallet_read"), walletHandler.ListTransactions)
		wallet.POST("/spend", rl("wallet_spend"), walletHandler.Spend)
		wallet.GET("/withdrawals/stats", rl("wallet_read"), walletHandler.WithdrawalStats)
		wallet.GET("/limits", rl("wallet_read"), walletHandler.GetLimits)
	}

	// --- Administration ---
	adminHandler := NewAdminHandler(deps.Fraud, deps.Limits, deps.Ledger, deps.Breakers)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireAdmin(), rl("admin"))
	{
		admin.POST("/fraud/check", adminHandler.CheckFraud)
		admin.GET("/fraud/alerts", adminHandler.ListAlerts)
		admin.PATCH("/fraud/alerts/:id", adminHandler.UpdateAlertStatus)
		admin.PUT("/limits/:userId", adminHandler.SetLimits)
		admin.DELETE("/limits/:userId", adminHandler.ResetLimits)
		admin.POST("/wallets/:userId/adjust", adminHandler.AdjustWallet)
		admin.GET("/breakers", adminHandler.ListBreakers)
		admin.POST("/breakers/:name/reset", adminHandler.ResetBreaker)
	}

	return r
}
