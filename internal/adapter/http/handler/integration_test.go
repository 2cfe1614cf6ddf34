package handler_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"walletguard/internal/adapter/http/handler"
	"walletguard/internal/adapter/provider/stripe"
	"walletguard/internal/adapter/storage/memory"
	redisStorage "walletguard/internal/adapter/storage/redis"
	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/internal/service"
	"walletguard/pkg/circuitbreaker"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stripeSecret = "whsec_integration"

type discardMailer struct{}

func (discardMailer) Send(context.Context, []string, string, string) error { return nil }

type testApp struct {
	server   *httptest.Server
	store    *memory.Store
	tokenSvc *service.JWTTokenService
}

// newTestApp wires the full stack over the in-memory store and miniredis.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store := memory.NewStore()
	breakers := circuitbreaker.NewRegistry(circuitbreaker.DefaultSettings)
	auditSvc := service.NewAuditService(store.AuditRepository(), log)
	t.Cleanup(auditSvc.Close)
	tokenSvc := service.NewJWTTokenService("integration-secret", time.Hour, "walletguard")
	rateLimits := redisStorage.NewRateLimitStore(rdb)

	alertSvc := service.NewAlertService(store, store, discardMailer{}, nil,
		service.NewHMACSignatureService(), http.DefaultClient, breakers.Get("alert-webhook"),
		service.AlertSettings{}, log)
	walletSvc := service.NewWalletService(store, store, auditSvc, log)
	limitsSvc := service.NewLimitsService(store, store, service.LimitsSettings{}, auditSvc, log)
	fraudSvc := service.NewFraudService(store, store, alertSvc, auditSvc, service.DefaultFraudRules(), log)
	spendSvc := service.NewSpendFlow(limitsSvc, walletSvc, fraudSvc, log)
	reconciler := service.NewReconcilerService(
		[]ports.ProviderVerifier{stripe.NewVerifier(stripe.Config{WebhookSecret: stripeSecret, Active: true})},
		walletSvc, service.NewSubscriptionService(store, log), store,
		redisStorage.NewDedupCache(rdb), rateLimits, fraudSvc, auditSvc,
		service.DefaultReconcilerSettings(), log,
	)

	router := handler.SetupRouter(handler.RouterDeps{
		Ledger:               walletSvc,
		Limits:               limitsSvc,
		Fraud:                fraudSvc,
		Spend:                spendSvc,
		Reconciler:           reconciler,
		Breakers:             breakers,
		TokenSvc:             tokenSvc,
		RateLimitStore:       rateLimits,
		AuditSvc:             auditSvc,
		DailyWithdrawalCents: 100_000,
		Mode:                 gin.TestMode,
		Logger:               log,
	})

	app := &testApp{server: httptest.NewServer(router), store: store, tokenSvc: tokenSvc}
	t.Cleanup(func() {
		app.server.Close()
		alertSvc.Wait()
	})
	return app
}

func (a *testApp) token(t *testing.T, userID uuid.UUID, role domain.Role) string {
	t.Helper()
	tok, _, err := a.tokenSvc.Generate(userID, role)
	require.NoError(t, err)
	return tok
}

func (a *testApp) call(t *testing.T, method, path, token string, body []byte, headers map[string]string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, a.server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func stripeRecharge(userID uuid.UUID, sessionID string, amount int64, at time.Time) ([]byte, string) {
	body := []byte(fmt.Sprintf(`{
		"id": "evt_%s",
		"object": "event",
		"type": "checkout.session.completed",
		"created": %d,
		"data": {"object": {
			"id": %q,
			"object": "checkout.session",
			"client_reference_id": "wallet_recharge:%s",
			"amount_total": %d,
			"currency": "usd"
		}}
	}`, sessionID, at.Unix(), sessionID, userID, amount))

	mac := hmac.New(sha256.New, []byte(stripeSecret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), body)
	return body, fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestIntegration_RechargeIsAppliedOnce(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()
	body, sig := stripeRecharge(userID, "cs_once", 10_000, time.Now())

	for i, wantAlready := range []bool{false, true, true} {
		status, resp := app.call(t, http.MethodPost, "/api/v1/webhooks/stripe", "", body, map[string]string{"Stripe-Signature": sig})
		require.Equal(t, http.StatusOK, status, "delivery %d: %s", i+1, resp)

		var ack struct {
			OK               bool `json:"ok"`
			AlreadyProcessed bool `json:"alreadyProcessed"`
		}
		require.NoError(t, json.Unmarshal(resp, &ack))
		assert.True(t, ack.OK)
		assert.Equal(t, wantAlready, ack.AlreadyProcessed, "delivery %d", i+1)
	}

	status, resp := app.call(t, http.MethodGet, "/api/v1/wallet/balance", app.token(t, userID, domain.RoleUser), nil, nil)
	require.Equal(t, http.StatusOK, status)
	var balance struct {
		Data domain.Wallet `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp, &balance))
	assert.Equal(t, int64(10_000), balance.Data.BalanceCents)
}

func TestIntegration_ForgedWebhookIsRejectedAndAudited(t *testing.T) {
	app := newTestApp(t)
	body, _ := stripeRecharge(uuid.New(), "cs_forged", 10_000, time.Now())
	forged := fmt.Sprintf("t=%d,v1=%s", time.Now().Unix(), hex.EncodeToString([]byte("not-a-real-signature")))

	status, _ := app.call(t, http.MethodPost, "/api/v1/webhooks/stripe", "", body, map[string]string{"Stripe-Signature": forged})
	assert.Equal(t, http.StatusUnauthorized, status)

	assert.Eventually(t, func() bool {
		for _, e := range app.store.AuditEntries() {
			if e.Action == domain.AuditActionSignatureInvalid {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestIntegration_UnknownProvider(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.call(t, http.MethodPost, "/api/v1/webhooks/acme", "", []byte(`{}`), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// TestIntegration_ConcurrentSpendsNeverOverdraw fires more spends than the
// balance covers and checks that the ledger stays consistent.
func TestIntegration_ConcurrentSpendsNeverOverdraw(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()
	token := app.token(t, userID, domain.RoleUser)

	body, sig := stripeRecharge(userID, "cs_funding", 10_000, time.Now())
	status, _ := app.call(t, http.MethodPost, "/api/v1/webhooks/stripe", "", body, map[string]string{"Stripe-Signature": sig})
	require.Equal(t, http.StatusOK, status)

	const attempts = 20
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		rejected  atomic.Int64
	)
	spend := []byte(`{"amount_cents":1000,"reason":"purchase"}`)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, _ := app.call(t, http.MethodPost, "/api/v1/wallet/spend", token, spend, nil)
			switch status {
			case http.StatusCreated:
				succeeded.Add(1)
			case http.StatusConflict, http.StatusTooManyRequests:
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), succeeded.Load())
	assert.Equal(t, int64(attempts-10), rejected.Load())

	wallet, err := app.store.GetWallet(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.BalanceCents)

	txs, err := app.store.ListTransactionsSince(context.Background(), userID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	var sum int64
	for _, tx := range txs {
		sum += tx.DeltaCents
	}
	assert.Equal(t, wallet.BalanceCents, sum, "ledger sum must equal balance")
}

func TestIntegration_AdminRoutesRequireAdminRole(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()

	status, _ := app.call(t, http.MethodGet, "/api/v1/admin/fraud/alerts", app.token(t, userID, domain.RoleUser), nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = app.call(t, http.MethodGet, "/api/v1/admin/fraud/alerts", app.token(t, userID, domain.RoleAdmin), nil, nil)
	assert.Equal(t, http.StatusOK, status)
}
