package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/pkg/apperror"
	"walletguard/pkg/circuitbreaker"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayPal struct {
	tokenCalls  atomic.Int32
	verifyCalls atomic.Int32
	expiresIn   int64
	status      string
	verifyCode  int
	lastVerify  verifyRequest

	timeout     time.Duration
	tokenDelay  time.Duration
	verifyDelay time.Duration
	tokenGate   chan struct{}
}

// stall holds a handler for d, or until gate closes when gate is set.
func stall(r *http.Request, d time.Duration, gate chan struct{}) {
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
		}
		return
	}
	if d > 0 {
		select {
		case <-time.After(d):
		case <-r.Context().Done():
		}
	}
}

func (f *fakePayPal) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		stall(r, f.tokenDelay, f.tokenGate)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "A21AA-token", ExpiresIn: f.expiresIn}) //nolint:errcheck
	})
	mux.HandleFunc("/v1/notifications/verify-webhook-signature", func(w http.ResponseWriter, r *http.Request) {
		f.verifyCalls.Add(1)
		stall(r, f.verifyDelay, nil)
		assert.Equal(t, "Bearer A21AA-token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastVerify))
		if f.verifyCode != 0 {
			w.WriteHeader(f.verifyCode)
			return
		}
		json.NewEncoder(w).Encode(verifyResponse{VerificationStatus: f.status}) //nolint:errcheck
	})
	return mux
}

func setupVerifier(t *testing.T, f *fakePayPal) (*Verifier, *circuitbreaker.Breaker) {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	breaker := circuitbreaker.New("paypal", circuitbreaker.Settings{FailureThreshold: 2, Timeout: time.Minute})
	v := NewVerifier(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		WebhookID:    "WH-ID-1",
		BaseURL:      srv.URL + "/",
		Active:       true,
		Timeout:      f.timeout,
	}, srv.Client(), breaker, zerolog.Nop())
	return v, breaker
}

const captureBody = `{
	"id": "WH-EVT-1",
	"event_type": "PAYMENT.CAPTURE.COMPLETED",
	"create_time": "2026-03-10T12:00:00Z",
	"resource": {
		"id": "CAPTURE-42",
		"custom_id": "wallet_recharge:550e8400-e29b-41d4-a716-446655440000",
		"amount": {"value": "25.00", "currency_code": "usd"}
	}
}`

func signedRequest(body string) domain.WebhookRequest {
	return domain.WebhookRequest{
		Provider: domain.ProviderPayPal,
		Body:     []byte(body),
		Headers: map[string]string{
			"Paypal-Transmission-Id":   "tx-1",
			"Paypal-Transmission-Time": "2026-03-10T12:00:01Z",
			"Paypal-Transmission-Sig":  "sig==",
			"Paypal-Cert-Url":          "https://api.paypal.com/cert.pem",
			"Paypal-Auth-Algo":         "SHA256withRSA",
		},
		SourceIP: "203.0.113.20",
	}
}

func TestVerifier_CaptureCompleted(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "SUCCESS"}
	v, _ := setupVerifier(t, f)

	event, err := v.Verify(context.Background(), signedRequest(captureBody))
	require.NoError(t, err)

	assert.Equal(t, "WH-EVT-1", event.EventID)
	assert.True(t, event.Supported)
	assert.Equal(t, "CAPTURE-42", event.GatewayRef)
	assert.Equal(t, "wallet_recharge:550e8400-e29b-41d4-a716-446655440000", event.CorrelationToken)
	assert.Equal(t, int64(2500), event.AmountCents)
	assert.Equal(t, "USD", event.Currency)
	assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), event.CreatedAt)

	assert.Equal(t, "WH-ID-1", f.lastVerify.WebhookID)
	assert.Equal(t, "tx-1", f.lastVerify.TransmissionID)
	assert.Equal(t, "SHA256withRSA", f.lastVerify.AuthAlgo)
	assert.JSONEq(t, captureBody, string(f.lastVerify.WebhookEvent))
}

func TestVerifier_TokenIsCached(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "SUCCESS"}
	v, _ := setupVerifier(t, f)

	for i := 0; i < 3; i++ {
		_, err := v.Verify(context.Background(), signedRequest(captureBody))
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), f.tokenCalls.Load())
	assert.Equal(t, int32(3), f.verifyCalls.Load())
}

func TestVerifier_TokenRefreshedNearExpiry(t *testing.T) {
	f := &fakePayPal{expiresIn: 30, status: "SUCCESS"}
	v, _ := setupVerifier(t, f)

	for i := 0; i < 2; i++ {
		_, err := v.Verify(context.Background(), signedRequest(captureBody))
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), f.tokenCalls.Load())
}

func TestVerifier_DeadlineCoversTokenAndVerification(t *testing.T) {
	f := &fakePayPal{
		expiresIn:   3600,
		status:      "SUCCESS",
		timeout:     400 * time.Millisecond,
		tokenDelay:  300 * time.Millisecond,
		verifyDelay: 300 * time.Millisecond,
	}
	v, _ := setupVerifier(t, f)

	start := time.Now()
	_, err := v.Verify(context.Background(), signedRequest(captureBody))
	elapsed := time.Since(start)

	assert.Equal(t, "DEP_001", apperror.CodeOf(err))
	assert.Less(t, elapsed, 600*time.Millisecond)
}

func TestVerifier_WaitingCallerHonoursItsContext(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "SUCCESS", tokenGate: make(chan struct{})}
	v, _ := setupVerifier(t, f)

	first := make(chan error, 1)
	go func() {
		_, err := v.Verify(context.Background(), signedRequest(captureBody))
		first <- err
	}()
	require.Eventually(t, func() bool { return f.tokenCalls.Load() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := v.Verify(ctx, signedRequest(captureBody))
	assert.Equal(t, "DEP_001", apperror.CodeOf(err))
	assert.Less(t, time.Since(start), time.Second)

	close(f.tokenGate)
	require.NoError(t, <-first)
	assert.Equal(t, int32(1), f.tokenCalls.Load())
}

func TestVerifier_SubscriptionActivated(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "SUCCESS"}
	v, _ := setupVerifier(t, f)

	body := `{"id":"WH-EVT-2","event_type":"BILLING.SUBSCRIPTION.ACTIVATED","create_time":"2026-03-10T12:00:00Z",
		"resource":{"id":"I-SUB123","custom_id":"subscription:550e8400-e29b-41d4-a716-446655440000:pro"}}`

	event, err := v.Verify(context.Background(), signedRequest(body))
	require.NoError(t, err)
	assert.True(t, event.Supported)
	assert.Equal(t, "I-SUB123", event.GatewayRef)
	assert.Zero(t, event.AmountCents)
}

func TestVerifier_UnsupportedEvent(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "SUCCESS"}
	v, _ := setupVerifier(t, f)

	body := `{"id":"WH-EVT-3","event_type":"PAYMENT.CAPTURE.REFUNDED","create_time":"2026-03-10T12:00:00Z","resource":{"id":"X"}}`
	event, err := v.Verify(context.Background(), signedRequest(body))
	require.NoError(t, err)
	assert.False(t, event.Supported)
	assert.Empty(t, event.GatewayRef)
}

func TestVerifier_VerificationFailure(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "FAILURE"}
	v, breaker := setupVerifier(t, f)

	_, err := v.Verify(context.Background(), signedRequest(captureBody))
	assert.True(t, errors.Is(err, apperror.ErrSignatureInvalid()))
	assert.Equal(t, 0, breaker.Metrics().ConsecutiveFailures)
}

func TestVerifier_BadRequestIsSignatureInvalid(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, verifyCode: http.StatusBadRequest}
	v, breaker := setupVerifier(t, f)

	_, err := v.Verify(context.Background(), signedRequest(captureBody))
	assert.True(t, errors.Is(err, apperror.ErrSignatureInvalid()))
	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())
	assert.Equal(t, 0, breaker.Metrics().ConsecutiveFailures)
}

func TestVerifier_MissingHeaders(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "SUCCESS"}
	v, _ := setupVerifier(t, f)

	req := signedRequest(captureBody)
	delete(req.Headers, "Paypal-Transmission-Sig")

	_, err := v.Verify(context.Background(), req)
	assert.True(t, errors.Is(err, apperror.ErrSignatureInvalid()))
	assert.Equal(t, int32(0), f.tokenCalls.Load())
}

func TestVerifier_MalformedBody(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, status: "SUCCESS"}
	v, _ := setupVerifier(t, f)

	_, err := v.Verify(context.Background(), signedRequest(`{"id":`))
	assert.Equal(t, "VAL_001", apperror.CodeOf(err))
	assert.Equal(t, int32(0), f.verifyCalls.Load())
}

func TestVerifier_OutageOpensBreaker(t *testing.T) {
	f := &fakePayPal{expiresIn: 3600, verifyCode: http.StatusServiceUnavailable}
	v, breaker := setupVerifier(t, f)

	for i := 0; i < 2; i++ {
		_, err := v.Verify(context.Background(), signedRequest(captureBody))
		assert.Equal(t, "DEP_001", apperror.CodeOf(err))
	}
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

	_, err := v.Verify(context.Background(), signedRequest(captureBody))
	assert.Equal(t, "DEP_001", apperror.CodeOf(err))
	assert.True(t, errors.Is(err, circuitbreaker.ErrOpen))
	assert.Equal(t, int32(2), f.verifyCalls.Load())
}

func TestVerifier_State(t *testing.T) {
	v := NewVerifier(Config{ClientID: "id", ClientSecret: "secret"}, http.DefaultClient, circuitbreaker.New("paypal", circuitbreaker.Settings{}), zerolog.Nop())
	assert.False(t, v.Configured())
	assert.False(t, v.Active())
	assert.Equal(t, domain.ProviderPayPal, v.Provider())
	assert.Equal(t, defaultTimeout, v.cfg.Timeout)
}

func TestToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"25.00", 2500, false},
		{"0.5", 50, false},
		{"10", 1000, false},
		{"1234.56", 123456, false},
		{"1.005", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := toCents(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
