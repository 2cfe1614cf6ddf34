package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/internal/core/ports/mocks"
	"walletguard/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func protectedRouter(tokenSvc ports.TokenService, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(tokenSvc, zerolog.Nop())}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	router.GET("/test", handlers...)
	return router
}

func TestJWTAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		setup    func(m *mocks.MockTokenService)
		wantCode int
	}{
		{
			name:     "missing header",
			header:   "",
			setup:    func(m *mocks.MockTokenService) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong scheme",
			header:   "Basic dXNlcjpwYXNz",
			setup:    func(m *mocks.MockTokenService) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().Validate("bad").Return(nil, errors.New("signature is invalid"))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bearer without token",
			header:   "Bearer   ",
			setup:    func(m *mocks.MockTokenService) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "lowercase scheme",
			header: "bearer good",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().Validate("good").Return(&ports.TokenClaims{UserID: userID, Role: domain.RoleUser}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().Validate("good").Return(&ports.TokenClaims{UserID: userID, Role: domain.RoleUser}, nil)
			},
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokenSvc := mocks.NewMockTokenService(ctrl)
			tt.setup(tokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protectedRouter(tokenSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		role     domain.Role
		wantCode int
	}{
		{domain.RoleUser, http.StatusForbidden},
		{domain.RoleAdmin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokenSvc := mocks.NewMockTokenService(ctrl)
			tokenSvc.EXPECT().Validate("tok").Return(&ports.TokenClaims{UserID: uuid.New(), Role: tt.role}, nil)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", "Bearer tok")
			w := httptest.NewRecorder()
			protectedRouter(tokenSvc, RequireAdmin()).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestRequireAdmin_WithoutAuth(t *testing.T) {
	router := gin.New()
	router.GET("/test", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(response.RequestIDKey))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Body.String())
		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
	assert.NotContains(t, w.Body.String(), "boom")
}
