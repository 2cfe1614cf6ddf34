package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func auditRouter(auditSvc *mocks.MockAuditService, adminID uuid.UUID, status int) *gin.Engine {
	r := gin.New()
	r.Use(AuditLog(auditSvc))
	handler := func(c *gin.Context) {
		c.Set(CtxUserID, adminID)
		c.Set(CtxAuditResource, "user-42")
		c.JSON(status, gin.H{"ok": status < 300})
	}
	r.POST("/api/v1/admin/breakers/:name/reset", handler)
	r.POST("/api/v1/admin/fraud/check", handler)
	r.GET("/api/v1/admin/breakers", handler)
	r.PUT("/api/v1/admin/limits/:userId", handler)
	r.DELETE("/api/v1/admin/limits/:userId", handler)
	return r
}

func TestAuditLog_BreakerReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	adminID := uuid.New()

	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionBreakerReset, log.Action)
			assert.Equal(t, "circuit_breaker", log.ResourceType)
			assert.Equal(t, "paypal", log.ResourceID)
			assert.Equal(t, adminID, *log.ActorID)
			assert.Contains(t, log.Details, `"status":200`)
		},
	)

	w := httptest.NewRecorder()
	auditRouter(mockAudit, adminID, http.StatusOK).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/breakers/paypal/reset", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_FraudCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)

	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionFraudCheck, log.Action)
			assert.Equal(t, "user-42", log.ResourceID)
		},
	)

	w := httptest.NewRecorder()
	auditRouter(mockAudit, uuid.New(), http.StatusOK).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/fraud/check", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_LimitsReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	userID := uuid.New()

	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, log *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionLimitsReset, log.Action)
			assert.Equal(t, userID.String(), log.ResourceID)
		},
	)

	w := httptest.NewRecorder()
	auditRouter(mockAudit, uuid.New(), http.StatusOK).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/limits/"+userID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_Skipped(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"failed request", http.MethodPost, "/api/v1/admin/breakers/paypal/reset", http.StatusNotFound},
		{"read request", http.MethodGet, "/api/v1/admin/breakers", http.StatusOK},
		{"audited by its service", http.MethodPut, "/api/v1/admin/limits/abc", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAudit := mocks.NewMockAuditService(ctrl)

			w := httptest.NewRecorder()
			auditRouter(mockAudit, uuid.New(), tt.status).ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
