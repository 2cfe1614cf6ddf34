package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful admin operations that no service audits itself.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType, resourceID := mapRouteToAction(c)
		if action == "" {
			return
		}

		var actorID *uuid.UUID
		if id, ok := UserID(c); ok {
			actorID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(c *gin.Context) (domain.AuditAction, string, string) {
	switch c.FullPath() {
	case "/api/v1/admin/breakers/:name/reset":
		return domain.AuditActionBreakerReset, "circuit_breaker", c.Param("name")
	case "/api/v1/admin/fraud/check":
		return domain.AuditActionFraudCheck, "wallet", c.GetString(CtxAuditResource)
	case "/api/v1/admin/limits/:userId":
		// PUT is audited by the limits service.
		if c.Request.Method == http.MethodDelete {
			return domain.AuditActionLimitsReset, "transaction_limits", c.Param("userId")
		}
	}
	return "", "", ""
}
