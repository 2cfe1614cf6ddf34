package handler

import (
	"errors"
	"io"
	"net/http"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"
	"walletguard/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives provider notifications.
type WebhookHandler struct {
	reconciler ports.WebhookReconciler
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(reconciler ports.WebhookReconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

// Receive handles POST /api/v1/webhooks/:provider. The raw body is passed
// through untouched because signatures are computed over the exact bytes.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
			return
		}
		response.Error(c, apperror.Validation("unable to read request body"))
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	result, err := h.reconciler.Reconcile(c.Request.Context(), domain.WebhookRequest{
		Provider: domain.Provider(c.Param("provider")),
		Body:     body,
		Headers:  headers,
		SourceIP: c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Ack(c, result.AlreadyProcessed, string(result.Outcome))
}
