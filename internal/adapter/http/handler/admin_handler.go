package handler

import (
	"strconv"

	"walletguard/internal/adapter/http/dto"
	"walletguard/internal/adapter/http/middleware"
	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"
	"walletguard/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves fraud review, limit overrides, balance corrections and
// circuit breaker controls.
type AdminHandler struct {
	fraud    ports.FraudEngine
	limits   ports.LimitsGuard
	ledger   ports.WalletLedger
	breakers ports.BreakerRegistry
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(fraud ports.FraudEngine, limits ports.LimitsGuard, ledger ports.WalletLedger, breakers ports.BreakerRegistry) *AdminHandler {
	return &AdminHandler{fraud: fraud, limits: limits, ledger: ledger, breakers: breakers}
}

// CheckFraud handles POST /api/v1/admin/fraud/check.
func (h *AdminHandler) CheckFraud(c *gin.Context) {
	var req dto.FraudCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("user_id must be a UUID"))
		return
	}
	c.Set(middleware.CtxAuditResource, userID.String())

	assessment, err := h.fraud.Evaluate(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewFraudCheckResponse(assessment))
}

// ListAlerts handles GET /api/v1/admin/fraud/alerts?status=&user_id=&limit=.
func (h *AdminHandler) ListAlerts(c *gin.Context) {
	var params ports.AlertListParams
	if raw := c.Query("status"); raw != "" {
		status := domain.AlertStatus(raw)
		params.Status = &status
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("user_id must be a UUID"))
			return
		}
		params.UserID = &id
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		params.Limit = n
	}

	alerts, err := h.fraud.ListAlerts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, alerts)
}

// UpdateAlertStatus handles PATCH /api/v1/admin/fraud/alerts/:id.
func (h *AdminHandler) UpdateAlertStatus(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("alert id must be a UUID"))
		return
	}
	var req dto.AlertStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	reviewerID, _ := middleware.UserID(c)

	alert, err := h.fraud.UpdateAlertStatus(c.Request.Context(), alertID, domain.AlertStatus(req.Status), reviewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, alert)
}

// SetLimits handles PUT /api/v1/admin/limits/:userId.
func (h *AdminHandler) SetLimits(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.Validation("userId must be a UUID"))
		return
	}
	var req dto.LimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	adminID, _ := middleware.UserID(c)

	limits := &domain.TransactionLimits{
		UserID:                userID,
		DailyTransactionLimit: req.DailyTransactionLimit,
		DailyAmountLimitCents: req.DailyAmountLimitCents,
		UpdatedBy:             &adminID,
	}
	if err := h.limits.SetLimits(c.Request.Context(), limits); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, limits)
}

// ResetLimits handles DELETE /api/v1/admin/limits/:userId.
func (h *AdminHandler) ResetLimits(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.Validation("userId must be a UUID"))
		return
	}
	if err := h.limits.ResetLimits(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	limits, err := h.limits.GetLimits(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, limits)
}

// AdjustWallet handles POST /api/v1/admin/wallets/:userId/adjust.
func (h *AdminHandler) AdjustWallet(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.Validation("userId must be a UUID"))
		return
	}
	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)
	adminID, _ := middleware.UserID(c)

	result, err := h.ledger.Adjust(c.Request.Context(), ports.AdjustmentRequest{
		UserID:     userID,
		DeltaCents: req.DeltaCents,
		AdminID:    adminID,
		Note:       req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListBreakers handles GET /api/v1/admin/breakers.
func (h *AdminHandler) ListBreakers(c *gin.Context) {
	response.OK(c, h.breakers.Snapshot())
}

// ResetBreaker handles POST /api/v1/admin/breakers/:name/reset.
func (h *AdminHandler) ResetBreaker(c *gin.Context) {
	name := c.Param("name")
	if !h.breakers.Reset(name) {
		response.Error(c, apperror.ErrNotFound("Circuit breaker "+name))
		return
	}
	response.OK(c, dto.BreakerResetResponse{
		Name:  name,
		State: h.breakers.Get(name).State().String(),
	})
}
