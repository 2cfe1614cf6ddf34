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
)

const (
	defaultTxPageSize = 50
	maxTxPageSize     = 200
)

// WalletHandler serves the authenticated user's own wallet.
type WalletHandler struct {
	ledger               ports.WalletLedger
	limits               ports.LimitsGuard
	spend                ports.SpendService
	dailyWithdrawalCents int64
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.WalletLedger, limits ports.LimitsGuard, spend ports.SpendService, dailyWithdrawalCents int64) *WalletHandler {
	return &WalletHandler{
		ledger:               ledger,
		limits:               limits,
		spend:                spend,
		dailyWithdrawalCents: dailyWithdrawalCents,
	}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallet, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// ListTransactions handles GET /api/v1/wallet/transactions?limit=N.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limit := defaultTxPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = min(n, maxTxPageSize)
	}

	txs, err := h.ledger.ListTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TransactionListResponse{Items: txs, Count: len(txs), Limit: limit})
}

// Spend handles POST /api/v1/wallet/spend.
func (h *WalletHandler) Spend(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, dto.BindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.spend.Spend(c.Request.Context(), ports.SpendRequest{
		UserID:      userID,
		AmountCents: req.AmountCents,
		Reason:      domain.TransactionReason(req.Reason),
		Reference:   req.Reference,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// WithdrawalStats handles GET /api/v1/wallet/withdrawals/stats.
func (h *WalletHandler) WithdrawalStats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	stats, err := h.ledger.GetWithdrawalStats(c.Request.Context(), userID, h.dailyWithdrawalCents)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// GetLimits handles GET /api/v1/wallet/limits.
func (h *WalletHandler) GetLimits(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limits, err := h.limits.GetLimits(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, limits)
}
