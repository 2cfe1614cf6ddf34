package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
	withdrawalWindow           = 24 * time.Hour
)

// WalletService implements ports.WalletLedger on top of an atomic LedgerStore.
type WalletService struct {
	store  ports.LedgerStore
	reader ports.WalletReader
	audit  ports.AuditService
	log    zerolog.Logger
	now    func() time.Time
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	store ports.LedgerStore,
	reader ports.WalletReader,
	audit ports.AuditService,
	log zerolog.Logger,
) *WalletService {
	return &WalletService{
		store:  store,
		reader: reader,
		audit:  audit,
		log:    log,
		now:    time.Now,
	}
}

// EnsureWallet creates the user's wallet on first need. Safe to call repeatedly.
func (s *WalletService) EnsureWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	if userID == uuid.Nil {
		return nil, apperror.Validation("user_id is required")
	}
	w, err := s.store.EnsureWallet(ctx, userID)
	if err != nil {
		return nil, toAppError("ensure wallet", err)
	}
	return w, nil
}

// GetBalance returns a non-locking snapshot of the wallet.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	w, err := s.reader.GetWallet(ctx, userID)
	if err != nil {
		return nil, toAppError("get wallet", err)
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return w, nil
}

// Credit raises the balance by amountCents and appends one positive entry.
func (s *WalletService) Credit(ctx context.Context, userID uuid.UUID, amountCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	if amountCents <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !reason.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown transaction reason %q", reason))
	}
	if _, err := s.EnsureWallet(ctx, userID); err != nil {
		return nil, err
	}

	res, err := s.store.AddTransaction(ctx, userID, amountCents, reason, meta)
	if err != nil {
		return nil, toAppError("credit", err)
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Int64("amount_cents", amountCents).
		Str("reason", string(reason)).
		Int64("new_balance", res.NewBalance).
		Msg("wallet credited")
	return res, nil
}

// DebitWithCheck lowers the balance only if it covers amountCents.
func (s *WalletService) DebitWithCheck(ctx context.Context, userID uuid.UUID, amountCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	if amountCents <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !reason.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unknown transaction reason %q", reason))
	}

	res, err := s.store.DebitWithCheck(ctx, userID, amountCents, reason, meta)
	if err != nil {
		if apperror.CodeOf(err) == "WAL_001" {
			s.log.Info().
				Str("user_id", userID.String()).
				Int64("amount_cents", amountCents).
				Msg("debit rejected: insufficient balance")
		}
		return nil, toAppError("debit", err)
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Int64("amount_cents", amountCents).
		Str("reason", string(reason)).
		Int64("previous_balance", res.PreviousBalance).
		Int64("new_balance", res.NewBalance).
		Msg("wallet debited")
	return res, nil
}

// RecordRecharge credits an externally settled payment at most once per
// (gateway, gatewayRef).
func (s *WalletService) RecordRecharge(ctx context.Context, req domain.RechargeRequest) (*domain.RechargeResult, error) {
	if req.AmountCents <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Gateway == "" || req.GatewayRef == "" {
		return nil, apperror.Validation("gateway and gateway reference are required")
	}
	if _, err := s.EnsureWallet(ctx, req.UserID); err != nil {
		return nil, err
	}

	meta := make(map[string]any, len(req.Meta)+3)
	for k, v := range req.Meta {
		meta[k] = v
	}
	meta[domain.MetaExternalReference] = req.GatewayRef
	meta[domain.MetaGateway] = string(req.Gateway)
	if req.Currency != "" {
		meta[domain.MetaCurrency] = req.Currency
	}
	req.Meta = meta

	res, err := s.store.RecordRecharge(ctx, req)
	if err != nil {
		return nil, toAppError("record recharge", err)
	}

	ev := s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("gateway", string(req.Gateway)).
		Str("gateway_ref", req.GatewayRef).
		Int64("amount_cents", req.AmountCents)
	if res.AlreadyProcessed {
		ev.Msg("recharge already processed")
	} else {
		ev.Msg("recharge credited")
	}
	return res, nil
}

// ListTransactions returns the most recent entries first.
func (s *WalletService) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WalletTransaction, error) {
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	txs, err := s.reader.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, toAppError("list transactions", err)
	}
	if txs == nil {
		txs = []domain.WalletTransaction{}
	}
	return txs, nil
}

// GetWithdrawalStats sums withdrawals over the trailing 24 hours.
func (s *WalletService) GetWithdrawalStats(ctx context.Context, userID uuid.UUID, dailyLimitCents int64) (*domain.WithdrawalStats, error) {
	if dailyLimitCents <= 0 {
		return nil, apperror.Validation("daily withdrawal limit must be positive")
	}

	total, err := s.reader.SumWithdrawalsSince(ctx, userID, s.now().Add(-withdrawalWindow))
	if err != nil {
		return nil, toAppError("sum withdrawals", err)
	}

	stats := domain.NewWithdrawalStats(total, dailyLimitCents)
	return &stats, nil
}

// Adjust applies an administrator correction. Debits keep the balance check.
func (s *WalletService) Adjust(ctx context.Context, req ports.AdjustmentRequest) (*domain.MutationResult, error) {
	if req.DeltaCents == 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	meta := map[string]any{
		"adminId": req.AdminID.String(),
	}
	if req.Note != "" {
		meta["note"] = req.Note
	}

	var (
		res *domain.MutationResult
		err error
	)
	if req.DeltaCents > 0 {
		res, err = s.Credit(ctx, req.UserID, req.DeltaCents, domain.ReasonAdminAdjustment, meta)
	} else {
		res, err = s.DebitWithCheck(ctx, req.UserID, -req.DeltaCents, domain.ReasonAdminAdjustment, meta)
	}
	if err != nil {
		return nil, err
	}

	details, _ := json.Marshal(map[string]any{
		"delta_cents": req.DeltaCents,
		"new_balance": res.NewBalance,
		"note":        req.Note,
	})
	adminID := req.AdminID
	s.audit.Log(ctx, &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      &adminID,
		Action:       domain.AuditActionWalletAdjusted,
		ResourceType: "wallet",
		ResourceID:   req.UserID.String(),
		Details:      string(details),
		CreatedAt:    s.now().UTC(),
	})
	return res, nil
}

// toAppError passes AppErrors through and wraps everything else as SYS_001.
func toAppError(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
