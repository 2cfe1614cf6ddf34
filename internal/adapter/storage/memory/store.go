// Package memory holds an in-process implementation of every storage port.
// It backs tests and single-node deployments with storage.driver=memory.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"
	"walletguard/pkg/apperror"

	"github.com/google/uuid"
)

type wallet struct {
	mu  sync.Mutex
	w   domain.Wallet
	txs []domain.WalletTransaction
}

// Store is safe for concurrent use. Mutations on one wallet serialize on
// that wallet's mutex; the maps themselves are guarded by mu.
type Store struct {
	mu            sync.RWMutex
	wallets       map[uuid.UUID]*wallet
	processed     map[string]domain.ProcessedWebhookEvent
	subscriptions map[string]domain.Subscription
	limits        map[uuid.UUID]domain.TransactionLimits
	alerts        map[uuid.UUID]domain.FraudAlert
	admins        []domain.AdminRecipient
	audit         []domain.AuditLog

	now func() time.Time
}

var (
	_ ports.LedgerStore            = (*Store)(nil)
	_ ports.WalletReader           = (*Store)(nil)
	_ ports.ProcessedEventStore    = (*Store)(nil)
	_ ports.SubscriptionRepository = (*Store)(nil)
	_ ports.LimitsRepository       = (*Store)(nil)
	_ ports.FraudAlertRepository   = (*Store)(nil)
	_ ports.AdminDirectory         = (*Store)(nil)
)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		wallets:       make(map[uuid.UUID]*wallet),
		processed:     make(map[string]domain.ProcessedWebhookEvent),
		subscriptions: make(map[string]domain.Subscription),
		limits:        make(map[uuid.UUID]domain.TransactionLimits),
		alerts:        make(map[uuid.UUID]domain.FraudAlert),
		now:           time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// AddAdmin registers an alert recipient.
func (s *Store) AddAdmin(a domain.AdminRecipient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins = append(s.admins, a)
}

// AuditEntries returns a copy of everything audited so far.
func (s *Store) AuditEntries() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AuditLog(nil), s.audit...)
}

// ---- LedgerStore ----

// Lock order is wallet mutex, then mu. EnsureWallet drops mu before
// touching the wallet to keep it.
func (s *Store) EnsureWallet(_ context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	s.mu.Lock()
	wl, ok := s.wallets[userID]
	if !ok {
		now := s.now().UTC()
		wl = &wallet{w: domain.Wallet{UserID: userID, CreatedAt: now, UpdatedAt: now}}
		s.wallets[userID] = wl
	}
	s.mu.Unlock()

	wl.mu.Lock()
	defer wl.mu.Unlock()
	snapshot := wl.w
	return &snapshot, nil
}

func (s *Store) AddTransaction(_ context.Context, userID uuid.UUID, deltaCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	wl := s.wallet(userID)
	if wl == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	wl.mu.Lock()
	defer wl.mu.Unlock()
	return s.applyDelta(wl, deltaCents, reason, meta)
}

func (s *Store) DebitWithCheck(ctx context.Context, userID uuid.UUID, amountCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	if amountCents <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.AddTransaction(ctx, userID, -amountCents, reason, meta)
}

func (s *Store) RecordRecharge(_ context.Context, req domain.RechargeRequest) (*domain.RechargeResult, error) {
	wl := s.wallet(req.UserID)
	if wl == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	wl.mu.Lock()
	defer wl.mu.Unlock()

	userID := req.UserID
	event := domain.ProcessedWebhookEvent{
		Provider:   req.Gateway,
		GatewayRef: req.GatewayRef,
		EventID:    req.EventID,
		EventType:  req.EventType,
		UserID:     &userID,
	}
	if !s.markProcessed(event) {
		return &domain.RechargeResult{AlreadyProcessed: true}, nil
	}

	res, err := s.applyDelta(wl, req.AmountCents, domain.ReasonRecharge, req.Meta)
	if err != nil {
		s.unmarkProcessed(event)
		return nil, err
	}
	return &domain.RechargeResult{Mutation: res}, nil
}

func (s *Store) wallet(userID uuid.UUID) *wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wallets[userID]
}

// applyDelta requires wl.mu to be held.
func (s *Store) applyDelta(wl *wallet, deltaCents int64, reason domain.TransactionReason, meta map[string]any) (*domain.MutationResult, error) {
	previous := wl.w.BalanceCents
	if deltaCents > 0 && previous > math.MaxInt64-deltaCents {
		return nil, apperror.ErrBalanceOverflow()
	}
	next := previous + deltaCents
	if next < 0 {
		return nil, apperror.ErrInsufficientBalance()
	}

	now := s.now().UTC()
	entry := domain.WalletTransaction{
		ID:         uuid.New(),
		UserID:     wl.w.UserID,
		DeltaCents: deltaCents,
		Reason:     reason,
		Meta:       copyMeta(meta),
		CreatedAt:  now,
	}
	wl.w.BalanceCents = next
	wl.w.UpdatedAt = now
	wl.txs = append(wl.txs, entry)

	return &domain.MutationResult{
		TransactionID:   entry.ID,
		NewBalance:      next,
		PreviousBalance: previous,
	}, nil
}

func copyMeta(meta map[string]any) map[string]any {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// ---- WalletReader ----

func (s *Store) GetWallet(_ context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wl := s.wallet(userID)
	if wl == nil {
		return nil, nil
	}
	wl.mu.Lock()
	defer wl.mu.Unlock()
	snapshot := wl.w
	return &snapshot, nil
}

func (s *Store) ListTransactions(_ context.Context, userID uuid.UUID, limit int) ([]domain.WalletTransaction, error) {
	txs := s.newestFirst(userID, func(domain.WalletTransaction) bool { return true })
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

func (s *Store) ListTransactionsSince(_ context.Context, userID uuid.UUID, since time.Time) ([]domain.WalletTransaction, error) {
	return s.newestFirst(userID, func(t domain.WalletTransaction) bool {
		return !t.CreatedAt.Before(since)
	}), nil
}

func (s *Store) SumWithdrawalsSince(_ context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var total int64
	for _, t := range s.newestFirst(userID, func(t domain.WalletTransaction) bool {
		return t.Reason == domain.ReasonWithdrawal && !t.CreatedAt.Before(since)
	}) {
		total -= t.DeltaCents
	}
	return total, nil
}

func (s *Store) UsageSince(_ context.Context, userID uuid.UUID, since time.Time) (domain.DailyUsage, error) {
	var u domain.DailyUsage
	for _, t := range s.newestFirst(userID, func(t domain.WalletTransaction) bool {
		return !t.CreatedAt.Before(since)
	}) {
		u.Count++
		u.AmountCents += t.AbsCents()
	}
	return u, nil
}

func (s *Store) newestFirst(userID uuid.UUID, keep func(domain.WalletTransaction) bool) []domain.WalletTransaction {
	wl := s.wallet(userID)
	if wl == nil {
		return nil
	}
	wl.mu.Lock()
	defer wl.mu.Unlock()

	out := make([]domain.WalletTransaction, 0, len(wl.txs))
	for i := len(wl.txs) - 1; i >= 0; i-- {
		if keep(wl.txs[i]) {
			out = append(out, wl.txs[i])
		}
	}
	return out
}

// ---- ProcessedEventStore ----

func (s *Store) IsProcessed(_ context.Context, provider domain.Provider, gatewayRef string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.processed[domain.BuildWebhookDedupKey(provider, gatewayRef)]
	return ok, nil
}

func (s *Store) MarkProcessed(_ context.Context, event domain.ProcessedWebhookEvent) (bool, error) {
	return s.markProcessed(event), nil
}

func (s *Store) markProcessed(event domain.ProcessedWebhookEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.BuildWebhookDedupKey(event.Provider, event.GatewayRef)
	if _, ok := s.processed[key]; ok {
		return false
	}
	if event.ProcessedAt.IsZero() {
		event.ProcessedAt = s.now().UTC()
	}
	s.processed[key] = event
	return true
}

func (s *Store) unmarkProcessed(event domain.ProcessedWebhookEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.processed, domain.BuildWebhookDedupKey(event.Provider, event.GatewayRef))
}

// ---- SubscriptionRepository ----

func (s *Store) ActivateOnce(_ context.Context, sub *domain.Subscription, event domain.ProcessedWebhookEvent) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.BuildWebhookDedupKey(event.Provider, event.GatewayRef)
	if _, ok := s.processed[key]; ok {
		return false, nil
	}
	if event.ProcessedAt.IsZero() {
		event.ProcessedAt = s.now().UTC()
	}
	s.processed[key] = event
	s.subscriptions[sub.UserID.String()+"|"+sub.PlanID] = *sub
	return true, nil
}

func (s *Store) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subs []domain.Subscription
	for _, sub := range s.subscriptions {
		if sub.UserID == userID {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].ActivatedAt.After(subs[j].ActivatedAt) })
	return subs, nil
}

// ---- LimitsRepository ----

func (s *Store) Get(_ context.Context, userID uuid.UUID) (*domain.TransactionLimits, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.limits[userID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *Store) Upsert(_ context.Context, l *domain.TransactionLimits) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limits[l.UserID] = *l
	return nil
}

func (s *Store) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.limits, userID)
	return nil
}

// ---- FraudAlertRepository ----

func (s *Store) Create(_ context.Context, a *domain.FraudAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alerts[a.ID]; ok {
		return fmt.Errorf("fraud alert %s already exists", a.ID)
	}
	s.alerts[a.ID] = *a
	return nil
}

func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*domain.FraudAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.alerts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *Store) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AlertStatus, reviewerID uuid.UUID, reviewedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok {
		return fmt.Errorf("fraud alert not found: %s", id)
	}
	a.Status = status
	a.ReviewedBy = &reviewerID
	a.ReviewedAt = &reviewedAt
	s.alerts[id] = a
	return nil
}

func (s *Store) List(_ context.Context, params ports.AlertListParams) ([]domain.FraudAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.FraudAlert
	for _, a := range s.alerts {
		if params.Status != nil && a.Status != *params.Status {
			continue
		}
		if params.UserID != nil && a.UserID != *params.UserID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

// ---- AdminDirectory ----

func (s *Store) ListActiveAdmins(_ context.Context) ([]domain.AdminRecipient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.AdminRecipient(nil), s.admins...), nil
}

// ---- AuditRepository ----

type auditRepo struct {
	s *Store
}

// AuditRepository returns the audit view of the store.
func (s *Store) AuditRepository() ports.AuditRepository {
	return auditRepo{s: s}
}

func (r auditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audit = append(r.s.audit, *log)
	return nil
}
