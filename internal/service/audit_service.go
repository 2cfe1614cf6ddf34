package service

import (
	"context"
	"sync"
	"time"

	"walletguard/internal/core/domain"
	"walletguard/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	auditQueueSize    = 256
	auditWriteTimeout = 5 * time.Second
)

// AuditService implements ports.AuditService. Entries are logged at once
// and persisted by a single background writer so request paths never wait
// on the audit table. When the queue is full the entry is logged only.
type AuditService struct {
	repo  ports.AuditRepository
	log   zerolog.Logger
	queue chan *domain.AuditLog

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewAuditService starts the writer. repo may be nil, in which case
// entries only reach the logger. Call Close to flush on shutdown.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	s := &AuditService{
		repo:  repo,
		log:   log,
		queue: make(chan *domain.AuditLog, auditQueueSize),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Log never blocks. The caller's context is not used for persistence so a
// finished request still gets its audit row.
func (s *AuditService) Log(_ context.Context, entry *domain.AuditLog) {
	ev := s.log.Info().
		Str("action", string(entry.Action)).
		Str("resource_type", entry.ResourceType).
		Str("resource_id", entry.ResourceID).
		Str("ip", entry.IPAddress)
	if entry.ActorID != nil {
		ev = ev.Str("actor_id", entry.ActorID.String())
	}
	ev.Msg("audit")

	if s.repo == nil {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.log.Warn().Str("action", string(entry.Action)).Msg("audit writer closed, entry not persisted")
		return
	}
	select {
	case s.queue <- entry:
	default:
		s.log.Error().Str("action", string(entry.Action)).Msg("audit queue full, entry not persisted")
	}
}

// Close stops accepting entries and waits for queued ones to be written.
func (s *AuditService) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done
}

func (s *AuditService) run() {
	defer close(s.done)
	for entry := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
		cancel()
	}
}
