package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/ports"
)

// LedgerService is the single-writer time-entry store. The in-memory slice
// is the authoritative state; every mutation is persisted best-effort and
// followed by a payload-less change notification. A persistence failure is
// logged and swallowed — the operation still counts as succeeded for the
// rest of the process lifetime.
type LedgerService struct {
	repo     ports.LedgerRepository
	notifier ports.ChangeNotifier
	logger   zerolog.Logger

	mu          sync.Mutex
	entries     []domain.TimeEntry
	loaded      bool
	lastCreated int64
}

func NewLedgerService(repo ports.LedgerRepository, notifier ports.ChangeNotifier, logger zerolog.Logger) *LedgerService {
	return &LedgerService{repo: repo, notifier: notifier, logger: logger}
}

// EnsureSeeded populates an empty ledger with the demo engagement entries.
// Safe to call repeatedly; only the first call on an empty store writes.
func (s *LedgerService) EnsureSeeded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	if len(s.entries) > 0 {
		return nil
	}

	base := time.Now().UnixMilli() - int64(len(seedEntries))*1000
	for i, seed := range seedEntries {
		s.entries = append(s.entries, domain.TimeEntry{
			ID:          fmt.Sprintf("seed-%d", base+int64(i)),
			ClientID:    seed.ClientID,
			Date:        seed.Date,
			Hours:       seed.Hours,
			Description: seed.Description,
			Status:      seed.Status,
			CreatedAt:   base + int64(i),
		})
	}
	s.lastCreated = base + int64(len(seedEntries)) - 1

	s.persist(ctx)
	s.notifier.NotifyChanged(ctx)
	s.logger.Info().Int("entries", len(s.entries)).Msg("ledger seeded")
	return nil
}

// Append assigns id and creation timestamp, stores the entry, and persists.
func (s *LedgerService) Append(ctx context.Context, input ports.AppendEntryInput) (domain.TimeEntry, error) {
	if input.Hours <= 0 || input.Hours > 24 {
		return domain.TimeEntry{}, domain.ErrInvalidHours
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	entry := domain.TimeEntry{
		ID:          generateEntryID(),
		ClientID:    input.ClientID,
		Date:        input.Date,
		Hours:       input.Hours,
		Description: input.Description,
		Status:      input.Status,
		CreatedAt:   s.nextCreatedAt(),
	}
	s.entries = append(s.entries, entry)

	s.persist(ctx)
	s.notifier.NotifyChanged(ctx)

	s.logger.Info().
		Str("entry_id", entry.ID).
		Str("client_id", entry.ClientID).
		Float64("hours", entry.Hours).
		Msg("time entry appended")

	return entry, nil
}

// Update applies a partial mutation. Only the status is expected to change;
// an unknown id is a no-op.
func (s *LedgerService) Update(ctx context.Context, id string, patch ports.EntryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		if patch.Status != nil {
			s.entries[i].Status = *patch.Status
		}
		s.persist(ctx)
		s.notifier.NotifyChanged(ctx)
		return nil
	}
	return nil
}

// Delete removes the entry with the given id; unknown ids are a no-op.
func (s *LedgerService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		s.persist(ctx)
		s.notifier.NotifyChanged(ctx)
		return nil
	}
	return nil
}

// List returns a snapshot copy of the collection. Sorting for display
// (date desc, createdAt desc) is a caller concern.
func (s *LedgerService) List(ctx context.Context) []domain.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	out := make([]domain.TimeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// AggregateByClient sums hours grouped by (clientID, status).
func (s *LedgerService) AggregateByClient(ctx context.Context) map[string]domain.Hours {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)

	out := make(map[string]domain.Hours)
	for _, e := range s.entries {
		h := out[e.ClientID]
		switch e.Status {
		case domain.StatusBilled:
			h.Billed += e.Hours
		case domain.StatusUnbilled:
			h.Unbilled += e.Hours
		}
		out[e.ClientID] = h
	}
	return out
}

// ensureLoaded lazily materializes the persisted ledger. A load failure
// starts the session with an empty authoritative state rather than failing;
// durability is best-effort, availability is not. Callers must hold s.mu.
func (s *LedgerService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	entries, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("ledger load failed, starting empty")
		return
	}
	s.entries = entries
	for _, e := range entries {
		if e.CreatedAt > s.lastCreated {
			s.lastCreated = e.CreatedAt
		}
	}
}

// persist writes the current state through the repository. Failures are
// logged and swallowed. Callers must hold s.mu.
func (s *LedgerService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.entries); err != nil {
		s.logger.Warn().Err(err).Int("entries", len(s.entries)).Msg("ledger persistence failed, continuing in memory")
	}
}

// nextCreatedAt returns a strictly increasing unix-millisecond timestamp so
// same-date entries keep a deterministic order. Callers must hold s.mu.
func (s *LedgerService) nextCreatedAt() int64 {
	now := time.Now().UnixMilli()
	if now <= s.lastCreated {
		now = s.lastCreated + 1
	}
	s.lastCreated = now
	return now
}

// generateEntryID returns a unique entry id in the format te-<millis>-<4 hex>.
func generateEntryID() string {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("te-%d-%04x", time.Now().UnixMilli(), time.Now().UnixNano()&0xFFFF)
	}
	return fmt.Sprintf("te-%d-%04x", time.Now().UnixMilli(), b)
}
