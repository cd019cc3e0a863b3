package ports

import (
	"context"

	"github.com/asglabs/mission-control/internal/core/domain"
)

// AppendEntryInput carries the caller-supplied fields of a new time entry.
// ID and CreatedAt are assigned by the service.
type AppendEntryInput struct {
	ClientID    string
	Date        string // YYYY-MM-DD
	Hours       float64
	Description string
	Status      domain.EntryStatus
}

// EntryPatch is a partial mutation of an existing entry. Only the status is
// mutable after creation.
type EntryPatch struct {
	Status *domain.EntryStatus
}

// LedgerService is the append-only time-entry store with derived per-client
// aggregates and change notification.
type LedgerService interface {
	// EnsureSeeded populates the ledger with the demo engagement entries
	// when it is empty. Idempotent; invoked once at startup.
	EnsureSeeded(ctx context.Context) error

	// Append assigns an id and creation timestamp, stores the entry, and
	// persists best-effort.
	Append(ctx context.Context, input AppendEntryInput) (domain.TimeEntry, error)

	// Update applies a patch to the entry with the given id. Missing ids
	// are a no-op.
	Update(ctx context.Context, id string, patch EntryPatch) error

	// Delete removes the entry with the given id. Missing ids are a no-op.
	Delete(ctx context.Context, id string) error

	// List returns a snapshot copy of the full collection. Ordering is a
	// caller concern.
	List(ctx context.Context) []domain.TimeEntry

	// AggregateByClient sums hours grouped by (clientID, status).
	AggregateByClient(ctx context.Context) map[string]domain.Hours
}
