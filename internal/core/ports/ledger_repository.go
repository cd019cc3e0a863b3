package ports

import (
	"context"

	"github.com/asglabs/mission-control/internal/core/domain"
)

// LedgerRepository persists the whole ledger as one ordered array under a
// single storage key. Persistence is best-effort: the service layer treats
// its in-memory state as authoritative and never surfaces Save failures to
// callers.
type LedgerRepository interface {
	// Load returns the persisted entries, or an empty slice when nothing
	// has been stored yet.
	Load(ctx context.Context) ([]domain.TimeEntry, error)

	// Save replaces the persisted ledger with the given entries.
	Save(ctx context.Context, entries []domain.TimeEntry) error
}

// ChangeNotifier broadcasts a payload-less "ledger changed" signal after
// every mutating operation. Observers re-query aggregates; the notification
// carries nothing.
type ChangeNotifier interface {
	NotifyChanged(ctx context.Context)
}
