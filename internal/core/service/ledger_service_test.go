package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/asglabs/mission-control/internal/core/domain"
	"github.com/asglabs/mission-control/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubLedgerRepo struct {
	stored  []domain.TimeEntry
	loadErr error
	saveErr error
	saves   int
}

func (r *stubLedgerRepo) Load(_ context.Context) ([]domain.TimeEntry, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]domain.TimeEntry, len(r.stored))
	copy(out, r.stored)
	return out, nil
}

func (r *stubLedgerRepo) Save(_ context.Context, entries []domain.TimeEntry) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = make([]domain.TimeEntry, len(entries))
	copy(r.stored, entries)
	return nil
}

type stubNotifier struct {
	notifications int
}

func (n *stubNotifier) NotifyChanged(_ context.Context) {
	n.notifications++
}

func newTestLedger(repo ports.LedgerRepository, notifier ports.ChangeNotifier) *LedgerService {
	return NewLedgerService(repo, notifier, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestLedgerAppendAndAggregate(t *testing.T) {
	repo := &stubLedgerRepo{}
	notifier := &stubNotifier{}
	svc := newTestLedger(repo, notifier)
	ctx := context.Background()

	entry, err := svc.Append(ctx, ports.AppendEntryInput{
		ClientID:    "meridian",
		Date:        "2026-08-31",
		Hours:       2.5,
		Description: "diligence memo",
		Status:      domain.StatusUnbilled,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if entry.ID == "" || entry.CreatedAt == 0 {
		t.Errorf("append must assign id and timestamp, got %+v", entry)
	}

	if _, err := svc.Append(ctx, ports.AppendEntryInput{
		ClientID: "meridian",
		Date:     "2026-08-30",
		Hours:    3,
		Status:   domain.StatusBilled,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	agg := svc.AggregateByClient(ctx)
	if got := agg["meridian"]; got.Unbilled != 2.5 || got.Billed != 3 {
		t.Errorf("aggregate = %+v, want unbilled 2.5, billed 3", got)
	}
	if notifier.notifications != 2 {
		t.Errorf("got %d notifications, want one per append", notifier.notifications)
	}
	if len(repo.stored) != 2 {
		t.Errorf("repo holds %d entries, want 2", len(repo.stored))
	}
}

func TestLedgerUpdateMovesHoursBetweenBuckets(t *testing.T) {
	repo := &stubLedgerRepo{}
	notifier := &stubNotifier{}
	svc := newTestLedger(repo, notifier)
	ctx := context.Background()

	entry, err := svc.Append(ctx, ports.AppendEntryInput{
		ClientID: "cascade",
		Date:     "2026-08-31",
		Hours:    4,
		Status:   domain.StatusUnbilled,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	billed := domain.StatusBilled
	if err := svc.Update(ctx, entry.ID, ports.EntryPatch{Status: &billed}); err != nil {
		t.Fatalf("update: %v", err)
	}

	agg := svc.AggregateByClient(ctx)
	if got := agg["cascade"]; got.Billed != 4 || got.Unbilled != 0 {
		t.Errorf("aggregate = %+v, want all 4 hours billed", got)
	}
	if notifier.notifications != 2 {
		t.Errorf("got %d notifications, want 2 (append + update)", notifier.notifications)
	}
}

func TestLedgerUpdateUnknownIDIsNoop(t *testing.T) {
	repo := &stubLedgerRepo{}
	notifier := &stubNotifier{}
	svc := newTestLedger(repo, notifier)
	ctx := context.Background()

	billed := domain.StatusBilled
	if err := svc.Update(ctx, "te-missing", ports.EntryPatch{Status: &billed}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if notifier.notifications != 0 {
		t.Error("no-op update must not notify")
	}
	if repo.saves != 0 {
		t.Error("no-op update must not persist")
	}
}

func TestLedgerDelete(t *testing.T) {
	repo := &stubLedgerRepo{}
	notifier := &stubNotifier{}
	svc := newTestLedger(repo, notifier)
	ctx := context.Background()

	entry, err := svc.Append(ctx, ports.AppendEntryInput{
		ClientID: "trident",
		Date:     "2026-08-31",
		Hours:    1,
		Status:   domain.StatusUnbilled,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := svc.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(svc.List(ctx)); got != 0 {
		t.Errorf("ledger holds %d entries after delete, want 0", got)
	}

	// Unknown id: silent no-op, no notification.
	before := notifier.notifications
	if err := svc.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
	if notifier.notifications != before {
		t.Error("no-op delete must not notify")
	}
}

func TestLedgerSurvivesPersistenceFailure(t *testing.T) {
	repo := &stubLedgerRepo{saveErr: errors.New("mongo down")}
	notifier := &stubNotifier{}
	svc := newTestLedger(repo, notifier)
	ctx := context.Background()

	if _, err := svc.Append(ctx, ports.AppendEntryInput{
		ClientID: "meridian",
		Date:     "2026-08-31",
		Hours:    2,
		Status:   domain.StatusUnbilled,
	}); err != nil {
		t.Fatalf("append must succeed despite persistence failure, got %v", err)
	}

	if got := len(svc.List(ctx)); got != 1 {
		t.Errorf("in-memory state holds %d entries, want 1", got)
	}
	if notifier.notifications != 1 {
		t.Error("mutation must still notify when persistence fails")
	}
}

func TestLedgerLoadsPersistedStateLazily(t *testing.T) {
	repo := &stubLedgerRepo{stored: []domain.TimeEntry{
		{ID: "te-1", ClientID: "meridian", Date: "2026-08-01", Hours: 3, Status: domain.StatusBilled, CreatedAt: 100},
	}}
	svc := newTestLedger(repo, &stubNotifier{})

	entries := svc.List(context.Background())
	if len(entries) != 1 || entries[0].ID != "te-1" {
		t.Fatalf("persisted state not loaded: %+v", entries)
	}
}

func TestLedgerStartsEmptyOnLoadFailure(t *testing.T) {
	repo := &stubLedgerRepo{loadErr: errors.New("mongo down")}
	svc := newTestLedger(repo, &stubNotifier{})

	if got := len(svc.List(context.Background())); got != 0 {
		t.Errorf("ledger holds %d entries after failed load, want 0", got)
	}
}

func TestLedgerCreatedAtStrictlyIncreases(t *testing.T) {
	svc := newTestLedger(&stubLedgerRepo{}, &stubNotifier{})
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		entry, err := svc.Append(ctx, ports.AppendEntryInput{
			ClientID: "meridian",
			Date:     "2026-08-31",
			Hours:    1,
			Status:   domain.StatusUnbilled,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		if entry.CreatedAt <= last {
			t.Fatalf("createdAt %d not strictly after %d", entry.CreatedAt, last)
		}
		last = entry.CreatedAt
	}
}

func TestLedgerSeedingIsIdempotent(t *testing.T) {
	repo := &stubLedgerRepo{}
	svc := newTestLedger(repo, &stubNotifier{})
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n := len(svc.List(ctx))
	if n == 0 {
		t.Fatal("seeding produced no entries")
	}

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("repeat seed: %v", err)
	}
	if got := len(svc.List(ctx)); got != n {
		t.Errorf("repeat seeding changed entry count: %d → %d", n, got)
	}
}

func TestLedgerSeedingSkipsNonEmptyStore(t *testing.T) {
	repo := &stubLedgerRepo{stored: []domain.TimeEntry{
		{ID: "te-1", ClientID: "meridian", Date: "2026-08-01", Hours: 3, Status: domain.StatusBilled, CreatedAt: 100},
	}}
	svc := newTestLedger(repo, &stubNotifier{})
	ctx := context.Background()

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := len(svc.List(ctx)); got != 1 {
		t.Errorf("seeding over a non-empty store changed entry count to %d", got)
	}
}
