package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio_sync/internal/domain"
)

// Reconciler is the idempotency boundary: it looks an existing target
// record up by its natural key and either patches or inserts. Calling it
// twice with the same record yields the same target id and identical
// stored state up to SyncedAt.
type Reconciler struct {
	store  RecordStore
	logger *slog.Logger
	now    func() time.Time
}

func NewReconciler(store RecordStore, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger.With("component", "reconciler"),
		now:    time.Now,
	}
}

// Upsert writes rec to the target store, returning the target id and
// whether the record was newly inserted. A lookup failure is a hard error
// for this record only; no write is attempted.
func (r *Reconciler) Upsert(ctx context.Context, rec *domain.Record) (int64, bool, error) {
	existing, err := r.store.Get(ctx, rec.Type, rec.ExternalID)
	if err != nil {
		return 0, false, fmt.Errorf("lookup %s/%s: %w", rec.Type, rec.ExternalID, err)
	}

	rec.SyncedAt = r.now().UTC()

	if existing == nil {
		id, err := r.store.Insert(ctx, rec)
		if err != nil {
			return 0, false, fmt.Errorf("insert %s/%s: %w", rec.Type, rec.ExternalID, err)
		}
		rec.TargetID = id
		r.logger.Debug("record inserted", "type", rec.Type, "external_id", rec.ExternalID, "target_id", id)
		return id, true, nil
	}

	// The target id never changes across repeated syncs of the same key.
	rec.TargetID = existing.TargetID
	if err := r.store.Update(ctx, rec); err != nil {
		return 0, false, fmt.Errorf("patch %s/%s: %w", rec.Type, rec.ExternalID, err)
	}
	r.logger.Debug("record patched", "type", rec.Type, "external_id", rec.ExternalID, "target_id", rec.TargetID)
	return rec.TargetID, false, nil
}
