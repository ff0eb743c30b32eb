package service

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio_sync/internal/config"
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/mapper"
	"portfolio_sync/internal/source"
)

// Pusher exports target-side records back into the source system. This is
// a one-shot bootstrap direction: there is no reverse natural-key check,
// so repeated runs create duplicate source items.
type Pusher struct {
	cfg    *config.Config
	client SourceClient
	store  RecordStore
	logger *slog.Logger
}

func NewPusher(cfg *config.Config, client SourceClient, store RecordStore, logger *slog.Logger) *Pusher {
	return &Pusher{
		cfg:    cfg,
		client: client,
		store:  store,
		logger: logger.With("component", "push"),
	}
}

// Push creates one source item per target record of the given type and
// returns the created items. Per-record creation failures are logged and
// skipped; listing failures abort the push.
func (p *Pusher) Push(ctx context.Context, t domain.ContentType) ([]source.Item, error) {
	inverse := mapper.InverseForType(t)
	if inverse == nil {
		return nil, fmt.Errorf("unknown content type: %q", t)
	}

	collection, token, ok := p.cfg.TypeBinding(t)
	if !ok {
		return nil, fmt.Errorf("content type %s has no source binding configured", t)
	}

	p.logger.Warn("reverse push is not idempotent; repeated runs will create duplicate source items", "type", t)

	records, err := p.store.ListByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", t, err)
	}

	var created []source.Item

	for i := range records {
		rec := &records[i]

		props, ok := inverse(rec)
		if !ok {
			p.logger.Warn("skipping record with unexpected fields shape",
				"type", t,
				"external_id", rec.ExternalID,
			)
			continue
		}

		item, err := p.client.CreateItem(ctx, token, collection, props)
		if err != nil {
			p.logger.Error("source item creation failed",
				"type", t,
				"external_id", rec.ExternalID,
				"error", err,
			)
			continue
		}
		created = append(created, *item)
	}

	p.logger.Info("reverse push completed", "type", t, "created", len(created), "total", len(records))

	return created, nil
}
