package service

import (
	"context"
	"log/slog"
	"time"

	"portfolio_sync/internal/config"
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/render"
)

// Orchestrator runs one batch sync pass: for every configured content type
// it fetches, maps and reconciles records, isolating per-record failures.
type Orchestrator struct {
	cfg        *config.Config
	client     SourceClient
	reconciler *Reconciler
	publisher  Publisher // nil disables sync events
	logger     *slog.Logger
}

func NewOrchestrator(
	cfg *config.Config,
	client SourceClient,
	reconciler *Reconciler,
	publisher Publisher,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		client:     client,
		reconciler: reconciler,
		publisher:  publisher,
		logger:     logger.With("component", "sync"),
	}
}

// SyncAll runs every configured content type and aggregates per-type
// results. Types with no source binding are skipped silently and absent
// from the report; one type's total failure never stops the others.
func (o *Orchestrator) SyncAll(ctx context.Context) *domain.Report {
	start := time.Now()
	report := &domain.Report{
		SyncedAt: start.UTC(),
		Results:  make(map[domain.ContentType]domain.TypeResult),
	}

	for _, d := range descriptors {
		collection, token, ok := o.cfg.TypeBinding(d.Type)
		if !ok {
			o.logger.Debug("content type not configured, skipping", "type", d.Type)
			continue
		}
		report.Results[d.Type] = o.syncType(ctx, d, collection, token)
	}

	report.Duration = time.Since(start)

	o.logger.Info("sync pass completed",
		"types", len(report.Results),
		"duration", report.Duration,
	)

	return report
}

func (o *Orchestrator) syncType(ctx context.Context, d descriptor, collection, token string) domain.TypeResult {
	logger := o.logger.With("type", d.Type)

	items, err := o.client.FetchCollection(ctx, token, collection)
	if err != nil {
		// Soft failure: proceed with whatever the walker accumulated.
		logger.Warn("collection fetch incomplete",
			"fetched", len(items),
			"error", err,
		)
	}

	if d.Singleton && len(items) > 1 {
		logger.Debug("singleton type, ignoring extra records", "ignored", len(items)-1)
		items = items[:1]
	}

	var result domain.TypeResult

	for _, item := range items {
		rec := d.Map(item)

		if d.FetchBody {
			o.attachBody(ctx, token, item.ID, rec, logger)
		}

		_, isNew, err := o.reconciler.Upsert(ctx, rec)
		if err != nil {
			result.Errors++
			logger.Error("record reconciliation failed",
				"external_id", rec.ExternalID,
				"error", err,
			)
			continue
		}
		result.Synced++

		if o.publisher != nil {
			if err := o.publisher.Publish(ctx, rec, isNew); err != nil {
				logger.Warn("sync event publish failed",
					"external_id", rec.ExternalID,
					"error", err,
				)
			}
		}
	}

	logger.Info("content type synced", "synced", result.Synced, "errors", result.Errors)

	return result
}

// attachBody fetches a long-form item's nested blocks and substitutes the
// rendered text for the plain excerpt when non-empty. Failures keep the
// excerpt; they never fail the record.
func (o *Orchestrator) attachBody(ctx context.Context, token, itemID string, rec *domain.Record, logger *slog.Logger) {
	blocks, err := o.client.FetchBlocks(ctx, token, itemID)
	if err != nil {
		logger.Warn("block fetch failed, keeping excerpt",
			"external_id", rec.ExternalID,
			"error", err,
		)
		return
	}

	body := render.Markdown(blocks)
	if body == "" {
		return
	}

	if fields, ok := rec.Fields.(*domain.PostFields); ok {
		fields.Body = body
	}
}
