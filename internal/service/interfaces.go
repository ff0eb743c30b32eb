package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/source"
)

// SourceClient is the document-authoring API surface the engine consumes.
type SourceClient interface {
	// FetchCollection returns all items of one collection. On a hard
	// failure it returns the partial result set together with the error.
	FetchCollection(ctx context.Context, token, collectionID string) ([]source.Item, error)
	FetchBlocks(ctx context.Context, token, itemID string) ([]domain.Block, error)
	CreateItem(ctx context.Context, token, collectionID string, props source.Properties) (*source.Item, error)
}

// RecordStore is the target datastore surface: simple get/insert/patch
// plus the listing the live site uses.
type RecordStore interface {
	Get(ctx context.Context, t domain.ContentType, externalID string) (*domain.Record, error)
	Insert(ctx context.Context, rec *domain.Record) (int64, error)
	Update(ctx context.Context, rec *domain.Record) error
	ListByType(ctx context.Context, t domain.ContentType) ([]domain.Record, error)
}

// Publisher emits one sync event per successful upsert. Optional; a nil
// publisher disables events.
type Publisher interface {
	Publish(ctx context.Context, rec *domain.Record, isNew bool) error
	Close() error
}
