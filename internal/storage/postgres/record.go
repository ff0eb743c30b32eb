package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"portfolio_sync/internal/domain"
)

// RecordStore persists typed records in the target datastore, indexed by
// the (content_type, external_id) natural key.
type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

type recordRow struct {
	ID          int64     `db:"id"`
	ContentType string    `db:"content_type"`
	ExternalID  string    `db:"external_id"`
	SortOrder   int       `db:"sort_order"`
	Published   bool      `db:"published"`
	Fields      []byte    `db:"fields"`
	SyncedAt    time.Time `db:"synced_at"`
}

// Get looks up one record by its natural key. A missing record is
// (nil, nil), not an error.
func (s *RecordStore) Get(ctx context.Context, t domain.ContentType, externalID string) (*domain.Record, error) {
	var row recordRow
	query := `
		SELECT id, content_type, external_id, sort_order, published, fields, synced_at
		FROM records
		WHERE content_type = $1 AND external_id = $2`

	err := s.db.GetContext(ctx, &row, query, string(t), externalID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return decodeRow(row)
}

// Insert writes a new record and returns the target-side id the store
// assigned to it.
func (s *RecordStore) Insert(ctx context.Context, rec *domain.Record) (int64, error) {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return 0, fmt.Errorf("encode fields: %w", err)
	}

	query := `
		INSERT INTO records (content_type, external_id, sort_order, published, fields, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err = s.db.QueryRowContext(ctx, query,
		string(rec.Type),
		rec.ExternalID,
		rec.Order,
		rec.Published,
		fields,
		rec.SyncedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update patches every field of an existing record except its id.
func (s *RecordStore) Update(ctx context.Context, rec *domain.Record) error {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	query := `
		UPDATE records
		SET sort_order = $1, published = $2, fields = $3, synced_at = $4
		WHERE id = $5`

	res, err := s.db.ExecContext(ctx, query,
		rec.Order,
		rec.Published,
		fields,
		rec.SyncedAt,
		rec.TargetID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("record %d not found", rec.TargetID)
	}

	return nil
}

// ListByType returns every record of one content type in display order,
// the same listing the live site reads.
func (s *RecordStore) ListByType(ctx context.Context, t domain.ContentType) ([]domain.Record, error) {
	var rows []recordRow
	query := `
		SELECT id, content_type, external_id, sort_order, published, fields, synced_at
		FROM records
		WHERE content_type = $1
		ORDER BY sort_order, id`

	if err := s.db.SelectContext(ctx, &rows, query, string(t)); err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, nil
}

func decodeRow(row recordRow) (*domain.Record, error) {
	t := domain.ContentType(row.ContentType)
	fields := domain.NewFields(t)
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, fields); err != nil {
			return nil, fmt.Errorf("decode fields for %s/%s: %w", row.ContentType, row.ExternalID, err)
		}
	}

	return &domain.Record{
		TargetID:   row.ID,
		Type:       t,
		ExternalID: row.ExternalID,
		Order:      row.SortOrder,
		Published:  row.Published,
		SyncedAt:   row.SyncedAt,
		Fields:     fields,
	}, nil
}
