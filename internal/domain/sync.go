package domain

import "time"

// TypeResult tallies one content type's pass. Nonzero Errors is a normal,
// expected outcome of a best-effort batch sync.
type TypeResult struct {
	Synced int `json:"synced"`
	Errors int `json:"errors"`
}

// Report aggregates one full sync pass. Types with no source collection
// configured are absent from Results entirely.
type Report struct {
	SyncedAt time.Time                  `json:"syncedAt"`
	Results  map[ContentType]TypeResult `json:"results"`
	Duration time.Duration              `json:"-"`
}
