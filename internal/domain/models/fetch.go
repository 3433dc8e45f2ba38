package models

import "time"

// FetchRecord is one row of the fetch log: the outcome of a single page
// request made on behalf of a viewer.
type FetchRecord struct {
	ID        int64     `json:"id"`
	Page      int       `json:"page"`
	Status    int       `json:"status"`
	RowCount  int       `json:"row_count"`
	LatencyMs int64     `json:"latency_ms"`
	FetchedAt time.Time `json:"fetched_at"`
}
