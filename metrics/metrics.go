package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the catalog.
type Metrics struct {
	// RecordCounts maps record kind (book, bookinstance, author, genre) to its count
	RecordCounts map[string]int64 `json:"record_counts"`

	// AvailableInstances is the number of copies that can be borrowed
	AvailableInstances int64 `json:"available_instances"`

	// InstanceStatusCounts maps instance status to the number of copies in it
	InstanceStatusCounts map[string]int64 `json:"instance_status_counts"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the catalog.
type Collector interface {
	// Collect gathers current metrics from the catalog
	Collect(ctx context.Context) (Metrics, error)

	// GetRecordCounts returns the number of records per kind together with the available copies
	GetRecordCounts(ctx context.Context) (map[string]int64, int64, error)

	// GetInstanceStatusCounts returns the number of copies per status
	GetInstanceStatusCounts(ctx context.Context) (map[string]int64, error)
}
