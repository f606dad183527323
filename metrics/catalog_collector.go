package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/local-library/catalog"
)

// Record kinds reported by GetRecordCounts
const (
	KindBook         = "book"
	KindBookInstance = "bookinstance"
	KindAuthor       = "author"
	KindGenre        = "genre"
)

// SummaryReader is the part of the catalog service the collector needs
type SummaryReader interface {
	Summary(ctx context.Context) (catalog.Summary, error)
}

// CatalogCollector implements the Collector interface on top of the catalog repositories
type CatalogCollector struct {
	summary   SummaryReader
	instances catalog.InstanceRepository
}

// NewCatalogCollector creates a new catalog metrics collector
func NewCatalogCollector(summary SummaryReader, instances catalog.InstanceRepository) *CatalogCollector {
	return &CatalogCollector{
		summary:   summary,
		instances: instances,
	}
}

// Collect gathers all metrics from the catalog
func (c *CatalogCollector) Collect(ctx context.Context) (Metrics, error) {
	counts, available, err := c.GetRecordCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting record counts: %w", err)
	}

	statusCounts, err := c.GetInstanceStatusCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting instance status counts: %w", err)
	}

	return Metrics{
		RecordCounts:         counts,
		AvailableInstances:   available,
		InstanceStatusCounts: statusCounts,
		Timestamp:            time.Now(),
	}, nil
}

// GetRecordCounts reuses the home page counts
func (c *CatalogCollector) GetRecordCounts(ctx context.Context) (map[string]int64, int64, error) {
	sum, err := c.summary.Summary(ctx)
	if err != nil {
		return nil, 0, err
	}
	return map[string]int64{
		KindBook:         sum.BookCount,
		KindBookInstance: sum.BookInstanceCount,
		KindAuthor:       sum.AuthorCount,
		KindGenre:        sum.GenreCount,
	}, sum.BookInstanceAvailableCount, nil
}

// GetInstanceStatusCounts returns counts of copies grouped by status
func (c *CatalogCollector) GetInstanceStatusCounts(ctx context.Context) (map[string]int64, error) {
	statuses := []catalog.InstanceStatus{catalog.Maintenance, catalog.Available, catalog.Loaned, catalog.Reserved}
	statusCounts := make(map[string]int64, len(statuses))
	for _, status := range statuses {
		n, err := c.instances.CountByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("counting %s copies: %w", status, err)
		}
		statusCounts[status.String()] = n
	}
	return statusCounts, nil
}
