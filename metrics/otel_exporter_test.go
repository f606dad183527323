package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCollector struct {
	counts    map[string]int64
	available int64
	statuses  map[string]int64
}

func (c staticCollector) Collect(ctx context.Context) (Metrics, error) {
	return Metrics{RecordCounts: c.counts, AvailableInstances: c.available, InstanceStatusCounts: c.statuses}, nil
}

func (c staticCollector) GetRecordCounts(ctx context.Context) (map[string]int64, int64, error) {
	return c.counts, c.available, nil
}

func (c staticCollector) GetInstanceStatusCounts(ctx context.Context) (map[string]int64, error) {
	return c.statuses, nil
}

func TestOTelExporter_ServeHTTP(t *testing.T) {
	oe, err := NewOTelExporter(staticCollector{
		counts:    map[string]int64{KindBook: 3, KindGenre: 5},
		available: 4,
		statuses:  map[string]int64{"Loaned": 2},
	})
	require.NoError(t, err)
	defer oe.Shutdown(context.Background())

	w := httptest.NewRecorder()
	oe.ServeHTTP().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Regexp(t, `library_catalog_records\{[^}]*record_kind="book"[^}]*\} 3`, body)
	assert.Regexp(t, `library_catalog_records\{[^}]*record_kind="genre"[^}]*\} 5`, body)
	assert.Regexp(t, `library_catalog_instances_available(\{[^}]*\})? 4`, body)
	assert.Regexp(t, `library_catalog_instances_status\{[^}]*instance_status="Loaned"[^}]*\} 2`, body)
}
