package catalog

import (
	"context"
	"time"
)

// CatalogService serves the mock warehouse. Every operation waits out a fixed
// simulated network latency before answering, and honours context
// cancellation during the wait so an abandoned dialog fetch stops cleanly.
// Unknown source ids answer with empty results, never errors: the catalog
// contract is total. A real warehouse client would report transport failures
// through the same error returns.
type CatalogService struct {
	Latency time.Duration
}

func NewCatalogService(latency time.Duration) *CatalogService {
	return &CatalogService{Latency: latency}
}

func (cs *CatalogService) ListSources(ctx context.Context) ([]DataSource, error) {
	if err := cs.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]DataSource, len(mockSources))
	copy(out, mockSources)
	return out, nil
}

func (cs *CatalogService) Columns(ctx context.Context, sourceID string) ([]DataColumn, error) {
	if err := cs.wait(ctx); err != nil {
		return nil, err
	}

	cols := mockColumns[sourceID]
	out := make([]DataColumn, len(cols))
	copy(out, cols)
	return out, nil
}

func (cs *CatalogService) Preview(ctx context.Context, sourceID string, limit int) ([]Row, error) {
	if err := cs.wait(ctx); err != nil {
		return nil, err
	}

	rows := mockRows[sourceID]
	if limit < 0 {
		limit = 0
	}
	if limit > len(rows) {
		limit = len(rows)
	}
	return copyRows(rows[:limit]), nil
}

func (cs *CatalogService) Rows(ctx context.Context, sourceID string) ([]Row, error) {
	if err := cs.wait(ctx); err != nil {
		return nil, err
	}

	return copyRows(mockRows[sourceID]), nil
}

func (cs *CatalogService) wait(ctx context.Context) error {
	if cs.Latency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(cs.Latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func copyRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		out[i] = nr
	}
	return out
}
