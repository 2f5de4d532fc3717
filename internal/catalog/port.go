package catalog

import "context"

type CatalogServiceAPI interface {
	ListSources(ctx context.Context) ([]DataSource, error)
	Columns(ctx context.Context, sourceID string) ([]DataColumn, error)
	Preview(ctx context.Context, sourceID string, limit int) ([]Row, error)
	Rows(ctx context.Context, sourceID string) ([]Row, error)
}
