package binding

import (
	"context"

	"oilfield-dashboard-api/internal/catalog"
)

type ConfigStoreAPI interface {
	Save(cfg WidgetDataConfig) error
	Get(widgetID string) (WidgetDataConfig, bool)
	Delete(widgetID string) error
	All() map[string]WidgetDataConfig
}

type ResolverAPI interface {
	InitMappings(widgetType string) []ColumnMapping
	Resolve(ctx context.Context, cfg WidgetDataConfig) ([]catalog.Row, error)
}
