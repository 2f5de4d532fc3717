package binding

import (
	"context"

	"oilfield-dashboard-api/internal/catalog"
	"oilfield-dashboard-api/internal/schema"
)

// Resolver projects data-source rows through a widget configuration's column
// mappings into widget-ready records. Invocations are independent; nothing
// here is shared mutable state.
type Resolver struct {
	Catalog  catalog.CatalogServiceAPI
	Registry *schema.Registry
}

// InitMappings builds one empty mapping per required field of the widget
// type, labeled from the registry. This is the starting state of the
// configuration dialog.
func (r *Resolver) InitMappings(widgetType string) []ColumnMapping {
	fields := r.Registry.RequiredFields(widgetType)
	mappings := make([]ColumnMapping, 0, len(fields))
	for _, field := range fields {
		mappings = append(mappings, ColumnMapping{
			WidgetField: field,
			DisplayName: r.Registry.FieldLabel(widgetType, field),
		})
	}
	return mappings
}

// Resolve fetches the configured source and rebuilds every row keyed by
// widget field. A source row lacking a mapped column simply leaves that field
// absent; no row is ever dropped or duplicated. An unknown data source
// resolves to an empty result, not an error; only transport failures from
// the catalog surface as errors.
func (r *Resolver) Resolve(ctx context.Context, cfg WidgetDataConfig) ([]catalog.Row, error) {
	rows, err := r.Catalog.Rows(ctx, cfg.DataSourceID)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Row, 0, len(rows))
	for _, row := range rows {
		rec := make(catalog.Row, len(cfg.Mappings))
		for _, m := range cfg.Mappings {
			if m.SourceColumn == "" {
				continue
			}
			if v, ok := row[m.SourceColumn]; ok {
				rec[m.WidgetField] = v
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
