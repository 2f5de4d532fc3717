package schema

// Registry declares, per widget type, the semantic fields a widget needs
// bound before it can render configured data, plus the human labels shown in
// the mapping dialog. Pure lookups, no side effects. Widget types absent from
// the table (and the grid, which accepts arbitrary columns) require nothing;
// an unregistered type is a configuration gap, never a crash.
type Registry struct {
	required map[string][]string
	labels   map[string]map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		required: map[string][]string{
			"lineChart": {"xName", "yName"},
			"barChart":  {"xName", "yName"},
			"pieChart":  {"xName", "yName"},
			"gauge":     {"value"},
			"kpi":       {"value", "change"},
			"grid":      {},
			"sparkline": {"xName", "yName"},
			"map":       {"latitude", "longitude", "label"},
		},
		labels: map[string]map[string]string{
			"lineChart": {"xName": "X-Axis (Category)", "yName": "Y-Axis (Value)"},
			"barChart":  {"xName": "X-Axis (Category)", "yName": "Y-Axis (Value)"},
			"pieChart":  {"xName": "Category", "yName": "Value"},
			"gauge":     {"value": "Gauge Value"},
			"kpi":       {"value": "KPI Value", "change": "Change %"},
			"sparkline": {"xName": "X-Axis", "yName": "Y-Axis"},
			"map":       {"latitude": "Latitude", "longitude": "Longitude", "label": "Label"},
		},
	}
}

// RequiredFields returns the ordered semantic fields for a widget type, empty
// for unknown types.
func (r *Registry) RequiredFields(widgetType string) []string {
	fields := r.required[widgetType]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// FieldLabel returns the display label for a field, falling back to the raw
// field name when none is registered.
func (r *Registry) FieldLabel(widgetType, field string) string {
	if labels, ok := r.labels[widgetType]; ok {
		if label, ok := labels[field]; ok {
			return label
		}
	}
	return field
}

// KnownTypes reports every widget type the registry carries an entry for.
func (r *Registry) KnownTypes() []string {
	types := make([]string, 0, len(r.required))
	for t := range r.required {
		types = append(types, t)
	}
	return types
}
