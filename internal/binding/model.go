package binding

// ColumnMapping assigns one widget-required semantic field to one column of
// the chosen data source. SourceColumn stays empty until the user picks a
// column; that is the unconfigured state.
type ColumnMapping struct {
	WidgetField  string `json:"widgetField"`
	SourceColumn string `json:"sourceColumn"`
	DisplayName  string `json:"displayName,omitempty"`
}

type FilterOperator string

const (
	OpEquals      FilterOperator = "equals"
	OpContains    FilterOperator = "contains"
	OpGreaterThan FilterOperator = "greaterThan"
	OpLessThan    FilterOperator = "lessThan"
)

// DataFilter and DataAggregation are carried on the configuration for forward
// compatibility with a real query backend. No transformation logic interprets
// them yet.
type DataFilter struct {
	Column   string         `json:"column"`
	Operator FilterOperator `json:"operator"`
	Value    any            `json:"value"`
}

type AggregateFunc string

const (
	AggSum   AggregateFunc = "sum"
	AggAvg   AggregateFunc = "avg"
	AggCount AggregateFunc = "count"
	AggMin   AggregateFunc = "min"
	AggMax   AggregateFunc = "max"
)

type DataAggregation struct {
	Column   string        `json:"column"`
	Function AggregateFunc `json:"function"`
}

// WidgetDataConfig is the saved binding of one widget instance to a data
// source. JSON field names match the dashboard client's persisted format so
// exported documents round-trip unchanged.
type WidgetDataConfig struct {
	WidgetID       string            `json:"widgetId"`
	DataSourceID   string            `json:"dataSourceId"`
	DataSourceName string            `json:"dataSourceName"`
	Mappings       []ColumnMapping   `json:"mappings"`
	Filters        []DataFilter      `json:"filters,omitempty"`
	Aggregations   []DataAggregation `json:"aggregations,omitempty"`
}

// Complete reports whether every mapping has a source column assigned. Only
// complete configurations may be persisted or resolved.
func (c WidgetDataConfig) Complete() bool {
	for _, m := range c.Mappings {
		if m.SourceColumn == "" {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers can never alias the store's slices.
func (c WidgetDataConfig) Clone() WidgetDataConfig {
	out := c
	if c.Mappings != nil {
		out.Mappings = make([]ColumnMapping, len(c.Mappings))
		copy(out.Mappings, c.Mappings)
	}
	if c.Filters != nil {
		out.Filters = make([]DataFilter, len(c.Filters))
		copy(out.Filters, c.Filters)
	}
	if c.Aggregations != nil {
		out.Aggregations = make([]DataAggregation, len(c.Aggregations))
		copy(out.Aggregations, c.Aggregations)
	}
	return out
}
