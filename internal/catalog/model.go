package catalog

// Row is one record of a tabular data source. Values keep whatever type the
// source declared for the column (string, float64, bool, date string).
type Row map[string]any

type SourceKind string

const (
	KindTable SourceKind = "table"
	KindAPI   SourceKind = "api"
	KindFile  SourceKind = "file"
)

// DataSource is an immutable catalog entry; the catalog is fixed at load time
// and never mutated at runtime.
type DataSource struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Kind SourceKind `json:"type"`
}

type ColumnType string

const (
	ColString  ColumnType = "string"
	ColNumber  ColumnType = "number"
	ColDate    ColumnType = "date"
	ColBoolean ColumnType = "boolean"
)

type DataColumn struct {
	Name   string     `json:"name"`
	Type   ColumnType `json:"type"`
	Sample any        `json:"sample,omitempty"`
}
