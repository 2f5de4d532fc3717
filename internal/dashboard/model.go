package dashboard

import (
	"time"

	"oilfield-dashboard-api/internal/binding"
	"oilfield-dashboard-api/internal/catalog"
)

// Widget is one panel on the dashboard grid. Its id is the join key into the
// configuration store and the data cache. JSON names match the dashboard
// client's export format.
type Widget struct {
	ID         string                    `json:"id"`
	SizeX      int                       `json:"sizeX"`
	SizeY      int                       `json:"sizeY"`
	Row        int                       `json:"row"`
	Col        int                       `json:"col"`
	Type       string                    `json:"type"`
	Title      string                    `json:"title"`
	DataConfig *binding.WidgetDataConfig `json:"dataConfig,omitempty"`
	IsLoading  bool                      `json:"isLoading,omitempty"`
}

type SavedDashboard struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Panels    []Widget  `json:"panels"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExportDocument is the export/import file shape.
type ExportDocument struct {
	Title  string   `json:"title"`
	Panels []Widget `json:"panels"`
}

// WidgetTypeInfo describes a palette entry the client can instantiate.
type WidgetTypeInfo struct {
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GridColumn struct {
	Field      string `json:"field"`
	HeaderText string `json:"headerText"`
	Width      string `json:"width"`
}

// WidgetPayload is what the rendering layer receives for one widget: either
// the cached resolved dataset (with its version stamp) or type-keyed fallback
// sample data for unconfigured widgets.
type WidgetPayload struct {
	Data       any    `json:"data"`
	Version    uint64 `json:"version"`
	Configured bool   `json:"configured"`
}

var availableWidgets = []WidgetTypeInfo{
	{Type: "lineChart", Icon: "e-line-chart", Title: "Line Chart", Description: "Trend visualization"},
	{Type: "barChart", Icon: "e-bar-chart", Title: "Bar Chart", Description: "Comparison chart"},
	{Type: "pieChart", Icon: "e-pie-chart", Title: "Pie Chart", Description: "Distribution view"},
	{Type: "gauge", Icon: "e-gauge", Title: "Gauge", Description: "Single metric display"},
	{Type: "kpi", Icon: "e-dashboard", Title: "KPI Card", Description: "Key performance indicator"},
	{Type: "grid", Icon: "e-table", Title: "Data Grid", Description: "Tabular data view"},
	{Type: "map", Icon: "e-location", Title: "Map View", Description: "Geographic visualization"},
	{Type: "sparkline", Icon: "e-sparkline", Title: "Sparkline", Description: "Mini trend chart"},
}

type widgetSize struct{ X, Y int }

var defaultSizes = map[string]widgetSize{
	"lineChart": {6, 3},
	"barChart":  {6, 3},
	"pieChart":  {4, 3},
	"gauge":     {3, 3},
	"kpi":       {3, 2},
	"grid":      {12, 4},
	"map":       {6, 4},
	"sparkline": {3, 2},
}

var fallbackSize = widgetSize{X: 4, Y: 3}

func defaultPanels() []Widget {
	return []Widget{
		{ID: "widget_1", SizeX: 6, SizeY: 3, Row: 0, Col: 0, Type: "lineChart", Title: "Production Trends"},
		{ID: "widget_2", SizeX: 3, SizeY: 3, Row: 0, Col: 6, Type: "gauge", Title: "Pressure Monitor"},
		{ID: "widget_3", SizeX: 3, SizeY: 3, Row: 0, Col: 9, Type: "kpi", Title: "Total Production"},
		{ID: "widget_4", SizeX: 12, SizeY: 4, Row: 3, Col: 0, Type: "grid", Title: "Well Performance"},
	}
}

// Sample data shown before a widget has a configuration, keyed by widget type.
var (
	sampleProduction = []catalog.Row{
		{"month": "Jan", "value": 45000},
		{"month": "Feb", "value": 48000},
		{"month": "Mar", "value": 52000},
		{"month": "Apr", "value": 49000},
		{"month": "May", "value": 55000},
		{"month": "Jun", "value": 58000},
	}
	sampleWells = []catalog.Row{
		{"wellId": "WELL-001", "status": "Active", "production": 850, "efficiency": 92},
		{"wellId": "WELL-002", "status": "Active", "production": 920, "efficiency": 88},
		{"wellId": "WELL-003", "status": "Warning", "production": 650, "efficiency": 75},
	}
	samplePie = []catalog.Row{
		{"category": "Oil", "value": 58},
		{"category": "Gas", "value": 30},
		{"category": "Water", "value": 12},
	}
)

const (
	sampleGaugeValue = 2350
	sampleKPIValue   = 312000
	sampleKPIChange  = 8.5
)
