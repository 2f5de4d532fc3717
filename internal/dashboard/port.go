package dashboard

import (
	"context"

	"oilfield-dashboard-api/internal/binding"
)

type DashboardServiceAPI interface {
	Title() string
	SetTitle(title string)
	Panels() []Widget
	AvailableWidgets() []WidgetTypeInfo

	AddWidget(widgetType string) (Widget, error)
	RemoveWidget(widgetID string) error
	ApplyConfig(ctx context.Context, cfg binding.WidgetDataConfig) error
	RefreshAll(ctx context.Context) error

	WidgetData(widgetID, widgetType string) WidgetPayload
	GridColumns(widgetID string) []GridColumn

	SaveDashboard(title string) (SavedDashboard, error)
	ListSaved() ([]SavedDashboard, error)
	LoadDashboard(ctx context.Context, dashboardID string) error
	DeleteDashboard(dashboardID string) error

	Reset()
	Export() ([]byte, error)
	Import(ctx context.Context, data []byte) error
}
