package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"oilfield-dashboard-api/internal/binding"
	"oilfield-dashboard-api/internal/catalog"
	"oilfield-dashboard-api/internal/datacache"
	"oilfield-dashboard-api/internal/schema"
	"oilfield-dashboard-api/internal/storage"
)

var testDBSeq uint64

func newTestService(t *testing.T) *DashboardService {
	t.Helper()

	id := atomic.AddUint64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:dashboard_test_%d?mode=memory&cache=shared", id)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&storage.DurableRecord{}); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })

	records := &storage.RecordStore{DB: db}
	store := binding.NewConfigStore(records)
	resolver := &binding.Resolver{
		Catalog:  catalog.NewCatalogService(0),
		Registry: schema.NewRegistry(),
	}

	return NewDashboardService(store, resolver, datacache.NewCache(), records)
}

func gaugeConfig(widgetID string) binding.WidgetDataConfig {
	return binding.WidgetDataConfig{
		WidgetID:       widgetID,
		DataSourceID:   "wells_table",
		DataSourceName: "Wells Performance Data",
		Mappings: []binding.ColumnMapping{
			{WidgetField: "value", SourceColumn: "efficiency", DisplayName: "Gauge Value"},
		},
	}
}

func TestDashboardService_DefaultLayout(t *testing.T) {
	ds := newTestService(t)

	if ds.Title() != "My Custom Dashboard" {
		t.Fatalf("title=%q", ds.Title())
	}

	panels := ds.Panels()
	if len(panels) != 4 {
		t.Fatalf("got %d panels, want 4", len(panels))
	}
	if panels[0].ID != "widget_1" || panels[0].Type != "lineChart" {
		t.Fatalf("first panel=%+v", panels[0])
	}
	if panels[3].Type != "grid" || panels[3].SizeX != 12 {
		t.Fatalf("fourth panel=%+v", panels[3])
	}
}

func TestDashboardService_AddWidget(t *testing.T) {
	ds := newTestService(t)

	w, err := ds.AddWidget("gauge")
	if err != nil {
		t.Fatalf("add widget: %v", err)
	}

	if !strings.HasPrefix(w.ID, "widget_") {
		t.Fatalf("id=%q", w.ID)
	}
	if w.SizeX != 3 || w.SizeY != 3 {
		t.Fatalf("size=%dx%d want 3x3", w.SizeX, w.SizeY)
	}
	// default panels end at row 3 + sizeY 4
	if w.Row != 7 {
		t.Fatalf("row=%d want 7", w.Row)
	}
	if len(ds.Panels()) != 5 {
		t.Fatalf("panel count=%d want 5", len(ds.Panels()))
	}

	if _, err := ds.AddWidget("hologram"); err == nil {
		t.Fatal("expected error for unknown widget type")
	}
}

func TestDashboardService_ApplyConfigResolvesIntoCache(t *testing.T) {
	ds := newTestService(t)

	if err := ds.ApplyConfig(context.Background(), gaugeConfig("widget_2")); err != nil {
		t.Fatalf("apply config: %v", err)
	}

	payload := ds.WidgetData("widget_2", "gauge")
	if !payload.Configured {
		t.Fatal("expected configured payload")
	}
	rows, ok := payload.Data.([]catalog.Row)
	if !ok {
		t.Fatalf("payload data type %T", payload.Data)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0]["value"] != 92 || rows[1]["value"] != 88 || rows[2]["value"] != 75 {
		t.Fatalf("rows=%v", rows)
	}

	// the panel now carries its config
	for _, p := range ds.Panels() {
		if p.ID == "widget_2" {
			if p.DataConfig == nil || p.DataConfig.DataSourceID != "wells_table" {
				t.Fatalf("panel config=%+v", p.DataConfig)
			}
			return
		}
	}
	t.Fatal("widget_2 missing from panels")
}

func TestDashboardService_ApplyConfigRejectsIncomplete(t *testing.T) {
	ds := newTestService(t)

	cfg := gaugeConfig("widget_2")
	cfg.Mappings[0].SourceColumn = ""

	err := ds.ApplyConfig(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if ds.Cache.Has("widget_2") {
		t.Fatal("cache populated despite rejected config")
	}
	if _, ok := ds.Store.Get("widget_2"); ok {
		t.Fatal("store holds rejected config")
	}
}

func TestDashboardService_WidgetDataFallbacks(t *testing.T) {
	ds := newTestService(t)

	cases := []struct {
		widgetType string
		check      func(t *testing.T, data any)
	}{
		{"lineChart", func(t *testing.T, data any) {
			rows := data.([]catalog.Row)
			if len(rows) != 6 || rows[0]["month"] != "Jan" {
				t.Fatalf("data=%v", rows)
			}
		}},
		{"grid", func(t *testing.T, data any) {
			rows := data.([]catalog.Row)
			if len(rows) != 3 || rows[0]["wellId"] != "WELL-001" {
				t.Fatalf("data=%v", rows)
			}
		}},
		{"pieChart", func(t *testing.T, data any) {
			rows := data.([]catalog.Row)
			if len(rows) != 3 || rows[0]["category"] != "Oil" {
				t.Fatalf("data=%v", rows)
			}
		}},
		{"gauge", func(t *testing.T, data any) {
			if data != sampleGaugeValue {
				t.Fatalf("data=%v", data)
			}
		}},
		{"kpi", func(t *testing.T, data any) {
			kpi := data.(map[string]any)
			if kpi["value"] != sampleKPIValue || kpi["change"] != sampleKPIChange {
				t.Fatalf("data=%v", kpi)
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.widgetType, func(t *testing.T) {
			payload := ds.WidgetData("unconfigured_widget", tc.widgetType)
			if payload.Configured {
				t.Fatal("fallback payload marked configured")
			}
			tc.check(t, payload.Data)
		})
	}
}

func TestDashboardService_RemoveWidget(t *testing.T) {
	// Scenario D: removing a configured widget clears config, cache and panel.
	ds := newTestService(t)

	if err := ds.ApplyConfig(context.Background(), gaugeConfig("widget_2")); err != nil {
		t.Fatalf("apply config: %v", err)
	}

	if err := ds.RemoveWidget("widget_2"); err != nil {
		t.Fatalf("remove widget: %v", err)
	}

	if _, ok := ds.Store.Get("widget_2"); ok {
		t.Fatal("config survived removal")
	}
	if ds.Cache.Has("widget_2") {
		t.Fatal("cached data survived removal")
	}
	for _, p := range ds.Panels() {
		if p.ID == "widget_2" {
			t.Fatal("widget_2 still in panel list")
		}
	}

	// removing again is a no-op
	if err := ds.RemoveWidget("widget_2"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestDashboardService_ResetKeepsConfigStore(t *testing.T) {
	ds := newTestService(t)

	if err := ds.ApplyConfig(context.Background(), gaugeConfig("widget_2")); err != nil {
		t.Fatalf("apply config: %v", err)
	}

	ds.Reset()

	if len(ds.Panels()) != 0 {
		t.Fatalf("panels=%v after reset", ds.Panels())
	}
	if ds.Cache.Has("widget_2") {
		t.Fatal("cache survived reset")
	}
	// saved configurations are addressed by widget id, not dashboard id, and
	// must outlive the layout
	if _, ok := ds.Store.Get("widget_2"); !ok {
		t.Fatal("config store entry lost on reset")
	}
}

func TestDashboardService_GridColumns(t *testing.T) {
	ds := newTestService(t)

	t.Run("no cached data", func(t *testing.T) {
		if cols := ds.GridColumns("widget_4"); len(cols) != 0 {
			t.Fatalf("cols=%v", cols)
		}
	})

	t.Run("derived from first cached row", func(t *testing.T) {
		ds.Cache.Put("widget_4", []catalog.Row{
			{"wellId": "WELL-001", "oilRate": 850},
		})

		cols := ds.GridColumns("widget_4")
		if len(cols) != 2 {
			t.Fatalf("cols=%v", cols)
		}
		// name-sorted: oilRate before wellId
		if cols[0].Field != "oilRate" || cols[0].HeaderText != "Oil Rate" {
			t.Fatalf("first col=%+v", cols[0])
		}
		if cols[1].Field != "wellId" || cols[1].HeaderText != "Well Id" {
			t.Fatalf("second col=%+v", cols[1])
		}
		if cols[0].Width != "130" {
			t.Fatalf("width=%q", cols[0].Width)
		}
	})
}

func TestDashboardService_SaveLoadDeleteDashboards(t *testing.T) {
	ds := newTestService(t)

	if err := ds.ApplyConfig(context.Background(), gaugeConfig("widget_2")); err != nil {
		t.Fatalf("apply config: %v", err)
	}

	dash, err := ds.SaveDashboard("Field Overview")
	if err != nil {
		t.Fatalf("save dashboard: %v", err)
	}
	if dash.ID == "" || dash.Title != "Field Overview" || len(dash.Panels) != 4 {
		t.Fatalf("dash=%+v", dash)
	}

	saved, err := ds.ListSaved()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved=%v", saved)
	}

	// mangle the live layout, then load the snapshot back
	ds.Reset()
	if err := ds.LoadDashboard(context.Background(), dash.ID); err != nil {
		t.Fatalf("load dashboard: %v", err)
	}
	if ds.Title() != "Field Overview" {
		t.Fatalf("title=%q", ds.Title())
	}
	if len(ds.Panels()) != 4 {
		t.Fatalf("panels=%d want 4", len(ds.Panels()))
	}
	// load re-resolves configured widgets into the cache
	if !ds.Cache.Has("widget_2") {
		t.Fatal("widget_2 not re-resolved on load")
	}

	if err := ds.LoadDashboard(context.Background(), "missing-id"); err != ErrDashboardNotFound {
		t.Fatalf("err=%v want ErrDashboardNotFound", err)
	}

	if err := ds.DeleteDashboard(dash.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	saved, err = ds.ListSaved()
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("saved=%v after delete", saved)
	}
}

func TestDashboardService_ListSavedToleratesCorruptRecord(t *testing.T) {
	ds := newTestService(t)

	if err := ds.Records.Write("savedDashboards", []byte(`###`)); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	saved, err := ds.ListSaved()
	if err != nil {
		t.Fatalf("list must not fail on corrupt record: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("saved=%v", saved)
	}
}

func TestDashboardService_ExportImportRoundTrip(t *testing.T) {
	ds := newTestService(t)

	if err := ds.ApplyConfig(context.Background(), gaugeConfig("widget_2")); err != nil {
		t.Fatalf("apply config: %v", err)
	}

	doc, err := ds.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	// pretty-printed
	if !strings.Contains(string(doc), "\n  \"title\"") {
		t.Fatalf("export not indented:\n%s", doc)
	}

	var parsed ExportDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if parsed.Title != "My Custom Dashboard" || len(parsed.Panels) != 4 {
		t.Fatalf("parsed=%+v", parsed)
	}

	other := newTestService(t)
	if err := other.Import(context.Background(), doc); err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(other.Panels()) != 4 {
		t.Fatalf("panels=%d want 4", len(other.Panels()))
	}
}

func TestDashboardService_ImportRejectsBadDocument(t *testing.T) {
	// Scenario C: a failed import leaves title and panels untouched.
	ds := newTestService(t)
	ds.SetTitle("Before Import")

	cases := map[string]string{
		"not json":       `this is not a dashboard`,
		"missing title":  `{"panels": []}`,
		"missing panels": `{"title": "x"}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			err := ds.Import(context.Background(), []byte(raw))
			if err != ErrInvalidImport {
				t.Fatalf("err=%v want ErrInvalidImport", err)
			}
			if ds.Title() != "Before Import" {
				t.Fatalf("title=%q changed by failed import", ds.Title())
			}
			if len(ds.Panels()) != 4 {
				t.Fatalf("panels=%d changed by failed import", len(ds.Panels()))
			}
		})
	}
}

func TestDashboardService_RefreshAllReattachesSavedConfigs(t *testing.T) {
	ds := newTestService(t)

	// config saved out-of-band (e.g. a previous session)
	if err := ds.Store.Save(gaugeConfig("widget_2")); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := ds.RefreshAll(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if !ds.Cache.Has("widget_2") {
		t.Fatal("widget_2 not resolved")
	}
	// widgets without configs keep rendering fallbacks
	if ds.Cache.Has("widget_1") {
		t.Fatal("unconfigured widget_1 should not be cached")
	}
}

func TestDashboardService_WidgetDataVersionAdvancesOnReapply(t *testing.T) {
	ds := newTestService(t)

	if err := ds.ApplyConfig(context.Background(), gaugeConfig("widget_2")); err != nil {
		t.Fatalf("apply: %v", err)
	}
	first := ds.WidgetData("widget_2", "gauge")

	cfg := gaugeConfig("widget_2")
	cfg.Mappings[0].SourceColumn = "pressure"
	if err := ds.ApplyConfig(context.Background(), cfg); err != nil {
		t.Fatalf("re-apply: %v", err)
	}
	second := ds.WidgetData("widget_2", "gauge")

	if second.Version <= first.Version {
		t.Fatalf("version did not advance: %d -> %d", first.Version, second.Version)
	}
	rows := second.Data.([]catalog.Row)
	if rows[0]["value"] != 2450 {
		t.Fatalf("rows=%v", rows)
	}
}
