package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"oilfield-dashboard-api/internal/binding"
	"oilfield-dashboard-api/internal/catalog"
	"oilfield-dashboard-api/internal/datacache"
	"oilfield-dashboard-api/internal/storage"
)

// savedRecordKey names the durable record holding the saved-dashboard list.
const savedRecordKey = "savedDashboards"

const defaultTitle = "My Custom Dashboard"

var ErrDashboardNotFound = errors.New("dashboard not found")
var ErrInvalidImport = errors.New("invalid dashboard file")

// DashboardService composes widgets on the active dashboard and drives the
// binding pipeline: it re-resolves on widget add, configuration save, load and
// import, evicts cache and store entries on removal, and leaves the
// configuration store alone on reset. Configurations are keyed by widget id
// only, not dashboard id, so a saved configuration can outlive any one layout.
type DashboardService struct {
	Store    binding.ConfigStoreAPI
	Resolver binding.ResolverAPI
	Cache    *datacache.Cache
	Records  *storage.RecordStore

	mu       sync.Mutex
	title    string
	panels   []Widget
	inflight map[string]context.CancelFunc
}

func NewDashboardService(store binding.ConfigStoreAPI, resolver binding.ResolverAPI, cache *datacache.Cache, records *storage.RecordStore) *DashboardService {
	return &DashboardService{
		Store:    store,
		Resolver: resolver,
		Cache:    cache,
		Records:  records,
		title:    defaultTitle,
		panels:   defaultPanels(),
		inflight: make(map[string]context.CancelFunc),
	}
}

func (ds *DashboardService) Title() string {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.title
}

func (ds *DashboardService) SetTitle(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.title = title
}

// Panels returns a snapshot of the active layout.
func (ds *DashboardService) Panels() []Widget {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return copyPanels(ds.panels)
}

func (ds *DashboardService) AvailableWidgets() []WidgetTypeInfo {
	out := make([]WidgetTypeInfo, len(availableWidgets))
	copy(out, availableWidgets)
	return out
}

// AddWidget appends a new unconfigured widget of the given palette type and
// returns it. The widget renders fallback sample data until a configuration
// is applied.
func (ds *DashboardService) AddWidget(widgetType string) (Widget, error) {
	var info *WidgetTypeInfo
	for i := range availableWidgets {
		if availableWidgets[i].Type == widgetType {
			info = &availableWidgets[i]
			break
		}
	}
	if info == nil {
		return Widget{}, fmt.Errorf("unknown widget type %q", widgetType)
	}

	size, ok := defaultSizes[widgetType]
	if !ok {
		size = fallbackSize
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()

	w := Widget{
		ID:    "widget_" + uuid.NewString(),
		SizeX: size.X,
		SizeY: size.Y,
		Row:   nextAvailableRow(ds.panels),
		Col:   0,
		Type:  widgetType,
		Title: info.Title,
	}
	ds.panels = append(ds.panels, w)
	return w, nil
}

// RemoveWidget drops the panel, its saved configuration and its cached data.
// Removing an absent widget only clears whatever store/cache state remains
// under that id.
func (ds *DashboardService) RemoveWidget(widgetID string) error {
	if err := ds.Store.Delete(widgetID); err != nil {
		return err
	}
	ds.Cache.Evict(widgetID)

	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.cancelInflightLocked(widgetID)

	kept := ds.panels[:0]
	for _, p := range ds.panels {
		if p.ID != widgetID {
			kept = append(kept, p)
		}
	}
	ds.panels = kept
	return nil
}

// ApplyConfig persists the configuration and re-resolves the widget's data
// into the cache. Validation failures surface before any state changes.
func (ds *DashboardService) ApplyConfig(ctx context.Context, cfg binding.WidgetDataConfig) error {
	if err := ds.Store.Save(cfg); err != nil {
		return err
	}

	ds.mu.Lock()
	for i := range ds.panels {
		if ds.panels[i].ID == cfg.WidgetID {
			c := cfg.Clone()
			ds.panels[i].DataConfig = &c
			break
		}
	}
	ds.mu.Unlock()

	return ds.fetchWidget(ctx, cfg.WidgetID, cfg)
}

// RefreshAll re-resolves every panel that has a saved configuration. Used on
// startup, dashboard load and import. Widgets whose resolution fails keep
// whatever the cache already holds; the first error is reported after all
// panels were attempted.
func (ds *DashboardService) RefreshAll(ctx context.Context) error {
	ds.mu.Lock()
	ids := make([]string, 0, len(ds.panels))
	for i := range ds.panels {
		ids = append(ids, ds.panels[i].ID)
	}
	ds.mu.Unlock()

	var firstErr error
	for _, id := range ids {
		cfg, ok := ds.Store.Get(id)
		if !ok {
			continue
		}

		ds.mu.Lock()
		for i := range ds.panels {
			if ds.panels[i].ID == id {
				c := cfg.Clone()
				ds.panels[i].DataConfig = &c
				break
			}
		}
		ds.mu.Unlock()

		if err := ds.fetchWidget(ctx, id, cfg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// fetchWidget resolves one widget's data and applies it to the cache unless a
// newer fetch for the same widget id superseded this one in the meantime.
func (ds *DashboardService) fetchWidget(ctx context.Context, widgetID string, cfg binding.WidgetDataConfig) error {
	ds.mu.Lock()
	ds.cancelInflightLocked(widgetID)
	fctx, cancel := context.WithCancel(ctx)
	ds.inflight[widgetID] = cancel
	ds.setLoadingLocked(widgetID, true)
	ds.mu.Unlock()

	rows, err := ds.Resolver.Resolve(fctx, cfg)

	ds.mu.Lock()
	superseded := fctx.Err() != nil
	if ds.inflight[widgetID] != nil && !superseded {
		delete(ds.inflight, widgetID)
	}
	ds.setLoadingLocked(widgetID, false)
	ds.mu.Unlock()
	cancel()

	if err != nil {
		log.Printf("resolve widget %s: %v", widgetID, err)
		return err
	}
	if superseded {
		// A later fetch owns this widget now; discard harmlessly.
		return nil
	}

	ds.Cache.Put(widgetID, rows)
	return nil
}

// WidgetData hands the rendering layer the widget's dataset: cached resolved
// rows when present, otherwise sample data keyed by widget type so a freshly
// added widget still renders something representative.
func (ds *DashboardService) WidgetData(widgetID, widgetType string) WidgetPayload {
	if rows, version, ok := ds.Cache.Get(widgetID); ok {
		return WidgetPayload{Data: rows, Version: version, Configured: true}
	}

	switch widgetType {
	case "lineChart", "barChart", "sparkline":
		return WidgetPayload{Data: sampleProduction}
	case "pieChart":
		return WidgetPayload{Data: samplePie}
	case "grid":
		return WidgetPayload{Data: sampleWells}
	case "gauge":
		return WidgetPayload{Data: sampleGaugeValue}
	case "kpi":
		return WidgetPayload{Data: map[string]any{"value": sampleKPIValue, "change": sampleKPIChange}}
	default:
		return WidgetPayload{Data: []catalog.Row{}}
	}
}

// GridColumns derives column descriptors from the keys of the widget's first
// cached row, name-sorted for a stable order.
func (ds *DashboardService) GridColumns(widgetID string) []GridColumn {
	rows, _, ok := ds.Cache.Get(widgetID)
	if !ok || len(rows) == 0 {
		return []GridColumn{}
	}

	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cols := make([]GridColumn, 0, len(keys))
	for _, k := range keys {
		cols = append(cols, GridColumn{Field: k, HeaderText: titleCase(k), Width: "130"})
	}
	return cols
}

// SaveDashboard snapshots the active layout under the saved-dashboard list.
func (ds *DashboardService) SaveDashboard(title string) (SavedDashboard, error) {
	saved, err := ds.loadSaved()
	if err != nil {
		return SavedDashboard{}, err
	}

	ds.mu.Lock()
	if strings.TrimSpace(title) != "" {
		ds.title = strings.TrimSpace(title)
	}
	dash := SavedDashboard{
		ID:        uuid.NewString(),
		Title:     ds.title,
		Panels:    copyPanels(ds.panels),
		CreatedAt: time.Now().UTC(),
	}
	ds.mu.Unlock()

	saved = append(saved, dash)
	if err := ds.persistSaved(saved); err != nil {
		return SavedDashboard{}, err
	}
	return dash, nil
}

func (ds *DashboardService) ListSaved() ([]SavedDashboard, error) {
	return ds.loadSaved()
}

// LoadDashboard replaces the active layout with a saved one, clears the data
// cache, and re-resolves every configured widget.
func (ds *DashboardService) LoadDashboard(ctx context.Context, dashboardID string) error {
	saved, err := ds.loadSaved()
	if err != nil {
		return err
	}

	for _, d := range saved {
		if d.ID == dashboardID {
			ds.mu.Lock()
			ds.title = d.Title
			ds.panels = copyPanels(d.Panels)
			ds.cancelAllInflightLocked()
			ds.mu.Unlock()

			ds.Cache.Clear()
			return ds.RefreshAll(ctx)
		}
	}
	return ErrDashboardNotFound
}

func (ds *DashboardService) DeleteDashboard(dashboardID string) error {
	saved, err := ds.loadSaved()
	if err != nil {
		return err
	}

	kept := saved[:0]
	for _, d := range saved {
		if d.ID != dashboardID {
			kept = append(kept, d)
		}
	}
	return ds.persistSaved(kept)
}

// Reset clears the active layout and cache only. Saved configurations stay:
// they are keyed by widget id and may belong to widgets of other saved
// dashboards.
func (ds *DashboardService) Reset() {
	ds.mu.Lock()
	ds.panels = []Widget{}
	ds.cancelAllInflightLocked()
	ds.mu.Unlock()

	ds.Cache.Clear()
}

// Export renders the active dashboard as a pretty-printed JSON document.
func (ds *DashboardService) Export() ([]byte, error) {
	ds.mu.Lock()
	doc := ExportDocument{Title: ds.title, Panels: copyPanels(ds.panels)}
	ds.mu.Unlock()

	return json.MarshalIndent(doc, "", "  ")
}

// Import replaces the active dashboard from an exported document. A document
// that fails to parse or lacks the top-level shape is rejected with no state
// change at all.
func (ds *DashboardService) Import(ctx context.Context, data []byte) error {
	var doc struct {
		Title  *string   `json:"title"`
		Panels *[]Widget `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrInvalidImport
	}
	if doc.Title == nil || doc.Panels == nil {
		return ErrInvalidImport
	}

	ds.mu.Lock()
	ds.title = *doc.Title
	ds.panels = copyPanels(*doc.Panels)
	ds.cancelAllInflightLocked()
	ds.mu.Unlock()

	ds.Cache.Clear()
	return ds.RefreshAll(ctx)
}

func (ds *DashboardService) loadSaved() ([]SavedDashboard, error) {
	blob, err := ds.Records.Read(savedRecordKey)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []SavedDashboard{}, nil
	}

	var saved []SavedDashboard
	if err := json.Unmarshal(blob, &saved); err != nil {
		log.Printf("discarding malformed %s record: %v", savedRecordKey, err)
		return []SavedDashboard{}, nil
	}
	return saved, nil
}

func (ds *DashboardService) persistSaved(saved []SavedDashboard) error {
	blob, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize saved dashboards: %w", err)
	}
	return ds.Records.Write(savedRecordKey, blob)
}

func (ds *DashboardService) setLoadingLocked(widgetID string, loading bool) {
	for i := range ds.panels {
		if ds.panels[i].ID == widgetID {
			ds.panels[i].IsLoading = loading
			return
		}
	}
}

func (ds *DashboardService) cancelInflightLocked(widgetID string) {
	if cancel, ok := ds.inflight[widgetID]; ok {
		cancel()
		delete(ds.inflight, widgetID)
	}
}

func (ds *DashboardService) cancelAllInflightLocked() {
	for id, cancel := range ds.inflight {
		cancel()
		delete(ds.inflight, id)
	}
}

func nextAvailableRow(panels []Widget) int {
	next := 0
	for _, p := range panels {
		if bottom := p.Row + p.SizeY; bottom > next {
			next = bottom
		}
	}
	return next
}

func copyPanels(panels []Widget) []Widget {
	out := make([]Widget, len(panels))
	for i, p := range panels {
		out[i] = p
		if p.DataConfig != nil {
			c := p.DataConfig.Clone()
			out[i].DataConfig = &c
		}
	}
	return out
}

// titleCase turns a camelCase column name into a spaced header,
// "oilRate" -> "Oil Rate".
func titleCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
