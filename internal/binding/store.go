package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"oilfield-dashboard-api/internal/storage"
)

// configsRecordKey names the durable record holding every saved widget
// configuration, serialized as an ordered list of [widgetId, config] pairs.
const configsRecordKey = "widgetDataConfigs"

var ErrIncompleteMapping = errors.New("all required field mappings must be completed before saving")

// ConfigStore owns the canonical widgetId -> WidgetDataConfig mapping. It is
// constructed explicitly, loaded once at startup, and written back to durable
// storage after every mutation. Configurations are keyed by widget id alone,
// so a saved configuration outlives the widget object that created it.
type ConfigStore struct {
	records *storage.RecordStore

	mu      sync.Mutex
	configs map[string]WidgetDataConfig
}

func NewConfigStore(records *storage.RecordStore) *ConfigStore {
	return &ConfigStore{
		records: records,
		configs: make(map[string]WidgetDataConfig),
	}
}

// configEntry serializes as a two-element array ["widgetId", {config}] to
// keep the on-disk format identical to the dashboard client's localStorage
// export of its config map entries.
type configEntry struct {
	WidgetID string
	Config   WidgetDataConfig
}

func (e configEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.WidgetID, e.Config})
}

func (e *configEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("config entry has %d elements, want 2", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.WidgetID); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Config)
}

// Load reads the durable record. An absent record is first-run state and a
// malformed one is discarded as empty; neither may fail startup.
func (s *ConfigStore) Load() error {
	blob, err := s.records.Read(configsRecordKey)
	if err != nil {
		return err
	}
	if blob == nil {
		return nil
	}

	var entries []configEntry
	if err := json.Unmarshal(blob, &entries); err != nil {
		log.Printf("discarding malformed %s record: %v", configsRecordKey, err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs = make(map[string]WidgetDataConfig, len(entries))
	for _, e := range entries {
		if e.WidgetID == "" {
			continue
		}
		s.configs[e.WidgetID] = e.Config
	}
	return nil
}

// Save validates and upserts a configuration, persisting the whole store
// synchronously. An incomplete configuration is rejected before anything is
// touched; a persistence failure leaves the in-memory store unchanged too.
func (s *ConfigStore) Save(cfg WidgetDataConfig) error {
	if cfg.WidgetID == "" {
		return errors.New("widgetId is required")
	}
	if cfg.DataSourceID == "" {
		return errors.New("dataSourceId is required")
	}
	if !cfg.Complete() {
		return ErrIncompleteMapping
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]WidgetDataConfig, len(s.configs)+1)
	for k, v := range s.configs {
		next[k] = v
	}
	next[cfg.WidgetID] = cfg.Clone()

	if err := s.flushLocked(next); err != nil {
		return err
	}
	s.configs = next
	return nil
}

// Get returns a copy of the saved configuration for widgetID.
func (s *ConfigStore) Get(widgetID string) (WidgetDataConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[widgetID]
	if !ok {
		return WidgetDataConfig{}, false
	}
	return cfg.Clone(), true
}

// Delete removes the entry and persists; deleting an absent key is a no-op.
func (s *ConfigStore) Delete(widgetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[widgetID]; !ok {
		return nil
	}

	next := make(map[string]WidgetDataConfig, len(s.configs))
	for k, v := range s.configs {
		if k != widgetID {
			next[k] = v
		}
	}

	if err := s.flushLocked(next); err != nil {
		return err
	}
	s.configs = next
	return nil
}

// All returns a snapshot copy of every saved configuration.
func (s *ConfigStore) All() map[string]WidgetDataConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]WidgetDataConfig, len(s.configs))
	for k, v := range s.configs {
		out[k] = v.Clone()
	}
	return out
}

func (s *ConfigStore) flushLocked(configs map[string]WidgetDataConfig) error {
	// Entries are written id-sorted so the record is stable across flushes.
	ids := make([]string, 0, len(configs))
	for id := range configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]configEntry, 0, len(configs))
	for _, id := range ids {
		entries = append(entries, configEntry{WidgetID: id, Config: configs[id]})
	}

	blob, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("serialize widget configs: %w", err)
	}
	return s.records.Write(configsRecordKey, blob)
}
