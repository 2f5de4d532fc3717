package datacache

import (
	"sync"

	"oilfield-dashboard-api/internal/catalog"
)

type entry struct {
	rows    []catalog.Row
	version uint64
}

// Cache holds the latest resolved dataset per widget id, decoupled from the
// configuration that produced it. Every Put stores a fresh deep copy and bumps
// a per-widget version stamp, so a rendering consumer can detect change with a
// version compare and never observes a shared or reused container.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Put replaces the dataset for widgetID and returns the new version stamp.
// The last writer for an id wins.
func (c *Cache) Put(widgetID string, rows []catalog.Row) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[widgetID]
	if !ok {
		e = &entry{}
		c.entries[widgetID] = e
	}
	e.rows = copyRows(rows)
	e.version++
	return e.version
}

// Get returns a copy of the cached rows and their version stamp.
func (c *Cache) Get(widgetID string) ([]catalog.Row, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[widgetID]
	if !ok {
		return nil, 0, false
	}
	return copyRows(e.rows), e.version, true
}

func (c *Cache) Has(widgetID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[widgetID]
	return ok
}

func (c *Cache) Evict(widgetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, widgetID)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
}

func copyRows(rows []catalog.Row) []catalog.Row {
	out := make([]catalog.Row, len(rows))
	for i, r := range rows {
		nr := make(catalog.Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		out[i] = nr
	}
	return out
}
