package datacache

import (
	"reflect"
	"testing"

	"oilfield-dashboard-api/internal/catalog"
)

func sampleRows() []catalog.Row {
	return []catalog.Row{
		{"value": 92},
		{"value": 88},
		{"value": 75},
	}
}

func TestCache_PutThenGet(t *testing.T) {
	c := NewCache()

	c.Put("widget_2", sampleRows())

	rows, version, ok := c.Get("widget_2")
	if !ok {
		t.Fatal("entry absent after put")
	}
	if version != 1 {
		t.Fatalf("version=%d want 1", version)
	}
	if !reflect.DeepEqual(rows, sampleRows()) {
		t.Fatalf("rows=%v", rows)
	}
}

func TestCache_GetAbsent(t *testing.T) {
	c := NewCache()

	if _, _, ok := c.Get("never_put"); ok {
		t.Fatal("expected absent entry")
	}
	if c.Has("never_put") {
		t.Fatal("Has should be false for absent entry")
	}
}

func TestCache_PutStoresIndependentCopy(t *testing.T) {
	c := NewCache()

	rows := sampleRows()
	c.Put("widget_2", rows)

	// mutating the caller's slice after Put must not leak into the cache
	rows[0]["value"] = -1

	cached, _, _ := c.Get("widget_2")
	if cached[0]["value"] != 92 {
		t.Fatalf("cache aliased caller rows: %v", cached[0])
	}
}

func TestCache_SequentialPutsYieldDistinctContainers(t *testing.T) {
	c := NewCache()

	c.Put("widget_2", sampleRows())
	first, v1, _ := c.Get("widget_2")

	c.Put("widget_2", sampleRows())
	second, v2, _ := c.Get("widget_2")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected structurally equal datasets, got %v vs %v", first, second)
	}
	if &first[0] == &second[0] {
		t.Fatal("consecutive puts handed out the same container")
	}
	if v2 != v1+1 {
		t.Fatalf("version did not advance: %d -> %d", v1, v2)
	}
}

func TestCache_GetReturnsFreshCopyEachCall(t *testing.T) {
	c := NewCache()
	c.Put("widget_2", sampleRows())

	a, _, _ := c.Get("widget_2")
	a[0]["value"] = -1

	b, _, _ := c.Get("widget_2")
	if b[0]["value"] != 92 {
		t.Fatalf("cache mutated through a returned copy: %v", b[0])
	}
}

func TestCache_LastWriteWins(t *testing.T) {
	c := NewCache()

	c.Put("widget_2", []catalog.Row{{"value": 1}})
	c.Put("widget_2", []catalog.Row{{"value": 2}})

	rows, version, _ := c.Get("widget_2")
	if rows[0]["value"] != 2 {
		t.Fatalf("rows=%v", rows)
	}
	if version != 2 {
		t.Fatalf("version=%d want 2", version)
	}
}

func TestCache_EvictAndClear(t *testing.T) {
	c := NewCache()

	c.Put("widget_1", sampleRows())
	c.Put("widget_2", sampleRows())

	c.Evict("widget_1")
	if c.Has("widget_1") {
		t.Fatal("widget_1 still cached after evict")
	}
	if !c.Has("widget_2") {
		t.Fatal("evict removed the wrong entry")
	}

	// evicting an absent id is a no-op
	c.Evict("widget_1")

	c.Clear()
	if c.Has("widget_2") {
		t.Fatal("entry survived clear")
	}
}

func TestCache_VersionsAreIndependentPerWidget(t *testing.T) {
	c := NewCache()

	c.Put("widget_1", sampleRows())
	c.Put("widget_1", sampleRows())
	v := c.Put("widget_2", sampleRows())

	if v != 1 {
		t.Fatalf("widget_2 version=%d want 1", v)
	}
}
