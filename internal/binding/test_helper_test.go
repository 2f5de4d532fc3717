package binding

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"oilfield-dashboard-api/internal/storage"
)

var testDBSeq uint64

func newTestRecords(t *testing.T) *storage.RecordStore {
	t.Helper()

	id := atomic.AddUint64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:binding_test_%d?mode=memory&cache=shared", id)

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
	return &storage.RecordStore{DB: db}
}

func breakRecords(t *testing.T, rs *storage.RecordStore) {
	t.Helper()

	sqlDB, err := rs.DB.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()
}

func gaugeConfig(widgetID, sourceColumn string) WidgetDataConfig {
	return WidgetDataConfig{
		WidgetID:       widgetID,
		DataSourceID:   "wells_table",
		DataSourceName: "Wells Performance Data",
		Mappings: []ColumnMapping{
			{WidgetField: "value", SourceColumn: sourceColumn, DisplayName: "Gauge Value"},
		},
	}
}
