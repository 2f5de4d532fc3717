package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecordStore struct {
	DB *gorm.DB
}

// Read returns the stored blob for key, or nil when the key has never been
// written. Absence is not an error: every consumer treats a missing record as
// first-run empty state.
func (rs *RecordStore) Read(key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("record key is required")
	}

	var rec DurableRecord
	err := rs.DB.Where("key = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read record %q: %w", key, err)
	}

	return []byte(rec.Blob), nil
}

// Write upserts the blob under key. A write failure propagates to the caller;
// silent data loss is not acceptable here.
func (rs *RecordStore) Write(key string, blob []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("record key is required")
	}

	rec := DurableRecord{Key: key, Blob: datatypes.JSON(blob)}
	err := rs.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("write record %q: %w", key, err)
	}
	return nil
}

// Delete removes the record; deleting an absent key is a no-op.
func (rs *RecordStore) Delete(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("record key is required")
	}

	if err := rs.DB.Where("key = ?", key).Delete(&DurableRecord{}).Error; err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
