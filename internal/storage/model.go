package storage

import (
	"time"

	"gorm.io/datatypes"
)

// DurableRecord is one named opaque blob, the local-persistence analog of a
// browser localStorage entry. The blob content is owned by the feature that
// wrote it; this layer never interprets it.
type DurableRecord struct {
	Key       string         `json:"key" gorm:"primaryKey;type:text"`
	Blob      datatypes.JSON `json:"blob" gorm:"type:json"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (DurableRecord) TableName() string { return "durable_record" }
