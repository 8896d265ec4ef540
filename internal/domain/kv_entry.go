package domain

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry backs the durable key-value slot when a SQL database is the store.
type KVEntry struct {
	Key       string         `gorm:"column:kv_key;type:varchar(128);primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"column:value" json:"value"`
	CreatedAt time.Time      `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updatedAt" json:"updatedAt"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
