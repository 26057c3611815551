package entity

import "time"

// SnapshotRecord is the SQL row a serialized Snapshot is stored in.
type SnapshotRecord struct {
	StorageKey string `gorm:"primaryKey"`
	Data       []byte `gorm:"not null"`
	UpdatedAt  time.Time
}

func (SnapshotRecord) TableName() string {
	return "snapshots"
}
