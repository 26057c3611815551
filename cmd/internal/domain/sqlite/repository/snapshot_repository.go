package repository

import (
	"context"

	"gorm.io/gorm"

	"salondesk/cmd/internal/domain/entity"
)

// DefaultSnapshotRepository stores the serialized store under one row of
// the snapshots table. It satisfies store.Persister.
type DefaultSnapshotRepository struct {
	db  *gorm.DB
	key string
}

func NewSnapshotRepository(db *gorm.DB, key string) *DefaultSnapshotRepository {
	return &DefaultSnapshotRepository{db: db, key: key}
}

func (r *DefaultSnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	var rec entity.SnapshotRecord
	res := r.db.WithContext(ctx).Where("storage_key = ?", r.key).Limit(1).Find(&rec)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return rec.Data, nil
}

func (r *DefaultSnapshotRepository) Save(ctx context.Context, blob []byte) error {
	rec := entity.SnapshotRecord{StorageKey: r.key, Data: blob}
	return r.db.WithContext(ctx).Save(&rec).Error
}
